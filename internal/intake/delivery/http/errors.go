package http

import (
	"errors"
	"net/http"

	"university-assistant/internal/intake"
	pkgErrors "university-assistant/pkg/errors"
)

var errInvalidChatReq = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid chat request")

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, intake.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "session not found")
	case errors.Is(err, intake.ErrEmptySessionID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "session id is required")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
