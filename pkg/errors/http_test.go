package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "university-assistant/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(http.StatusNotFound, "session not found")
	if err.Error() != "session not found" {
		t.Errorf("unexpected message: %s", err.Error())
	}

	wrapped := fmt.Errorf("handler: %w", err)
	var httpErr *pkgErrors.HTTPError
	if !errors.As(wrapped, &httpErr) {
		t.Fatalf("expected wrapped error to unwrap to HTTPError")
	}
	if httpErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", httpErr.StatusCode)
	}
}
