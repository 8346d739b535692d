package http

import (
	"university-assistant/internal/intake"
	"university-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc intake.UseCase
}

// New creates a new HTTP handler for the intake domain.
func New(l log.Logger, uc intake.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
