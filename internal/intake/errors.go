package intake

import "errors"

var (
	ErrSessionNotFound       = errors.New("session not found")
	ErrEmptySessionID        = errors.New("session id is empty")
	ErrClassifierUnavailable = errors.New("classifier unavailable")
	ErrInvalidClassification = errors.New("invalid classification")
)
