package repository

import "errors"

var (
	ErrFailedToInsert    = errors.New("failed to insert record")
	ErrInvalidCollection = errors.New("invalid collection name")
	ErrSinkNotConfigured = errors.New("record sink not configured")
)
