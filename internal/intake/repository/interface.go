package repository

import (
	"context"

	"university-assistant/internal/intake"
)

// SessionRepository resolves session ids to live conversation sessions.
// Implementations must be safe for concurrent use across sessions.
type SessionRepository interface {
	// GetOrCreate returns the session for id, creating it when id is empty or unknown.
	// A fresh id is generated when id is empty.
	GetOrCreate(ctx context.Context, id string) (*intake.Session, error)

	// Get returns an existing session or intake.ErrSessionNotFound.
	Get(ctx context.Context, id string) (*intake.Session, error)
}

// RecordRepository is a durable sink for completed intake records.
type RecordRepository interface {
	Insert(ctx context.Context, opt InsertRecordOptions) error
}
