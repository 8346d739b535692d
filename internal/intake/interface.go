package intake

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Handle runs one conversation turn and returns the reply with the resolved session id.
	Handle(ctx context.Context, input HandleInput) (HandleOutput, error)

	// Detail returns a snapshot of a session's state.
	Detail(ctx context.Context, sessionID string) (DetailOutput, error)
}

// Classifier maps a free-text query to a unit and tone.
// Implementations return ErrClassifierUnavailable when they are switched off.
type Classifier interface {
	Classify(ctx context.Context, text string) (Classification, error)
}

// Notifier delivers a finished record to an outbound webhook.
type Notifier interface {
	Post(ctx context.Context, payload any) error
}
