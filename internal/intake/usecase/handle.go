package usecase

import (
	"context"
	"strings"

	"university-assistant/internal/intake"
)

// Handle resolves the session, runs one dialogue step under the session lock and returns the reply.
// Turns for different sessions never wait on each other.
func (uc *implUseCase) Handle(ctx context.Context, input intake.HandleInput) (intake.HandleOutput, error) {
	sess, err := uc.sessions.GetOrCreate(ctx, strings.TrimSpace(input.SessionID))
	if err != nil {
		uc.l.Errorf(ctx, "internal.intake.usecase.Handle: resolve session: %v", err)
		return intake.HandleOutput{}, err
	}

	sess.Lock()
	defer sess.Unlock()

	reply := uc.step(ctx, &sess.State, input.Message)
	return intake.HandleOutput{
		Reply:     reply,
		SessionID: sess.State.SessionID,
	}, nil
}

// Detail returns a snapshot of one session.
func (uc *implUseCase) Detail(ctx context.Context, sessionID string) (intake.DetailOutput, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return intake.DetailOutput{}, intake.ErrEmptySessionID
	}

	sess, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return intake.DetailOutput{}, err
	}
	return intake.DetailOutput{State: sess.Snapshot()}, nil
}
