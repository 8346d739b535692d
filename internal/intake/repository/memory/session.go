package memory

import (
	"context"

	"github.com/google/uuid"

	"university-assistant/internal/intake"
)

func newSessionID() string {
	return uuid.NewString()
}

func (r *implRepository) GetOrCreate(ctx context.Context, id string) (*intake.Session, error) {
	if id != "" {
		r.mu.RLock()
		s, ok := r.sessions[id]
		r.mu.RUnlock()
		if ok {
			return s, nil
		}
	} else {
		id = r.newID()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another request may have created it between the two locks.
	if s, ok := r.sessions[id]; ok {
		return s, nil
	}

	s := intake.NewSession(id, r.now())
	r.sessions[id] = s
	r.l.Debugf(ctx, "internal.intake.repository.memory.GetOrCreate: created session %s", id)
	return s, nil
}

func (r *implRepository) Get(ctx context.Context, id string) (*intake.Session, error) {
	if id == "" {
		return nil, intake.ErrEmptySessionID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, intake.ErrSessionNotFound
	}
	return s, nil
}

func (r *expirableRepository) GetOrCreate(ctx context.Context, id string) (*intake.Session, error) {
	if id == "" {
		id = r.newID()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions.Get(id); ok {
		// Re-adding an existing key refreshes its expiry.
		r.sessions.Add(id, s)
		return s, nil
	}

	s := intake.NewSession(id, r.now())
	r.sessions.Add(id, s)
	r.l.Debugf(ctx, "internal.intake.repository.memory.GetOrCreate: created session %s", id)
	return s, nil
}

func (r *expirableRepository) Get(ctx context.Context, id string) (*intake.Session, error) {
	if id == "" {
		return nil, intake.ErrEmptySessionID
	}

	s, ok := r.sessions.Get(id)
	if !ok {
		return nil, intake.ErrSessionNotFound
	}
	return s, nil
}

func (r *expirableRepository) onEvict(id string, _ *intake.Session) {
	r.l.Debugf(context.Background(), "internal.intake.repository.memory.onEvict: evicted session %s", id)
}
