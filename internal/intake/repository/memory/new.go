package memory

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"university-assistant/internal/intake"
	"university-assistant/internal/intake/repository"
	pkgLog "university-assistant/pkg/log"
)

type implRepository struct {
	l        pkgLog.Logger
	mu       sync.RWMutex
	sessions map[string]*intake.Session
	newID    func() string
	now      func() time.Time
}

// New creates an unbounded in-process session store. Sessions live until the process exits.
func New(l pkgLog.Logger) repository.SessionRepository {
	return &implRepository{
		l:        l,
		sessions: make(map[string]*intake.Session),
		newID:    newSessionID,
		now:      time.Now,
	}
}

type expirableRepository struct {
	l        pkgLog.Logger
	mu       sync.Mutex // guards get-or-create; the LRU has its own lock
	sessions *expirable.LRU[string, *intake.Session]
	newID    func() string
	now      func() time.Time
}

// NewExpirable creates a bounded session store that evicts the least recently used
// sessions beyond size and any session idle for longer than ttl.
// Every GetOrCreate hit restarts the session's ttl.
func NewExpirable(size int, ttl time.Duration, l pkgLog.Logger) repository.SessionRepository {
	r := &expirableRepository{
		l:     l,
		newID: newSessionID,
		now:   time.Now,
	}
	r.sessions = expirable.NewLRU[string, *intake.Session](size, r.onEvict, ttl)
	return r
}
