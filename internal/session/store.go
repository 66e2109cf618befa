package session

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Store.Get when no session exists for the id.
var ErrNotFound = errors.New("session: not found")

// Store persists sessions keyed by an opaque session id.
type Store interface {
	// Get returns the session for id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// Put stores the session under id, replacing any existing one.
	Put(ctx context.Context, id string, s *Session) error

	// Evict removes the session for id. Evicting an absent id is not an
	// error.
	Evict(ctx context.Context, id string) error
}

// MemoryStore is an in-process Store. It is safe for concurrent use:
// Get and Put exchange copies, so a session handed to one request never
// aliases the one another request is mutating. The Roadmap pointer is
// shared across copies, which is fine because a stored roadmap is never
// modified, only replaced through Start.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemoryStore) Put(_ context.Context, id string, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = *s
	return nil
}

func (m *MemoryStore) Evict(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len returns the number of stored sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
