package session

import (
	"context"
	"sync"
)

// Store persists sessions between requests.
type Store interface {
	// Get returns the session with the given ID, or nil when it does not
	// exist or has expired.
	Get(ctx context.Context, id string) (*Session, error)

	// Put saves or replaces a session.
	Put(ctx context.Context, s *Session) error

	// Delete removes a session.
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps sessions in process memory. Sessions are copied on every
// Get and Put so concurrent requests holding the same session never share a
// map; last write wins.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

// Get implements Store.
func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok || s.Expired() {
		return nil, nil
	}
	return s.clone(), nil
}

// Put implements Store.
func (m *MemoryStore) Put(_ context.Context, s *Session) error {
	clone := s.clone()
	m.mu.Lock()
	m.sessions[clone.ID] = clone
	m.mu.Unlock()
	return nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}

// Cleanup drops expired sessions. Call it periodically from a janitor
// goroutine; it is safe to run concurrently with request traffic.
func (m *MemoryStore) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if s.Expired() {
			delete(m.sessions, id)
		}
	}
}

// Len returns the number of stored sessions, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
