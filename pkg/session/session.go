package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is a bag of values tied to one browser via a cookie.
type Session struct {
	// ID is the opaque identifier stored in the cookie.
	ID string

	// Values holds the session data.
	Values map[string]any

	// CreatedAt is when the session was first issued.
	CreatedAt time.Time

	// ExpiresAt is when the session stops being honored.
	ExpiresAt time.Time
}

// New creates a fresh session valid for ttl.
func New(ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		Values:    make(map[string]any),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// Get returns the value stored under key.
func (s *Session) Get(key string) (any, bool) {
	v, ok := s.Values[key]
	return v, ok
}

// Set stores value under key.
func (s *Session) Set(key string, value any) {
	s.Values[key] = value
}

// Delete removes key from the session.
func (s *Session) Delete(key string) {
	delete(s.Values, key)
}

// Expired reports whether the session's lifetime has passed.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// clone returns a deep-enough copy so that two requests loading the same
// session never share a Values map.
func (s *Session) clone() *Session {
	values := make(map[string]any, len(s.Values))
	for k, v := range s.Values {
		values[k] = v
	}
	return &Session{
		ID:        s.ID,
		Values:    values,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}
