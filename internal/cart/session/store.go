// Package session maps storefront visitors to their cart managers.
package session

import (
	"sync"
	"time"

	"storefront/internal/cart"

	"github.com/google/uuid"
)

// Session is one visitor's storefront session. Each session owns exactly one
// cart manager for its whole lifetime.
type Session struct {
	ID   string
	Cart *cart.Manager

	lastSeen time.Time
}

// Store keeps sessions in memory. Sessions idle for longer than the TTL are
// dropped by Sweep.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates an empty store.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts a new session with an empty, closed cart.
func (s *Store) Create() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		ID:       uuid.NewString(),
		Cart:     cart.New(),
		lastSeen: s.now(),
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the live session for id and marks it as seen.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.Sub(sess.lastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	sess.lastSeen = now
	return sess, true
}

// Delete drops the session with id, if present.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Sweep removes sessions idle for longer than the TTL and returns how many
// were removed.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
