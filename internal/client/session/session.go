// Package session holds the signed-in user for the lifetime of the client
// process. Nothing is persisted.
package session

import (
	"sync"

	"github.com/dmitrijs2005/agenda/internal/client/models"
)

// Session is the immutable result of a successful login.
type Session struct {
	user models.User
}

// User returns a copy of the login row.
func (s Session) User() models.User {
	cols := make(map[string]any, len(s.user.Columns))
	for k, v := range s.user.Columns {
		cols[k] = v
	}
	return models.User{Columns: cols}
}

// Store is the single writable handle on the current session.
type Store struct {
	mu      sync.RWMutex
	current *Session
}

func NewStore() *Store {
	return &Store{}
}

// Set replaces the current session with one for u.
func (s *Store) Set(u models.User) {
	sess := &Session{}
	sess.user = Session{user: u}.User()

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
}

// Clear drops the current session. Clearing an empty store is a no-op.
func (s *Store) Clear() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// Current returns the session and whether one is active.
func (s *Store) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}
