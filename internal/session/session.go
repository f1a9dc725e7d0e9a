// Package session holds the logged-in user state as an explicit,
// injectable component. Fresh sessions start absent; Clear returns to
// that state.
package session

import "sync"

// Session tracks the logged flag and the acting user's id.
// Safe for concurrent use.
type Session struct {
	mu     sync.Mutex
	logged bool
	userID int64
}

// New creates an empty session (not logged, no user).
func New() *Session {
	return &Session{}
}

// IsLogged reports whether a user is logged in.
func (s *Session) IsLogged() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logged
}

// SetLogged sets the logged flag.
func (s *Session) SetLogged(logged bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logged = logged
}

// UserID returns the stored user id, or false when none is set.
func (s *Session) UserID() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userID == 0 {
		return 0, false
	}
	return s.userID, true
}

// SetUserID stores the acting user's id.
func (s *Session) SetUserID(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = id
}

// Clear resets the session to its initial absent state.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logged = false
	s.userID = 0
}
