package dialog

import (
	"sync"

	"librarian/internal/domain"
)

// session holds the dialog position and accumulated partial input for one user.
type session struct {
	state   domain.DialogState
	scratch map[string]string
}

// Store keeps per-user dialog sessions (in-memory state machine).
// Sessions are created lazily on first access and never expire.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*session
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{sessions: make(map[int64]*session)}
}

// State returns the user's current dialog state, StateIdle if unknown
func (s *Store) State(userID int64) domain.DialogState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sess, ok := s.sessions[userID]; ok {
		return sess.state
	}
	return domain.StateIdle
}

// SetState moves the user to the given state.
// Returning to StateIdle always discards the scratch data, so a finished
// or aborted flow leaves nothing behind.
func (s *Store) SetState(userID int64, state domain.DialogState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.get(userID)
	sess.state = state
	if state == domain.StateIdle {
		sess.scratch = make(map[string]string)
	}
}

// SetScratch stores a partial-input value for the user's active flow
func (s *Store) SetScratch(userID int64, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(userID).scratch[key] = value
}

// Scratch returns a previously stored partial-input value, "" if absent
func (s *Store) Scratch(userID int64, key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sess, ok := s.sessions[userID]; ok {
		return sess.scratch[key]
	}
	return ""
}

// Reset returns the user to StateIdle and clears scratch
func (s *Store) Reset(userID int64) {
	s.SetState(userID, domain.StateIdle)
}

// get returns the session for a user, creating it if needed.
// Caller must hold the write lock.
func (s *Store) get(userID int64) *session {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &session{state: domain.StateIdle, scratch: make(map[string]string)}
		s.sessions[userID] = sess
	}
	return sess
}
