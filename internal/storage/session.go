package storage

import (
	"sync"

	"github.com/aliskhannn/knowledge-vault-bot/internal/service"
)

// SessionStorage keeps the active study session of each user in memory.
// Starting a new session replaces the previous one.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*service.SessionRunner
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*service.SessionRunner),
	}
}

// Store saves the active session for a user.
func (s *SessionStorage) Store(userID int64, runner *service.SessionRunner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = runner
}

// Get returns the active session of a user.
func (s *SessionStorage) Get(userID int64) (*service.SessionRunner, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	runner, ok := s.sessions[userID]
	return runner, ok
}

// Delete removes the session of a user.
func (s *SessionStorage) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Len returns the number of active sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
