package trip

import (
	"sync"

	"uberclone/pkg/uuid"
)

// SessionStore keeps every live trip session in memory, keyed by user id.
// Sessions never outlive the process; there is no persistence.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*session),
	}
}

func (s *SessionStore) Get(userID uuid.UUID) (*session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	return sess, ok
}

func (s *SessionStore) Put(sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.userID] = sess
}

func (s *SessionStore) Delete(userID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[userID]; !ok {
		return false
	}
	delete(s.sessions, userID)
	return true
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
