package flow

import (
	"log/slog"
	"sync"
	"time"

	"github.com/kykylib/shoebot/internal/models"
)

// SessionStore keeps one Session per user id. Stored sessions are replaced,
// never mutated in place: the engine works on a Snapshot copy and publishes
// the result with Put, so concurrent readers (such as the operational API)
// always observe a consistent session. Same-session writes are serialized by
// the event dispatcher.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*models.Session)}
}

// Get returns the stored session for the given user id, if one exists.
func (s *SessionStore) Get(userID string) (*models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}

// Snapshot returns a copy of the user's session, safe to read or mutate
// without further locking.
func (s *SessionStore) Snapshot(userID string) (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return models.Session{}, false
	}
	return *sess, true
}

// Put publishes the given session state, replacing any previously stored
// value for the same user. The store keeps its own copy.
func (s *SessionStore) Put(sess *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *sess
	stored.UpdatedAt = time.Now()
	s.sessions[stored.UserID] = &stored
}

// GetOrCreate returns the existing session for the user or creates a fresh
// one at the initial step.
func (s *SessionStore) GetOrCreate(userID string) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		return sess
	}
	now := time.Now()
	sess := &models.Session{
		UserID:    userID,
		Step:      models.StepAskName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sessions[userID] = sess
	slog.Debug("SessionStore created session", "userID", userID)
	return sess
}

// Delete removes the session for the given user id.
func (s *SessionStore) Delete(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	slog.Debug("SessionStore deleted session", "userID", userID)
}

// Count returns the number of active sessions.
func (s *SessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
