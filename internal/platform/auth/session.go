package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	RoleClerk   = "clerk"
	RoleManager = "manager"
	RoleOwner   = "owner"
)

// Session is the server-held record behind the cookie token.
type Session struct {
	Token     string
	UserID    string
	Username  string
	Role      string
	ExpiresAt time.Time
}

// SessionManager keeps live sessions in memory, keyed by an opaque
// random token. Sessions do not survive a process restart.
type SessionManager struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]Session
	now      func() time.Time
}

func NewSessionManager(ttl time.Duration) *SessionManager {
	return &SessionManager{
		ttl:      ttl,
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

func (m *SessionManager) Create(userID, username, role string) Session {
	s := Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		Username:  username,
		Role:      role,
		ExpiresAt: m.now().Add(m.ttl),
	}
	m.mu.Lock()
	m.sessions[s.Token] = s
	m.mu.Unlock()
	return s
}

func (m *SessionManager) Get(token string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok {
		return Session{}, false
	}
	if m.now().After(s.ExpiresAt) {
		delete(m.sessions, token)
		return Session{}, false
	}
	return s, true
}

func (m *SessionManager) Delete(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

func (m *SessionManager) TTL() time.Duration { return m.ttl }
