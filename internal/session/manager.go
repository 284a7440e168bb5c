package session

import (
	"sync" // Mutex over the session table
	"time" // Expiry timestamps

	"ordering_system/internal/domain" // Sentinel errors
	"ordering_system/internal/utils"  // Token minting

	"github.com/sirupsen/logrus" // Structured logging
)

// tokenBytes gives 256 bits of entropy per token.
const tokenBytes = 32

// Verifier is the credential check the manager delegates to.
type Verifier interface {
	Verify(username, password string) bool
}

// Manager owns the in-memory session table. Tokens are opaque random
// strings; a token maps to at most one live session and expiry is
// absolute from login time (no sliding renewal). Sessions are never
// persisted.
type Manager struct {
	creds   Verifier
	ttl     time.Duration
	limiter *Limiter
	now     func() time.Time // Injectable clock for expiry tests

	mu       sync.Mutex
	sessions map[string]entry
}

type entry struct {
	username string
	expires  time.Time
}

// NewManager returns a manager issuing sessions with the given TTL.
// limiter may be nil to disable login throttling.
func NewManager(creds Verifier, ttl time.Duration, limiter *Limiter) *Manager {
	return &Manager{
		creds:    creds,
		ttl:      ttl,
		limiter:  limiter,
		now:      time.Now,
		sessions: make(map[string]entry),
	}
}

// Login checks credentials and mints a session token. The failure for
// an unknown user and a wrong password is the same error.
func (m *Manager) Login(username, password string) (string, error) {
	if m.limiter != nil && !m.limiter.Allow(username, m.now()) {
		logrus.WithFields(logrus.Fields{"username": username}).Warn("Login throttled")
		return "", domain.ErrTooManyAttempts
	}
	if !m.creds.Verify(username, password) {
		return "", domain.ErrInvalidCredentials
	}
	token, err := utils.NewToken(tokenBytes)
	if err != nil {
		return "", err
	}
	expires := m.now().Add(m.ttl)
	m.mu.Lock()
	m.sessions[token] = entry{username: username, expires: expires}
	m.mu.Unlock()
	logrus.WithFields(logrus.Fields{
		"username": username,
		"expires":  expires.Format(time.RFC3339),
	}).Info("Session issued")
	return token, nil
}

// Validate reports whether the token maps to a live session. An
// expired entry is evicted on detection.
func (m *Manager) Validate(token string) bool {
	_, ok := m.Resolve(token)
	return ok
}

// Resolve maps a token to its owning username without re-checking
// credentials. Returns false for unknown or expired tokens.
func (m *Manager) Resolve(token string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[token]
	if !ok {
		return "", false
	}
	if m.now().After(e.expires) {
		delete(m.sessions, token) // Lazy expiry
		return "", false
	}
	return e.username, true
}

// Logout removes the token immediately; idempotent
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}
