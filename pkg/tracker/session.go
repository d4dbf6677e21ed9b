package tracker

import (
	"strings"
	"time"
)

// SessionManager tracks the currently signed-in user. Login is
// registration: any username is accepted and mapped to its derived
// identifier, and logging in again with the same username reattaches
// to the same task set.
type SessionManager struct {
	gateway *Gateway
	user    User
	active  bool
}

// NewSessionManager restores the persisted session, if any.
func NewSessionManager(gateway *Gateway) *SessionManager {
	m := &SessionManager{gateway: gateway}
	m.user, m.active = gateway.LoadUser()
	return m
}

// Login signs in with the given username and persists the session.
// Callers must have validated the username (ValidateUsername) first.
func (m *SessionManager) Login(username string) User {
	username = strings.TrimSpace(username)
	m.user = User{
		ID:        UserIDFor(username),
		Username:  username,
		LoginTime: time.Now(),
	}
	m.active = true
	m.gateway.SaveUser(m.user)
	return m.user
}

// Logout clears the persisted session. The task store is deliberately
// untouched: tasks stay durable and reappear on the next login with
// the same username.
func (m *SessionManager) Logout() {
	m.user = User{}
	m.active = false
	m.gateway.ClearUser()
}

// Current returns the signed-in user; the second result is false when
// logged out.
func (m *SessionManager) Current() (User, bool) {
	return m.user, m.active
}
