package context

import (
	"context"
)

type loginKey struct{}

// Manager stores the authenticated login in a request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetLoginToContext returns a copy of ctx carrying login.
func (m *Manager) SetLoginToContext(ctx context.Context, login string) context.Context {
	return context.WithValue(ctx, loginKey{}, login)
}

// GetLoginFromContext returns the login set by SetLoginToContext.
// The boolean is false when no non-empty login is present.
func (m *Manager) GetLoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(loginKey{}).(string)
	if !ok || login == "" {
		return "", false
	}
	return login, true
}
