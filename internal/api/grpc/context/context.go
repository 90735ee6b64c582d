package context

import (
	"context"

	"github.com/dtroode/listkeeper-server/internal/model"
)

type userKey struct{}

// Manager carries the authenticated user through a gRPC call context.
// The user is resolved once per call by the authentication interceptor and
// read back by the authorization interceptor and the handlers.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a copy of ctx holding user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext returns the user stored by SetUserToContext.
// The boolean is false when the call was not authenticated.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey{}).(model.User)
	if !ok {
		return model.User{}, false
	}
	return user, true
}
