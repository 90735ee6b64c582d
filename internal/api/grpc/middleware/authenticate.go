package middleware

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"google.golang.org/grpc/metadata"

	"github.com/dtroode/listkeeper-server/internal/apperrors"
	"github.com/dtroode/listkeeper-server/internal/logger"
	"github.com/dtroode/listkeeper-server/internal/model"
)

// IdentityResolver turns a bearer token into an active user.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (model.User, error)
}

// Authenticate validates bearer tokens and injects the resolved user into context.
type Authenticate struct {
	resolver       IdentityResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(resolver IdentityResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{resolver: resolver, contextManager: contextManager, logger: logger}
}

// AuthFunc reads the "authorization: Bearer <token>" header, resolves the
// caller and returns a context carrying it. Use with auth.UnaryServerInterceptor.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	var token string
	if hasAuthorization(ctx) {
		var err error
		token, err = auth.AuthFromMD(ctx, "bearer")
		if err != nil {
			return nil, toStatus(apperrors.NewErrInvalidAuthorizationToken())
		}
		if token == "" {
			return nil, toStatus(apperrors.NewErrInvalidAuthorizationToken())
		}
	}

	user, err := m.resolver.Resolve(ctx, token)
	if err != nil {
		m.logger.Debug("Authenticate middleware: rejected call", "error", err.Error())
		return nil, toStatus(err)
	}

	return m.contextManager.SetUserToContext(ctx, user), nil
}

func hasAuthorization(ctx context.Context) bool {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return false
	}
	return len(md.Get("authorization")) > 0
}
