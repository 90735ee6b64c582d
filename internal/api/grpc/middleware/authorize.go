package middleware

import (
	"context"

	"google.golang.org/grpc"

	"github.com/dtroode/listkeeper-server/internal/apperrors"
	"github.com/dtroode/listkeeper-server/internal/logger"
	"github.com/dtroode/listkeeper-server/internal/model"
	"github.com/dtroode/listkeeper-server/internal/service"
)

// Policy maps full method names to the roles allowed to call them.
// Methods missing from the policy are open to any authenticated caller.
type Policy map[string][]model.Role

// Authorize enforces a Policy against the user placed in context by Authenticate.
type Authorize struct {
	policy         Policy
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuthorize(policy Policy, contextManager model.ContextManager, logger *logger.Logger) *Authorize {
	return &Authorize{policy: policy, contextManager: contextManager, logger: logger}
}

func (m *Authorize) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	required := m.policy[info.FullMethod]
	if len(required) == 0 {
		return handler(ctx, req)
	}

	user, ok := m.contextManager.GetUserFromContext(ctx)
	if !ok {
		return nil, toStatus(apperrors.NewErrMissingAuthorizationToken())
	}

	if err := service.Authorize(user, required); err != nil {
		m.logger.Info("Authorize middleware: access denied",
			"method", info.FullMethod,
			"user_id", user.ID)
		return nil, toStatus(err)
	}

	return handler(ctx, req)
}
