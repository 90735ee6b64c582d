package service

import (
	"context"
	"errors"

	"github.com/dtroode/listkeeper-server/internal/apperrors"
	"github.com/dtroode/listkeeper-server/internal/logger"
	"github.com/dtroode/listkeeper-server/internal/model"
)

// Guard resolves the user behind a bearer token.
type Guard struct {
	tokens *TokenService
	users  model.UserStore
	logger *logger.Logger
}

func NewGuard(tokens *TokenService, users model.UserStore, logger *logger.Logger) *Guard {
	return &Guard{tokens: tokens, users: users, logger: logger}
}

// Resolve authenticates token. The returned user never carries a password hash.
func (g *Guard) Resolve(ctx context.Context, token string) (model.User, error) {
	if token == "" {
		return model.User{}, apperrors.NewErrMissingAuthorizationToken()
	}

	userID, err := g.tokens.GetUserID(ctx, token)
	if err != nil {
		return model.User{}, err
	}

	user, err := g.users.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		g.logger.Debug("Guard: token subject no longer exists",
			"user_id", userID)
		return model.User{}, apperrors.NewErrInvalidAuthorizationToken()
	}
	if err != nil {
		return model.User{}, storeError(g.logger, "Guard: failed to load user", err, "user_id", userID)
	}

	if !user.IsActive {
		g.logger.Info("Guard: rejected inactive user",
			"user_id", userID)
		return model.User{}, apperrors.NewErrInactiveUser()
	}

	return user.WithoutPassword(), nil
}
