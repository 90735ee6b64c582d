package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/listkeeper-server/internal/apperrors"
	"github.com/dtroode/listkeeper-server/internal/logger"
	"github.com/dtroode/listkeeper-server/internal/model"
)

// TokenService issues access tokens and resolves them back to user IDs.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

func (s *TokenService) Issue(_ context.Context, userID uuid.UUID) (string, error) {
	token, err := s.manager.GenerateAccessToken(userID)
	if err != nil {
		s.logger.Error("Token service: failed to issue access token",
			"user_id", userID,
			"error", err.Error())
		return "", apperrors.NewErrInternalServerError(err)
	}
	return token, nil
}

// GetUserID returns InvalidToken for any token that does not decode, including malformed input.
func (s *TokenService) GetUserID(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := s.manager.ParseAccessToken(token)
	if err != nil {
		s.logger.Debug("Token service: rejected access token",
			"error", err.Error())
		return uuid.Nil, apperrors.NewErrInvalidAuthorizationToken()
	}
	if userID == uuid.Nil {
		return uuid.Nil, apperrors.NewErrInvalidAuthorizationToken()
	}
	return userID, nil
}
