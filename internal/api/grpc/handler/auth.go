package handler

import (
	"context"

	pb "github.com/dtroode/listkeeper-server/internal/api/grpc/listkeeperpb"
	"github.com/dtroode/listkeeper-server/internal/logger"
	"github.com/dtroode/listkeeper-server/internal/model"
)

var _ pb.AuthServer = (*Auth)(nil)

// AuthService defines signup, login and token renewal.
type AuthService interface {
	Signup(ctx context.Context, params model.CreateUserParams) (model.AuthResult, error)
	Login(ctx context.Context, email, password string) (model.AuthResult, error)
	Revalidate(ctx context.Context, user model.User) (model.AuthResult, error)
}

// Auth handles gRPC endpoints for authentication.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Signup registers a user with the default role and returns a session token.
func (h *Auth) Signup(ctx context.Context, req *pb.SignupRequest) (*pb.AuthResponse, error) {
	h.logger.Debug("Auth handler: processing signup request", "email", req.Email)

	result, err := h.authService.Signup(ctx, model.CreateUserParams{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: signup completed", "user_id", result.User.ID)

	return toAuthResponse(result), nil
}

// Login exchanges credentials for a session token.
func (h *Auth) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	h.logger.Debug("Auth handler: processing login request", "email", req.Email)

	result, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: login completed", "user_id", result.User.ID)

	return toAuthResponse(result), nil
}

// Revalidate issues a fresh token for the authenticated caller.
func (h *Auth) Revalidate(ctx context.Context, _ *pb.RevalidateRequest) (*pb.AuthResponse, error) {
	user, err := currentUser(ctx, h.contextManager)
	if err != nil {
		return nil, err
	}

	result, err := h.authService.Revalidate(ctx, user)
	if err != nil {
		return nil, handleError(err)
	}

	return toAuthResponse(result), nil
}

func toAuthResponse(result model.AuthResult) *pb.AuthResponse {
	return &pb.AuthResponse{
		Token: result.Token,
		User:  toUser(result.User),
	}
}
