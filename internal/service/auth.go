package service

import (
	"context"
	"errors"

	"github.com/dtroode/listkeeper-server/internal/apperrors"
	"github.com/dtroode/listkeeper-server/internal/logger"
	"github.com/dtroode/listkeeper-server/internal/model"
)

// Auth handles signup, login and token revalidation.
type Auth struct {
	users        *User
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	users *User,
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenService *TokenService,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		users:        users,
		userStore:    userStore,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Signup creates a user with the default role and returns a token for it.
func (a *Auth) Signup(ctx context.Context, params model.CreateUserParams) (model.AuthResult, error) {
	a.logger.Debug("Auth service: starting signup",
		"email", params.Email)

	params.Roles = nil
	user, err := a.users.Create(ctx, params)
	if err != nil {
		return model.AuthResult{}, err
	}

	return a.issue(ctx, user)
}

// Login verifies the credentials. An unknown email and a wrong password fail identically.
func (a *Auth) Login(ctx context.Context, email, password string) (model.AuthResult, error) {
	a.logger.Debug("Auth service: starting login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, model.ErrNotFound) {
		return model.AuthResult{}, apperrors.NewErrInvalidCredentials()
	}
	if err != nil {
		return model.AuthResult{}, storeError(a.logger, "Auth service: failed to get user by email", err)
	}

	err = a.hasher.Compare(user.PasswordHash, password)
	if errors.Is(err, model.ErrPasswordMismatch) {
		a.logger.Info("Auth service: password mismatch",
			"user_id", user.ID)
		return model.AuthResult{}, apperrors.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to verify password",
			"user_id", user.ID,
			"error", err.Error())
		return model.AuthResult{}, apperrors.NewErrInternalServerError(err)
	}

	if !user.IsActive {
		a.logger.Info("Auth service: inactive user tried to log in",
			"user_id", user.ID)
		return model.AuthResult{}, apperrors.NewErrInactiveUser()
	}

	return a.issue(ctx, user.WithoutPassword())
}

// Revalidate issues a fresh token for an already authenticated user.
func (a *Auth) Revalidate(ctx context.Context, user model.User) (model.AuthResult, error) {
	return a.issue(ctx, user.WithoutPassword())
}

func (a *Auth) issue(ctx context.Context, user model.User) (model.AuthResult, error) {
	token, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return model.AuthResult{}, err
	}

	a.logger.Info("Auth service: token issued",
		"user_id", user.ID)

	return model.AuthResult{Token: token, User: user}, nil
}
