package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/listkeeper-server/internal/apperrors"
	"github.com/dtroode/listkeeper-server/internal/logger"
	"github.com/dtroode/listkeeper-server/internal/model"
)

// User is the user directory.
type User struct {
	store  model.UserStore
	hasher model.PasswordHasher
	tx     model.Transactor
	items  *Item
	lists  *List
	logger *logger.Logger
}

func NewUser(
	store model.UserStore,
	hasher model.PasswordHasher,
	tx model.Transactor,
	items *Item,
	lists *List,
	logger *logger.Logger,
) *User {
	return &User{
		store:  store,
		hasher: hasher,
		tx:     tx,
		items:  items,
		lists:  lists,
		logger: logger,
	}
}

// Create hashes the password and stores a new active user. Roles default to {user}.
func (s *User) Create(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	roles, err := normalizeRoles(params.Roles)
	if err != nil {
		return model.User{}, err
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return model.User{}, hashError(s.logger, err)
	}

	now := time.Now().UTC()
	user := model.User{
		ID:           uuid.New(),
		Email:        normalizeEmail(params.Email),
		FullName:     strings.TrimSpace(params.FullName),
		PasswordHash: hash,
		Roles:        roles,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := s.store.Create(ctx, user)
	if err != nil {
		return model.User{}, storeError(s.logger, "User service: failed to create user", err,
			"email", user.Email)
	}

	s.logger.Info("User service: user created",
		"user_id", saved.ID)

	return saved.WithoutPassword(), nil
}

// FindAll returns users holding any of roles, or all users when roles is empty.
func (s *User) FindAll(ctx context.Context, roles []model.Role, pagination model.Pagination) ([]model.User, error) {
	users, err := s.store.List(ctx, model.UserFilter{Roles: roles, Pagination: pagination.Normalize()})
	if err != nil {
		return nil, storeError(s.logger, "User service: failed to list users", err)
	}

	out := make([]model.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.WithoutPassword())
	}
	return out, nil
}

func (s *User) FindOneByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.User{}, lookupError(s.logger, "user", id.String(), err)
	}
	return user.WithoutPassword(), nil
}

func (s *User) FindOneByEmail(ctx context.Context, email string) (model.User, error) {
	email = normalizeEmail(email)
	user, err := s.store.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apperrors.NewErrUserNotFound(email)
	}
	if err != nil {
		return model.User{}, storeError(s.logger, "User service: failed to get user by email", err)
	}
	return user.WithoutPassword(), nil
}

// Update merges the provided fields into the stored user and stamps actor as the last updater.
func (s *User) Update(ctx context.Context, params model.UpdateUserParams, actor model.User) (model.User, error) {
	var updated model.User
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.store.GetByID(ctx, params.ID)
		if err != nil {
			return lookupError(s.logger, "user", params.ID.String(), err)
		}

		if params.Email != nil {
			user.Email = normalizeEmail(*params.Email)
		}
		if params.FullName != nil {
			user.FullName = strings.TrimSpace(*params.FullName)
		}
		if params.Password != nil {
			hash, err := s.hasher.Hash(*params.Password)
			if err != nil {
				return hashError(s.logger, err, "user_id", user.ID)
			}
			user.PasswordHash = hash
		}
		if params.Roles != nil {
			if len(params.Roles) == 0 {
				return apperrors.NewErrInvalidArgument("roles", "at least one role is required")
			}
			roles, err := normalizeRoles(params.Roles)
			if err != nil {
				return err
			}
			user.Roles = roles
		}
		if params.IsActive != nil {
			user.IsActive = *params.IsActive
		}

		return s.save(ctx, &user, actor, &updated)
	})
	if err != nil {
		return model.User{}, err
	}

	s.logger.Info("User service: user updated",
		"user_id", updated.ID,
		"actor_id", actor.ID)

	return updated.WithoutPassword(), nil
}

// Block deactivates the user. Owned resources are left in place.
func (s *User) Block(ctx context.Context, id uuid.UUID, actor model.User) (model.User, error) {
	var blocked model.User
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.store.GetByID(ctx, id)
		if err != nil {
			return lookupError(s.logger, "user", id.String(), err)
		}

		user.IsActive = false
		return s.save(ctx, &user, actor, &blocked)
	})
	if err != nil {
		return model.User{}, err
	}

	s.logger.Info("User service: user blocked",
		"user_id", id,
		"actor_id", actor.ID)

	return blocked.WithoutPassword(), nil
}

func (s *User) ItemCountByUser(ctx context.Context, user model.User) (int, error) {
	return s.items.CountByOwner(ctx, user.ID)
}

func (s *User) ListCountByUser(ctx context.Context, user model.User) (int, error) {
	return s.lists.CountByOwner(ctx, user.ID)
}

func (s *User) save(ctx context.Context, user *model.User, actor model.User, out *model.User) error {
	actorID := actor.ID
	user.LastUpdateBy = &actorID

	saved, err := s.store.Update(ctx, *user)
	if err != nil {
		return storeError(s.logger, "User service: failed to update user", err,
			"user_id", user.ID)
	}
	*out = saved
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizeRoles validates roles, drops duplicates and defaults to {user}.
func normalizeRoles(roles []model.Role) ([]model.Role, error) {
	if len(roles) == 0 {
		return []model.Role{model.RoleUser}, nil
	}

	out := make([]model.Role, 0, len(roles))
	for _, r := range roles {
		if !r.Valid() {
			return nil, apperrors.NewErrInvalidArgument("roles", "unknown role "+string(r))
		}
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// EnsureSuperUser makes sure a user with email holds the superUser role. A
// missing user is created with password; an existing one is promoted and
// keeps its password. The bool reports whether the user was created.
func (s *User) EnsureSuperUser(ctx context.Context, email, password string) (model.User, bool, error) {
	existing, err := s.FindOneByEmail(ctx, email)
	if err == nil {
		promoted, err := s.promote(ctx, existing.ID)
		if err != nil {
			return model.User{}, false, err
		}
		return promoted, false, nil
	}
	if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		return model.User{}, false, err
	}

	created, err := s.Create(ctx, model.CreateUserParams{
		Email:    email,
		FullName: "Super User",
		Password: password,
		Roles:    []model.Role{model.RoleSuperUser},
	})
	if err != nil {
		return model.User{}, false, err
	}
	return created, true, nil
}

func (s *User) promote(ctx context.Context, id uuid.UUID) (model.User, error) {
	var promoted model.User
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.store.GetByID(ctx, id)
		if err != nil {
			return lookupError(s.logger, "user", id.String(), err)
		}
		if user.HasAnyRole(model.RoleSuperUser) {
			promoted = user
			return nil
		}

		user.Roles = append(user.Roles, model.RoleSuperUser)
		saved, err := s.store.Update(ctx, user)
		if err != nil {
			return storeError(s.logger, "User service: failed to promote user", err,
				"user_id", id)
		}
		promoted = saved
		return nil
	})
	if err != nil {
		return model.User{}, err
	}

	s.logger.Info("User service: super user ensured", "user_id", id)

	return promoted.WithoutPassword(), nil
}
