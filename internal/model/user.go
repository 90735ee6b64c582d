package model

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, filter UserFilter) ([]User, error)
	Update(ctx context.Context, user User) (User, error)
}

// Role is a privilege label attached to a user.
type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleSuperUser Role = "superUser"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperUser:
		return true
	}
	return false
}

// User represents a stored user.
type User struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	Roles        []Role
	IsActive     bool
	LastUpdateBy *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasAnyRole reports whether the user holds at least one of roles.
func (u User) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if slices.Contains(u.Roles, r) {
			return true
		}
	}
	return false
}

// WithoutPassword returns a copy of u with the password hash cleared.
func (u User) WithoutPassword() User {
	u.PasswordHash = ""
	u.Roles = slices.Clone(u.Roles)
	return u
}

// UserFilter selects users by role overlap. Empty Roles matches everyone.
type UserFilter struct {
	Roles      []Role
	Pagination Pagination
}

// CreateUserParams contains parameters to create a user.
type CreateUserParams struct {
	Email    string
	FullName string
	Password string
	Roles    []Role
}

// UpdateUserParams contains a partial user update. Nil fields are left unchanged.
type UpdateUserParams struct {
	ID       uuid.UUID
	Email    *string
	FullName *string
	Password *string
	Roles    []Role
	IsActive *bool
}
