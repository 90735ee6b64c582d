package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/listkeeper-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `id, email, full_name, password_hash, roles, is_active, last_update_by, created_at, updated_at`

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, email, full_name, password_hash, roles, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + userColumns

	saved, err := scanUser(r.db.q(ctx).QueryRow(ctx, query,
		user.ID, user.Email, user.FullName, user.PasswordHash, rolesToStrings(user.Roles), user.IsActive,
		user.CreatedAt, user.UpdatedAt,
	))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", translateError(err))
	}

	return saved, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1` + lockClause(ctx)

	user, err := scanUser(r.db.q(ctx).QueryRow(ctx, query, id))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", translateError(err))
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.q(ctx).QueryRow(ctx, query, email))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", translateError(err))
	}

	return user, nil
}

// List returns users whose roles overlap filter.Roles, or every user when it is empty.
func (r *UserRepository) List(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	p := filter.Pagination.Normalize()
	query := `SELECT ` + userColumns + ` FROM users
			  WHERE cardinality($1::text[]) = 0 OR roles && $1::text[]
			  ORDER BY created_at, id
			  LIMIT $2 OFFSET $3`

	rows, err := r.db.q(ctx).Query(ctx, query, rolesToStrings(filter.Roles), p.Limit, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user model.User) (model.User, error) {
	query := `UPDATE users
			  SET email = $2, full_name = $3, password_hash = $4, roles = $5, is_active = $6,
			      last_update_by = $7, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns

	saved, err := scanUser(r.db.q(ctx).QueryRow(ctx, query,
		user.ID, user.Email, user.FullName, user.PasswordHash, rolesToStrings(user.Roles), user.IsActive,
		user.LastUpdateBy,
	))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", translateError(err))
	}

	return saved, nil
}

func scanUser(row pgx.Row) (model.User, error) {
	var (
		user  model.User
		roles []string
	)
	err := row.Scan(
		&user.ID, &user.Email, &user.FullName, &user.PasswordHash, &roles, &user.IsActive,
		&user.LastUpdateBy, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return model.User{}, err
	}
	user.Roles = stringsToRoles(roles)
	return user, nil
}

func rolesToStrings(roles []model.Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}

func stringsToRoles(roles []string) []model.Role {
	out := make([]model.Role, 0, len(roles))
	for _, r := range roles {
		out = append(out, model.Role(r))
	}
	return out
}
