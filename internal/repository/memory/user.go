package memory

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/listkeeper-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(_ context.Context, user model.User) (model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.emailTaken(user.Email, uuid.Nil) {
		return model.User{}, &model.DuplicateError{Field: "email"}
	}

	user = cloneUser(user)
	r.db.users[user.ID] = row[model.User]{seq: r.db.next(), val: user}
	return cloneUser(user), nil
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	u, ok := r.db.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return cloneUser(u.val), nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (model.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, u := range r.db.users {
		if u.val.Email == email {
			return cloneUser(u.val), nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (r *UserRepository) List(_ context.Context, filter model.UserFilter) ([]model.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var rows []row[model.User]
	for _, u := range r.db.users {
		if len(filter.Roles) == 0 || u.val.HasAnyRole(filter.Roles...) {
			rows = append(rows, row[model.User]{seq: u.seq, val: cloneUser(u.val)})
		}
	}

	users := sortedValues(rows, func(u model.User) time.Time { return u.CreatedAt })
	return paginate(users, filter.Pagination), nil
}

func (r *UserRepository) Update(_ context.Context, user model.User) (model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.users[user.ID]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	if r.emailTaken(user.Email, user.ID) {
		return model.User{}, &model.DuplicateError{Field: "email"}
	}

	user.CreatedAt = existing.val.CreatedAt
	user.UpdatedAt = r.db.now()
	user = cloneUser(user)
	r.db.users[user.ID] = row[model.User]{seq: existing.seq, val: user}
	return cloneUser(user), nil
}

func (r *UserRepository) emailTaken(email string, except uuid.UUID) bool {
	for id, u := range r.db.users {
		if id != except && u.val.Email == email {
			return true
		}
	}
	return false
}

func cloneUser(u model.User) model.User {
	u.Roles = slices.Clone(u.Roles)
	if u.LastUpdateBy != nil {
		id := *u.LastUpdateBy
		u.LastUpdateBy = &id
	}
	return u
}
