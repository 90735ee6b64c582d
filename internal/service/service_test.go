package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dtroode/listkeeper-server/internal/apperrors"
	"github.com/dtroode/listkeeper-server/internal/model"
	"github.com/dtroode/listkeeper-server/internal/password"
	"github.com/dtroode/listkeeper-server/internal/repository/memory"
	"github.com/dtroode/listkeeper-server/internal/testutil"
	"github.com/dtroode/listkeeper-server/internal/token"
)

// env wires every service against a fresh in-memory store.
type env struct {
	db        *memory.DB
	userStore *memory.UserRepository
	tokens    *TokenService
	guard     *Guard
	users     *User
	items     *Item
	lists     *List
	listItems *ListItem
	graph     *Graph
	auth      *Auth
}

func newEnv(t *testing.T) *env {
	t.Helper()

	lg := testutil.MakeNoopLogger()
	db := memory.NewDB()
	userStore := memory.NewUserRepository(db)
	itemStore := memory.NewItemRepository(db)
	listStore := memory.NewListRepository(db)
	listItemStore := memory.NewListItemRepository(db)
	hasher := password.NewBcrypt(4)

	tokens := NewTokenService(token.NewJWT("test-secret", time.Hour), lg)
	items := NewItem(itemStore, db, lg)
	lists := NewList(listStore, db, nil, lg)
	listItems := NewListItem(listItemStore, listStore, itemStore, db, lg)
	users := NewUser(userStore, hasher, db, items, lists, lg)

	return &env{
		db:        db,
		userStore: userStore,
		tokens:    tokens,
		guard:     NewGuard(tokens, userStore, lg),
		users:     users,
		items:     items,
		lists:     lists,
		listItems: listItems,
		graph:     NewGraph(users, items, lists, listItems),
		auth:      NewAuth(users, userStore, hasher, tokens, lg),
	}
}

func (e *env) signup(t *testing.T, email string) model.User {
	t.Helper()
	res, err := e.auth.Signup(context.Background(), model.CreateUserParams{
		Email:    email,
		FullName: "Test User",
		Password: "secret123",
	})
	require.NoError(t, err)
	return res.User
}

func (e *env) admin(t *testing.T, email string) model.User {
	t.Helper()
	u, err := e.users.Create(context.Background(), model.CreateUserParams{
		Email:    email,
		FullName: "Admin",
		Password: "secret123",
		Roles:    []model.Role{model.RoleAdmin},
	})
	require.NoError(t, err)
	return u
}

func requireCode(t *testing.T, err error, code apperrors.Code) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, apperrors.GetCode(err), "unexpected error: %v", err)
}

func ptr[T any](v T) *T {
	return &v
}
