package handler

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	grpcctx "github.com/dtroode/listkeeper-server/internal/api/grpc/context"
	pb "github.com/dtroode/listkeeper-server/internal/api/grpc/listkeeperpb"
	"github.com/dtroode/listkeeper-server/internal/apperrors"
	"github.com/dtroode/listkeeper-server/internal/mocks"
	"github.com/dtroode/listkeeper-server/internal/model"
	"github.com/dtroode/listkeeper-server/internal/testutil"
)

func adminContext(cm *grpcctx.Manager) (context.Context, model.User) {
	admin := model.User{ID: uuid.New(), Roles: []model.Role{model.RoleAdmin}, IsActive: true}
	return cm.SetUserToContext(context.Background(), admin), admin
}

func TestUser_ListUsers(t *testing.T) {
	t.Parallel()

	cm := grpcctx.NewManager()
	ctx, _ := adminContext(cm)
	users := mocks.NewUserService(t)
	users.On("FindAll", mock.Anything, []model.Role{model.RoleAdmin}, model.Pagination{Limit: 5, Offset: 10}).
		Return([]model.User{{ID: uuid.New(), Roles: []model.Role{model.RoleAdmin}}}, nil)

	h := NewUser(users, mocks.NewGraphService(t), cm, testutil.MakeNoopLogger())
	out, err := h.ListUsers(ctx, &pb.ListUsersRequest{
		Roles: []string{"admin"},
		Page:  &pb.PageRequest{Limit: 5, Offset: 10},
	})
	require.NoError(t, err)
	assert.Len(t, out.Users, 1)
}

func TestUser_ListUsers_NoRolesMeansEveryone(t *testing.T) {
	t.Parallel()

	cm := grpcctx.NewManager()
	ctx, _ := adminContext(cm)
	users := mocks.NewUserService(t)
	users.On("FindAll", mock.Anything, []model.Role(nil), model.Pagination{}).Return([]model.User{}, nil)

	h := NewUser(users, mocks.NewGraphService(t), cm, testutil.MakeNoopLogger())
	out, err := h.ListUsers(ctx, &pb.ListUsersRequest{})
	require.NoError(t, err)
	assert.Empty(t, out.Users)
}

func TestUser_ListUsers_RejectsSearch(t *testing.T) {
	t.Parallel()

	cm := grpcctx.NewManager()
	ctx, _ := adminContext(cm)

	h := NewUser(mocks.NewUserService(t), mocks.NewGraphService(t), cm, testutil.MakeNoopLogger())
	_, err := h.ListUsers(ctx, &pb.ListUsersRequest{Page: &pb.PageRequest{Limit: 5, Search: "ann"}})
	require.Error(t, err)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Contains(t, st.Message(), "page.search")
}

func TestUser_GetUser(t *testing.T) {
	t.Parallel()

	cm := grpcctx.NewManager()
	ctx, _ := adminContext(cm)
	target := model.User{ID: uuid.New(), Email: "bob@example.com"}
	list := model.List{ID: uuid.New(), OwnerID: target.ID, Name: "groceries"}

	graph := mocks.NewGraphService(t)
	graph.On("User", mock.Anything, target.ID, model.UserGraphQuery{
		Lists: &model.Page{Pagination: model.Pagination{Limit: 3}},
	}).Return(model.UserGraph{
		User:      target,
		ItemCount: 4,
		ListCount: 1,
		Lists:     []model.ListGraph{{List: list, TotalItems: 2}},
	}, nil)

	h := NewUser(mocks.NewUserService(t), graph, cm, testutil.MakeNoopLogger())
	out, err := h.GetUser(ctx, &pb.GetUserRequest{ID: target.ID.String(), Lists: &pb.PageRequest{Limit: 3}})
	require.NoError(t, err)
	assert.Equal(t, 4, *out.ItemCount)
	assert.Equal(t, 1, *out.ListCount)
	assert.Nil(t, out.Items)
	require.Len(t, out.Lists, 1)
	assert.Equal(t, 2, *out.Lists[0].TotalItems)
}

func TestUser_GetUser_NotFound(t *testing.T) {
	t.Parallel()

	cm := grpcctx.NewManager()
	ctx, _ := adminContext(cm)
	id := uuid.New()
	graph := mocks.NewGraphService(t)
	graph.On("User", mock.Anything, id, model.UserGraphQuery{}).Return(model.UserGraph{}, apperrors.NewErrUserNotFound(id.String()))

	h := NewUser(mocks.NewUserService(t), graph, cm, testutil.MakeNoopLogger())
	_, err := h.GetUser(ctx, &pb.GetUserRequest{ID: id.String()})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestUser_UpdateUser(t *testing.T) {
	t.Parallel()

	cm := grpcctx.NewManager()
	ctx, admin := adminContext(cm)
	id := uuid.New()
	name := "Robert"
	active := false

	users := mocks.NewUserService(t)
	users.On("Update", mock.Anything, model.UpdateUserParams{
		ID:       id,
		FullName: &name,
		Roles:    []model.Role{model.RoleSuperUser},
		IsActive: &active,
	}, admin).Return(model.User{ID: id, FullName: name, LastUpdateBy: &admin.ID}, nil)

	h := NewUser(users, mocks.NewGraphService(t), cm, testutil.MakeNoopLogger())
	out, err := h.UpdateUser(ctx, &pb.UpdateUserRequest{
		ID:       id.String(),
		FullName: &name,
		Roles:    []string{"superUser"},
		IsActive: &active,
	})
	require.NoError(t, err)
	assert.Equal(t, admin.ID.String(), out.LastUpdateBy)
}

func TestUser_BlockUser(t *testing.T) {
	t.Parallel()

	cm := grpcctx.NewManager()
	ctx, admin := adminContext(cm)
	id := uuid.New()

	users := mocks.NewUserService(t)
	users.On("Block", mock.Anything, id, admin).Return(model.User{ID: id, IsActive: false, LastUpdateBy: &admin.ID}, nil)

	h := NewUser(users, mocks.NewGraphService(t), cm, testutil.MakeNoopLogger())
	out, err := h.BlockUser(ctx, &pb.IDRequest{ID: id.String()})
	require.NoError(t, err)
	assert.False(t, out.IsActive)
}

func TestUser_BlockUser_Unauthenticated(t *testing.T) {
	t.Parallel()

	h := NewUser(mocks.NewUserService(t), mocks.NewGraphService(t), grpcctx.NewManager(), testutil.MakeNoopLogger())
	_, err := h.BlockUser(context.Background(), &pb.IDRequest{ID: uuid.NewString()})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
