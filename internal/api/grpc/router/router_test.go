package router

import (
	"context"
	"testing"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	grpcctx "github.com/dtroode/listkeeper-server/internal/api/grpc/context"
	pb "github.com/dtroode/listkeeper-server/internal/api/grpc/listkeeperpb"
	"github.com/dtroode/listkeeper-server/internal/mocks"
	"github.com/dtroode/listkeeper-server/internal/model"
	"github.com/dtroode/listkeeper-server/internal/testutil"
)

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	r := New(Services{
		Auth:      mocks.NewAuthService(t),
		Identity:  mocks.NewIdentityResolver(t),
		Users:     mocks.NewUserService(t),
		Graph:     mocks.NewGraphService(t),
		Items:     mocks.NewItemService(t),
		Lists:     mocks.NewListService(t),
		ListItems: mocks.NewListItemService(t),
	}, grpcctx.NewManager(), testutil.MakeNoopLogger())

	s := r.Register()
	require.NotNil(t, s)

	info := s.GetServiceInfo()
	for _, name := range []string{
		"listkeeper.Auth",
		"listkeeper.Users",
		"listkeeper.Items",
		"listkeeper.Lists",
		"listkeeper.ListItems",
	} {
		assert.Contains(t, info, name)
	}
	assert.Len(t, info["listkeeper.Lists"].Methods, 7)
}

func TestPolicy_GuardsOnlyUsers(t *testing.T) {
	t.Parallel()

	policy := Policy()
	assert.Len(t, policy, 4)
	for method, roles := range policy {
		assert.Contains(t, method, "/listkeeper.Users/")
		assert.ElementsMatch(t, []model.Role{model.RoleAdmin, model.RoleSuperUser}, roles)
	}
}

func TestRequiresAuth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method string
		want   bool
	}{
		{pb.AuthSignup, false},
		{pb.AuthLogin, false},
		{pb.AuthRevalidate, true},
		{pb.ItemsGetItem, true},
		{pb.UsersListUsers, true},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, requiresAuth(context.Background(), interceptors.NewServerCallMeta(tt.method, nil, nil)))
		})
	}
}
