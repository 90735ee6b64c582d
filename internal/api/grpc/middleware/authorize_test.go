package middleware

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	grpcctx "github.com/dtroode/listkeeper-server/internal/api/grpc/context"
	"github.com/dtroode/listkeeper-server/internal/model"
	"github.com/dtroode/listkeeper-server/internal/testutil"
)

func TestAuthorize_HandleGRPC(t *testing.T) {
	t.Parallel()

	const adminMethod = "/listkeeper.Users/ListUsers"
	policy := Policy{adminMethod: {model.RoleAdmin, model.RoleSuperUser}}

	tests := []struct {
		name     string
		method   string
		user     *model.User
		wantCode codes.Code
	}{
		{name: "open method without user", method: "/listkeeper.Auth/Login", wantCode: codes.OK},
		{
			name:     "open method with plain user",
			method:   "/listkeeper.Items/GetItem",
			user:     &model.User{ID: uuid.New(), Roles: []model.Role{model.RoleUser}},
			wantCode: codes.OK,
		},
		{
			name:     "admin allowed",
			method:   adminMethod,
			user:     &model.User{ID: uuid.New(), Roles: []model.Role{model.RoleAdmin}},
			wantCode: codes.OK,
		},
		{
			name:     "super user allowed",
			method:   adminMethod,
			user:     &model.User{ID: uuid.New(), Roles: []model.Role{model.RoleUser, model.RoleSuperUser}},
			wantCode: codes.OK,
		},
		{
			name:     "plain user denied",
			method:   adminMethod,
			user:     &model.User{ID: uuid.New(), Roles: []model.Role{model.RoleUser}},
			wantCode: codes.PermissionDenied,
		},
		{name: "no user on guarded method", method: adminMethod, wantCode: codes.Unauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cm := grpcctx.NewManager()
			m := NewAuthorize(policy, cm, testutil.MakeNoopLogger())

			ctx := context.Background()
			if tt.user != nil {
				ctx = cm.SetUserToContext(ctx, *tt.user)
			}

			called := false
			handler := func(ctx context.Context, req any) (any, error) {
				called = true
				return "ok", nil
			}

			_, err := m.HandleGRPC(ctx, struct{}{}, &grpc.UnaryServerInfo{FullMethod: tt.method}, handler)
			assert.Equal(t, tt.wantCode, status.Code(err))
			assert.Equal(t, tt.wantCode == codes.OK, called)
			if tt.wantCode == codes.PermissionDenied {
				assert.Equal(t, "user needs a valid role: [admin, superUser]", status.Convert(err).Message())
			}
		})
	}
}
