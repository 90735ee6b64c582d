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

func TestAuth_Signup(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	user := model.User{ID: uuid.New(), Email: "ann@example.com", Roles: []model.Role{model.RoleUser}, IsActive: true}

	svc.On("Signup", mock.Anything, model.CreateUserParams{
		Email:    "ann@example.com",
		FullName: "Ann",
		Password: "secret1",
	}).Return(model.AuthResult{Token: "tok", User: user}, nil)

	h := NewAuth(svc, grpcctx.NewManager(), testutil.MakeNoopLogger())
	out, err := h.Signup(context.Background(), &pb.SignupRequest{Email: "ann@example.com", FullName: "Ann", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "tok", out.Token)
	assert.Equal(t, user.ID.String(), out.User.ID)
	assert.Equal(t, []string{"user"}, out.User.Roles)
}

func TestAuth_Signup_Duplicate(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("Signup", mock.Anything, mock.Anything).Return(model.AuthResult{}, apperrors.NewErrDuplicateField("email"))

	h := NewAuth(svc, grpcctx.NewManager(), testutil.MakeNoopLogger())
	out, err := h.Signup(context.Background(), &pb.SignupRequest{Email: "a@b.c", FullName: "A", Password: "secret1"})
	assert.Nil(t, out)
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode codes.Code
	}{
		{name: "ok", wantCode: codes.OK},
		{name: "bad credentials", err: apperrors.NewErrInvalidCredentials(), wantCode: codes.Unauthenticated},
		{name: "inactive", err: apperrors.NewErrInactiveUser(), wantCode: codes.Unauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAuthService(t)
			result := model.AuthResult{}
			if tt.err == nil {
				result = model.AuthResult{Token: "tok", User: model.User{ID: uuid.New()}}
			}
			svc.On("Login", mock.Anything, "ann@example.com", "secret1").Return(result, tt.err)

			h := NewAuth(svc, grpcctx.NewManager(), testutil.MakeNoopLogger())
			out, err := h.Login(context.Background(), &pb.LoginRequest{Email: "ann@example.com", Password: "secret1"})
			assert.Equal(t, tt.wantCode, status.Code(err))
			if tt.err == nil {
				assert.Equal(t, "tok", out.Token)
			} else {
				assert.Nil(t, out)
			}
		})
	}
}

func TestAuth_Revalidate(t *testing.T) {
	t.Parallel()

	cm := grpcctx.NewManager()
	user := model.User{ID: uuid.New(), IsActive: true}

	svc := mocks.NewAuthService(t)
	svc.On("Revalidate", mock.Anything, user).Return(model.AuthResult{Token: "fresh", User: user}, nil)

	h := NewAuth(svc, cm, testutil.MakeNoopLogger())
	out, err := h.Revalidate(cm.SetUserToContext(context.Background(), user), &pb.RevalidateRequest{})
	require.NoError(t, err)
	assert.Equal(t, "fresh", out.Token)
}

func TestAuth_Revalidate_Unauthenticated(t *testing.T) {
	t.Parallel()

	h := NewAuth(mocks.NewAuthService(t), grpcctx.NewManager(), testutil.MakeNoopLogger())
	out, err := h.Revalidate(context.Background(), &pb.RevalidateRequest{})
	assert.Nil(t, out)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
