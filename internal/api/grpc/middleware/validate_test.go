package middleware

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/dtroode/listkeeper-server/internal/api/grpc/listkeeperpb"
)

func TestValidate_HandleGRPC(t *testing.T) {
	t.Parallel()

	bad := "nope"

	tests := []struct {
		name    string
		req     any
		wantMsg string
	}{
		{name: "valid signup", req: &pb.SignupRequest{Email: "ann@example.com", FullName: "Ann", Password: "secret1"}},
		{
			name:    "bad email",
			req:     &pb.SignupRequest{Email: "ann", FullName: "Ann", Password: "secret1"},
			wantMsg: "invalid email: must be a valid email",
		},
		{
			name:    "short password",
			req:     &pb.SignupRequest{Email: "ann@example.com", FullName: "Ann", Password: "123"},
			wantMsg: "invalid password: must be at least 6 long",
		},
		{
			name:    "missing full name",
			req:     &pb.SignupRequest{Email: "ann@example.com", Password: "secret1"},
			wantMsg: "invalid full_name: is required",
		},
		{
			name:    "unknown role",
			req:     &pb.ListUsersRequest{Roles: []string{"root"}},
			wantMsg: "invalid roles[0]: must be one of [user admin superUser]",
		},
		{
			name:    "non-positive item quantity",
			req:     &pb.CreateItemRequest{Name: "Flour", Quantity: 0},
			wantMsg: "invalid quantity: must be greater than 0",
		},
		{
			name:    "bad optional uuid",
			req:     &pb.UpdateListItemRequest{ID: uuid.NewString(), ListID: &bad},
			wantMsg: "invalid list_id: must be a valid uuid",
		},
		{name: "empty request", req: &pb.RevalidateRequest{}},
		{name: "non-struct passes", req: "raw"},
	}

	v := NewValidate()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := func(ctx context.Context, req any) (any, error) {
				return "ok", nil
			}
			resp, err := v.HandleGRPC(context.Background(), tt.req, &grpc.UnaryServerInfo{}, handler)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				assert.Equal(t, "ok", resp)
				return
			}
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
			assert.Equal(t, tt.wantMsg, status.Convert(err).Message())
		})
	}
}
