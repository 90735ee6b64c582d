package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *APIError
		wantCode Code
		wantGRPC codes.Code
		wantMsg  string
	}{
		{"missing token", NewErrMissingAuthorizationToken(), CodeUnauthorized, codes.Unauthenticated, "missing authorization token"},
		{"invalid token", NewErrInvalidAuthorizationToken(), CodeInvalidToken, codes.Unauthenticated, "invalid authorization token"},
		{"inactive", NewErrInactiveUser(), CodeUnauthorized, codes.Unauthenticated, "user is inactive, talk with an admin"},
		{"forbidden", NewErrForbidden([]string{"admin", "superUser"}), CodeForbidden, codes.PermissionDenied, "user needs a valid role: [admin, superUser]"},
		{"not found", NewErrNotFound("list", "42"), CodeNotFound, codes.NotFound, "list with id: 42 not found"},
		{"duplicate", NewErrDuplicateField("email"), CodeDuplicateField, codes.AlreadyExists, "email already exists"},
		{"credentials", NewErrInvalidCredentials(), CodeInvalidCredentials, codes.Unauthenticated, "email/password do not match"},
		{"argument", NewErrInvalidArgument("id", "must be a uuid"), CodeInvalidArgument, codes.InvalidArgument, "invalid id: must be a uuid"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantGRPC, tt.err.GRPCCode)
			assert.Equal(t, tt.wantMsg, tt.err.Message)
		})
	}
}

func TestInternalServerError_HidesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("pq: connection refused")
	err := NewErrInternalServerError(cause)

	assert.Equal(t, "please check server logs", err.Message)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIsCode(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("lookup: %w", NewErrNotFound("item", "1"))

	assert.True(t, IsCode(wrapped, CodeNotFound))
	assert.False(t, IsCode(wrapped, CodeForbidden))
	assert.False(t, IsCode(nil, CodeInternal))
	assert.Equal(t, CodeInternal, GetCode(errors.New("boom")))
}
