// Package apperrors defines the errors surfaced to API callers.
package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeInvalidToken       Code = "INVALID_TOKEN"
	CodeUnauthorized       Code = "UNAUTHORIZED"
	CodeForbidden          Code = "FORBIDDEN"
	CodeNotFound           Code = "NOT_FOUND"
	CodeDuplicateField     Code = "DUPLICATE_FIELD"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeInternal           Code = "INTERNAL"
)

// APIError is an error that is safe to return to a caller.
type APIError struct {
	Code     Code
	GRPCCode codes.Code
	Message  string
	// Field names the offending input field, if any.
	Field string
	// Err is the underlying cause. It is logged, never returned to callers.
	Err error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewErrMissingAuthorizationToken is returned when a call carries no bearer token.
func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{Code: CodeUnauthorized, GRPCCode: codes.Unauthenticated, Message: "missing authorization token"}
}

// NewErrInvalidAuthorizationToken is returned for malformed, forged or expired tokens.
func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{Code: CodeInvalidToken, GRPCCode: codes.Unauthenticated, Message: "invalid authorization token"}
}

// NewErrInactiveUser is returned when a blocked user presents a token.
func NewErrInactiveUser() *APIError {
	return &APIError{Code: CodeUnauthorized, GRPCCode: codes.Unauthenticated, Message: "user is inactive, talk with an admin"}
}

// NewErrForbidden is returned when the caller lacks every required role.
func NewErrForbidden(required []string) *APIError {
	return &APIError{
		Code:     CodeForbidden,
		GRPCCode: codes.PermissionDenied,
		Message:  fmt.Sprintf("user needs a valid role: [%s]", strings.Join(required, ", ")),
	}
}

// NewErrNotFound is returned when an entity is absent or owned by someone else.
func NewErrNotFound(entity string, id string) *APIError {
	return &APIError{
		Code:     CodeNotFound,
		GRPCCode: codes.NotFound,
		Message:  fmt.Sprintf("%s with id: %s not found", entity, id),
	}
}

// NewErrReferenceNotFound is returned when a write points at a row that no longer exists.
func NewErrReferenceNotFound() *APIError {
	return &APIError{
		Code:     CodeNotFound,
		GRPCCode: codes.NotFound,
		Message:  "referenced resource not found",
	}
}

// NewErrUserNotFound is returned when a user lookup by id or email fails.
func NewErrUserNotFound(key string) *APIError {
	return &APIError{Code: CodeNotFound, GRPCCode: codes.NotFound, Message: fmt.Sprintf("user %s not found", key)}
}

// NewErrDuplicateField is returned on a unique constraint violation.
func NewErrDuplicateField(field string) *APIError {
	return &APIError{
		Code:     CodeDuplicateField,
		GRPCCode: codes.AlreadyExists,
		Message:  fmt.Sprintf("%s already exists", field),
		Field:    field,
	}
}

// NewErrInvalidCredentials is returned on a failed login.
func NewErrInvalidCredentials() *APIError {
	return &APIError{Code: CodeInvalidCredentials, GRPCCode: codes.Unauthenticated, Message: "email/password do not match"}
}

// NewErrInvalidArgument is returned for malformed input.
func NewErrInvalidArgument(field, reason string) *APIError {
	return &APIError{
		Code:     CodeInvalidArgument,
		GRPCCode: codes.InvalidArgument,
		Message:  fmt.Sprintf("invalid %s: %s", field, reason),
		Field:    field,
	}
}

// NewErrInternalServerError wraps an unexpected fault behind a generic message.
func NewErrInternalServerError(err error) *APIError {
	return &APIError{Code: CodeInternal, GRPCCode: codes.Internal, Message: "please check server logs", Err: err}
}

// GetCode extracts the code from err, or CodeInternal if err is not an APIError.
func GetCode(err error) Code {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return CodeInternal
}

// IsCode reports whether err carries code.
func IsCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}
