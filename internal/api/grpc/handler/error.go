package handler

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/listkeeper-server/internal/apperrors"
	"github.com/dtroode/listkeeper-server/internal/model"
)

// handleError converts service errors into gRPC statuses. Only API errors
// reach the caller verbatim, anything else is reported as an internal fault.
func handleError(err error) error {
	if _, ok := status.FromError(err); ok && !isAPIError(err) {
		return err
	}

	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) {
		return status.Error(apiErr.GRPCCode, apiErr.Message)
	}

	if errors.Is(err, model.ErrNotFound) {
		return status.Error(codes.NotFound, "not found")
	}

	return status.Error(codes.Internal, "please check server logs")
}

func isAPIError(err error) bool {
	var apiErr *apperrors.APIError
	return errors.As(err, &apiErr)
}

func currentUser(ctx context.Context, cm model.ContextManager) (model.User, error) {
	user, ok := cm.GetUserFromContext(ctx)
	if !ok {
		return model.User{}, handleError(apperrors.NewErrMissingAuthorizationToken())
	}
	return user, nil
}

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, handleError(apperrors.NewErrInvalidArgument(field, "must be a valid uuid"))
	}
	return id, nil
}

func parseOptionalID(field string, value *string) (*uuid.UUID, error) {
	if value == nil {
		return nil, nil
	}
	id, err := parseID(field, *value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
