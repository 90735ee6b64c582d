package middleware

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/listkeeper-server/internal/apperrors"
)

func toStatus(err error) error {
	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) {
		return status.Error(apiErr.GRPCCode, apiErr.Message)
	}
	return status.Error(codes.Internal, "please check server logs")
}
