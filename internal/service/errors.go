package service

import (
	"errors"

	"github.com/dtroode/listkeeper-server/internal/apperrors"
	"github.com/dtroode/listkeeper-server/internal/logger"
	"github.com/dtroode/listkeeper-server/internal/model"
)

// storeError converts a store failure into an API error. Duplicates name the
// offending field; anything unexpected is logged and hidden behind an internal error.
func storeError(log *logger.Logger, msg string, err error, args ...any) error {
	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var dup *model.DuplicateError
	if errors.As(err, &dup) {
		return apperrors.NewErrDuplicateField(dup.Field)
	}

	// Foreign key violations surface as ErrNotFound when a referenced row
	// vanished between the reference check and the write.
	if errors.Is(err, model.ErrNotFound) {
		return apperrors.NewErrReferenceNotFound()
	}

	log.Error(msg, append(args, "error", err.Error())...)
	return apperrors.NewErrInternalServerError(err)
}

// hashError maps a password hashing failure to an API error.
func hashError(log *logger.Logger, err error, args ...any) error {
	if errors.Is(err, model.ErrPasswordTooLong) {
		return apperrors.NewErrInvalidArgument("password", "must be at most 72 bytes")
	}
	log.Error("User service: failed to hash password", append(args, "error", err.Error())...)
	return apperrors.NewErrInternalServerError(err)
}

// lookupError maps model.ErrNotFound to a NotFound API error for entity.
func lookupError(log *logger.Logger, entity, id string, err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return apperrors.NewErrNotFound(entity, id)
	}
	return storeError(log, "failed to load "+entity, err, "id", id)
}
