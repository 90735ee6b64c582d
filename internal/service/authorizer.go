package service

import (
	"github.com/dtroode/listkeeper-server/internal/apperrors"
	"github.com/dtroode/listkeeper-server/internal/model"
)

// Authorize allows user when required is empty or shares at least one role with it.
func Authorize(user model.User, required []model.Role) error {
	if len(required) == 0 || user.HasAnyRole(required...) {
		return nil
	}

	names := make([]string, 0, len(required))
	for _, r := range required {
		names = append(names, string(r))
	}
	return apperrors.NewErrForbidden(names)
}
