package middleware

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc"

	"github.com/dtroode/listkeeper-server/internal/apperrors"
)

// Validate checks request messages against their `validate` struct tags.
type Validate struct {
	validate *validator.Validate
}

func NewValidate() *Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return &Validate{validate: v}
}

func (m *Validate) HandleGRPC(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if err := m.Check(req); err != nil {
		return nil, toStatus(err)
	}
	return handler(ctx, req)
}

// Check validates req. Values that are not structs pass unchecked.
func (m *Validate) Check(req any) error {
	err := m.validate.Struct(req)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewErrInvalidArgument(fieldPath(fe.Namespace()), reason(fe))
	}
	return apperrors.NewErrInvalidArgument("request", err.Error())
}

// fieldPath drops the struct name that prefixes a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "uuid":
		return "must be a valid uuid"
	case "min":
		return "must be at least " + fe.Param() + " long"
	case "max":
		return "must be at most " + fe.Param() + " long"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "oneof":
		return "must be one of [" + fe.Param() + "]"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
