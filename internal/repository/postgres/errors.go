package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/listkeeper-server/internal/model"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// constraintFields maps constraint names to the input field they guard.
var constraintFields = map[string]string{
	"users_email_key": "email",
}

// translateError maps driver errors to model errors and leaves others untouched.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return &model.DuplicateError{Field: constraintField(pgErr.TableName, pgErr.ConstraintName)}
		case foreignKeyViolation:
			return model.ErrNotFound
		}
	}

	return err
}

// constraintField derives a field name from a unique constraint such as "users_email_key".
func constraintField(table, constraint string) string {
	if field, ok := constraintFields[constraint]; ok {
		return field
	}
	field := strings.TrimSuffix(constraint, "_key")
	if table != "" {
		field = strings.TrimPrefix(field, table+"_")
	}
	if field == "" {
		return "value"
	}
	return field
}
