package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by stores when a row is absent or out of scope.
	ErrNotFound = errors.New("not found")
	// ErrPasswordMismatch is returned when a password does not match its hash.
	ErrPasswordMismatch = errors.New("password mismatch")
	// ErrPasswordTooLong is returned when a password exceeds the hasher's byte limit.
	ErrPasswordTooLong = errors.New("password too long")
)

// DuplicateError reports a unique constraint violation on Field.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate value for %s", e.Field)
}
