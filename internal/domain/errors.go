package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that a referenced entity does not exist or is not
	// owned by the caller.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates that a uniqueness constraint would be violated.
	ErrConflict = errors.New("already exists")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Invalid returns a *ValidationError with a formatted message.
func Invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
