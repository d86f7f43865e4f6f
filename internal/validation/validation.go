// Package validation defines the error type surfaced for rejected input
// across the accounting core and the web services. Validation failures are
// returned to the caller immediately and never retried; a failed validation
// leaves all state unchanged.
package validation

import (
	"errors"
	"fmt"
)

// Error describes a single rejected input field.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Reason
	}

	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Errorf builds an *Error for the given field.
func Errorf(field, format string, args ...any) *Error {
	return &Error{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a validation error.
func Is(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}
