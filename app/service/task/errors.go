package task

import (
	"errors"
	"fmt"

	"organizer/domain/task"
)

var (
	ErrNotFound        = task.ErrNotFound
	ErrInvalidArgument = errors.New("invalid argument")
)

// ValidationError names the field that broke a rule. It matches
// ErrInvalidArgument with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
