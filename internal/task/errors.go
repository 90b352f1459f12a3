package task

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced task ID does not exist.
// Callers wrap it with the offending ID; match with errors.Is.
var ErrNotFound = errors.New("no such task")

// ValidationError reports user input that was rejected before any
// mutation was applied.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// notFound wraps ErrNotFound with the missing ID.
func notFound(id int) error {
	return fmt.Errorf("%w: %d", ErrNotFound, id)
}
