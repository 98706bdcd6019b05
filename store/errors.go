package store

import "errors"

// ErrNotFound is returned when no document matches the identifier.
var ErrNotFound = errors.New("not found")

// ValidationError reports a schema violation with a message safe to show to the
// admin UI. Handlers map it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError reports a unique-constraint violation (duplicate slug or email).
// Handlers map it to 409.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }
