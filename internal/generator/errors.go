package generator

import (
	"errors"
	"fmt"
)

// ErrNoContentAvailable matches every NoContentError via errors.Is.
var ErrNoContentAvailable = errors.New("no catalog content available")

// ErrMissingUserID is returned when Generate is called without a principal.
var ErrMissingUserID = errors.New("user ID is required")

// ContentKind names the catalog collection that came back empty.
type ContentKind string

const (
	ContentExercises ContentKind = "exercises"
	ContentRecipes   ContentKind = "recipes"
)

// NoContentError means both the filtered and the fallback catalog reads produced nothing usable.
// Err carries any read failures seen along the way.
type NoContentError struct {
	Kind ContentKind
	Err  error
}

func (e *NoContentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no %s available: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("no %s available", e.Kind)
}

func (e *NoContentError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrNoContentAvailable}
	}
	return []error{ErrNoContentAvailable, e.Err}
}

// PersistenceError wraps a failed program write. The assembled program was discarded.
type PersistenceError struct {
	UserID string
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("saving program for user %s: %v", e.UserID, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
