// Package apperr defines the error kinds shared between layers.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by single-record lookups when no row matches.
var ErrNotFound = errors.New("not found")

// ValidationError reports caller-supplied data that failed the request rules.
// Fields maps the JSON field name to a human-readable reason.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// StorageError wraps a failure of the underlying store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a *StorageError for the given operation. A nil err stays nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// IsStorage reports whether err is, or wraps, a *StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
