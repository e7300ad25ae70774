// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres, sqlite) inside this directory.
package repository

import (
	"context"

	"notesapi/internal/model"
)

// NoteRepository defines data access for notes. No business logic here,
// strictly persistence operations. Failures of the store are returned as *apperr.StorageError.
type NoteRepository interface {
	// GetAll returns every note, most recently created first.
	// An empty store yields an empty, non-nil slice.
	GetAll(ctx context.Context) ([]model.Note, error)

	// Create persists a new note and returns it with the store-assigned ID and timestamps.
	Create(ctx context.Context, in model.NewNote) (*model.Note, error)
}
