package service

import (
	"context"

	"notesapi/internal/model"
	"notesapi/internal/repository"
)

// NoteService defines the use cases for handling notes.
// It is the seam for future business rules (defaulting, enrichment);
// today both operations pass straight through to the repository.
type NoteService interface {
	// GetNotes returns every note, most recently created first.
	GetNotes(ctx context.Context) ([]model.Note, error)

	// CreateNote persists an already validated note.
	CreateNote(ctx context.Context, in model.NewNote) (*model.Note, error)
}

// noteService is a concrete implementation of NoteService.
type noteService struct {
	repo repository.NoteRepository
}

// NewNoteService constructs a new NoteService.
func NewNoteService(repo repository.NoteRepository) NoteService {
	return &noteService{repo: repo}
}

func (s *noteService) GetNotes(ctx context.Context) ([]model.Note, error) {
	return s.repo.GetAll(ctx)
}

func (s *noteService) CreateNote(ctx context.Context, in model.NewNote) (*model.Note, error) {
	return s.repo.Create(ctx, in)
}
