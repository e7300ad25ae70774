package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"notesapi/internal/model"
	"notesapi/internal/repository"
)

type MockNoteRepository struct {
	mock.Mock
}

var _ repository.NoteRepository = (*MockNoteRepository)(nil)

func (m *MockNoteRepository) GetAll(ctx context.Context) ([]model.Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *MockNoteRepository) Create(ctx context.Context, in model.NewNote) (*model.Note, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}
