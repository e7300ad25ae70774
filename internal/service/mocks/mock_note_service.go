package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"notesapi/internal/model"
	"notesapi/internal/service"
)

type MockNoteService struct {
	mock.Mock
}

var _ service.NoteService = (*MockNoteService)(nil)

func (m *MockNoteService) GetNotes(ctx context.Context) ([]model.Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *MockNoteService) CreateNote(ctx context.Context, in model.NewNote) (*model.Note, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}
