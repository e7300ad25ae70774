package handler

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"notesapi/internal/model"
)

// maxTitleLength mirrors the width of the notes.title column.
const maxTitleLength = 255

// CreateNoteRequest is the request body for POST /notes.
type CreateNoteRequest struct {
	Title   string `json:"title" example:"Shopping"`
	Content string `json:"content" example:"Buy milk"`
}

// Normalize trims surrounding whitespace so blank-looking input fails Required.
func (r *CreateNoteRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
}

// Validate applies the create rules. Field errors are keyed by JSON name.
func (r CreateNoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, maxTitleLength)),
		validation.Field(&r.Content, validation.Required),
	)
}

// ToModel converts a validated request into the service input.
func (r CreateNoteRequest) ToModel() model.NewNote {
	return model.NewNote{Title: r.Title, Content: r.Content}
}
