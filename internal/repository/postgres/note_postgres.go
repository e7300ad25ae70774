package postgres

import (
	"context"
	"database/sql"

	"notesapi/internal/apperr"
	"notesapi/internal/model"
	"notesapi/internal/repository"
)

// NotePostgres is a PostgreSQL implementation of repository.NoteRepository.
// It uses database/sql with parameterized queries and contains no business logic.
// IDs come from the BIGSERIAL sequence and timestamps from the column defaults.
type NotePostgres struct {
	db *sql.DB
}

// NewNotePostgres creates a new NotePostgres repository.
func NewNotePostgres(db *sql.DB) *NotePostgres {
	return &NotePostgres{db: db}
}

var _ repository.NoteRepository = (*NotePostgres)(nil)

// GetAll returns all notes ordered newest first.
func (r *NotePostgres) GetAll(ctx context.Context) ([]model.Note, error) {
	const q = `
		SELECT id, title, content, created_at, updated_at
		FROM notes
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, apperr.Storage("list notes", err)
	}
	defer rows.Close()

	items := make([]model.Note, 0)
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, apperr.Storage("list notes", err)
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list notes", err)
	}
	return items, nil
}

// Create inserts a new note row and returns the stored record.
func (r *NotePostgres) Create(ctx context.Context, in model.NewNote) (*model.Note, error) {
	const q = `
		INSERT INTO notes (title, content)
		VALUES ($1, $2)
		RETURNING id, title, content, created_at, updated_at
	`
	var out model.Note
	if err := r.db.QueryRowContext(ctx, q, in.Title, in.Content).Scan(
		&out.ID,
		&out.Title,
		&out.Content,
		&out.CreatedAt,
		&out.UpdatedAt,
	); err != nil {
		return nil, apperr.Storage("create note", err)
	}
	return &out, nil
}
