package sqlite

import (
	"context"
	"database/sql"
	"time"

	"notesapi/internal/apperr"
	"notesapi/internal/model"
	"notesapi/internal/repository"
)

// NoteSQLite is a SQLite implementation of repository.NoteRepository.
// SQLite has no server-side clock default we can scan back as time.Time,
// so timestamps are assigned here in UTC.
type NoteSQLite struct {
	db  *sql.DB
	now func() time.Time
}

// NewNoteSQLite creates a new NoteSQLite repository.
func NewNoteSQLite(db *sql.DB) *NoteSQLite {
	return &NoteSQLite{db: db, now: time.Now}
}

var _ repository.NoteRepository = (*NoteSQLite)(nil)

// GetAll returns all notes ordered newest first.
func (r *NoteSQLite) GetAll(ctx context.Context) ([]model.Note, error) {
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

// Create inserts a new note and reads the stored row back within one transaction.
func (r *NoteSQLite) Create(ctx context.Context, in model.NewNote) (*model.Note, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperr.Storage("create note", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := r.now().UTC()
	res, err := tx.ExecContext(ctx,
		`INSERT INTO notes (title, content, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		in.Title, in.Content, now, now,
	)
	if err != nil {
		return nil, apperr.Storage("create note", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, apperr.Storage("create note", err)
	}

	var out model.Note
	if err := tx.QueryRowContext(ctx,
		`SELECT id, title, content, created_at, updated_at FROM notes WHERE id = ?`, id,
	).Scan(&out.ID, &out.Title, &out.Content, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, apperr.Storage("create note", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, apperr.Storage("create note", err)
	}
	return &out, nil
}
