package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notesapi/internal/config"
	"notesapi/internal/database"
	"notesapi/internal/database/migration"
	"notesapi/internal/http/middleware"
	"notesapi/internal/model"
	"notesapi/internal/repository/sqlite"
	"notesapi/internal/service"
)

// newNotesApp wires the real stack over an in-memory SQLite store.
func newNotesApp(t *testing.T) (*fiber.App, *sql.DB) {
	t.Helper()
	db, err := database.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migration.EnsureMigrated(context.Background(), db, config.DriverSQLite, zerolog.Nop()))

	svc := service.NewNoteService(sqlite.NewNoteSQLite(db))
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zerolog.Nop())})
	app.Use(middleware.RequestID())
	RegisterRoutes(app, db, svc, zerolog.Nop())
	return app, db
}

func countNotes(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&n))
	return n
}

func listNotes(t *testing.T, app *fiber.App) []model.Note {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/notes", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var notes []model.Note
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&notes))
	return notes
}

func TestNotesAPI_EmptyStore(t *testing.T) {
	app, _ := newNotesApp(t)

	notes := listNotes(t, app)

	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestNotesAPI_CreateThenList(t *testing.T) {
	app, _ := newNotesApp(t)

	resp, err := app.Test(newJSONRequest(http.MethodPost, "/notes", `{"title":"Shopping","content":"Buy milk"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created model.Note
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Shopping", created.Title)
	assert.Equal(t, "Buy milk", created.Content)
	assert.False(t, created.CreatedAt.IsZero())
	assert.True(t, created.UpdatedAt.Equal(created.CreatedAt))

	notes := listNotes(t, app)
	require.Len(t, notes, 1)
	assert.Equal(t, created.ID, notes[0].ID)
	assert.Equal(t, "Shopping", notes[0].Title)
	assert.Equal(t, "Buy milk", notes[0].Content)
}

func TestNotesAPI_NewestFirst(t *testing.T) {
	app, _ := newNotesApp(t)

	var ids []int64
	for _, body := range []string{
		`{"title":"first","content":"one"}`,
		`{"title":"second","content":"two"}`,
	} {
		resp, err := app.Test(newJSONRequest(http.MethodPost, "/notes", body))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var n model.Note
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&n))
		ids = append(ids, n.ID)
	}
	assert.Greater(t, ids[1], ids[0])

	notes := listNotes(t, app)
	require.Len(t, notes, 2)
	assert.Equal(t, "second", notes[0].Title)
	assert.Equal(t, "first", notes[1].Title)
}

func TestNotesAPI_ValidationDoesNotPersist(t *testing.T) {
	app, db := newNotesApp(t)

	for _, body := range []string{
		`{"content":"Buy milk"}`,
		`{"title":"","content":"Buy milk"}`,
		`{"title":"Shopping"}`,
		`{"title":"Shopping","content":"  "}`,
	} {
		resp, err := app.Test(newJSONRequest(http.MethodPost, "/notes", body))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, body)
	}

	assert.Equal(t, 0, countNotes(t, db))
}

func TestNotesAPI_StoreFailure(t *testing.T) {
	app, db := newNotesApp(t)
	require.NoError(t, db.Close())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/notes", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, err = app.Test(newJSONRequest(http.MethodPost, "/notes", `{"title":"a","content":"b"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
