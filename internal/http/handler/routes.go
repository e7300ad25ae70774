package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"notesapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, noteSvc service.NoteService, log zerolog.Logger) {
	// Readiness checks DB connectivity; liveness only reports the process is up.
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/notes", ListNotes(noteSvc, log))
	app.Post("/notes", CreateNote(noteSvc, log))
}
