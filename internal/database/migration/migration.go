package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"notesapi/internal/config"
)

type migrationStep struct {
	Name string
	SQL  string
}

var postgresSteps = []migrationStep{
	{
		Name: "create_table_notes",
		SQL: `CREATE TABLE IF NOT EXISTS notes (
  id         BIGSERIAL    PRIMARY KEY,
  title      VARCHAR(255) NOT NULL CHECK (title <> ''),
  content    TEXT         NOT NULL CHECK (content <> ''),
  created_at TIMESTAMPTZ  NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ  NOT NULL DEFAULT now(),
  CHECK (updated_at >= created_at)
);`,
	},
	{
		Name: "create_index_notes_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_notes_created_at ON notes (created_at DESC, id DESC);`,
	},
}

var sqliteSteps = []migrationStep{
	{
		Name: "create_table_notes",
		SQL: `CREATE TABLE IF NOT EXISTS notes (
  id         INTEGER  PRIMARY KEY AUTOINCREMENT,
  title      TEXT     NOT NULL CHECK (length(title) BETWEEN 1 AND 255),
  content    TEXT     NOT NULL CHECK (content <> ''),
  created_at DATETIME NOT NULL,
  updated_at DATETIME NOT NULL,
  CHECK (updated_at >= created_at)
);`,
	},
	{
		Name: "create_index_notes_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_notes_created_at ON notes (created_at DESC, id DESC);`,
	},
}

var sentinelQueries = map[string]string{
	config.DriverPostgres: "SELECT to_regclass('public.notes') IS NOT NULL",
	config.DriverSQLite:   "SELECT EXISTS (SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = 'notes')",
}

func stepsFor(dialect string) ([]migrationStep, string, error) {
	switch dialect {
	case config.DriverPostgres:
		return postgresSteps, sentinelQueries[dialect], nil
	case config.DriverSQLite:
		return sqliteSteps, sentinelQueries[dialect], nil
	default:
		return nil, "", fmt.Errorf("no migrations for dialect %q", dialect)
	}
}

// EnsureMigrated checks if the 'notes' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, dialect string, log zerolog.Logger) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("dialect", dialect).Logger()

	steps, sentinel, err := stepsFor(dialect)
	if err != nil {
		return err
	}

	log.Info().Str("event", "db_migration_check").Str("status", "starting").Send()

	var exists bool
	if err := db.QueryRowContext(ctx, sentinel).Scan(&exists); err != nil {
		log.Error().
			Str("event", "db_migration_failed").
			Str("status", "error").
			Err(err).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	log.Info().Str("event", "db_migration_start").Str("status", "in_progress").Send()

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Err(err).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Send()
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Send()
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Send()

	return nil
}
