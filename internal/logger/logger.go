// Package logger builds the zerolog logger shared by the HTTP layer, migrations and tracing setup.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a JSON logger writing to w at the given level.
// Timestamps are emitted under "ts" in RFC3339Nano, rendered in loc.
// An unknown level falls back to info; a nil writer falls back to stdout.
func New(w io.Writer, level string, loc *time.Location) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}
	if loc == nil {
		loc = time.UTC
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.SyncWriter(w)).Level(lvl).Hook(timestampHook{loc: loc})
}

// timestampHook stamps each event with its own location, leaving zerolog's
// package-level timestamp settings untouched.
type timestampHook struct {
	loc *time.Location
}

func (h timestampHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Str("ts", time.Now().In(h.loc).Format(time.RFC3339Nano))
}
