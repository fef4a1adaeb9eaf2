// Package logging builds the diagnostic logger shared by GraphDrawer commands.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Config controls logger construction.
type Config struct {
	// Debug lowers the level to debug and records the call site.
	Debug bool

	// Quiet discards every record. It wins over Debug.
	Quiet bool

	// JSON selects the JSON handler instead of text.
	JSON bool

	// Writer receives log records. Defaults to stderr.
	Writer io.Writer
}

// New creates a logger for the given configuration.
func New(cfg Config) *slog.Logger {
	if cfg.Quiet {
		return Discard()
	}

	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: utcTime,
	}
	if cfg.Debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}

	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339))
	}
	return a
}
