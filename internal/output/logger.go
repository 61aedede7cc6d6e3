/*
PURPOSE:
  Provides a structured logger for smallfiles-bench.
  Wraps slog for consistent output.

REQUIREMENTS:
  User-specified:
  - Dropped rows are reported with the offending value, not silently skipped.

  Implementation-discovered:
  - Needs text output for terminals and JSON for scripted runs.
  - Level selectable from the CLI (--log-level).

ARCHITECTURE INTEGRATION:
  - Used everywhere.
  - Configured by: internal/cli/root.go (PersistentPreRunE)

ERROR HANDLING:
  - Configure returns an error for unknown formats or levels.

USAGE:
  output.Logger.Info("message", "key", "value")
*/

package output

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

func init() {
	Logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *slog.Logger) {
	Logger = l
}

// Configure replaces Logger with a handler of the given format ("text" or
// "json") and minimum level ("debug", "info", "warn", "error") writing to w.
func Configure(w io.Writer, format, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("unknown log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "", "text":
		SetLogger(slog.New(slog.NewTextHandler(w, opts)))
	case "json":
		SetLogger(slog.New(slog.NewJSONHandler(w, opts)))
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}
