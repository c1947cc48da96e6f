// Package logger builds the structured logger shared by every command.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvVarLogLevel overrides the configured log level when set.
const EnvVarLogLevel = "LOG_LEVEL"

// ResolveLevel returns the level name to log at. verbose forces debug and
// wins over LOG_LEVEL, which in turn wins over the configured level.
func ResolveLevel(configured string, verbose bool) string {
	if verbose {
		return "debug"
	}
	if env := os.Getenv(EnvVarLogLevel); env != "" {
		return env
	}
	return configured
}

// New returns a JSON logger writing to stderr at the given level, tagged with
// the module name and version. Source locations are added at debug level.
func New(module, version, level string) *slog.Logger {
	return NewWithWriter(os.Stderr, module, version, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, module, version, level string) *slog.Logger {
	lev := ParseLevel(level)

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lev,
		AddSource: lev <= slog.LevelDebug,
	})).With("module", module, "version", version)
}

// SetDefault installs New(module, version, level) as the slog default.
func SetDefault(module, version, level string) *slog.Logger {
	l := New(module, version, level)
	slog.SetDefault(l)
	return l
}

// ParseLevel converts "debug", "info", "warn" or "error" to a slog.Level.
// Unrecognised values give slog.LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
