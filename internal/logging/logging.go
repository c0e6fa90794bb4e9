// Package logging configures the process-wide structured logger.
//
// Logs are JSON lines on stderr. The level comes from LOG_LEVEL (debug, info,
// warn/warning, error; default info). Every record carries the service name
// and version.
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
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

// NewStructuredLogger returns a JSON logger writing to w.
func NewStructuredLogger(w io.Writer, service, version, level string) *slog.Logger {
	lvl := ParseLevel(level)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})
	return slog.New(handler).With("service", service, "version", version)
}

// SetDefaultStructuredLogger installs a stderr JSON logger as the slog and
// standard library default. An empty level falls back to LOG_LEVEL.
func SetDefaultStructuredLogger(service, version, level string) *slog.Logger {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	logger := NewStructuredLogger(os.Stderr, service, version, level)
	slog.SetDefault(logger)
	return logger
}

// NewLogLogger adapts slog for libraries that want a *log.Logger, such as
// http.Server.ErrorLog.
func NewLogLogger(logger *slog.Logger, level slog.Level) *log.Logger {
	return slog.NewLogLogger(logger.Handler(), level)
}
