// internal/util/logger.go
package util

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

var logger *slog.Logger

// Log formats accepted by InitLogger.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// InitLogger initializes the global structured logger.
// "json" produces machine-readable logs, "text" a colored console handler.
func InitLogger(level, format string) *slog.Logger {
	logger = NewLogger(os.Stdout, level, format)
	slog.SetDefault(logger)
	return logger
}

// NewLogger builds a logger writing to w without touching the global default.
func NewLogger(w io.Writer, level, format string) *slog.Logger {
	lvl := ParseLevel(level)
	var handler slog.Handler
	if strings.EqualFold(format, LogFormatText) {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			AddSource:  true,
			TimeFormat: time.DateTime,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     lvl,
		})
	}
	return slog.New(handler)
}

// ParseLevel maps a level name to a slog level. Unknown names fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// GetLogger returns the initialized global logger.
func GetLogger() *slog.Logger {
	if logger == nil {
		InitLogger("info", LogFormatJSON) // Should be called explicitly at app start
	}
	return logger
}
