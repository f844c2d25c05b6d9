// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"

	"go.trai.ch/metapin/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
}

// New creates a Logger writing to stderr, so stdout only carries the generated paragraph.
func New() ports.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a Logger writing human-readable records to w.
func NewWithWriter(w io.Writer) *Logger {
	return &Logger{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})),
	}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.logger.Warn(msg)
}

// Error logs a failed run together with its error.
func (l *Logger) Error(err error) {
	l.logger.Error("metapin failed", "error", err)
}
