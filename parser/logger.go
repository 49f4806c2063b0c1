package parser

import (
	"context"
	"log/slog"
)

// Logger is the interface that apidrift uses for structured logging.
//
// The interface is minimal yet compatible with popular logging libraries
// including log/slog, zap, and zerolog. It uses variadic key-value pairs for
// structured attributes, following the same convention as log/slog:
//
//	logger.Debug("resolved reference", "ref", "#/components/schemas/Pet", "depth", 3)
//
// Use [NewSlogAdapter] to wrap a standard library slog.Logger, or implement
// the four methods over the logger of your choice.
type Logger interface {
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)
}

// NewSlogAdapter wraps a slog.Logger in the Logger interface. A nil logger
// wraps slog.Default().
func NewSlogAdapter(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogAdapter{logger: logger}
}

type slogAdapter struct {
	logger *slog.Logger
}

func (a *slogAdapter) Debug(msg string, attrs ...any) {
	a.logger.Log(context.Background(), slog.LevelDebug, msg, attrs...)
}

func (a *slogAdapter) Info(msg string, attrs ...any) {
	a.logger.Log(context.Background(), slog.LevelInfo, msg, attrs...)
}

func (a *slogAdapter) Warn(msg string, attrs ...any) {
	a.logger.Log(context.Background(), slog.LevelWarn, msg, attrs...)
}

func (a *slogAdapter) Error(msg string, attrs ...any) {
	a.logger.Log(context.Background(), slog.LevelError, msg, attrs...)
}

// NopLogger returns a Logger that discards everything.
func NopLogger() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
