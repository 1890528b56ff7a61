// Package logging provides structured logging for the dstv2svg executable.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tsawler/dstv/core"
)

// Config holds logging configuration
type Config struct {
	Level      string `json:"level"`
	Format     string `json:"format"` // "json" or "console"
	OutputPath string `json:"output_path"`
}

// Logger wraps zap.Logger with helpers for parse diagnostics.
type Logger struct {
	*zap.Logger
}

// NewLogger creates a structured logger. An unknown level falls back to
// info.
func NewLogger(config Config) (*Logger, error) {
	zapConfig := zap.NewProductionConfig()

	level, err := zap.ParseAtomicLevel(config.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapConfig.Level = level

	if config.Format == "console" {
		zapConfig.Encoding = "console"
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		zapConfig.Encoding = "json"
	}
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if config.OutputPath != "" {
		zapConfig.OutputPaths = []string{config.OutputPath}
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{Logger: logger.With(zap.String("service", "dstv2svg"))}, nil
}

// New wraps an existing zap logger.
func New(l *zap.Logger) *Logger {
	return &Logger{Logger: l}
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// WithField adds a field to the logger context
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{Logger: l.Logger.With(zap.Any(key, value))}
}

// LogWarnings logs each parse warning at warn level.
func (l *Logger) LogWarnings(warnings []core.Warning) {
	for _, w := range warnings {
		fields := []zap.Field{zap.String("message", w.Message)}
		if w.Line > 0 {
			fields = append(fields, zap.Int("line", w.Line))
		}
		if w.Code != "" {
			fields = append(fields, zap.String("code", w.Code))
		}
		l.Warn("parse warning", fields...)
	}
}

// LogFailure logs a parse or render failure with its error kind.
func (l *Logger) LogFailure(msg string, err error) {
	l.Error(msg, zap.String("kind", core.Kind(err)), zap.Error(err))
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	return l.Logger.Sync()
}
