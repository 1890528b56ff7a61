package logging

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tsawler/dstv/core"
)

func observed() (*Logger, *observer.ObservedLogs) {
	obs, logs := observer.New(zapcore.DebugLevel)
	return New(zap.New(obs)), logs
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		l, err := NewLogger(Config{Level: "debug", Format: format, OutputPath: "stderr"})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	}

	l, err := NewLogger(Config{Level: "chatty"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestLogWarnings(t *testing.T) {
	l, logs := observed()
	l.WithField("file", "a.nc1").LogWarnings([]core.Warning{
		{Line: 12, Code: "PU", Message: "dropped"},
		{Message: "header has 25 lines"},
	})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)

	first := entries[0].ContextMap()
	assert.Equal(t, "a.nc1", first["file"])
	assert.Equal(t, int64(12), first["line"])
	assert.Equal(t, "PU", first["code"])

	second := entries[1].ContextMap()
	assert.NotContains(t, second, "line")
	assert.NotContains(t, second, "code")
}

func TestLogFailure(t *testing.T) {
	l, logs := observed()
	err := fmt.Errorf("failed to parse header: %w", &core.FieldError{Kind: core.ErrMissingField, Field: "length"})
	l.LogFailure("conversion failed", err)

	entries := logs.FilterMessage("conversion failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "missing_field", entries[0].ContextMap()["kind"])

	l.LogFailure("other", errors.New("plain"))
	assert.Equal(t, "unknown", logs.FilterMessage("other").All()[0].ContextMap()["kind"])
}
