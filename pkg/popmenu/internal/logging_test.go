package internal

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		"Error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParseLevel(raw), raw)
	}
}

func TestLoggersAreSingletons(t *testing.T) {
	assert.Same(t, GetLogger(), GetLogger())
	assert.Same(t, GetInternalLogger(), GetInternalLogger())

	SetRawLogLevel("error")
	assert.False(t, GetLogger().Enabled(context.Background(), slog.LevelInfo))
	SetRawLogLevel("debug")
	assert.True(t, GetLogger().Enabled(context.Background(), slog.LevelDebug))
}
