package logging

import (
	"bytes"
	"log"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestSetLevelFiltersOutput(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		log.SetOutput(os.Stderr)
		level.Set(slog.LevelInfo)
	})

	var buf bytes.Buffer
	InitWriter(&buf)

	require.NoError(t, SetLevel("warn"))
	slog.Info("hidden")
	slog.Warn("shown", "project_id", 42)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "project_id=42")

	require.NoError(t, SetLevel("debug"))
	slog.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")

	assert.Error(t, SetLevel("loud"))
}
