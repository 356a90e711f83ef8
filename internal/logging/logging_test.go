package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"off", LevelSilent},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFromString(tt.in), "input %q", tt.in)
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, LevelFromVerbosity(0, false))
	assert.Equal(t, slog.LevelInfo, LevelFromVerbosity(1, false))
	assert.Equal(t, slog.LevelDebug, LevelFromVerbosity(2, false))
	assert.Equal(t, slog.LevelDebug, LevelFromVerbosity(5, false))
	assert.Equal(t, LevelSilent, LevelFromVerbosity(2, true))
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, "json")

	logger.Debug("hidden")
	logger.Info("imported model", "faces", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "imported model", record["msg"])
	assert.Equal(t, float64(3), record["faces"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelWarn, "text").Warn("careful", "path", "a.obj")

	assert.Contains(t, buf.String(), "msg=careful")
	assert.Contains(t, buf.String(), "path=a.obj")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
}
