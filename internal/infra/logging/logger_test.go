package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_Info(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gary.log")
	logger := New(path, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info(1, "task", "test message")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO]")
	assert.Contains(t, string(content), "[task-1]")
	assert.Contains(t, string(content), "[task]")
	assert.Contains(t, string(content), "test message")
}

func TestLogger_GlobalEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gary.log")
	logger := New(path, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Warn(0, "recurring", "template missing")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[WARN]")
	assert.Contains(t, string(content), "[global]")
	assert.Contains(t, string(content), "[recurring]")
}

func TestLogger_LevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gary.log")
	logger := New(path, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Debug(0, "task", "dropped debug")
	logger.Info(0, "task", "dropped info")
	logger.Error(2, "task", "kept error")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "dropped debug")
	assert.NotContains(t, string(content), "dropped info")
	assert.Contains(t, string(content), "kept error")
}

func TestLogger_DisabledWhenPathEmpty(t *testing.T) {
	logger := New("", slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Must not panic or create anything.
	logger.Info(1, "task", "ignored")
}

func TestLogger_AppendsAcrossEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gary.log")
	logger := New(path, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info(0, "task", "first")
	logger.Info(0, "task", "second")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Len(t, lines, 2)
}
