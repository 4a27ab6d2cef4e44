package log

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelTrace, ParseLevel("trace"))
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}

func TestSplit(t *testing.T) {
	var low, high bytes.Buffer
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	logger := slog.New(split{
		low:  slog.NewTextHandler(&low, opts),
		high: slog.NewTextHandler(&high, opts),
		at:   slog.LevelError,
	}).With("window", 1)

	logger.Debug("moved")
	logger.Error("failed")

	assert.Contains(t, low.String(), "msg=moved")
	assert.Contains(t, low.String(), "window=1")
	assert.NotContains(t, low.String(), "failed")
	assert.Contains(t, high.String(), "msg=failed")
	assert.False(t, logger.Handler().Enabled(context.Background(), LevelTrace))
}

func TestSetupLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.log")

	logger, closers, err := SetupLogger("debug", path)
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.Debug("hello", "x", 3)
	require.NoError(t, closers[0].Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello x=3")
}

func TestSetupLoggerBadFile(t *testing.T) {
	_, _, err := SetupLogger("info", filepath.Join(t.TempDir(), "missing", "input.log"))
	assert.Error(t, err)
}
