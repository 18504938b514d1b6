package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("verbose")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestTerminalLevel(t *testing.T) {
	var terminal bytes.Buffer

	logger, err := New(&terminal, Options{Level: slog.LevelWarn})
	require.NoError(t, err)
	defer logger.Close()

	logger.Info("hidden")
	logger.Warn("shown", "word", "0xfc000000")

	assert.NotContains(t, terminal.String(), "hidden")
	assert.Contains(t, terminal.String(), "shown")
	assert.Contains(t, terminal.String(), "0xfc000000")
}

func TestFileLogging(t *testing.T) {
	var terminal bytes.Buffer
	path := filepath.Join(t.TempDir(), "mipsdis.log")

	logger, err := New(&terminal, Options{Level: slog.LevelError, File: path})
	require.NoError(t, err)

	logger.Debug("debug record", "index", 3)
	logger.Warn("warn record")
	require.NoError(t, logger.Close())

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(contents), `"msg":"debug record"`)
	assert.Contains(t, string(contents), `"index":3`)
	assert.Contains(t, string(contents), `"msg":"warn record"`)
	assert.Empty(t, terminal.String())
}

func TestNewFailsOnInvalidFile(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Options{File: filepath.Join(t.TempDir(), "missing", "mipsdis.log")})
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nothing")
	assert.NoError(t, logger.Close())
}
