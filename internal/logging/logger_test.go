package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/multicaret/internal/config"
)

func TestNewDiscardsWithoutFile(t *testing.T) {
	log, closer, err := New(config.LogConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multicaret.log")
	log, closer, err := New(config.LogConfig{Level: "warn", Format: "json", File: path})
	require.NoError(t, err)

	log.Info().Msg("dropped")
	log.Warn().Str("op", "insert").Msg("kept")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "insert", entry["op"])
	assert.Contains(t, entry, "time")
}

func TestNewConsoleFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.log")
	log, closer, err := New(config.LogConfig{Level: "info", Format: "console", File: path})
	require.NoError(t, err)

	log.Info().Msg("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INF")
	assert.Contains(t, string(data), "hello")
}

func TestNewBadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "loud", File: Stderr})
	assert.Error(t, err)
}

func TestNewBadFile(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "info", File: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	ctx := WithComponent(WithContext(context.Background(), base), "host")
	FromContext(ctx).Info().Msg("hi")

	assert.Contains(t, buf.String(), `"component":"host"`)

	// No logger attached yields a disabled logger.
	assert.Equal(t, zerolog.Disabled, FromContext(context.Background()).GetLevel())
}
