package logutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, closer, err := New("loud", "")
	require.Error(t, err)
	require.NotNil(t, closer)
}

func TestNew_WritesJSONToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "factprobe.log")

	logger, closer, err := New("debug", file)
	require.NoError(t, err)

	logger.Debug().Str("fact", "php_fact_extension_dir").Msg("resolved")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "resolved", entry["message"])
	assert.Equal(t, "php_fact_extension_dir", entry["fact"])
	assert.Contains(t, entry, "time")
}

func TestNew_AppliesLevel(t *testing.T) {
	file := filepath.Join(t.TempDir(), "factprobe.log")

	logger, closer, err := New("warn", file)
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger.Info().Msg("dropped")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Empty(t, data)
}
