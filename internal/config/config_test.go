package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 3, cfg.MinTokenLength)
	assert.Equal(t, "", cfg.RulesPath)
	assert.False(t, cfg.Recursive)
	assert.False(t, cfg.Interactive)
	assert.False(t, cfg.Cleanup)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ".organizer/history.db", cfg.HistoryDBPath)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		doc := `
min_token_length: 4
rules: custom-rules.yaml
recursive: true
log_level: debug
`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.MinTokenLength)
		assert.Equal(t, "custom-rules.yaml", cfg.RulesPath)
		assert.True(t, cfg.Recursive)
		assert.Equal(t, "debug", cfg.LogLevel)
		// Untouched fields keep their defaults.
		assert.Equal(t, ".organizer/history.db", cfg.HistoryDBPath)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("min_token_length: [not an int"), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("min_token_length: 0\n"), 0644))

		_, err := LoadConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "min_token_length")
	})
}

func TestValidate(t *testing.T) {
	t.Run("bad log level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.LogLevel = "loud"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log_level")
	})

	t.Run("empty history path", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.HistoryDBPath = ""
		assert.Error(t, cfg.Validate())
	})
}
