package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Database.Path)
	assert.NotEmpty(t, cfg.Gate.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Assistant.Enabled)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
path = "/tmp/test/journal.db"

[logging]
level = "debug"
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test/journal.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	// Untouched sections keep their defaults
	assert.NotEmpty(t, cfg.Gate.Path)
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("MOODJOURNEY_TEST_KEY", "sk-test-123")

	path := writeConfig(t, `
[assistant]
enabled = true
api_key = "${MOODJOURNEY_TEST_KEY}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-test-123", cfg.Assistant.APIKey)
}

func TestLoad_InvalidLevelRejected(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "loud"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestLoad_AssistantNeedsKey(t *testing.T) {
	path := writeConfig(t, `
[assistant]
enabled = true
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assistant.api_key")
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := writeConfig(t, `[database`)

	_, err := Load(path)
	assert.Error(t, err)
}
