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

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFrom(t *testing.T) {
	t.Run("reads the server URL", func(t *testing.T) {
		cfg, err := LoadFrom(writeConfig(t, "server: http://tasks.internal:9000\n"))

		require.NoError(t, err)
		assert.Equal(t, "http://tasks.internal:9000", cfg.ServerURL)
	})

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yml"))

		require.NoError(t, err)
		assert.Empty(t, cfg.ServerURL)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		_, err := LoadFrom(writeConfig(t, "server: [unterminated\n"))

		assert.Error(t, err)
	})
}

func TestLoad_UsesHomeDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".organizer"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, configFileName), []byte("server: http://from-home\n"), 0o600))

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://from-home", cfg.ServerURL)
}

func TestGetServerURL(t *testing.T) {
	t.Run("env var wins", func(t *testing.T) {
		t.Setenv(envVarServerURL, "http://from-env")
		cfg := &Config{ServerURL: "http://from-file"}

		assert.Equal(t, "http://from-env", cfg.GetServerURL())
	})

	t.Run("config file over default", func(t *testing.T) {
		t.Setenv(envVarServerURL, "")
		cfg := &Config{ServerURL: "http://from-file"}

		assert.Equal(t, "http://from-file", cfg.GetServerURL())
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv(envVarServerURL, "")

		assert.Equal(t, defaultServerURL, (&Config{}).GetServerURL())
	})
}
