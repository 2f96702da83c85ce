package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file overriding some values
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nhttp-port: \"8080\"\nsession:\n  idle-timeout: 30m\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: the config is loaded
		conf, err := Load(path)

		// Then: file values win and the rest keep their defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, 30*time.Minute, conf.Session.IdleTimeout)
		assert.Equal(t, time.Hour, conf.Session.SweepInterval)
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, 24*time.Hour, conf.Session.IdleTimeout)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "7000")

		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, "7000", conf.HTTPPort)
	})

	t.Run("Broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("session: [\n"), 0o600))

		_, err := Load(path)

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})

	t.Run("Rejects a non-positive sweep interval", func(t *testing.T) {
		// Given: a config file disabling the sweep interval
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("session:\n  sweep-interval: -1s\n"), 0o600))

		// When: the config is loaded
		_, err := Load(path)

		// Then: it is refused instead of reaching the janitor
		require.ErrorIs(t, err, ErrInvalidSweepInterval)
	})

	t.Run("Rejects a non-positive idle timeout from the environment", func(t *testing.T) {
		t.Setenv("SESSION_IDLE_TIMEOUT", "-5m")

		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.ErrorIs(t, err, ErrInvalidIdleTimeout)
	})
}
