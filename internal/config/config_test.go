package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Applies defaults for missing values", func(t *testing.T) {
		// Given: a config file with only a log level
		path := writeConfig(t, "log-level: debug\n")

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: everything else falls back to defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "3000", conf.HTTPPort)
		assert.Equal(t, "public", conf.StaticDir)
		assert.Equal(t, 4, conf.Game.Radius)
		assert.Equal(t, 5*time.Second, conf.Game.ResetDelay)
		assert.Equal(t, 16, conf.WebSocket.SendBuffer)
		assert.InDelta(t, 10, conf.WebSocket.MessagesPerSecond, 0)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Reads nested sections", func(t *testing.T) {
		path := writeConfig(t, `
game:
  radius: 2
  reset-delay: 250ms
redis:
  enabled: true
  host: cache
  port: "6380"
`)

		conf := MustLoad(path)

		assert.Equal(t, 2, conf.Game.Radius)
		assert.Equal(t, 250*time.Millisecond, conf.Game.ResetDelay)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "8080")
		path := writeConfig(t, "http-port: \"9000\"\n")

		conf := MustLoad(path)

		assert.Equal(t, "8080", conf.HTTPPort)
	})

	t.Run("Panics when the file is missing", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
