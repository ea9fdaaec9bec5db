package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tier-dashboard/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"TIER_BASE_URL", "TIER_TEAM", "TIER_USER", "TIER_XSRF", "TIER_SESSION", "TIER_HTTP_TIMEOUT", "TIER_FLASH_WINDOW", "LOG_LEVEL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	c, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8888", c.BaseURL)
	assert.Equal(t, time.Duration(0), c.HTTPTimeout)
	assert.Equal(t, 1400*time.Millisecond, c.FlashWindow)
	assert.Equal(t, logrus.InfoLevel, c.LogrusLevel())
}

func TestLoad_EnvFile(t *testing.T) {
	for _, k := range []string{"TIER_TEAM", "TIER_USER", "LOG_LEVEL", "TIER_FLASH_WINDOW"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv("TIER_USER", "carol")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TIER_TEAM=gophers\nTIER_USER=bob\nLOG_LEVEL=debug\nTIER_FLASH_WINDOW=2s\n"), 0o600))

	n, err := config.LoadEnv(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	c, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "gophers", c.Team)
	assert.Equal(t, "carol", c.User, "environment wins over .env")
	assert.Equal(t, 2*time.Second, c.FlashWindow)
	assert.Equal(t, logrus.DebugLevel, c.LogrusLevel())

	t.Cleanup(func() { _ = os.Unsetenv("TIER_TEAM") })
}

func TestConfig_LogrusLevel(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"silent", logrus.PanicLevel},
		{"error", logrus.ErrorLevel},
		{"warn", logrus.WarnLevel},
		{"info", logrus.InfoLevel},
		{"debug", logrus.DebugLevel},
		{"bogus", logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			c := &config.Config{LogLevel: tt.level}
			assert.Equal(t, tt.want, c.LogrusLevel())
		})
	}
}
