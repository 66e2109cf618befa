package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, Duration(24*time.Hour), cfg.Redis.SessionTTL)
	assert.Equal(t, "dev", cfg.Log.Mode)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  port: 9090\nlog:\n  mode: prod\nredis:\n  addr: localhost:6379\n  session_ttl: 1h\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "prod", cfg.Log.Mode)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, Duration(time.Hour), cfg.Redis.SessionTTL)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ASSISTANT_PORT", "3000")
	t.Setenv("ASSISTANT_DB", "/tmp/test.db")
	t.Setenv("ASSISTANT_SESSION_TTL", "30m")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "/tmp/test.db", cfg.DB.Path)
	assert.Equal(t, Duration(30*time.Minute), cfg.Redis.SessionTTL)
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("ASSISTANT_PORT", "99999")
	_, err := Load("")
	assert.Error(t, err)
}
