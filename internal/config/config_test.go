package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wlclient.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
display = "wayland-1"
sync_timeout = "750ms"

[log]
level = "debug"
format = "json"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "wayland-1", cfg.Display)
	assert.Equal(t, 750*time.Millisecond, cfg.SyncTimeout.Duration)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	// untouched keys keep their defaults
	assert.Equal(t, 1024, cfg.ReadBufferSize)
	assert.True(t, cfg.Log.Timestamp)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, `sync_timeout = "soon"`))
	assert.Error(t, err)

	_, err = Load(writeFile(t, `display = [`))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvDisplay:    "wayland-9",
		EnvRuntimeDir: "/run/user/1000",
		EnvLogLevel:   "warn",
		EnvLogNoColor: "true",
	}
	cfg := Default()
	cfg.applyEnv(func(k string) string { return env[k] })
	assert.Equal(t, "wayland-9", cfg.Display)
	assert.Equal(t, "/run/user/1000", cfg.RuntimeDir)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.True(t, cfg.Log.NoColor)

	env[EnvLogNoColor] = "maybe"
	cfg.applyEnv(func(k string) string { return env[k] })
	assert.True(t, cfg.Log.NoColor)
}

func TestApplyEnvFromProcess(t *testing.T) {
	t.Setenv(EnvDisplay, "wayland-7")
	t.Setenv(EnvRuntimeDir, "")
	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, "wayland-7", cfg.Display)
	assert.Empty(t, cfg.RuntimeDir)
}

func TestValidate(t *testing.T) {
	cfg := Config{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultDisplay, cfg.Display)

	cases := map[string]func(*Config){
		"negative read size": func(c *Config) { c.ReadBufferSize = -1 },
		"tiny read size":     func(c *Config) { c.ReadBufferSize = 8 },
		"negative timeout":   func(c *Config) { c.SyncTimeout.Duration = -time.Second },
		"log format":         func(c *Config) { c.Log.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestSocketPath(t *testing.T) {
	cfg := Config{Display: "/tmp/compositor.sock"}
	path, err := cfg.SocketPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/compositor.sock", path)

	cfg = Config{Display: "wayland-1", RuntimeDir: "/run/user/1000"}
	path, err = cfg.SocketPath()
	require.NoError(t, err)
	assert.Equal(t, "/run/user/1000/wayland-1", path)

	cfg = Config{RuntimeDir: "/run/user/1000"}
	path, err = cfg.SocketPath()
	require.NoError(t, err)
	assert.Equal(t, "/run/user/1000/wayland-0", path)

	_, err = Config{Display: "wayland-1"}.SocketPath()
	assert.ErrorContains(t, err, EnvRuntimeDir)
}
