// Package config loads client settings from a TOML file and the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	EnvDisplay    = "WAYLAND_DISPLAY"
	EnvRuntimeDir = "XDG_RUNTIME_DIR"
	EnvLogLevel   = "WLC_LOG_LEVEL"
	EnvLogFormat  = "WLC_LOG_FORMAT"
	EnvLogNoColor = "WLC_LOG_NOCOLOR"

	DefaultDisplay     = "wayland-0"
	DefaultSyncTimeout = 5 * time.Second
)

// Log holds the logger settings.
type Log struct {
	Level     string `toml:"level"`
	Format    string `toml:"format"`
	NoColor   bool   `toml:"no_color"`
	Timestamp bool   `toml:"timestamp"`
}

// Config holds everything needed to reach a compositor.
type Config struct {
	// Display is a socket name relative to RuntimeDir, or an absolute path.
	Display        string   `toml:"display"`
	RuntimeDir     string   `toml:"runtime_dir"`
	ReadBufferSize int      `toml:"read_buffer_size"`
	SyncTimeout    Duration `toml:"sync_timeout"`
	Log            Log      `toml:"log"`
}

// Duration is a time.Duration written as a string such as "750ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q", string(text))
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() Config {
	return Config{
		Display:        DefaultDisplay,
		ReadBufferSize: 1024,
		SyncTimeout:    Duration{DefaultSyncTimeout},
		Log: Log{
			Level:     "info",
			Format:    "console",
			Timestamp: true,
		},
	}
}

// Load reads the TOML file at path on top of the defaults. Keys missing from
// the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "load config %s", path)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from the environment. Empty or unparsable
// variables are ignored.
func (c *Config) ApplyEnv() {
	c.applyEnv(os.Getenv)
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvDisplay)); v != "" {
		c.Display = v
	}
	if v := strings.TrimSpace(getenv(EnvRuntimeDir)); v != "" {
		c.RuntimeDir = v
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(getenv(EnvLogFormat)); v != "" {
		c.Log.Format = v
	}
	if v, err := strconv.ParseBool(strings.TrimSpace(getenv(EnvLogNoColor))); err == nil {
		c.Log.NoColor = v
	}
}

// Validate fills zero values with defaults and rejects settings that
// cannot work.
func (c *Config) Validate() error {
	if c.Display == "" {
		c.Display = DefaultDisplay
	}
	if c.ReadBufferSize < 0 {
		return errors.Errorf("read_buffer_size must not be negative, got %d", c.ReadBufferSize)
	}
	if c.ReadBufferSize > 0 && c.ReadBufferSize < 16 {
		return errors.Errorf("read_buffer_size %d is too small", c.ReadBufferSize)
	}
	if c.SyncTimeout.Duration < 0 {
		return errors.New("sync_timeout must not be negative")
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "console", "json":
	default:
		return errors.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// SocketPath resolves the compositor socket. An absolute Display is used as
// is; otherwise it is joined to RuntimeDir, which must then be set.
func (c Config) SocketPath() (string, error) {
	name := c.Display
	if name == "" {
		name = DefaultDisplay
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	if c.RuntimeDir == "" {
		return "", errors.Errorf("%s is not set in environment", EnvRuntimeDir)
	}
	return filepath.Join(c.RuntimeDir, name), nil
}
