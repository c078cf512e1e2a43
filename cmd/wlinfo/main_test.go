package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliotmr/wlclient/internal/config"
	"github.com/elliotmr/wlclient/wl"
	"github.com/elliotmr/wlclient/wl/wlp"
)

func TestParseFlags(t *testing.T) {
	var stderr bytes.Buffer
	o, err := parseFlags([]string{"-display", "wayland-2", "-outputs", "-shm"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, options{display: "wayland-2", outputs: true, shm: true}, o)

	_, err = parseFlags([]string{"-bogus"}, &stderr)
	assert.Error(t, err)
	_, err = parseFlags([]string{"extra"}, &stderr)
	assert.Error(t, err)
	_, err = parseFlags([]string{"-h"}, &stderr)
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(config.EnvDisplay, "wayland-env")
	t.Setenv(config.EnvRuntimeDir, "/run/user/1000")
	t.Setenv(config.EnvLogLevel, "")

	path := filepath.Join(t.TempDir(), "wlinfo.toml")
	require.NoError(t, os.WriteFile(path, []byte("display = \"wayland-file\"\n[log]\nlevel = \"debug\"\n"), 0o600))

	cfg, err := loadConfig(options{configPath: path})
	require.NoError(t, err)
	assert.Equal(t, "wayland-env", cfg.Display)
	assert.Equal(t, "debug", cfg.Log.Level)

	cfg, err = loadConfig(options{configPath: path, display: "/tmp/socket", logLevel: "off"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/socket", cfg.Display)
	assert.Equal(t, "off", cfg.Log.Level)

	_, err = loadConfig(options{configPath: filepath.Join(t.TempDir(), "none.toml")})
	assert.Error(t, err)
}

func TestRunWithoutCompositor(t *testing.T) {
	t.Setenv(config.EnvRuntimeDir, t.TempDir())
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-display", "wayland-404", "-log-level", "off"}, &stdout, &stderr)
	assert.Error(t, err)
	assert.Empty(t, stdout.String())
}

func TestPrinters(t *testing.T) {
	var buf bytes.Buffer
	printGlobals(&buf, []wl.Global{
		{Name: 1, Interface: "wl_compositor", Version: 6},
		{Name: 12, Interface: "wl_output", Version: 4},
	})
	assert.Equal(t, "NAME  INTERFACE      VERSION\n"+
		"1     wl_compositor  6\n"+
		"12    wl_output      4\n", buf.String())

	buf.Reset()
	printScreen(&buf, 9, wl.ScreenInfo{Name: "DP-1", Make: "Fake", Model: "Panel", Width: 1920, Height: 1080, Refresh: 59951, Factor: 1})
	assert.Contains(t, buf.String(), "wl_output@9 DP-1\n")
	assert.Contains(t, buf.String(), "mode: 1920x1080 @ 59.951 Hz scale: 1")
	assert.NotContains(t, buf.String(), "description")

	buf.Reset()
	printFormats(&buf, []uint32{0, 0x34324241})
	assert.Contains(t, buf.String(), "0x00000000 ARGB8888")
	assert.Contains(t, buf.String(), "0x34324241 AB24")

	buf.Reset()
	printRegistryEvent(&buf, wlp.Event{Kind: wlp.KindRegistry, Opcode: wlp.EvRegistryGlobal, Args: []interface{}{uint32(5), "wl_seat", uint32(7)}})
	printRegistryEvent(&buf, wlp.Event{Kind: wlp.KindRegistry, Opcode: wlp.EvRegistryGlobalRemove, Args: []interface{}{uint32(5)}})
	printRegistryEvent(&buf, wlp.Event{Kind: wlp.KindCallback, Opcode: wlp.EvCallbackDone, Args: []interface{}{uint32(5)}})
	assert.Equal(t, "+ 5 wl_seat v7\n- 5\n", buf.String())
}
