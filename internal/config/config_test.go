package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bamsammich/spark/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "spark")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644))
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Nil(t, cfg.Defaults.Lines)
	assert.Nil(t, cfg.Defaults.Min)
	assert.Empty(t, cfg.Defaults.Emphasize)
	assert.Nil(t, cfg.Theme.Red)
}

func TestLoad_FullConfig(t *testing.T) {
	writeConfig(t, `
[defaults]
lines = 3
wrap = 40
min = 0.0
max = 100.5
color = "always"
emphasize = ["red:gt:90", "yellow:ge:70"]

[theme]
red = "#f38ba8"
green = "10"
`)

	cfg, err := config.Load()
	require.NoError(t, err)

	require.NotNil(t, cfg.Defaults.Lines)
	assert.Equal(t, 3, *cfg.Defaults.Lines)

	require.NotNil(t, cfg.Defaults.Wrap)
	assert.Equal(t, 40, *cfg.Defaults.Wrap)

	require.NotNil(t, cfg.Defaults.Min)
	assert.Equal(t, 0.0, *cfg.Defaults.Min)

	require.NotNil(t, cfg.Defaults.Max)
	assert.Equal(t, 100.5, *cfg.Defaults.Max)

	require.NotNil(t, cfg.Defaults.Color)
	assert.Equal(t, "always", *cfg.Defaults.Color)

	assert.Equal(t, []string{"red:gt:90", "yellow:ge:70"}, cfg.Defaults.Emphasize)

	require.NotNil(t, cfg.Theme.Red)
	assert.Equal(t, "#f38ba8", *cfg.Theme.Red)
	assert.Equal(t, map[string]string{"red": "#f38ba8", "green": "10"}, cfg.Theme.Overrides())

	// Unset fields should remain nil.
	assert.Nil(t, cfg.Theme.Blue)
	assert.Nil(t, cfg.Theme.White)
}

func TestLoad_PartialConfig(t *testing.T) {
	writeConfig(t, `
[theme]
white = "#cdd6f4"
`)

	cfg, err := config.Load()
	require.NoError(t, err)

	// Defaults section entirely absent.
	assert.Nil(t, cfg.Defaults.Lines)
	assert.Nil(t, cfg.Defaults.Wrap)

	require.NotNil(t, cfg.Theme.White)
	assert.Equal(t, "#cdd6f4", *cfg.Theme.White)
}

func TestLoad_InvalidTOML(t *testing.T) {
	writeConfig(t, "invalid [[[")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Defaults.Lines)
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/spark/config.toml", config.ConfigPath())
}
