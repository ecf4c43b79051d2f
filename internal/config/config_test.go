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
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	// A named-but-missing file is an error; defaults come from the
	// search-path variant below.
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadSearchPathDefaults(t *testing.T) {
	// No config file anywhere on the search path: pure defaults.
	wd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(wd) }()
	require.NoError(t, os.Chdir(t.TempDir()))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:5000", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, 300, cfg.Search.DebounceMillis)
	assert.Equal(t, 2, cfg.Search.MinQueryChars)
	assert.Equal(t, "ctrl", cfg.Keys.Modifier)
	assert.Equal(t, "OFF", cfg.Log.Level)
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := defaultConfig()
	cfg.API.BaseURL = "http://search.example.com:8080"
	cfg.Search.DebounceMillis = 150
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://search.example.com:8080", loaded.API.BaseURL)
	assert.Equal(t, 150, loaded.Search.DebounceMillis)
	// Durations round-trip through their string form.
	assert.Equal(t, cfg.API.Timeout, loaded.API.Timeout)
}

func TestGenerateDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, GenerateDefaultConfig(path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", expandPath(""))
	assert.Equal(t, filepath.Join(home, "logs", "a.log"), expandPath("~/logs/a.log"))
	assert.True(t, filepath.IsAbs(expandPath("relative/path.log")))
}
