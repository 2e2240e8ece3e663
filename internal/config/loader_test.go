package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		raw := map[string]any{
			"defaults": map[string]any{
				"name":      "team-app",
				"database":  true,
				"reactScan": true,
			},
			"git": map[string]any{
				"enabled": false,
			},
		}
		content, err := yaml.Marshal(raw)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(configFile, content, 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "team-app", cfg.Defaults.Name)
		assert.True(t, cfg.Defaults.Database)
		assert.False(t, cfg.Defaults.Auth)
		assert.True(t, cfg.Defaults.ReactScan)
		require.NotNil(t, cfg.Git.Enabled)
		assert.False(t, *cfg.Git.Enabled)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "nonexistent.yaml")

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Empty(t, cfg.Defaults.Name)
		assert.False(t, cfg.Defaults.Database)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("FORGE_DEFAULTS_NAME", "env-app")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "empty.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "env-app", cfg.Defaults.Name)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("FORGE_DEFAULTS_NAME", "env-app")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("defaults:\n  name: file-app\n"), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "env-app", cfg.Defaults.Name)
	})
}

func TestLoadWithDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "nonexistent.yaml")

	loader := NewLoader()
	cfg, err := loader.LoadWithDefaults(configFile)

	require.NoError(t, err)
	assert.Equal(t, FallbackProjectName, cfg.Defaults.Name)
	assert.True(t, cfg.GitEnabled())
}
