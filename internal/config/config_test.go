package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDefaults(t *testing.T) {
	t.Run("fills empty fields", func(t *testing.T) {
		cfg := (&Config{}).WithDefaults()

		assert.Equal(t, FallbackProjectName, cfg.Defaults.Name)
		require.NotNil(t, cfg.Git.Enabled)
		assert.True(t, *cfg.Git.Enabled)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		disabled := false
		cfg := (&Config{
			Defaults: DefaultsConfig{Name: "team-app"},
			Git:      GitConfig{Enabled: &disabled},
		}).WithDefaults()

		assert.Equal(t, "team-app", cfg.Defaults.Name)
		assert.False(t, *cfg.Git.Enabled)
	})
}

func TestGitEnabled(t *testing.T) {
	assert.True(t, (&Config{}).GitEnabled())

	enabled := true
	assert.True(t, (&Config{Git: GitConfig{Enabled: &enabled}}).GitEnabled())

	disabled := false
	assert.False(t, (&Config{Git: GitConfig{Enabled: &disabled}}).GitEnabled())
}
