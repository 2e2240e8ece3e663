// Package config provides configuration loading and management.
package config

// DefaultsConfig contains default answers used when prompts are skipped.
type DefaultsConfig struct {
	// Name is the project name used when none is given in --yes mode.
	// Env: FORGE_DEFAULTS_NAME, Default: "my-app"
	Name string `mapstructure:"name"`

	// Database pre-selects the database feature.
	Database bool `mapstructure:"database"`

	// Auth pre-selects the authentication feature.
	Auth bool `mapstructure:"auth"`

	// ReactScan pre-selects the performance-instrumentation feature.
	ReactScan bool `mapstructure:"reactScan"`
}

// GitConfig contains repository-initialization settings.
type GitConfig struct {
	// Enabled controls whether a git repository is initialized after
	// scaffolding. Default: true. Override per run with --no-git.
	Enabled *bool `mapstructure:"enabled"`
}

// Config represents the forge CLI configuration.
// Loaded from ~/.config/forge/config.yaml.
type Config struct {
	// Defaults contains default prompt answers.
	Defaults DefaultsConfig `mapstructure:"defaults"`

	// Git contains repository-initialization settings.
	Git GitConfig `mapstructure:"git"`
}

// FallbackProjectName is the project name used when nothing else is configured.
const FallbackProjectName = "my-app"

// WithDefaults returns a copy of the config with defaults applied.
func (c *Config) WithDefaults() *Config {
	out := *c

	if out.Defaults.Name == "" {
		out.Defaults.Name = FallbackProjectName
	}
	if out.Git.Enabled == nil {
		enabled := true
		out.Git.Enabled = &enabled
	}

	return &out
}

// GitEnabled reports whether repository initialization is enabled.
func (c *Config) GitEnabled() bool {
	return c.Git.Enabled == nil || *c.Git.Enabled
}
