// ABOUTME: Configuration loading for moodjourney
// ABOUTME: Loads TOML config from the user config dir with environment variable expansion

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the complete moodjourney configuration.
type Config struct {
	Database  DatabaseConfig  `toml:"database"`
	Data      DataConfig      `toml:"data"`
	Gate      GateConfig      `toml:"gate"`
	Assistant AssistantConfig `toml:"assistant"`
	Logging   LoggingConfig   `toml:"logging"`
}

// DatabaseConfig holds the journal database location.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// DataConfig holds the attachment data directory.
type DataConfig struct {
	Dir string `toml:"dir"`
}

// GateConfig holds the passcode state file location.
type GateConfig struct {
	Path string `toml:"path"`
}

// AssistantConfig holds settings for the remote text-generation API.
type AssistantConfig struct {
	Enabled bool   `toml:"enabled"`
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text, json
}

// DefaultPath returns the default config file location in the per-user
// configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "moodjourney", "config.toml"), nil
}

// Default returns a configuration with every field populated from the
// standard per-user locations. Used when no config file exists yet.
func Default() (*Config, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolving user config dir: %w", err)
	}
	base := filepath.Join(configDir, "moodjourney")

	return &Config{
		Database:  DatabaseConfig{Path: filepath.Join(base, "entries.db")},
		Data:      DataConfig{Dir: base},
		Gate:      GateConfig{Path: filepath.Join(base, "password.json")},
		Assistant: AssistantConfig{Model: "gpt-4o-mini"},
		Logging:   LoggingConfig{Level: "info", Format: "text"},
	}, nil
}

// Load reads config from the given path, expanding environment
// variables and filling unset fields with defaults. A missing file is
// not an error: the defaults are returned as-is.
func Load(path string) (*Config, error) {
	defaults, err := Default()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables (${VAR} syntax)
	expanded := expandEnvVars(string(data))

	cfg := defaults
	if _, err := toml.Decode(expanded, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required fields are present and well-formed.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir is required")
	}
	if c.Gate.Path == "" {
		return fmt.Errorf("gate.path is required")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json")
	}
	if c.Assistant.Enabled && c.Assistant.APIKey == "" {
		return fmt.Errorf("assistant.api_key is required when the assistant is enabled")
	}
	return nil
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding
// environment variable values. Unset variables become empty strings.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
