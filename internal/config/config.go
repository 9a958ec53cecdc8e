// Package config loads the user's YAML configuration
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const appName = "genovar"

// Config represents the application configuration
type Config struct {
	// LogLevel is one of debug, info, warn, error
	LogLevel    string      `yaml:"log_level"`
	Links       LinkConfig  `yaml:"links"`
	ColorScheme ColorScheme `yaml:"theme"`
}

// LinkConfig controls sample-variant association behaviour
type LinkConfig struct {
	// RejectDuplicates refuses linking a sample to a variant it already carries
	RejectDuplicates bool `yaml:"reject_duplicates"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		ColorScheme: DefaultColorScheme(),
	}
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		return Default(), nil
	}

	return LoadFile(configPath)
}

// LoadFile loads config from an explicit path, falling back to defaults
// when the file is absent
func LoadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", configPath, err)
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	if _, err := ParseLevel(config.LogLevel); err != nil {
		return nil, fmt.Errorf("config %s: %w", configPath, err)
	}

	return &config, nil
}

// Level returns the configured log level, info when unset or invalid
func (c *Config) Level() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel maps a log_level value onto a slog level
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log_level %q", s)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.ColorScheme.ApplyDefaults()
}
