// Package config provides configuration loading and management for the projfs CLI.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/user/projfs/pkg/ports"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for the projfs CLI.
type Config struct {
	// Project
	ProjectRoot string `yaml:"project_root"`

	// Archiving
	ZipPath string `yaml:"zip_path"`

	// Modules. Plugin paths are relative to ProjectRoot, like every other
	// path argument, and only listed plugins may be loaded.
	Plugins []string `yaml:"plugins"`

	// Logging
	LogLevel string `yaml:"log_level"`
	Quiet    bool   `yaml:"quiet"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		ProjectRoot: ".",
		LogLevel:    "info",
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from PROJFS_ROOT, ZIP_PATH, PROJFS_LOG_LEVEL and PROJFS_QUIET.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PROJFS_ROOT"); v != "" {
		c.ProjectRoot = v
	}
	if v := os.Getenv("ZIP_PATH"); v != "" {
		c.ZipPath = v
	}
	if v := os.Getenv("PROJFS_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("PROJFS_QUIET"); v != "" {
		if quiet, err := strconv.ParseBool(v); err == nil {
			c.Quiet = quiet
		}
	}
}

// Level returns the configured log level, LevelQuiet when Quiet is set.
func (c Config) Level() ports.LogLevel {
	if c.Quiet {
		return ports.LevelQuiet
	}
	return ports.ParseLogLevel(c.LogLevel)
}
