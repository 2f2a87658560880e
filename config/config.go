// Package config loads tracker configuration from environment variables.
// CLI flags override the loaded values where both exist.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Logging
	Log LogConfig

	// Demo driver
	Demo DemoConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Debug       bool
	Version     string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// DemoConfig holds console demo settings.
type DemoConfig struct {
	// Output format for structured record dumps: text, json, or yaml.
	Format string

	// Optional path to a YAML roster seed; empty means the built-in sample.
	RosterPath string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	env := Environment(getEnv("TRACKER_ENV", string(EnvDevelopment)))

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("TRACKER_NAME", "tracker"),
			Environment: env,
			Debug:       env == EnvDevelopment && getEnvBool("TRACKER_DEBUG", false),
			Version:     getEnv("TRACKER_VERSION", "0.1.0"),
		},
		Log: LogConfig{
			Level:  getEnv("TRACKER_LOG_LEVEL", "info"),
			Format: getEnv("TRACKER_LOG_FORMAT", "text"),
		},
		Demo: DemoConfig{
			Format:     getEnv("TRACKER_OUTPUT_FORMAT", "text"),
			RosterPath: getEnv("TRACKER_ROSTER", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, "TRACKER_LOG_LEVEL must be one of debug, info, warn, error")
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, "TRACKER_LOG_FORMAT must be json or text")
	}

	switch strings.ToLower(c.Demo.Format) {
	case "text", "json", "yaml", "yml":
	default:
		errs = append(errs, "TRACKER_OUTPUT_FORMAT must be text, json, or yaml")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
