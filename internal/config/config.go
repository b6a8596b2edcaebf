// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Shell   ShellConfig
	Term    TermConfig
	Tokens  TokenConfig
	Logging LogConfig
	Metrics MetricsConfig
}

// ShellConfig holds shell subprocess configuration.
type ShellConfig struct {
	Path         string        `envconfig:"SHELL_PATH" default:"/bin/bash"`
	Timeout      time.Duration `envconfig:"COMMAND_TIMEOUT" default:"5s"`
	StartTimeout time.Duration `envconfig:"START_TIMEOUT" default:"10s"`
}

// TermConfig holds screen buffer dimensions.
type TermConfig struct {
	Width  int `envconfig:"TERM_WIDTH" default:"160"`
	Height int `envconfig:"TERM_HEIGHT" default:"500"`
}

// TokenConfig holds output truncation configuration.
type TokenConfig struct {
	Budget int    `envconfig:"TOKEN_BUDGET" default:"2048"`
	Model  string `envconfig:"TOKENIZER_MODEL" default:"gpt-4o"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// MetricsConfig holds the optional Prometheus listener address. Empty
// disables the listener.
type MetricsConfig struct {
	Addr string `envconfig:"METRICS_ADDR" default:""`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from the environment or returns the
// defaults when loading fails.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Shell: ShellConfig{
			Path:         "/bin/bash",
			Timeout:      5 * time.Second,
			StartTimeout: 10 * time.Second,
		},
		Term: TermConfig{
			Width:  160,
			Height: 500,
		},
		Tokens: TokenConfig{
			Budget: 2048,
			Model:  "gpt-4o",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
