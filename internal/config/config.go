// Package config loads masft settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Render modes for output.render.
const (
	RenderAuto   = "auto"
	RenderAlways = "always"
	RenderNever  = "never"
)

// Defaults applied to unset fields.
const (
	DefaultMinScore     = 1
	DefaultHistoryLimit = 10
	DefaultRender       = RenderAuto
)

// Config is the complete masft configuration.
type Config struct {
	Database DatabaseConfig `koanf:"database" json:"database"`
	Catalog  CatalogConfig  `koanf:"catalog" json:"catalog"`
	Resolver ResolverConfig `koanf:"resolver" json:"resolver"`
	History  HistoryConfig  `koanf:"history" json:"history"`
	Output   OutputConfig   `koanf:"output" json:"output"`
	Metrics  MetricsConfig  `koanf:"metrics" json:"metrics"`
}

// DatabaseConfig locates the interaction log.
type DatabaseConfig struct {
	Path string `koanf:"path" json:"path"`
}

// CatalogConfig selects the catalog source. An empty path uses the embedded catalog.
type CatalogConfig struct {
	Path string `koanf:"path" json:"path,omitempty"`
}

// ResolverConfig tunes query resolution.
type ResolverConfig struct {
	MinScore int `koanf:"min_score" json:"min_score"`
}

// HistoryConfig controls history listings.
type HistoryConfig struct {
	Limit int `koanf:"limit" json:"limit"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	Render string `koanf:"render" json:"render"`
}

// MetricsConfig enables the Prometheus textfile export.
type MetricsConfig struct {
	File string `koanf:"file" json:"file,omitempty"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// DefaultDatabasePath is ~/.local/share/masft/educator.db, or educator.db in
// the working directory when the home directory is unknown.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "educator.db"
	}
	return filepath.Join(home, ".local", "share", "masft", "educator.db")
}

// DefaultConfigPath is ~/.config/masft/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "masft", "config.yaml"), nil
}

func applyDefaults(cfg *Config) {
	if cfg.Database.Path == "" {
		cfg.Database.Path = DefaultDatabasePath()
	}
	if cfg.Resolver.MinScore == 0 {
		cfg.Resolver.MinScore = DefaultMinScore
	}
	if cfg.History.Limit == 0 {
		cfg.History.Limit = DefaultHistoryLimit
	}
	if cfg.Output.Render == "" {
		cfg.Output.Render = DefaultRender
	}
}

// Validate rejects values no command can work with.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return errors.New("database path is required")
	}
	if c.Resolver.MinScore < 1 {
		return fmt.Errorf("invalid resolver min_score: %d (must be at least 1)", c.Resolver.MinScore)
	}
	if c.History.Limit < 0 {
		return fmt.Errorf("invalid history limit: %d (must not be negative)", c.History.Limit)
	}
	switch c.Output.Render {
	case RenderAuto, RenderAlways, RenderNever:
	default:
		return fmt.Errorf("invalid output render mode: %q (must be auto, always or never)", c.Output.Render)
	}
	return nil
}
