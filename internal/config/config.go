// Package config loads scicalc settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/scicalc"
)

// Config holds settings for the scicalc command.
type Config struct {
	// LogLevel is the minimum level of log records: debug, info, warn, error,
	// or none.
	LogLevel string `yaml:"log_level"`
	// MaxDepth is the parenthesis nesting limit. Zero or negative means
	// unlimited.
	MaxDepth int `yaml:"max_depth"`
	// Format is the printf verb used to print results.
	Format string `yaml:"format"`
	// Server configures the HTTP API.
	Server ServerConfig `yaml:"server"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// CacheSize is the number of results kept in memory. Zero disables the
	// cache.
	CacheSize int `yaml:"cache_size"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		MaxDepth: scicalc.DefaultMaxDepth,
		Format:   "%g",
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      8080,
			CacheSize: 1024,
		},
	}
}

// Load reads the configuration file at path over the defaults, then applies
// environment overrides. A missing file or an empty path gives the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// use defaults
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Format == "" {
		cfg.Format = "%g"
	}
	return cfg, nil
}

// applyEnv overrides settings from SCICALC_LOG_LEVEL, SCICALC_MAX_DEPTH,
// SCICALC_HOST, and SCICALC_PORT.
func (c *Config) applyEnv() error {
	c.LogLevel = envOrDefault("SCICALC_LOG_LEVEL", c.LogLevel)
	c.Server.Host = envOrDefault("SCICALC_HOST", c.Server.Host)
	if v := os.Getenv("SCICALC_MAX_DEPTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SCICALC_MAX_DEPTH: %w", err)
		}
		c.MaxDepth = n
	}
	if v := os.Getenv("SCICALC_PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SCICALC_PORT: %w", err)
		}
		c.Server.Port = n
	}
	return nil
}

// Options returns the solver options the configuration selects.
func (c *Config) Options() []scicalc.Option {
	return []scicalc.Option{scicalc.MaxDepth(c.MaxDepth)}
}

// Addr returns the server's listen address.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
