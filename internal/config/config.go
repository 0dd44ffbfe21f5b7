// Package config loads pingdash settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"pingdash/internal/paths"
	"pingdash/internal/validation"
)

type Config struct {
	Service ServiceConfig `yaml:"service"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServiceConfig struct {
	BaseURL         string `yaml:"base_url" validate:"required,url"`
	SystemInfoPath  string `yaml:"system_info_path" validate:"required,startswith=/"`
	NetworkInfoPath string `yaml:"network_info_path" validate:"required,startswith=/"`
	PingPath        string `yaml:"ping_path" validate:"required,startswith=/"`
	TimeoutMS       int    `yaml:"timeout_ms" validate:"min=0"`
	UserAgent       string `yaml:"user_agent"`
}

type ExportConfig struct {
	Dir string `yaml:"dir" validate:"required"`
}

type LoggingConfig struct {
	Dir     string `yaml:"dir" validate:"required"`
	Level   string `yaml:"level" validate:"oneof=debug info warn error"`
	Console bool   `yaml:"console"`
}

var validate = validation.New("yaml")

// Default returns the built-in configuration
func Default() *Config {
	logDir, err := paths.LogDir()
	if err != nil {
		logDir = "logs"
	}
	return &Config{
		Service: ServiceConfig{
			BaseURL:         "http://localhost:5000",
			SystemInfoPath:  "/api/system-info",
			NetworkInfoPath: "/api/network-info",
			PingPath:        "/api/ping",
			UserAgent:       "pingdash/1.0",
		},
		Export: ExportConfig{
			Dir: ".",
		},
		Logging: LoggingConfig{
			Dir:   logDir,
			Level: "info",
		},
	}
}

// Load reads configuration from file and applies environment variable
// overrides. An empty configPath means the default location, where a missing
// file is not an error; an explicit path must exist.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	explicit := configPath != ""
	if !explicit {
		p, err := paths.ConfigFile()
		if err == nil {
			configPath = p
		}
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate ensures all configuration values are usable
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// applyEnvOverrides checks for environment variables with PINGDASH_ prefix
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("PINGDASH_BASE_URL"); v != "" {
		cfg.Service.BaseURL = v
	}
	if v := os.Getenv("PINGDASH_TIMEOUT_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PINGDASH_TIMEOUT_MS %q: %w", v, err)
		}
		cfg.Service.TimeoutMS = ms
	}
	if v := os.Getenv("PINGDASH_EXPORT_DIR"); v != "" {
		cfg.Export.Dir = v
	}
	if v := os.Getenv("PINGDASH_LOG_DIR"); v != "" {
		cfg.Logging.Dir = v
	}
	if v := os.Getenv("PINGDASH_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	return nil
}

// GetTimeout returns the per-request timeout as a duration
func (s *ServiceConfig) GetTimeout() time.Duration {
	return time.Duration(s.TimeoutMS) * time.Millisecond
}
