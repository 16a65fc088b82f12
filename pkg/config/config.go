package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"cliphist/pkg/errors"
	"cliphist/pkg/history"
	"cliphist/pkg/monitor"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultMaxEntries is the retention cap applied by the watch loop and
	// the trim command when no override is configured.
	DefaultMaxEntries = 500

	// MinPollInterval guards against configs that would spin the monitor.
	MinPollInterval = 100 * time.Millisecond
)

// Config holds the complete cliphist configuration.
type Config struct {
	History HistoryConfig `yaml:"history"`
	Monitor MonitorConfig `yaml:"monitor"`
	Log     LogConfig     `yaml:"log"`
}

type HistoryConfig struct {
	DBPath     string `yaml:"db_path"`
	MaxEntries int    `yaml:"max_entries"`
}

type MonitorConfig struct {
	PollInterval time.Duration `yaml:"poll_interval"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads the config file (if present), applies environment overrides and
// defaults, and validates the result.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
	}
	return loadFromPath(configPath)
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "cliphist", "config.yaml"), nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to create config directory", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to marshal config", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to write config file", err)
	}

	return nil
}

func loadFromPath(configPath string) (*Config, error) {
	cfg := &Config{}

	if err := loadConfigFile(configPath, cfg); err != nil {
		return nil, err
	}

	applyEnvironmentOverrides(cfg)
	applyDefaults(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadConfigFile reads and parses the config file from the given path. A
// missing file is not an error; env vars and defaults cover everything.
func loadConfigFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to read config file", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to parse config file", err)
	}

	return nil
}

func applyEnvironmentOverrides(cfg *Config) {
	if v := os.Getenv("CLIPHIST_DB_PATH"); v != "" {
		cfg.History.DBPath = v
	}
	if v := os.Getenv("CLIPHIST_MAX_ENTRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.History.MaxEntries = n
		}
	}
	if v := os.Getenv("CLIPHIST_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Monitor.PollInterval = d
		}
	}
	if v := os.Getenv("CLIPHIST_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.History.DBPath == "" {
		cfg.History.DBPath = history.DefaultDBPath()
	}
	if cfg.History.MaxEntries == 0 {
		cfg.History.MaxEntries = DefaultMaxEntries
	}
	if cfg.Monitor.PollInterval == 0 {
		cfg.Monitor.PollInterval = monitor.DefaultInterval
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

func validateConfig(cfg *Config) error {
	if cfg.History.MaxEntries < 1 {
		return errors.ConfigError("history.max_entries must be at least 1")
	}
	if cfg.Monitor.PollInterval < MinPollInterval {
		return errors.ConfigError("monitor.poll_interval must be at least 100ms")
	}
	return nil
}
