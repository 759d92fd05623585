package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"habitdash/internal/storage"
)

// Config is the optional dashboard configuration, read from
// ~/.habitdash.yaml. Every field has a working default; a missing file is
// not an error.
type Config struct {
	DBPath      string `yaml:"db_path"`
	HistoryDays int    `yaml:"history_days"`
	ChartStyle  string `yaml:"chart_style"` // bars | dots
}

func Default() (Config, error) {
	dbPath, err := storage.DefaultDBPath()
	if err != nil {
		return Config{}, err
	}
	return Config{
		DBPath:      dbPath,
		HistoryDays: 7,
		ChartStyle:  "bars",
	}, nil
}

// DefaultPath returns the config file location, honoring HABITDASH_CONFIG.
func DefaultPath() (string, error) {
	if p := os.Getenv("HABITDASH_CONFIG"); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".habitdash.yaml"), nil
}

// Load reads the config at path, layering it over the defaults and applying
// environment overrides.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	b, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No file: defaults plus env.
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if db := os.Getenv("HABITDASH_DB"); db != "" {
		cfg.DBPath = db
	}
	if cfg.HistoryDays <= 0 {
		cfg.HistoryDays = 7
	}
	if cfg.ChartStyle != "bars" && cfg.ChartStyle != "dots" {
		cfg.ChartStyle = "bars"
	}
	return cfg, nil
}
