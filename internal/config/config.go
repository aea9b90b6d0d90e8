package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional on-disk configuration. Everything has a working
// default; the file only exists for users who want to move the store or
// change the default chart window.
type Config struct {
	StorePath   string `yaml:"store_path"`
	HistoryDays int    `yaml:"history_days"`
}

const DefaultHistoryDays = 30

// Load reads the config file at path. A missing file is not an error and
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Config{HistoryDays: DefaultHistoryDays}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file: %w", err)
	}
	if cfg.HistoryDays < 1 {
		cfg.HistoryDays = DefaultHistoryDays
	}
	return cfg, nil
}
