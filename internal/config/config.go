// Package config loads the schedq YAML configuration.
package config

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yml.
type Config struct {
	DensityBucketMin int    `yaml:"density_bucket_min"` // 60 (by default)
	ChartWidth       int    `yaml:"chart_width"`        // 60 (by default)
	LogLevel         string `yaml:"log_level"`          // "info" (by default)
	Demo             bool   `yaml:"demo"`               // seed sample tasks at startup
}

// If the config file is not found, we use default values
func defaultConfig() Config {
	return Config{
		DensityBucketMin: 60,
		ChartWidth:       60,
		LogLevel:         "info",
		Demo:             false,
	}
}

// Load reads YAML and overrides defaults; empty path = defaults only
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps
	if cfg.DensityBucketMin <= 0 {
		cfg.DensityBucketMin = 60
	}
	if cfg.ChartWidth < 20 {
		cfg.ChartWidth = 60
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg
}
