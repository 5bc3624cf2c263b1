package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the demo's tunables, loaded from an optional YAML file.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Headless drives cycles with a manual clock instead of a window.
	Headless bool `yaml:"headless"`

	// Cycles caps the headless run. Ignored in windowed mode.
	Cycles int `yaml:"cycles"`

	// Width and Height size the window (or the headless root constraints).
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// defaultConfig returns the demo defaults used when no file is given.
func defaultConfig() Config {
	return Config{
		LogLevel: "info",
		Headless: true,
		Cycles:   16,
		Width:    640,
		Height:   480,
	}
}

// loadConfig reads a YAML config file, falling back to defaults for any
// field the file omits.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Cycles <= 0 {
		cfg.Cycles = defaultConfig().Cycles
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = defaultConfig().Width, defaultConfig().Height
	}
	return cfg, nil
}
