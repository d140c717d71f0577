package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds the server settings read from the optional YAML file.
type config struct {
	Addr        string   `yaml:"addr"`
	DataDir     string   `yaml:"data_dir"`
	CORSOrigins []string `yaml:"cors_origins"`
	Watch       bool     `yaml:"watch"`
}

// loadConfig reads path into a config, applying defaults for unset fields.
// An empty path returns the defaults.
func loadConfig(path string) (*config, error) {
	cfg := &config{
		Addr:        ":8080",
		DataDir:     "data",
		CORSOrigins: []string{"*"},
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	return cfg, nil
}
