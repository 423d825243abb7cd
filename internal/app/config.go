package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScenarioPath string // path to an .hcl or .json scenario file
	Format       string // "hcl", "json", or "" for by-extension detection

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScenarioPath == "" {
		return nil, errors.New("ScenarioPath is a required configuration field and cannot be empty")
	}
	switch cfg.Format {
	case "", "hcl", "json":
	default:
		return nil, fmt.Errorf("unknown scenario format %q (want hcl or json)", cfg.Format)
	}
	return &cfg, nil
}
