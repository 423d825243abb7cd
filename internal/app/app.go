package app

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/vk/simscene/internal/config"
	"github.com/vk/simscene/internal/hcl"
	"github.com/vk/simscene/internal/jsonmodel"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// New is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and the loader
// matching the scenario format.
func New(outW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	loader, err := selectLoader(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("Scenario loader selected.", "path", cfg.ScenarioPath)

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}, nil
}

// selectLoader picks the format-specific loader, from the explicit format
// override or the scenario file extension.
func selectLoader(cfg *Config) (config.Loader, error) {
	format := cfg.Format
	if format == "" {
		switch strings.ToLower(filepath.Ext(cfg.ScenarioPath)) {
		case ".hcl":
			format = "hcl"
		case ".json":
			format = "json"
		default:
			return nil, fmt.Errorf(
				"cannot detect scenario format from %q; pass --format", cfg.ScenarioPath)
		}
	}

	switch format {
	case "hcl":
		return hcl.NewLoader(), nil
	case "json":
		return jsonmodel.NewLoader(), nil
	default:
		return nil, fmt.Errorf("unknown scenario format %q", format)
	}
}
