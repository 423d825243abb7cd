package app

import (
	"context"
	"fmt"

	"github.com/vk/simscene/internal/binder"
	"github.com/vk/simscene/internal/ctxlog"
	"github.com/vk/simscene/internal/engine"
	"github.com/vk/simscene/internal/registry"
)

// Run executes one import: load the scenario, bind it over fresh
// registries, and on success commit and print the construction plan.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	scenario, err := a.loader.Load(ctx, a.config.ScenarioPath)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	a.logger.Debug("Scenario loaded and translated into unified model.")

	// Each run owns its own registries and engine journal; nothing
	// survives between imports.
	rec := engine.NewRecorder()
	b := binder.New(registry.NewSet(), rec)
	if err := b.Bind(ctx, scenario); err != nil {
		return fmt.Errorf("failed to bind scenario: %w", err)
	}

	rec.Commit()
	a.logger.Info("Scenario committed.", "commands", len(rec.Commands()))
	rec.Summary(a.outW)

	a.logger.Debug("App.Run method finished.")
	return nil
}
