package binder

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vk/simscene/internal/config"
	"github.com/vk/simscene/internal/ctxlog"
	"github.com/vk/simscene/internal/model"
	"github.com/vk/simscene/internal/registry"
)

// bindCounts builds output-count requests at world, object, or region
// scope.
func (b *Binder) bindCounts(ctx context.Context, sc *config.Scenario) error {
	logger := ctxlog.FromContext(ctx)

	for i, def := range sc.Counts {
		entity := fmt.Sprintf("count %d", i+1)

		spec, err := b.reg.Species.Lookup(def.Molecule)
		if err != nil {
			return fmt.Errorf("%s: %w", entity, err)
		}

		var mesh *model.MeshObject
		var reg *model.Region
		switch def.Location {
		case "World":
			// World scope carries no target.
		case "Object":
			if mesh, err = b.reg.Meshes.Lookup(def.ObjectName); err != nil {
				return fmt.Errorf("%s: %w", entity, err)
			}
		case "Region":
			if mesh, err = b.reg.Meshes.Lookup(def.ObjectName); err != nil {
				return fmt.Errorf("%s: %w", entity, err)
			}
			if reg = mesh.FindRegion(def.RegionName); reg == nil {
				return fmt.Errorf("%s: object %q: %w", entity, mesh.Name,
					&registry.UnresolvedReferenceError{Namespace: "region", Name: def.RegionName})
			}
		default:
			return &MalformedFieldError{
				Entity: entity,
				Field:  "count_location",
				Value:  def.Location,
				Err:    fmt.Errorf(`must be "World", "Object", or "Region"`),
			}
		}

		if err := b.eng.AddCount(spec, mesh, reg); err != nil {
			return fmt.Errorf("%s: %w", entity, err)
		}
		logger.Debug("Bound count request.", "species", spec.Name, "location", def.Location)
	}

	logger.Info("Count pass complete.", "count", len(sc.Counts))
	return nil
}

// bindViz selects the species to export: those flagged individually, or
// all of them when the global export flag is set. The selection preserves
// species declaration order and is issued even when empty, so a scenario
// with visualization disabled still records that choice.
func (b *Binder) bindViz(ctx context.Context, sc *config.Scenario) error {
	logger := ctxlog.FromContext(ctx)

	selected := make([]*model.Species, 0, len(sc.Species))
	for _, def := range sc.Species {
		if !sc.Viz.ExportAll && !def.ExportViz {
			continue
		}
		spec, err := b.reg.Species.Lookup(def.Name)
		if err != nil {
			return err
		}
		selected = append(selected, spec)
	}

	if err := b.eng.AddViz(selected); err != nil {
		return err
	}
	logger.Info("Visualization pass complete.",
		"selected", len(selected), "export_all", sc.Viz.ExportAll)
	return nil
}

// bindInitialization extracts the scalar run parameters.
func (b *Binder) bindInitialization(ctx context.Context, sc *config.Scenario) error {
	logger := ctxlog.FromContext(ctx)

	iterations, err := strconv.Atoi(sc.Init.Iterations)
	if err != nil {
		return &MalformedFieldError{Entity: "initialization", Field: "iterations", Value: sc.Init.Iterations, Err: err}
	}
	if iterations <= 0 {
		return &MalformedFieldError{
			Entity: "initialization",
			Field:  "iterations",
			Value:  sc.Init.Iterations,
			Err:    fmt.Errorf("must be positive"),
		}
	}

	timeStep, err := strconv.ParseFloat(sc.Init.TimeStep, 64)
	if err != nil {
		return &MalformedFieldError{Entity: "initialization", Field: "time_step", Value: sc.Init.TimeStep, Err: err}
	}
	if timeStep <= 0 {
		return &MalformedFieldError{
			Entity: "initialization",
			Field:  "time_step",
			Value:  sc.Init.TimeStep,
			Err:    fmt.Errorf("must be positive"),
		}
	}

	if err := b.eng.SetIterations(iterations); err != nil {
		return err
	}
	if err := b.eng.SetTimeStep(timeStep); err != nil {
		return err
	}

	b.initial = &model.Initialization{Iterations: iterations, TimeStep: timeStep}
	logger.Info("Initialization pass complete.", "iterations", iterations, "time_step", timeStep)
	return nil
}
