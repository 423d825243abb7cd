package binder

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vk/simscene/internal/config"
	"github.com/vk/simscene/internal/ctxlog"
	"github.com/vk/simscene/internal/model"
)

// bindSpecies populates the species registry and materializes every
// species with the engine immediately, so species are observable before
// the reaction pass runs.
func (b *Binder) bindSpecies(ctx context.Context, sc *config.Scenario) error {
	logger := ctxlog.FromContext(ctx)

	for _, def := range sc.Species {
		dc, err := strconv.ParseFloat(def.DiffusionConstant, 64)
		if err != nil {
			return &MalformedFieldError{
				Entity: fmt.Sprintf("species %q", def.Name),
				Field:  "diffusion_constant",
				Value:  def.DiffusionConstant,
				Err:    err,
			}
		}

		spec := &model.Species{
			Name:              def.Name,
			DiffusionConstant: dc,
			Surface:           def.Type == "2D",
		}
		b.reg.Species.Add(spec.Name, spec)
		if err := b.eng.AddSpecies(spec); err != nil {
			return fmt.Errorf("species %q: %w", spec.Name, err)
		}
		logger.Debug("Bound species.", "name", spec.Name, "surface", spec.Surface)
	}

	logger.Info("Species pass complete.", "count", b.reg.Species.Len())
	return nil
}
