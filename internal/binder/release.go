package binder

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vk/simscene/internal/config"
	"github.com/vk/simscene/internal/ctxlog"
	"github.com/vk/simscene/internal/model"
	"github.com/vk/simscene/internal/registry"
	"github.com/vk/simscene/internal/token"
)

// bindReleaseSites builds release specifications. The object expression
// targets either a whole mesh object or, with "Object[Region]" syntax, a
// single region of it.
func (b *Binder) bindReleaseSites(ctx context.Context, sc *config.Scenario) error {
	logger := ctxlog.FromContext(ctx)

	for _, def := range sc.ReleaseSites {
		entity := fmt.Sprintf("release site %q", def.Name)

		objName, regName, err := token.ParseObjectExpr(def.ObjectExpr)
		if err != nil {
			return fmt.Errorf("%s: %w", entity, err)
		}
		mesh, err := b.reg.Meshes.Lookup(objName)
		if err != nil {
			return fmt.Errorf("%s: %w", entity, err)
		}

		var reg *model.Region
		if regName != "" {
			if reg = mesh.FindRegion(regName); reg == nil {
				return fmt.Errorf("%s: object %q: %w", entity, mesh.Name,
					&registry.UnresolvedReferenceError{Namespace: "region", Name: regName})
			}
		}

		spec, err := b.reg.Species.Lookup(def.Molecule)
		if err != nil {
			return fmt.Errorf("%s: %w", entity, err)
		}

		qty, err := strconv.Atoi(def.Quantity)
		if err != nil {
			return &MalformedFieldError{Entity: entity, Field: "quantity", Value: def.Quantity, Err: err}
		}
		if qty <= 0 {
			return &MalformedFieldError{
				Entity: entity,
				Field:  "quantity",
				Value:  def.Quantity,
				Err:    fmt.Errorf("must be positive"),
			}
		}

		site := &model.ReleaseSite{
			Name:     def.Name,
			Object:   mesh,
			Region:   reg,
			Species:  spec,
			Quantity: qty,
			Orient:   def.Orient,
		}
		if err := b.eng.Release(site); err != nil {
			return fmt.Errorf("%s: %w", entity, err)
		}
		logger.Debug("Bound release site.",
			"name", site.Name, "object", mesh.Name, "species", spec.Name, "quantity", qty)
	}

	logger.Info("Release site pass complete.", "count", len(sc.ReleaseSites))
	return nil
}
