package binder

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/simscene/internal/config"
	"github.com/vk/simscene/internal/ctxlog"
	"github.com/vk/simscene/internal/model"
	"github.com/vk/simscene/internal/registry"
)

// selector is the tagged form of a surface-class property's
// affected-molecule selector. Only selectorSingle binds today; the
// collective selectors are recognized so they can fail loudly, and so a
// future implementation slots in without changing the caller contract.
type selector int

const (
	selectorSingle selector = iota
	selectorAllMolecules
	selectorAllVolume
	selectorAllSurface
)

var selectorNames = map[string]selector{
	"SINGLE":                selectorSingle,
	"ALL_MOLECULES":         selectorAllMolecules,
	"ALL_VOLUME_MOLECULES":  selectorAllVolume,
	"ALL_SURFACE_MOLECULES": selectorAllSurface,
}

// bindSurfaceClasses builds named surface classes bound to species. When
// several properties share a class name, the last one wins: registry
// insert overwrites.
func (b *Binder) bindSurfaceClasses(ctx context.Context, sc *config.Scenario) error {
	logger := ctxlog.FromContext(ctx)

	for _, def := range sc.SurfaceClasses {
		entity := fmt.Sprintf("surface class %q", def.Name)
		for _, prop := range def.Properties {
			sel, ok := selectorNames[prop.AffectedMols]
			if !ok {
				return &MalformedFieldError{
					Entity: entity,
					Field:  "affected_mols",
					Value:  prop.AffectedMols,
					Err:    fmt.Errorf("unknown molecule selector"),
				}
			}
			if sel != selectorSingle {
				return &UnsupportedFeatureError{
					Entity:  entity,
					Feature: fmt.Sprintf("collective molecule selector %s", prop.AffectedMols),
				}
			}

			spec, err := b.reg.Species.Lookup(prop.Molecule)
			if err != nil {
				return fmt.Errorf("%s: %w", entity, err)
			}
			class := &model.SurfaceClass{
				Name:    def.Name,
				Type:    strings.ToLower(prop.ClassType),
				Species: spec,
			}
			b.reg.SurfaceClasses.Add(class.Name, class)
			logger.Debug("Bound surface class.", "name", class.Name, "type", class.Type, "species", spec.Name)
		}
	}

	logger.Info("Surface class pass complete.", "count", b.reg.SurfaceClasses.Len())
	return nil
}

// bindSurfaceRegions assigns surface classes to regions of mesh objects.
// The region scan covers every region of the target object before
// concluding failure.
func (b *Binder) bindSurfaceRegions(ctx context.Context, sc *config.Scenario) error {
	logger := ctxlog.FromContext(ctx)

	for _, def := range sc.ModifySurfaceRegions {
		mesh, err := b.reg.Meshes.Lookup(def.ObjectName)
		if err != nil {
			return err
		}
		class, err := b.reg.SurfaceClasses.Lookup(def.SurfaceClassName)
		if err != nil {
			return err
		}
		reg := mesh.FindRegion(def.RegionName)
		if reg == nil {
			return fmt.Errorf("object %q: %w", mesh.Name,
				&registry.UnresolvedReferenceError{Namespace: "region", Name: def.RegionName})
		}

		if err := b.eng.AssignSurfaceClass(class, reg); err != nil {
			return fmt.Errorf("object %q region %q: %w", mesh.Name, reg.Name, err)
		}
		logger.Debug("Assigned surface class.",
			"class", class.Name, "object", mesh.Name, "region", reg.Name)
	}

	logger.Info("Surface region pass complete.", "count", len(sc.ModifySurfaceRegions))
	return nil
}
