package hcl

import (
	"fmt"

	"github.com/vk/simscene/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// scalarString renders a flexible scalar attribute as its string form.
// Numbers and strings both convert; anything else is rejected. Null and
// absent values yield "".
func scalarString(v cty.Value) (string, error) {
	if v == cty.NilVal || v.IsNull() {
		return "", nil
	}
	conv, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", fmt.Errorf("expected a number or numeric string: %w", err)
	}
	return conv.AsString(), nil
}

// translate converts the HCL-specific schema into the agnostic model.
func translate(parsed *scenarioFile) (*config.Scenario, error) {
	sc := &config.Scenario{}

	for _, b := range parsed.Species {
		dc, err := scalarString(b.DiffusionConstant)
		if err != nil {
			return nil, fmt.Errorf("species %q: diffusion_constant: %w", b.Name, err)
		}
		sc.Species = append(sc.Species, config.SpeciesDef{
			Name:              b.Name,
			DiffusionConstant: dc,
			Type:              b.Type,
			ExportViz:         b.ExportViz,
		})
	}

	for i, b := range parsed.Reactions {
		fwd, err := scalarString(b.FwdRate)
		if err != nil {
			return nil, fmt.Errorf("reaction %d: fwd_rate: %w", i+1, err)
		}
		bkwd, err := scalarString(b.BkwdRate)
		if err != nil {
			return nil, fmt.Errorf("reaction %d: bkwd_rate: %w", i+1, err)
		}
		sc.Reactions = append(sc.Reactions, config.ReactionDef{
			Name:      b.Name,
			FwdRate:   fwd,
			BkwdRate:  bkwd,
			Reactants: b.Reactants,
			Products:  b.Products,
		})
	}

	for _, b := range parsed.Objects {
		obj := config.ObjectDef{
			Name:     b.Name,
			Vertices: b.Vertices,
			Faces:    b.Faces,
		}
		for _, r := range b.Regions {
			obj.Regions = append(obj.Regions, config.RegionDef{
				Name:            r.Name,
				IncludeElements: r.IncludeElements,
			})
		}
		sc.Objects = append(sc.Objects, obj)
	}

	for _, b := range parsed.SurfaceClasses {
		class := config.SurfaceClassDef{Name: b.Name}
		for _, p := range b.Properties {
			class.Properties = append(class.Properties, config.SurfacePropertyDef{
				AffectedMols: p.AffectedMols,
				Molecule:     p.Molecule,
				ClassType:    p.ClassType,
			})
		}
		sc.SurfaceClasses = append(sc.SurfaceClasses, class)
	}

	for _, b := range parsed.ModifySurfaceRegions {
		sc.ModifySurfaceRegions = append(sc.ModifySurfaceRegions, config.SurfaceRegionDef{
			ObjectName:       b.Object,
			RegionName:       b.Region,
			SurfaceClassName: b.SurfaceClass,
		})
	}

	for _, b := range parsed.ReleaseSites {
		qty, err := scalarString(b.Quantity)
		if err != nil {
			return nil, fmt.Errorf("release site %q: quantity: %w", b.Name, err)
		}
		sc.ReleaseSites = append(sc.ReleaseSites, config.ReleaseSiteDef{
			Name:       b.Name,
			ObjectExpr: b.ObjectExpr,
			Molecule:   b.Molecule,
			Quantity:   qty,
			Orient:     b.Orient,
		})
	}

	for _, b := range parsed.Counts {
		sc.Counts = append(sc.Counts, config.CountDef{
			Molecule:   b.Molecule,
			Location:   b.Location,
			ObjectName: b.Object,
			RegionName: b.Region,
		})
	}

	if parsed.Viz != nil {
		sc.Viz = config.VizDef{ExportAll: parsed.Viz.ExportAll}
	}

	if parsed.Init != nil {
		iterations, err := scalarString(parsed.Init.Iterations)
		if err != nil {
			return nil, fmt.Errorf("initialization: iterations: %w", err)
		}
		timeStep, err := scalarString(parsed.Init.TimeStep)
		if err != nil {
			return nil, fmt.Errorf("initialization: time_step: %w", err)
		}
		sc.Init = config.InitDef{Iterations: iterations, TimeStep: timeStep}
	}

	return sc, nil
}
