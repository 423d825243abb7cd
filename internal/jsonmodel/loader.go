package jsonmodel

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vk/simscene/internal/config"
	"github.com/vk/simscene/internal/ctxlog"
)

// Loader implements config.Loader for JSON data-model files.
type Loader struct{}

// NewLoader creates a JSON data-model loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the JSON data model at path and translates it into the
// format-agnostic scenario model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading JSON data model.", "path", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data model %s: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode data model %s: %w", path, err)
	}

	sc := translate(&doc.MCell)
	logger.Debug("JSON data model loaded.",
		"species", len(sc.Species), "objects", len(sc.Objects))
	return sc, nil
}

// translate converts the JSON-specific schema into the agnostic model.
func translate(dm *mcellDocument) *config.Scenario {
	sc := &config.Scenario{}

	if dm.DefineMolecules != nil {
		for _, e := range dm.DefineMolecules.MoleculeList {
			sc.Species = append(sc.Species, config.SpeciesDef{
				Name:              e.MolName,
				DiffusionConstant: string(e.DiffusionConstant),
				Type:              e.MolType,
				ExportViz:         e.ExportViz,
			})
		}
	}

	if dm.DefineReactions != nil {
		for _, e := range dm.DefineReactions.ReactionList {
			sc.Reactions = append(sc.Reactions, config.ReactionDef{
				Name:      e.RxnName,
				FwdRate:   string(e.FwdRate),
				BkwdRate:  string(e.BkwdRate),
				Reactants: e.Reactants,
				Products:  e.Products,
			})
		}
	}

	if dm.GeometricalObjects != nil {
		for _, e := range dm.GeometricalObjects.ObjectList {
			obj := config.ObjectDef{
				Name:     e.Name,
				Vertices: e.VertexList,
				Faces:    e.ElementConnections,
			}
			for _, r := range e.DefineSurfaceRegions {
				obj.Regions = append(obj.Regions, config.RegionDef{
					Name:            r.Name,
					IncludeElements: r.IncludeElements,
				})
			}
			sc.Objects = append(sc.Objects, obj)
		}
	}

	if dm.DefineSurfaceClasses != nil {
		for _, e := range dm.DefineSurfaceClasses.SurfaceClassList {
			class := config.SurfaceClassDef{Name: e.Name}
			for _, p := range e.SurfaceClassPropList {
				class.Properties = append(class.Properties, config.SurfacePropertyDef{
					AffectedMols: p.AffectedMols,
					Molecule:     p.Molecule,
					ClassType:    p.SurfClassType,
				})
			}
			sc.SurfaceClasses = append(sc.SurfaceClasses, class)
		}
	}

	if dm.ModifySurfaceRegions != nil {
		for _, e := range dm.ModifySurfaceRegions.ModifySurfaceRegionsList {
			sc.ModifySurfaceRegions = append(sc.ModifySurfaceRegions, config.SurfaceRegionDef{
				ObjectName:       e.ObjectName,
				RegionName:       e.RegionName,
				SurfaceClassName: e.SurfClassName,
			})
		}
	}

	if dm.ReleaseSites != nil {
		for _, e := range dm.ReleaseSites.ReleaseSiteList {
			sc.ReleaseSites = append(sc.ReleaseSites, config.ReleaseSiteDef{
				Name:       e.Name,
				ObjectExpr: e.ObjectExpr,
				Molecule:   e.Molecule,
				Quantity:   string(e.Quantity),
				Orient:     e.Orient,
			})
		}
	}

	if dm.ReactionDataOutput != nil {
		for _, e := range dm.ReactionDataOutput.ReactionOutputList {
			sc.Counts = append(sc.Counts, config.CountDef{
				Molecule:   e.MoleculeName,
				Location:   e.CountLocation,
				ObjectName: e.ObjectName,
				RegionName: e.RegionName,
			})
		}
	}

	if dm.VizOutput != nil {
		sc.Viz = config.VizDef{ExportAll: dm.VizOutput.ExportAll}
	}

	if dm.Initialization != nil {
		sc.Init = config.InitDef{
			Iterations: string(dm.Initialization.Iterations),
			TimeStep:   string(dm.Initialization.TimeStep),
		}
	}

	return sc
}
