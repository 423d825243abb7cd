package binder

import (
	"context"
	"fmt"

	"github.com/vk/simscene/internal/config"
	"github.com/vk/simscene/internal/ctxlog"
	"github.com/vk/simscene/internal/model"
)

// bindGeometry builds mesh objects and their nested regions. Face-index
// bounds are not validated here; that is the engine's concern. Region
// names are recorded as given — duplicates are legal, and lookup resolves
// to the first declaration-order match.
func (b *Binder) bindGeometry(ctx context.Context, sc *config.Scenario) error {
	logger := ctxlog.FromContext(ctx)

	for _, def := range sc.Objects {
		mesh := &model.MeshObject{
			Name:     def.Name,
			Vertices: def.Vertices,
			Faces:    def.Faces,
		}
		b.reg.Meshes.Add(mesh.Name, mesh)
		if err := b.eng.AddMeshObject(mesh); err != nil {
			return fmt.Errorf("object %q: %w", mesh.Name, err)
		}

		for _, regDef := range def.Regions {
			reg := mesh.AddRegion(regDef.Name, regDef.IncludeElements)
			if err := b.eng.AddRegion(reg); err != nil {
				return fmt.Errorf("object %q region %q: %w", mesh.Name, reg.Name, err)
			}
		}
		logger.Debug("Bound mesh object.",
			"name", mesh.Name,
			"vertices", len(mesh.Vertices),
			"faces", len(mesh.Faces),
			"regions", len(mesh.Regions),
		)
	}

	logger.Info("Geometry pass complete.", "count", b.reg.Meshes.Len())
	return nil
}
