package engine

import "github.com/vk/simscene/internal/model"

// Engine is the construction API a bound scenario is written into.
// Implementations may build internal simulation state, forward to a
// remote process, or just record; the binder does not care.
//
// AddCount scope is encoded by its nil arguments: (spec, nil, nil) counts
// world-wide, (spec, obj, nil) per object, (spec, obj, reg) per region.
type Engine interface {
	AddSpecies(*model.Species) error
	AddReaction(*model.Reaction) error
	AddMeshObject(*model.MeshObject) error
	AddRegion(*model.Region) error
	AssignSurfaceClass(*model.SurfaceClass, *model.Region) error
	Release(*model.ReleaseSite) error
	AddCount(spec *model.Species, obj *model.MeshObject, reg *model.Region) error
	AddViz([]*model.Species) error
	SetIterations(int) error
	SetTimeStep(float64) error
}
