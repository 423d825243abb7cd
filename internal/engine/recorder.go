package engine

import (
	"fmt"
	"io"

	"github.com/vk/simscene/internal/model"
)

// Op identifies one kind of construction command.
type Op string

const (
	OpAddSpecies         Op = "add_species"
	OpAddReaction        Op = "add_reaction"
	OpAddMeshObject      Op = "add_mesh_object"
	OpAddRegion          Op = "add_region"
	OpAssignSurfaceClass Op = "assign_surface_class"
	OpRelease            Op = "release"
	OpAddCount           Op = "add_count"
	OpAddViz             Op = "add_viz"
	OpSetIterations      Op = "set_iterations"
	OpSetTimeStep        Op = "set_time_step"
)

// Command is one journaled construction call. Only the fields relevant to
// the Op are populated.
type Command struct {
	Op           Op
	Species      *model.Species
	Reaction     *model.Reaction
	Mesh         *model.MeshObject
	Region       *model.Region
	SurfaceClass *model.SurfaceClass
	Release      *model.ReleaseSite
	VizSpecies   []*model.Species
	Iterations   int
	TimeStep     float64
}

// Recorder is an in-memory Engine. Commands accumulate in a pending
// journal and become visible through Commands only after Commit, giving
// the import its all-or-nothing property.
type Recorder struct {
	pending   []Command
	committed []Command
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(c Command) error {
	r.pending = append(r.pending, c)
	return nil
}

// AddSpecies implements Engine.
func (r *Recorder) AddSpecies(s *model.Species) error {
	return r.record(Command{Op: OpAddSpecies, Species: s})
}

// AddReaction implements Engine.
func (r *Recorder) AddReaction(rx *model.Reaction) error {
	return r.record(Command{Op: OpAddReaction, Reaction: rx})
}

// AddMeshObject implements Engine.
func (r *Recorder) AddMeshObject(m *model.MeshObject) error {
	return r.record(Command{Op: OpAddMeshObject, Mesh: m})
}

// AddRegion implements Engine.
func (r *Recorder) AddRegion(reg *model.Region) error {
	return r.record(Command{Op: OpAddRegion, Region: reg})
}

// AssignSurfaceClass implements Engine.
func (r *Recorder) AssignSurfaceClass(sc *model.SurfaceClass, reg *model.Region) error {
	return r.record(Command{Op: OpAssignSurfaceClass, SurfaceClass: sc, Region: reg})
}

// Release implements Engine.
func (r *Recorder) Release(site *model.ReleaseSite) error {
	return r.record(Command{Op: OpRelease, Release: site})
}

// AddCount implements Engine.
func (r *Recorder) AddCount(spec *model.Species, obj *model.MeshObject, reg *model.Region) error {
	return r.record(Command{Op: OpAddCount, Species: spec, Mesh: obj, Region: reg})
}

// AddViz implements Engine.
func (r *Recorder) AddViz(specs []*model.Species) error {
	return r.record(Command{Op: OpAddViz, VizSpecies: specs})
}

// SetIterations implements Engine.
func (r *Recorder) SetIterations(n int) error {
	return r.record(Command{Op: OpSetIterations, Iterations: n})
}

// SetTimeStep implements Engine.
func (r *Recorder) SetTimeStep(dt float64) error {
	return r.record(Command{Op: OpSetTimeStep, TimeStep: dt})
}

// Commit publishes the pending journal. Call it only after a fully
// successful bind; an aborted import simply never commits.
func (r *Recorder) Commit() {
	r.committed = append(r.committed, r.pending...)
	r.pending = nil
}

// Commands returns the committed journal in issue order.
func (r *Recorder) Commands() []Command {
	return r.committed
}

// Pending reports how many commands are journaled but not yet committed.
func (r *Recorder) Pending() int {
	return len(r.pending)
}

// Summary writes a human-readable construction plan of the committed
// journal, one line per command.
func (r *Recorder) Summary(w io.Writer) {
	for _, c := range r.committed {
		switch c.Op {
		case OpAddSpecies:
			fmt.Fprintf(w, "species     %s D=%g surface=%t\n",
				c.Species.Name, c.Species.DiffusionConstant, c.Species.Surface)
		case OpAddReaction:
			fmt.Fprintf(w, "reaction    %s rate=%g\n", reactionLabel(c.Reaction), c.Reaction.FwdRate)
		case OpAddMeshObject:
			fmt.Fprintf(w, "mesh        %s vertices=%d faces=%d regions=%d\n",
				c.Mesh.Name, len(c.Mesh.Vertices), len(c.Mesh.Faces), len(c.Mesh.Regions))
		case OpAddRegion:
			fmt.Fprintf(w, "region      %s[%s] faces=%d\n",
				c.Region.Object.Name, c.Region.Name, len(c.Region.Elements))
		case OpAssignSurfaceClass:
			fmt.Fprintf(w, "surface     %s -> %s[%s]\n",
				c.SurfaceClass.Name, c.Region.Object.Name, c.Region.Name)
		case OpRelease:
			target := c.Release.Object.Name
			if c.Release.Region != nil {
				target = fmt.Sprintf("%s[%s]", target, c.Release.Region.Name)
			}
			fmt.Fprintf(w, "release     %d x %s into %s\n",
				c.Release.Quantity, c.Release.Species.Name, target)
		case OpAddCount:
			scope := "world"
			switch {
			case c.Region != nil:
				scope = fmt.Sprintf("%s[%s]", c.Mesh.Name, c.Region.Name)
			case c.Mesh != nil:
				scope = c.Mesh.Name
			}
			fmt.Fprintf(w, "count       %s @ %s\n", c.Species.Name, scope)
		case OpAddViz:
			fmt.Fprintf(w, "viz         %d species\n", len(c.VizSpecies))
		case OpSetIterations:
			fmt.Fprintf(w, "iterations  %d\n", c.Iterations)
		case OpSetTimeStep:
			fmt.Fprintf(w, "time_step   %g\n", c.TimeStep)
		}
	}
}

func reactionLabel(rx *model.Reaction) string {
	if rx.Name != "" {
		return rx.Name
	}
	label := ""
	for i, ref := range rx.Reactants {
		if i > 0 {
			label += " + "
		}
		label += ref.Species.Name
	}
	return label
}
