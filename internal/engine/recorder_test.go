package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/simscene/internal/model"
)

// TestRecorder_CommitPublishesJournal verifies that commands stay
// invisible until Commit and keep their issue order afterwards.
func TestRecorder_CommitPublishesJournal(t *testing.T) {
	rec := NewRecorder()
	spec := &model.Species{Name: "A", DiffusionConstant: 1e-6}

	require.NoError(t, rec.AddSpecies(spec))
	require.NoError(t, rec.SetIterations(100))

	assert.Empty(t, rec.Commands(), "pending commands must not be visible")
	assert.Equal(t, 2, rec.Pending())

	rec.Commit()

	cmds := rec.Commands()
	require.Len(t, cmds, 2)
	assert.Equal(t, OpAddSpecies, cmds[0].Op)
	assert.Equal(t, OpSetIterations, cmds[1].Op)
	assert.Equal(t, 0, rec.Pending())
}

// TestRecorder_AbortedRunLeavesNothing models the fail-fast contract: a
// binder that errors out never commits, so nothing escapes.
func TestRecorder_AbortedRunLeavesNothing(t *testing.T) {
	rec := NewRecorder()
	require.NoError(t, rec.AddSpecies(&model.Species{Name: "A"}))
	// No Commit: the import failed partway.

	assert.Empty(t, rec.Commands())
}

func TestRecorder_Summary(t *testing.T) {
	rec := NewRecorder()
	spec := &model.Species{Name: "A", DiffusionConstant: 1e-6}
	mesh := &model.MeshObject{Name: "Cell"}
	reg := mesh.AddRegion("Top", []int{0, 1})

	require.NoError(t, rec.AddSpecies(spec))
	require.NoError(t, rec.Release(&model.ReleaseSite{
		Name: "rs", Object: mesh, Region: reg, Species: spec, Quantity: 100,
	}))
	require.NoError(t, rec.AddCount(spec, mesh, nil))
	rec.Commit()

	var sb strings.Builder
	rec.Summary(&sb)
	out := sb.String()

	assert.Contains(t, out, "species     A")
	assert.Contains(t, out, "release     100 x A into Cell[Top]")
	assert.Contains(t, out, "count       A @ Cell")
}
