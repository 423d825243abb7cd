package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/simscene/internal/model"
)

func TestTable_LookupMissFailsLoudly(t *testing.T) {
	tbl := NewTable[*model.Species]("species")
	tbl.Add("A", &model.Species{Name: "A"})

	_, err := tbl.Lookup("B")
	require.Error(t, err)

	var unresolved *UnresolvedReferenceError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, "species", unresolved.Namespace)
	assert.Equal(t, "B", unresolved.Name)
	assert.Contains(t, err.Error(), `no species named "B"`)
}

func TestTable_AddReplacesExisting(t *testing.T) {
	tbl := NewTable[*model.SurfaceClass]("surface class")
	tbl.Add("sc", &model.SurfaceClass{Name: "sc", Type: "reflective"})
	tbl.Add("sc", &model.SurfaceClass{Name: "sc", Type: "absorptive"})

	sc, err := tbl.Lookup("sc")
	require.NoError(t, err)
	assert.Equal(t, "absorptive", sc.Type)
	assert.Equal(t, 1, tbl.Len())
}

// TestSet_NamespacesAreIndependent verifies that the same name can live in
// two namespaces without interference.
func TestSet_NamespacesAreIndependent(t *testing.T) {
	set := NewSet()
	set.Species.Add("Cell", &model.Species{Name: "Cell"})

	_, err := set.Meshes.Lookup("Cell")
	require.Error(t, err)

	_, err = set.Species.Lookup("Cell")
	require.NoError(t, err)
}
