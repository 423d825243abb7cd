package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFindRegion_ScansAllRegions verifies that the lookup examines every
// region before giving up, including matches declared last.
func TestFindRegion_ScansAllRegions(t *testing.T) {
	m := &MeshObject{Name: "Cell"}
	m.AddRegion("Top", []int{0, 1})
	m.AddRegion("Side", []int{2})
	m.AddRegion("Bottom", []int{3, 4})

	last := m.FindRegion("Bottom")
	require.NotNil(t, last)
	assert.Equal(t, []int{3, 4}, last.Elements)
	assert.Same(t, m, last.Object)

	assert.Nil(t, m.FindRegion("Missing"))
}

// TestFindRegion_DuplicateNamesResolveToFirst pins the declaration-order
// tie-break for duplicate region names.
func TestFindRegion_DuplicateNamesResolveToFirst(t *testing.T) {
	m := &MeshObject{Name: "Cell"}
	first := m.AddRegion("Top", []int{0})
	m.AddRegion("Top", []int{9})

	assert.Same(t, first, m.FindRegion("Top"))
}

func TestOrientation_ZeroValueIsMix(t *testing.T) {
	var o Orientation
	assert.Equal(t, OrientMix, o)
	assert.Equal(t, "mix", o.String())
	assert.Equal(t, "up", OrientUp.String())
	assert.Equal(t, "down", OrientDown.String())
}
