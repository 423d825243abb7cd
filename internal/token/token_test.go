package token

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/simscene/internal/model"
)

func TestParseMolecule(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		wantName   string
		wantOrient model.Orientation
	}{
		{name: "up suffix", input: "A'", wantName: "A", wantOrient: model.OrientUp},
		{name: "down suffix", input: "B,", wantName: "B", wantOrient: model.OrientDown},
		{name: "mix suffix", input: "C;", wantName: "C", wantOrient: model.OrientMix},
		{name: "no suffix", input: "D", wantName: "D", wantOrient: model.OrientMix},
		{name: "multi-char name", input: "Ca_bound'", wantName: "Ca_bound", wantOrient: model.OrientUp},
		{name: "digits in name", input: "ATP2,", wantName: "ATP2", wantOrient: model.OrientDown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			name, orient, err := ParseMolecule(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, name)
			assert.Equal(t, tc.wantOrient, orient)
		})
	}
}

func TestParseMolecule_Malformed(t *testing.T) {
	for _, input := range []string{"", "  ", "'", "A B", "A''", "A'B"} {
		t.Run(input, func(t *testing.T) {
			_, _, err := ParseMolecule(input)
			require.Error(t, err)

			var perr *ParseError
			assert.True(t, errors.As(err, &perr), "want *ParseError, got %T", err)
		})
	}
}

func TestParseObjectExpr(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		wantObject string
		wantRegion string
	}{
		{name: "bare object", input: "Cell", wantObject: "Cell", wantRegion: ""},
		{name: "region scoped", input: "Cell[Top]", wantObject: "Cell", wantRegion: "Top"},
		{name: "underscored names", input: "outer_wall[pore_1]", wantObject: "outer_wall", wantRegion: "pore_1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			object, region, err := ParseObjectExpr(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.wantObject, object)
			assert.Equal(t, tc.wantRegion, region)
		})
	}
}

func TestParseObjectExpr_Malformed(t *testing.T) {
	for _, input := range []string{"", "Cell[Top", "Cell[]", "[Top]", "Cell]Top[", "Cell[Top]extra"} {
		t.Run(input, func(t *testing.T) {
			_, _, err := ParseObjectExpr(input)
			require.Error(t, err)

			var perr *ParseError
			assert.True(t, errors.As(err, &perr), "want *ParseError, got %T", err)
		})
	}
}
