package atlas_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvknot/atlas"
	"github.com/katalvlaran/lvknot/diagram"
)

func TestLookup_AllNames(t *testing.T) {
	names := atlas.Names()
	require.Len(t, names, 15)
	assert.True(t, sort.StringsAreSorted(names))

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			d, err := atlas.Lookup(name)
			require.NoError(t, err)
			_, err = diagram.New(d.Crossings(), d.Strands())
			require.NoError(t, err)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := atlas.Lookup("figure-eight")
	assert.ErrorIs(t, err, atlas.ErrUnknownName)
}

func TestShapes(t *testing.T) {
	tests := []struct {
		name      string
		d         diagram.Diagram
		crossings int
		singular  int
		writhe    int
	}{
		{"trefoil", atlas.Trefoil(), 3, 0, 3},
		{"trefoil-mirror", atlas.TrefoilMirror(), 3, 0, -3},
		{"hopf", atlas.Hopf(), 2, 0, 2},
		{"pentagram", atlas.Pentagram(), 5, 0, -5},
		{"two-chord", atlas.TwoChord(), 3, 2, 1},
		{"chord-3a", atlas.Chord3a(), 3, 3, 0},
		{"chord-3b", atlas.Chord3b(), 4, 3, 1},
		{"chord-4a", atlas.Chord4a(), 6, 4, 2},
		{"chord-4e", atlas.Chord4e(), 4, 4, 0},
		{"chord-4g", atlas.Chord4g(), 6, 4, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.crossings, tc.d.NumCrossings())
			assert.Equal(t, tc.singular, tc.d.NumSingular())
			assert.Equal(t, tc.writhe, tc.d.Writhe())
			assert.Equal(t, 2*tc.d.NumCrossings(), tc.d.NumStrands())
		})
	}
}

func TestTwoChordWord(t *testing.T) {
	w := atlas.TwoChordWord()
	assert.Equal(t, []int{0, 1, 0, 1}, w)
	w[0] = 7
	assert.Equal(t, []int{0, 1, 0, 1}, atlas.TwoChordWord())
}
