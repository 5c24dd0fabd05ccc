package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvknot/atlas"
	"github.com/katalvlaran/lvknot/diagram"
	"github.com/katalvlaran/lvknot/render"
)

func TestMermaid(t *testing.T) {
	want := "graph TD\n" +
		"  C0[\"0: X+\"]\n" +
		"  C1[\"1: X+\"]\n" +
		"  C0 -->|0| C1\n" +
		"  C1 -->|1| C0\n" +
		"  C0 -->|2| C1\n" +
		"  C1 -->|3| C0\n"
	assert.Equal(t, want, render.Mermaid(atlas.Hopf()))

	assert.Equal(t, "graph TD\n  L0((\"loop 0\"))\n", render.Mermaid(atlas.Unknot()))
	assert.Equal(t, "graph TD\n", render.Mermaid(diagram.Diagram{}))
}

func TestKind(t *testing.T) {
	assert.Equal(t, "X+", render.Kind(diagram.Transverse{Positive: true}))
	assert.Equal(t, "X-", render.Kind(diagram.Transverse{}))
	assert.Equal(t, "O", render.Kind(diagram.Singular{}))
	assert.Equal(t, "M", render.Kind(diagram.Midpoint{}))
}

func TestText(t *testing.T) {
	want := "crossings=2 strands=4 writhe=2 singular=0\n" +
		"crossing 0 X+(out-under=2 out-over=0 in-under=3 in-over=1)\n" +
		"crossing 1 X+(out-under=1 out-over=3 in-under=0 in-over=2)\n" +
		"strand 0 0->1\n" +
		"strand 1 1->0\n" +
		"strand 2 0->1\n" +
		"strand 3 1->0\n"
	assert.Equal(t, want, render.Text(atlas.Hopf()))

	got := render.Text(atlas.TwoChord())
	assert.Contains(t, got, "singular=2")
	assert.Contains(t, got, "O(in=")
}

func TestYAML_RoundTrip(t *testing.T) {
	for _, name := range atlas.Names() {
		t.Run(name, func(t *testing.T) {
			d, err := atlas.Lookup(name)
			require.NoError(t, err)

			out, err := render.YAML(d)
			require.NoError(t, err)
			back, err := render.ParseYAML([]byte(out))
			require.NoError(t, err)
			assert.Equal(t, d.Crossings(), back.Crossings())
			assert.Equal(t, d.Strands(), back.Strands())
		})
	}
}

func TestYAML_Shape(t *testing.T) {
	out, err := render.YAML(atlas.Hopf())
	require.NoError(t, err)
	assert.Contains(t, out, "slots: [2, 0, 3, 1]")
	assert.Contains(t, out, "from: 0")

	out, err = render.YAML(atlas.Unknot())
	require.NoError(t, err)
	assert.Contains(t, out, "loop: true")
	assert.NotContains(t, out, "from:")
}

func TestParseYAML_Rejects(t *testing.T) {
	tests := map[string]string{
		"syntax":        "crossings: [",
		"unknown kind":  "crossings:\n  - kind: Z\n    slots: [0, 0, 0, 0]\n",
		"slot count":    "crossings:\n  - kind: M\n    slots: [0, 0, 0, 0]\n",
		"half a strand": "strands:\n  - from: 0\n",
		"loop with end": "strands:\n  - loop: true\n    to: 1\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := render.ParseYAML([]byte(doc))
			assert.ErrorIs(t, err, render.ErrBadDocument)
		})
	}

	_, err := render.ParseYAML([]byte("strands:\n  - from: 0\n    to: 0\n"))
	assert.ErrorIs(t, err, diagram.ErrStructuralInconsistency)
}
