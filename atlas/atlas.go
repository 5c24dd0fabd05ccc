// Package atlas is a small catalogue of named diagrams: classical knots and
// the singular knots obtained from short chord words. Every entry is built
// through diagram.New, so the catalogue doubles as a fixture set for tests.
package atlas

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvknot/diagram"
)

// ErrUnknownName is returned by Lookup for a name not in the catalogue.
var ErrUnknownName = errors.New("atlas: unknown diagram name")

func x(outUnder, outOver, inUnder, inOver int, positive bool) diagram.Crossing {
	return diagram.Transverse{OutUnder: outUnder, OutOver: outOver, InUnder: inUnder, InOver: inOver, Positive: positive}
}

func o(in0, in1, out0, out1 int) diagram.Crossing {
	return diagram.Singular{Entering: [2]int{in0, in1}, Exiting: [2]int{out0, out1}}
}

// Unknot is the crossing-free circle.
func Unknot() diagram.Diagram {
	return diagram.MustNew(nil, []diagram.Strand{diagram.FreeLoop()})
}

// Trefoil is the right-handed trefoil, three positive crossings.
func Trefoil() diagram.Diagram {
	return diagram.MustNew(
		[]diagram.Crossing{
			x(0, 3, 5, 2, true),
			x(4, 1, 3, 0, true),
			x(2, 5, 1, 4, true),
		},
		diagram.Sequence(0, 1, 2, 0, 1, 2, 0),
	)
}

// TrefoilMirror is the left-handed trefoil, traversed in the opposite direction.
func TrefoilMirror() diagram.Diagram {
	return diagram.MustNew(
		[]diagram.Crossing{
			x(2, 5, 3, 0, false),
			x(0, 3, 1, 4, false),
			x(4, 1, 5, 2, false),
		},
		[]diagram.Strand{
			diagram.Arc(1, 0), diagram.Arc(2, 1), diagram.Arc(0, 2),
			diagram.Arc(1, 0), diagram.Arc(2, 1), diagram.Arc(0, 2),
		},
	)
}

// Hopf is the positive Hopf link.
func Hopf() diagram.Diagram {
	return diagram.MustNew(
		[]diagram.Crossing{
			x(2, 0, 3, 1, true),
			x(1, 3, 0, 2, true),
		},
		diagram.Sequence(0, 1, 0, 1, 0),
	)
}

// Pentagram is a five-crossing knot with all crossings negative.
func Pentagram() diagram.Diagram {
	return diagram.MustNew(
		[]diagram.Crossing{
			x(5, 0, 4, 9, false),
			x(1, 6, 0, 5, false),
			x(7, 4, 6, 3, false),
			x(3, 8, 2, 7, false),
			x(9, 2, 8, 1, false),
		},
		diagram.Sequence(0, 1, 4, 3, 2, 0, 1, 2, 3, 4, 0),
	)
}

// TwoChordWord is the chord word whose diagram is TwoChord.
func TwoChordWord() []int { return []int{0, 1, 0, 1} }

// TwoChord is the singular trefoil with two double points.
func TwoChord() diagram.Diagram {
	return diagram.MustNew(
		[]diagram.Crossing{
			o(5, 2, 0, 3),
			o(3, 0, 4, 1),
			x(2, 5, 1, 4, true),
		},
		diagram.Sequence(0, 1, 2, 0, 1, 2, 0),
	)
}

// Chord3a has three double points on the trefoil projection.
func Chord3a() diagram.Diagram {
	return diagram.MustNew(
		[]diagram.Crossing{
			o(2, 5, 3, 0),
			o(0, 3, 1, 4),
			o(4, 1, 5, 2),
		},
		diagram.Sequence(0, 1, 2, 0, 1, 2, 0),
	)
}

// Chord3b has three double points and one ordinary crossing.
func Chord3b() diagram.Diagram {
	return diagram.MustNew(
		[]diagram.Crossing{
			o(4, 7, 5, 0),
			o(0, 3, 1, 4),
			x(2, 7, 1, 6, true),
			o(5, 2, 6, 3),
		},
		diagram.Sequence(0, 1, 2, 3, 1, 0, 3, 2, 0),
	)
}

// Chord4a has four double points and two ordinary crossings.
func Chord4a() diagram.Diagram {
	return diagram.MustNew(
		[]diagram.Crossing{
			o(4, 11, 5, 0),
			x(8, 1, 7, 0, true),
			o(1, 6, 2, 7),
			o(2, 9, 3, 10),
			x(11, 4, 10, 3, true),
			o(8, 5, 9, 6),
		},
		diagram.Sequence(0, 1, 2, 3, 4, 0, 5, 2, 1, 5, 3, 4, 0),
	)
}

// Chord4b has four double points and one ordinary crossing.
func Chord4b() diagram.Diagram {
	return diagram.MustNew(
		[]diagram.Crossing{
			o(4, 9, 5, 0),
			x(1, 8, 0, 7, true),
			o(6, 1, 7, 2),
			o(2, 5, 3, 6),
			o(8, 3, 9, 4),
		},
		diagram.Sequence(0, 1, 2, 3, 4, 0, 3, 2, 1, 4, 0),
	)
}

// Chord4c has four double points and one ordinary crossing.
func Chord4c() diagram.Diagram {
	return diagram.MustNew(
		[]diagram.Crossing{
			o(9, 4, 0, 5),
			o(5, 0, 6, 1),
			o(1, 6, 2, 7),
			x(8, 3, 7, 2, true),
			o(3, 8, 4, 9),
		},
		diagram.Sequence(0, 1, 2, 3, 4, 0, 1, 2, 3, 4, 0),
	)
}

// Chord4d has four double points and one ordinary crossing.
func Chord4d() diagram.Diagram {
	return diagram.MustNew(
		[]diagram.Crossing{
			o(9, 4, 0, 5),
			o(7, 0, 8, 1),
			o(1, 6, 2, 7),
			o(5, 2, 6, 3),
			x(4, 9, 3, 8, true),
		},
		diagram.Sequence(0, 1, 2, 3, 4, 0, 3, 2, 1, 4, 0),
	)
}

// Chord4e has four double points and no ordinary crossings.
func Chord4e() diagram.Diagram {
	return diagram.MustNew(
		[]diagram.Crossing{
			o(7, 2, 0, 3),
			o(0, 5, 1, 6),
			o(4, 1, 5, 2),
			o(3, 6, 4, 7),
		},
		diagram.Sequence(0, 1, 2, 0, 3, 2, 1, 3, 0),
	)
}

// Chord4f has four double points and two ordinary crossings.
func Chord4f() diagram.Diagram {
	return diagram.MustNew(
		[]diagram.Crossing{
			o(2, 11, 3, 0),
			x(1, 6, 0, 5, true),
			o(6, 1, 7, 2),
			x(4, 9, 3, 8, true),
			o(9, 4, 10, 5),
			o(7, 10, 8, 11),
		},
		diagram.Sequence(0, 1, 2, 0, 3, 4, 1, 2, 5, 3, 4, 5, 0),
	)
}

// Chord4g has four double points and two ordinary crossings.
func Chord4g() diagram.Diagram {
	return diagram.MustNew(
		[]diagram.Crossing{
			o(8, 11, 9, 0),
			o(0, 3, 1, 4),
			o(4, 1, 5, 2),
			x(3, 6, 2, 5, true),
			x(7, 10, 6, 9, true),
			o(10, 7, 11, 8),
		},
		diagram.Sequence(0, 1, 2, 3, 1, 2, 3, 4, 5, 0, 4, 5, 0),
	)
}

var registry = map[string]func() diagram.Diagram{
	"unknot":         Unknot,
	"trefoil":        Trefoil,
	"trefoil-mirror": TrefoilMirror,
	"hopf":           Hopf,
	"pentagram":      Pentagram,
	"two-chord":      TwoChord,
	"chord-3a":       Chord3a,
	"chord-3b":       Chord3b,
	"chord-4a":       Chord4a,
	"chord-4b":       Chord4b,
	"chord-4c":       Chord4c,
	"chord-4d":       Chord4d,
	"chord-4e":       Chord4e,
	"chord-4f":       Chord4f,
	"chord-4g":       Chord4g,
}

// Names returns every catalogue name in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Lookup returns the diagram registered under name.
func Lookup(name string) (diagram.Diagram, error) {
	build, ok := registry[name]
	if !ok {
		return diagram.Diagram{}, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}

	return build(), nil
}
