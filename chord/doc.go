// Package chord converts chord diagrams (Gauss words) into singular knot
// diagrams.
//
// A word of length 2n over the labels 0..n-1 describes n chords of a circle:
// each label occurs exactly twice and marks the two ends of one chord. Such a
// word is realised as a singular knot whose double points are the chords,
// using a rubber-band construction that keeps every other crossing
// transverse. The result feeds straight into jones.Polynomial.
//
// Malformed words (a label used other than twice, a label outside 0..n-1,
// an empty word, or two equal neighbours, the last and first letters
// counting as neighbours) do not raise errors: New returns the degenerate
// chord, whose diagram is a single free loop. Validate tells callers which
// rule failed.
//
//	c := chord.New([]int{0, 1, 0, 1})
//	d, err := c.ToDiagram()    // 8 crossings, 2 of them singular
//	p, err := jones.Polynomial(d) // -1 + t + t^3 - t^4
package chord
