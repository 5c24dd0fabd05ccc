// SPDX-License-Identifier: MIT
// Package: lvknot/diagram
//
// diagram.go — the immutable Diagram value, its constructor and accessors.

package diagram

import (
	"fmt"
	"strings"
)

// Diagram is a validated, immutable knot or link diagram.
//
// The zero value is the empty diagram (no crossings, no strands), which is
// consistent and evaluates to the unknot.
type Diagram struct {
	crossings []Crossing
	strands   []Strand
}

// New validates crossings and strands and returns the diagram they describe.
// Both slices are copied; the caller may reuse them.
//
// Returns ErrStructuralInconsistency (wrapped with the offending index) when
// the two lists do not describe the same diagram.
func New(crossings []Crossing, strands []Strand) (Diagram, error) {
	d := Diagram{
		crossings: append([]Crossing(nil), crossings...),
		strands:   append([]Strand(nil), strands...),
	}
	if err := d.validate(); err != nil {
		return Diagram{}, err
	}

	return d, nil
}

// MustNew is New that panics on error. Intended for fixed, known-good
// diagrams such as the atlas and tests.
func MustNew(crossings []Crossing, strands []Strand) Diagram {
	d, err := New(crossings, strands)
	if err != nil {
		panic(err)
	}

	return d
}

// NumCrossings returns the number of crossings (midpoints included).
func (d Diagram) NumCrossings() int { return len(d.crossings) }

// NumStrands returns the number of strands (free loops included).
func (d Diagram) NumStrands() int { return len(d.strands) }

// Crossing returns crossing i. It panics if i is out of range, like a slice index.
func (d Diagram) Crossing(i int) Crossing { return d.crossings[i] }

// Strand returns strand i. It panics if i is out of range, like a slice index.
func (d Diagram) Strand(i int) Strand { return d.strands[i] }

// Crossings returns a copy of the crossing list.
func (d Diagram) Crossings() []Crossing { return append([]Crossing(nil), d.crossings...) }

// Strands returns a copy of the strand list.
func (d Diagram) Strands() []Strand { return append([]Strand(nil), d.strands...) }

// IsSingular reports whether any crossing is Singular.
func (d Diagram) IsSingular() bool {
	for _, c := range d.crossings {
		if _, ok := c.(Singular); ok {
			return true
		}
	}

	return false
}

// HasMidpoints reports whether any crossing is a Midpoint.
func (d Diagram) HasMidpoints() bool {
	for _, c := range d.crossings {
		if _, ok := c.(Midpoint); ok {
			return true
		}
	}

	return false
}

// NumSingular returns the number of singular crossings.
func (d Diagram) NumSingular() int {
	n := 0
	for _, c := range d.crossings {
		if _, ok := c.(Singular); ok {
			n++
		}
	}

	return n
}

// Writhe returns the sum of crossing signs over all transverse crossings.
func (d Diagram) Writhe() int {
	w := 0
	for _, c := range d.crossings {
		if t, ok := c.(Transverse); ok {
			if t.Positive {
				w++
			} else {
				w--
			}
		}
	}

	return w
}

// String renders the diagram as "crossings: [...] strands: [...]".
func (d Diagram) String() string {
	var sb strings.Builder
	sb.WriteString("crossings: [")
	for i, c := range d.crossings {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d:%s", i, c)
	}
	sb.WriteString("] strands: [")
	for i, s := range d.strands {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d:%s", i, s)
	}
	sb.WriteString("]")

	return sb.String()
}
