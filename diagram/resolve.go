// SPDX-License-Identifier: MIT
// Package: lvknot/diagram
//
// resolve.go — expansion of singular crossings (Vassiliev skein relation).
//
// A diagram with k singular crossings expands into 2^k non-singular
// diagrams, each carrying the sign (-1)^(number of negative resolutions).
// Resolve splits them into the positively and the negatively signed halves,
// so that for any invariant V:
//
//	V(d) = Σ V(pos) - Σ V(neg)

package diagram

// Resolve expands every singular crossing. A non-singular diagram resolves
// to itself: pos = [d], neg = [].
//
// The first singular crossing (lowest index) is split into its positive and
// negative versions, and the process recurses on both; a negative
// resolution of a negatively signed diagram lands in pos.
func (d Diagram) Resolve() (pos, neg []Diagram, err error) {
	idx := -1
	var s Singular
	for i, c := range d.crossings {
		if sc, ok := c.(Singular); ok {
			idx, s = i, sc
			break
		}
	}
	if idx < 0 {
		return []Diagram{d}, nil, nil
	}

	up := newWorkspace(d)
	up.crossings[idx] = s.PositiveVersion()
	upD, err := up.build()
	if err != nil {
		return nil, nil, err
	}
	down := newWorkspace(d)
	down.crossings[idx] = s.NegativeVersion()
	downD, err := down.build()
	if err != nil {
		return nil, nil, err
	}

	a, b, err := upD.Resolve()
	if err != nil {
		return nil, nil, err
	}
	c, e, err := downD.Resolve()
	if err != nil {
		return nil, nil, err
	}

	return append(a, e...), append(b, c...), nil
}
