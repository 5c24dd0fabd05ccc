// SPDX-License-Identifier: MIT
// Package: lvknot/diagram
//
// methods_rewrite.go — structure-preserving rewrites on a Diagram.
//
// Every method here:
//   - leaves the receiver untouched;
//   - works on a private workspace copy;
//   - re-validates the result through New before returning it.

package diagram

import (
	"fmt"
	"sort"
)

// transverseAt returns crossing i if it is a Transverse crossing.
func (d Diagram) transverseAt(i int) (Transverse, error) {
	if i < 0 || i >= len(d.crossings) {
		return Transverse{}, fmt.Errorf("%w: crossing %d outside [0,%d)", ErrIndexOutOfRange, i, len(d.crossings))
	}
	switch c := d.crossings[i].(type) {
	case Transverse:
		return c, nil
	case Singular:
		return Transverse{}, fmt.Errorf("crossing %d: %w", i, ErrSingularCrossing)
	default:
		return Transverse{}, fmt.Errorf("crossing %d: %w", i, ErrMidpointCrossing)
	}
}

// FlipSign exchanges over and under at crossing i and negates its sign.
// Strand indices are unchanged.
func (d Diagram) FlipSign(i int) (Diagram, error) {
	c, err := d.transverseAt(i)
	if err != nil {
		return Diagram{}, err
	}
	w := newWorkspace(d)
	w.crossings[i] = c.Flipped()

	return w.build()
}

// RemoveReidemeister1 deletes crossing i and reconnects the strands through
// it: the incoming over strand is joined to the outgoing under strand, and
// the incoming under strand to the outgoing over strand. When one of those
// joins closes on itself the strand becomes a free loop.
//
// The result has one crossing fewer, and one strand fewer per join that did
// not close into a loop.
func (d Diagram) RemoveReidemeister1(i int) (Diagram, error) {
	c, err := d.transverseAt(i)
	if err != nil {
		return Diagram{}, err
	}
	w := newWorkspace(d)

	if c.OutUnder == c.InOver {
		w.strands[c.OutUnder] = FreeLoop()
	} else if err = w.join(c.InOver, c.OutUnder); err != nil {
		return Diagram{}, err
	}

	// The first join may have renumbered or reconnected this crossing.
	c = w.crossings[i].(Transverse)
	if c.OutOver == c.InUnder {
		w.strands[c.OutOver] = FreeLoop()
	} else if err = w.join(c.InUnder, c.OutOver); err != nil {
		return Diagram{}, err
	}

	w.dropCrossing(i)

	return w.build()
}

// join extends strand in to end where strand out ends, then removes out.
func (w *workspace) join(in, out int) error {
	head, tail := w.strands[in], w.strands[out]
	if head.loop || tail.loop {
		return fmt.Errorf("%w: cannot join free loops %d and %d", ErrStructuralInconsistency, in, out)
	}
	w.strands[in] = Arc(head.From, tail.To)
	if err := w.replaceInput(tail.To, out, in); err != nil {
		return err
	}
	w.dropStrand(out)

	return nil
}

// SpliceTraversed removes a set of strands that a single walk has
// traversed, together with the crossings the walk passed through.
//
// A crossing entered once by the walk keeps one incoming and one outgoing
// strand that the walk did not use; those two are joined into one (or
// become a free loop when they are the same strand). A crossing entered
// twice is removed outright.
func (d Diagram) SpliceTraversed(strands []int) (Diagram, error) {
	for _, s := range strands {
		if s < 0 || s >= len(d.strands) {
			return Diagram{}, fmt.Errorf("%w: strand %d outside [0,%d)", ErrIndexOutOfRange, s, len(d.strands))
		}
	}
	edges := descendingUnique(strands)

	entries := make(map[int]int)
	for _, e := range edges {
		if s := d.strands[e]; !s.loop {
			entries[s.To]++
		}
	}
	touched := make([]int, 0, len(entries))
	for c := range entries {
		touched = append(touched, c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(touched)))

	w := newWorkspace(d)
	for _, c := range touched {
		if entries[c] == 1 {
			var rest []int
			for _, s := range w.crossings[c].Strands() {
				if !containsInt(edges, s) {
					rest = append(rest, s)
				}
			}
			if len(rest) != 2 {
				return Diagram{}, fmt.Errorf("%w: crossing %d has %d untraversed slots after a single pass",
					ErrStructuralInconsistency, c, len(rest))
			}
			if rest[0] == rest[1] {
				w.strands[rest[0]] = FreeLoop()
			} else {
				in, out := rest[0], rest[1]
				if w.strands[in].To != c {
					in, out = out, in
				}
				if err := w.join(in, out); err != nil {
					return Diagram{}, err
				}
				for k, e := range edges {
					edges[k] = shiftIndex(e, out, -1)
				}
			}
		}
		w.dropCrossing(c)
	}
	w.dropStrands(edges)

	return w.build()
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}

	return false
}

// ExciseComponent deletes every crossing and strand named by comp and
// renumbers the survivors. Use it with values returned by Components.
func (d Diagram) ExciseComponent(comp Component) (Diagram, error) {
	for _, c := range comp.Crossings {
		if c < 0 || c >= len(d.crossings) {
			return Diagram{}, fmt.Errorf("%w: crossing %d outside [0,%d)", ErrIndexOutOfRange, c, len(d.crossings))
		}
	}
	for _, s := range comp.Strands {
		if s < 0 || s >= len(d.strands) {
			return Diagram{}, fmt.Errorf("%w: strand %d outside [0,%d)", ErrIndexOutOfRange, s, len(d.strands))
		}
	}
	w := newWorkspace(d)
	w.dropCrossings(comp.Crossings)
	w.dropStrands(comp.Strands)

	return w.build()
}

// DisjointUnion places other next to d without interaction. Crossings and
// strands of other follow those of d, with their references shifted
// accordingly.
func (d Diagram) DisjointUnion(other Diagram) (Diagram, error) {
	w := newWorkspace(d)
	nc, ns := len(d.crossings), len(d.strands)
	for _, c := range other.crossings {
		w.crossings = append(w.crossings, c.shift(-1, ns))
	}
	for _, s := range other.strands {
		if s.loop {
			w.strands = append(w.strands, s)
			continue
		}
		w.strands = append(w.strands, Arc(s.From+nc, s.To+nc))
	}

	return w.build()
}

// EliminateMidpoints absorbs every Midpoint into the strand it subdivides.
// A midpoint whose exiting strand returns to it directly leaves a free loop.
func (d Diagram) EliminateMidpoints() (Diagram, error) {
	w := newWorkspace(d)
	for {
		i := -1
		for k, c := range w.crossings {
			if _, ok := c.(Midpoint); ok {
				i = k
				break
			}
		}
		if i < 0 {
			break
		}
		m := w.crossings[i].(Midpoint)

		if m.Entering == m.Exiting {
			w.strands[m.Entering] = FreeLoop()
		} else {
			if err := w.join(m.Entering, m.Exiting); err != nil {
				return Diagram{}, err
			}
		}
		w.dropCrossing(i)
	}

	return w.build()
}
