// SPDX-License-Identifier: MIT
// Package: lvknot/diagram
//
// reindex.go — the mutable scratch copy used by every rewrite, and the one
// place that knows how to delete a crossing or strand while keeping all
// references contiguous.
//
// Policy:
//   - A rewrite copies the diagram into a workspace, edits it, then calls
//     build, which re-runs validation. Intermediate states may be
//     inconsistent; only the built result is observable.
//   - dropStrand / dropCrossing remove one element and shift every
//     reference strictly above it down by one. Deleting several elements
//     is done in descending index order so earlier indices stay valid.

package diagram

import (
	"fmt"
	"sort"
)

type workspace struct {
	crossings []Crossing
	strands   []Strand
}

func newWorkspace(d Diagram) *workspace {
	return &workspace{
		crossings: append([]Crossing(nil), d.crossings...),
		strands:   append([]Strand(nil), d.strands...),
	}
}

// shiftIndex moves i by delta when i > above.
func shiftIndex(i, above, delta int) int {
	if i > above {
		return i + delta
	}

	return i
}

// shiftStrandRefs moves every crossing slot strictly above `above` by delta.
func (w *workspace) shiftStrandRefs(above, delta int) {
	for i, c := range w.crossings {
		w.crossings[i] = c.shift(above, delta)
	}
}

// shiftCrossingRefs moves every strand endpoint strictly above `above` by delta.
func (w *workspace) shiftCrossingRefs(above, delta int) {
	for i, s := range w.strands {
		if s.loop {
			continue
		}
		w.strands[i] = Arc(shiftIndex(s.From, above, delta), shiftIndex(s.To, above, delta))
	}
}

// dropStrand removes strand i and renumbers the crossing slots above it.
func (w *workspace) dropStrand(i int) {
	w.strands = append(w.strands[:i], w.strands[i+1:]...)
	w.shiftStrandRefs(i, -1)
}

// dropCrossing removes crossing i and renumbers the strand endpoints above it.
func (w *workspace) dropCrossing(i int) {
	w.crossings = append(w.crossings[:i], w.crossings[i+1:]...)
	w.shiftCrossingRefs(i, -1)
}

// dropStrands removes every listed strand; duplicates are ignored.
func (w *workspace) dropStrands(indices []int) {
	for _, i := range descendingUnique(indices) {
		w.dropStrand(i)
	}
}

// dropCrossings removes every listed crossing; duplicates are ignored.
func (w *workspace) dropCrossings(indices []int) {
	for _, i := range descendingUnique(indices) {
		w.dropCrossing(i)
	}
}

// replaceInput rewrites the entering slot `old` of crossing `at` to `repl`.
func (w *workspace) replaceInput(at, old, repl int) error {
	if at < 0 || at >= len(w.crossings) {
		return fmt.Errorf("%w: reconnect at crossing %d outside [0,%d)",
			ErrStructuralInconsistency, at, len(w.crossings))
	}
	c, ok := w.crossings[at].replaceInput(old, repl)
	if !ok {
		return fmt.Errorf("%w: crossing %d is not entered by strand %d",
			ErrStructuralInconsistency, at, old)
	}
	w.crossings[at] = c

	return nil
}

func (w *workspace) build() (Diagram, error) {
	return New(w.crossings, w.strands)
}

func descendingUnique(indices []int) []int {
	out := append([]int(nil), indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	n := 0
	for i, v := range out {
		if i > 0 && v == out[n-1] {
			continue
		}
		out[n] = v
		n++
	}

	return out[:n]
}
