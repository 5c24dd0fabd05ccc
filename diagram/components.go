// SPDX-License-Identifier: MIT
// Package: lvknot/diagram
//
// components.go — strand following and connected components.

package diagram

import (
	"fmt"
	"sort"
)

// Component is one closed curve of a diagram: the crossings it passes
// through and the strands it consists of, both in ascending order.
// A free loop is a component with one strand and no crossings.
type Component struct {
	Crossings []int
	Strands   []int
}

// NextStrand returns the strand that continues strand s through the crossing
// it enters.
//
// Errors: ErrIndexOutOfRange, ErrFreeLoop, ErrSingularCrossing (a singular
// crossing has no preferred continuation).
func (d Diagram) NextStrand(s int) (int, error) {
	if s < 0 || s >= len(d.strands) {
		return 0, fmt.Errorf("%w: strand %d outside [0,%d)", ErrIndexOutOfRange, s, len(d.strands))
	}
	st := d.strands[s]
	if st.loop {
		return 0, fmt.Errorf("strand %d: %w", s, ErrFreeLoop)
	}

	var (
		next int
		ok   bool
	)
	switch c := d.crossings[st.To].(type) {
	case Transverse:
		next, ok = c.Next(s)
	case Midpoint:
		next, ok = c.Next(s)
	case Singular:
		return 0, fmt.Errorf("crossing %d: %w", st.To, ErrSingularCrossing)
	}
	if !ok {
		// Unreachable for a validated diagram.
		return 0, fmt.Errorf("%w: crossing %d is not entered by strand %d", ErrStructuralInconsistency, st.To, s)
	}

	return next, nil
}

// Components partitions the diagram into closed curves. Walks start from the
// lowest unvisited strand, so the result order is deterministic.
//
// Returns ErrSingularDiagram if a walk meets a singular crossing.
func (d Diagram) Components() ([]Component, error) {
	visited := make([]bool, len(d.strands))
	var out []Component

	for start := range d.strands {
		if visited[start] {
			continue
		}
		crossings := make(map[int]struct{})
		var strands []int

		for cur := start; !visited[cur]; {
			visited[cur] = true
			strands = append(strands, cur)
			st := d.strands[cur]
			if st.loop {
				break
			}
			crossings[st.To] = struct{}{}
			if _, ok := d.crossings[st.To].(Singular); ok {
				return nil, fmt.Errorf("crossing %d: %w", st.To, ErrSingularDiagram)
			}
			next, err := d.NextStrand(cur)
			if err != nil {
				return nil, err
			}
			cur = next
		}

		comp := Component{Strands: strands, Crossings: make([]int, 0, len(crossings))}
		for c := range crossings {
			comp.Crossings = append(comp.Crossings, c)
		}
		sort.Ints(comp.Crossings)
		sort.Ints(comp.Strands)
		out = append(out, comp)
	}

	return out, nil
}
