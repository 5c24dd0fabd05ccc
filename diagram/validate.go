// SPDX-License-Identifier: MIT
// Package: lvknot/diagram
//
// validate.go — the consistency check behind New.
//
// Rules, checked per crossing c and slot s:
//   - every exiting slot names an existing, non-loop strand that starts at
//     c and whose To crossing accepts it as an entry;
//   - every entering slot names an existing, non-loop strand that ends at
//     c and whose From crossing accepts it as an exit;
//   - every non-loop strand is named by at least one crossing slot;
//   - every strand endpoint names an existing crossing.
//
// Complexity: O(C + S).

package diagram

import "fmt"

func (d Diagram) validate() error {
	nc, ns := len(d.crossings), len(d.strands)

	for i, s := range d.strands {
		if s.loop {
			continue
		}
		if s.From < 0 || s.From >= nc || s.To < 0 || s.To >= nc {
			return fmt.Errorf("%w: strand %d (%s) has an endpoint outside [0,%d)",
				ErrStructuralInconsistency, i, s, nc)
		}
	}

	referenced := make([]bool, ns)
	for ci, c := range d.crossings {
		if c == nil {
			return fmt.Errorf("%w: crossing %d is nil", ErrStructuralInconsistency, ci)
		}
		for _, si := range c.OutStrands() {
			s, err := d.attached(ci, si)
			if err != nil {
				return err
			}
			if s.From != ci {
				return fmt.Errorf("%w: crossing %d exits via strand %d, but the strand starts at crossing %d",
					ErrStructuralInconsistency, ci, si, s.From)
			}
			if !d.crossings[s.To].HasEntry(si) {
				return fmt.Errorf("%w: crossing %d exits via strand %d, but crossing %d does not accept it as an entry",
					ErrStructuralInconsistency, ci, si, s.To)
			}
			referenced[si] = true
		}
		for _, si := range c.InStrands() {
			s, err := d.attached(ci, si)
			if err != nil {
				return err
			}
			if s.To != ci {
				return fmt.Errorf("%w: crossing %d is entered via strand %d, but the strand ends at crossing %d",
					ErrStructuralInconsistency, ci, si, s.To)
			}
			if !d.crossings[s.From].HasExit(si) {
				return fmt.Errorf("%w: crossing %d is entered via strand %d, but crossing %d does not emit it",
					ErrStructuralInconsistency, ci, si, s.From)
			}
			referenced[si] = true
		}
	}

	for i, s := range d.strands {
		if !s.loop && !referenced[i] {
			return fmt.Errorf("%w: strand %d (%s) is not attached to any crossing",
				ErrStructuralInconsistency, i, s)
		}
	}

	return nil
}

// attached resolves slot si of crossing ci to a strand that can carry it.
func (d Diagram) attached(ci, si int) (Strand, error) {
	if si < 0 || si >= len(d.strands) {
		return Strand{}, fmt.Errorf("%w: crossing %d names strand %d outside [0,%d)",
			ErrStructuralInconsistency, ci, si, len(d.strands))
	}
	s := d.strands[si]
	if s.loop {
		return Strand{}, fmt.Errorf("%w: crossing %d is attached to free loop %d",
			ErrStructuralInconsistency, ci, si)
	}

	return s, nil
}
