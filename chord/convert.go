// SPDX-License-Identifier: MIT
// Package: lvknot/chord
//
// convert.go — chord word to singular diagram ("rubber band" construction).
//
// Picture the word's 2n points on a horizontal base line. Each letter is
// left by a band going up to a height given by its label and coming back
// down, so the knot is a sequence of 2n vertical runs (ranges): even runs go
// up-and-across, odd runs come down. A run crosses every earlier run that
// it must pass over or under on the way; those are recorded as splits.
//
// Construction walks the runs in order, emitting one transverse crossing
// per split and one singular crossing per label (created on the first
// visit, completed on the second). Slots of crossings whose second strand
// is not yet known hold the placeholder -(run+1). A temporary midpoint at
// index 0 anchors the first and last strand and is eliminated at the end.

package chord

import (
	"fmt"

	"github.com/katalvlaran/lvknot/diagram"
)

// run is one vertical segment of the band.
type run struct {
	height int
	over   bool
	splits []int
}

// split records that the run with index i at height h crosses r.
func (r run) split(i, h int, over bool) run {
	keep := h >= r.height
	if !over && r.over {
		keep = h > r.height
	}
	if keep {
		return r
	}
	r.splits = append(append([]int(nil), r.splits...), i)

	return r
}

func (c Chord) runs() []run {
	var runs []run
	for i, h := range c.word {
		for j := range runs {
			runs[j] = runs[j].split(2*i, h, false)
		}
		runs = append(runs, run{height: h, over: false})
		for j := range runs {
			runs[j] = runs[j].split(2*i+1, h, true)
		}
		runs = append(runs, run{height: h, over: true})
	}

	return runs
}

// builder accumulates crossings and half-open strands.
type builder struct {
	crossings []diagram.Crossing
	ends      [][2]int
}

// closeLast points the newest strand at crossing to.
func (b *builder) closeLast(to int) { b.ends[len(b.ends)-1][1] = to }

// open starts a new strand leaving crossing from.
func (b *builder) open(from int) { b.ends = append(b.ends, [2]int{from, -1}) }

// pass routes the newest strand through crossing j, which must be the
// placeholder crossing waiting for run r.
func (b *builder) pass(j int, x diagram.Transverse, flip bool) {
	b.closeLast(j)
	b.crossings[j] = diagram.Transverse{
		OutUnder: len(b.ends),
		OutOver:  x.OutOver,
		InUnder:  len(b.ends) - 1,
		InOver:   x.InOver,
		Positive: x.Positive != flip,
	}
	b.open(j)
}

// cross appends a placeholder crossing for split s.
func (b *builder) cross(s int, positive bool) {
	b.crossings = append(b.crossings, diagram.Transverse{
		OutUnder: -s - 1,
		OutOver:  len(b.ends),
		InUnder:  -s - 1,
		InOver:   len(b.ends) - 1,
		Positive: positive,
	})
	b.closeLast(len(b.crossings) - 1)
	b.open(len(b.crossings) - 1)
}

// waiting reports whether crossing j is a placeholder for run r.
func (b *builder) waiting(j, r int) (diagram.Transverse, bool) {
	x, ok := b.crossings[j].(diagram.Transverse)

	return x, ok && x.OutUnder == -r-1
}

// ToDiagram builds the singular diagram of c. A degenerate chord maps to a
// single free loop.
func (c Chord) ToDiagram() (diagram.Diagram, error) {
	if c.IsDegenerate() {
		return diagram.New(nil, []diagram.Strand{diagram.FreeLoop()})
	}

	b := &builder{
		crossings: []diagram.Crossing{diagram.Midpoint{Entering: -1, Exiting: 0}},
		ends:      [][2]int{{0, -1}},
	}
	bases := make(map[int]int, c.Len())

	for i, r := range c.runs() {
		if i%2 == 1 {
			// Come down through every crossing left for this run.
			for j := range b.crossings {
				if x, ok := b.waiting(j, i); ok {
					b.pass(j, x, false)
				}
			}
			for k := len(r.splits) - 1; k >= 0; k-- {
				b.cross(r.splits[k], false)
			}
			continue
		}

		// Go across, then down, then meet the base line.
		for _, s := range r.splits {
			b.cross(s, true)
		}
		for j := len(b.crossings) - 1; j >= 0; j-- {
			if x, ok := b.waiting(j, i); ok {
				b.pass(j, x, true)
			}
		}

		label := c.word[i/2]
		if at, seen := bases[label]; seen {
			first := b.crossings[at].(diagram.Singular)
			b.crossings[at] = diagram.Singular{
				Entering: [2]int{first.Entering[0], len(b.ends) - 1},
				Exiting:  [2]int{first.Exiting[0], len(b.ends)},
			}
			b.closeLast(at)
			b.open(at)
		} else {
			b.crossings = append(b.crossings, diagram.Singular{
				Entering: [2]int{len(b.ends) - 1, -1},
				Exiting:  [2]int{len(b.ends), -1},
			})
			at = len(b.crossings) - 1
			b.closeLast(at)
			b.open(at)
			bases[label] = at
		}
	}

	b.closeLast(0)
	b.crossings[0] = diagram.Midpoint{Entering: len(b.ends) - 1, Exiting: 0}

	strands := make([]diagram.Strand, len(b.ends))
	for i, e := range b.ends {
		strands[i] = diagram.Arc(e[0], e[1])
	}
	raw, err := diagram.New(b.crossings, strands)
	if err != nil {
		return diagram.Diagram{}, fmt.Errorf("chord %v: %w", c.word, err)
	}

	return raw.EliminateMidpoints()
}
