// SPDX-License-Identifier: MIT
// Package: lvknot/diagram
//
// types.go — Crossing (a sealed sum of Transverse, Singular and Midpoint)
// and Strand.

package diagram

import "fmt"

// Crossing is a junction of strands. The interface is sealed: the only
// implementations are Transverse, Singular and Midpoint, and code that needs
// per-variant behaviour switches on the concrete type.
//
// Slot accessors return strand indices. Entry and exit predicates follow the
// "no double entry" rule: a strand occupying both entering slots of a
// crossing does not count as entering it.
type Crossing interface {
	// InStrands returns the entering strand slots.
	InStrands() []int
	// OutStrands returns the exiting strand slots.
	OutStrands() []int
	// Strands returns every slot; the order is variant specific and stable.
	Strands() []int
	// HasEntry reports whether strand enters this crossing exactly once.
	HasEntry(strand int) bool
	// HasExit reports whether strand leaves this crossing exactly once.
	HasExit(strand int) bool

	fmt.Stringer

	// shift moves every slot strictly above `above` by delta.
	shift(above, delta int) Crossing
	// replaceInput swaps the entering slot holding old for repl.
	replaceInput(old, repl int) (Crossing, bool)
}

// Transverse is an ordinary crossing with over/under information.
//
//	out-under   out-over
//	        \ /
//	         /
//	        / \
//	 in-over    in-under
//
// A strand entering through InUnder leaves through OutUnder, and likewise for
// the over strand. Positive records the crossing sign.
type Transverse struct {
	OutUnder int
	OutOver  int
	InUnder  int
	InOver   int
	Positive bool
}

// Singular is a double point without over/under information, as produced by
// chord diagrams. Entering[i] continues to Exiting[i].
//
//	Exiting[0]   Exiting[1]
//	         \ /
//	          o
//	         / \
//	Entering[1]  Entering[0]
type Singular struct {
	Entering [2]int
	Exiting  [2]int
}

// Midpoint is a 2-valent marker subdividing a strand. It only exists while
// a chord word is converted and never survives EliminateMidpoints.
type Midpoint struct {
	Entering int
	Exiting  int
}

// Compile-time proof that the three variants implement Crossing.
var (
	_ Crossing = Transverse{}
	_ Crossing = Singular{}
	_ Crossing = Midpoint{}
)

// ---- Transverse ----

func (c Transverse) InStrands() []int  { return []int{c.InUnder, c.InOver} }
func (c Transverse) OutStrands() []int { return []int{c.OutUnder, c.OutOver} }

// Strands returns {OutUnder, OutOver, InUnder, InOver}.
func (c Transverse) Strands() []int {
	return []int{c.OutUnder, c.OutOver, c.InUnder, c.InOver}
}

func (c Transverse) HasEntry(strand int) bool {
	return (c.InUnder == strand) != (c.InOver == strand)
}

func (c Transverse) HasExit(strand int) bool {
	return (c.OutUnder == strand) != (c.OutOver == strand)
}

// Next returns the strand leaving the crossing after entering via strand.
func (c Transverse) Next(strand int) (int, bool) {
	switch strand {
	case c.InOver:
		return c.OutOver, true
	case c.InUnder:
		return c.OutUnder, true
	default:
		return 0, false
	}
}

// Flipped returns the crossing with the roles of the two strands exchanged
// and the sign negated.
func (c Transverse) Flipped() Transverse {
	return Transverse{
		OutUnder: c.OutOver,
		OutOver:  c.OutUnder,
		InUnder:  c.InOver,
		InOver:   c.InUnder,
		Positive: !c.Positive,
	}
}

func (c Transverse) String() string {
	sign := '-'
	if c.Positive {
		sign = '+'
	}

	return fmt.Sprintf("X%c(out-under=%d out-over=%d in-under=%d in-over=%d)",
		sign, c.OutUnder, c.OutOver, c.InUnder, c.InOver)
}

func (c Transverse) shift(above, delta int) Crossing {
	return Transverse{
		OutUnder: shiftIndex(c.OutUnder, above, delta),
		OutOver:  shiftIndex(c.OutOver, above, delta),
		InUnder:  shiftIndex(c.InUnder, above, delta),
		InOver:   shiftIndex(c.InOver, above, delta),
		Positive: c.Positive,
	}
}

func (c Transverse) replaceInput(old, repl int) (Crossing, bool) {
	switch old {
	case c.InUnder:
		c.InUnder = repl
	case c.InOver:
		c.InOver = repl
	default:
		return c, false
	}

	return c, true
}

// ---- Singular ----

func (c Singular) InStrands() []int  { return []int{c.Entering[0], c.Entering[1]} }
func (c Singular) OutStrands() []int { return []int{c.Exiting[0], c.Exiting[1]} }

// Strands returns {Entering[0], Entering[1], Exiting[0], Exiting[1]}.
func (c Singular) Strands() []int {
	return []int{c.Entering[0], c.Entering[1], c.Exiting[0], c.Exiting[1]}
}

func (c Singular) HasEntry(strand int) bool {
	return (c.Entering[0] == strand || c.Entering[1] == strand) &&
		!(c.Entering[0] == strand && c.Entering[1] == strand)
}

func (c Singular) HasExit(strand int) bool {
	return (c.Exiting[0] == strand || c.Exiting[1] == strand) &&
		!(c.Exiting[0] == strand && c.Exiting[1] == strand)
}

// PositiveVersion resolves the double point into a positive crossing in
// which the Entering[1]→Exiting[1] strand passes over.
func (c Singular) PositiveVersion() Transverse {
	return Transverse{
		OutUnder: c.Exiting[0],
		OutOver:  c.Exiting[1],
		InUnder:  c.Entering[0],
		InOver:   c.Entering[1],
		Positive: true,
	}
}

// NegativeVersion resolves the double point into a negative crossing in
// which the Entering[0]→Exiting[0] strand passes over.
func (c Singular) NegativeVersion() Transverse {
	return Transverse{
		OutUnder: c.Exiting[1],
		OutOver:  c.Exiting[0],
		InUnder:  c.Entering[1],
		InOver:   c.Entering[0],
		Positive: false,
	}
}

func (c Singular) String() string {
	return fmt.Sprintf("O(in=%v out=%v)", c.Entering, c.Exiting)
}

func (c Singular) shift(above, delta int) Crossing {
	return Singular{
		Entering: [2]int{shiftIndex(c.Entering[0], above, delta), shiftIndex(c.Entering[1], above, delta)},
		Exiting:  [2]int{shiftIndex(c.Exiting[0], above, delta), shiftIndex(c.Exiting[1], above, delta)},
	}
}

func (c Singular) replaceInput(old, repl int) (Crossing, bool) {
	switch old {
	case c.Entering[0]:
		c.Entering[0] = repl
	case c.Entering[1]:
		c.Entering[1] = repl
	default:
		return c, false
	}

	return c, true
}

// ---- Midpoint ----

func (c Midpoint) InStrands() []int  { return []int{c.Entering} }
func (c Midpoint) OutStrands() []int { return []int{c.Exiting} }
func (c Midpoint) Strands() []int    { return []int{c.Entering, c.Exiting} }

func (c Midpoint) HasEntry(strand int) bool { return c.Entering == strand }
func (c Midpoint) HasExit(strand int) bool  { return c.Exiting == strand }

// Next returns the exiting strand if strand enters the midpoint.
func (c Midpoint) Next(strand int) (int, bool) {
	if strand != c.Entering {
		return 0, false
	}

	return c.Exiting, true
}

func (c Midpoint) String() string {
	return fmt.Sprintf("M(%d->%d)", c.Entering, c.Exiting)
}

func (c Midpoint) shift(above, delta int) Crossing {
	return Midpoint{
		Entering: shiftIndex(c.Entering, above, delta),
		Exiting:  shiftIndex(c.Exiting, above, delta),
	}
}

func (c Midpoint) replaceInput(old, repl int) (Crossing, bool) {
	if c.Entering != old {
		return c, false
	}
	c.Entering = repl

	return c, true
}

// Strand is a directed arc from crossing From to crossing To, or a free
// loop with no endpoints. Build strands with Arc and FreeLoop.
type Strand struct {
	From int
	To   int
	loop bool
}

// Arc returns the strand from crossing `from` to crossing `to`.
func Arc(from, to int) Strand {
	return Strand{From: from, To: to}
}

// FreeLoop returns a closed strand with no crossings.
func FreeLoop() Strand {
	return Strand{loop: true}
}

// IsLoop reports whether s is a free loop.
func (s Strand) IsLoop() bool { return s.loop }

func (s Strand) String() string {
	if s.loop {
		return "loop"
	}

	return fmt.Sprintf("%d->%d", s.From, s.To)
}

// Sequence returns the arcs c0→c1, c1→c2, … visiting the given crossings in
// order. Closing a knot means repeating the first crossing at the end.
func Sequence(crossings ...int) []Strand {
	if len(crossings) < 2 {
		return nil
	}
	out := make([]Strand, 0, len(crossings)-1)
	for i := 1; i < len(crossings); i++ {
		out = append(out, Arc(crossings[i-1], crossings[i]))
	}

	return out
}
