// Package diagram models oriented knot and link diagrams as two parallel
// lists: crossings, each naming the strands attached to its slots, and
// strands, each naming the crossing it leaves and the crossing it enters.
//
// 🚀 What is a diagram here?
//
//   - A Crossing is one of three variants:
//     Transverse (an ordinary over/under crossing with a sign),
//     Singular (a double point with no over/under information) or
//     Midpoint (a 2-valent marker used while building diagrams).
//   - A Strand is either an Arc(from, to) between two crossings or a
//     FreeLoop, a closed component with no crossings at all.
//
// Every Diagram value has passed the consistency check in New: each crossing
// slot names a real, non-loop strand whose matching endpoint accepts it back,
// and every non-loop strand is referenced by some crossing. Diagrams are
// immutable; every rewrite returns a new Diagram.
//
// ✨ Rewrites:
//
//   - FlipSign             – exchange over and under at one crossing
//   - RemoveReidemeister1  – delete a crossing, reconnecting its strands
//   - SpliceTraversed      – delete a traversed set of strands and the
//     crossings they pass
//   - ExciseComponent      – delete a whole connected component
//   - DisjointUnion        – place two diagrams side by side
//   - EliminateMidpoints   – absorb every midpoint into its strand
//   - Resolve              – expand singular crossings into signed sums
//
// All deletions renumber the survivors so that indices stay contiguous, and
// every result is re-validated before it is returned.
//
// ⚙️ Usage:
//
//	d, err := diagram.New(
//	    []diagram.Crossing{
//	        diagram.Transverse{OutUnder: 0, OutOver: 3, InUnder: 5, InOver: 2, Positive: true},
//	        diagram.Transverse{OutUnder: 4, OutOver: 1, InUnder: 3, InOver: 0, Positive: true},
//	        diagram.Transverse{OutUnder: 2, OutOver: 5, InUnder: 1, InOver: 4, Positive: true},
//	    },
//	    diagram.Sequence(0, 1, 2, 0, 1, 2, 0),
//	)
//	comps, _ := d.Components() // one component: the trefoil
package diagram
