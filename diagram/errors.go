// SPDX-License-Identifier: MIT
// Package: lvknot/diagram
//
// errors.go — sentinel errors for the diagram package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context (crossing / strand index) is attached with fmt.Errorf("...: %w").
//   • Nothing in this package panics on user input. A failed precondition is
//     a returned error, never a partially rewritten diagram.

package diagram

import "errors"

var (
	// ErrStructuralInconsistency indicates that a crossing list and a strand
	// list do not describe a consistent diagram: a slot references a missing
	// strand, a strand's endpoint does not accept it back, a crossing is
	// attached to a free loop, or a strand is supplied but never connected.
	ErrStructuralInconsistency = errors.New("diagram: structural inconsistency")

	// ErrIndexOutOfRange indicates a crossing or strand index passed to a
	// rewriting primitive that does not exist in the diagram.
	ErrIndexOutOfRange = errors.New("diagram: index out of range")

	// ErrSingularCrossing indicates an operation that needs over/under
	// information (sign flip, Reidemeister-I removal) was applied to a
	// singular crossing.
	ErrSingularCrossing = errors.New("diagram: operation not defined on a singular crossing")

	// ErrMidpointCrossing indicates an operation that needs a 4-valent
	// crossing was applied to a midpoint marker.
	ErrMidpointCrossing = errors.New("diagram: operation not defined on a midpoint")

	// ErrSingularDiagram indicates a traversal (component walk, Jones engine)
	// was requested on a diagram that still contains singular crossings.
	ErrSingularDiagram = errors.New("diagram: singular diagram cannot be traversed")

	// ErrFreeLoop indicates a strand-following query started on a free loop,
	// which has no endpoint crossing.
	ErrFreeLoop = errors.New("diagram: strand is a free loop")
)
