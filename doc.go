// Package lvknot is an in-memory toolkit for oriented knot and link
// diagrams: building them, rewriting them, and computing their Jones
// polynomial, including diagrams with double points.
//
// 🚀 What is inside?
//
//	A small, dependency-light library that brings together:
//		• Exact arithmetic: integer polynomials in fractional powers of t
//		• Diagram model: transverse crossings, double points, midpoints, free loops
//		• Rewrites: sign flips, Reidemeister-I smoothing, splicing, unions
//		• Jones engine: skein recursion with optional concurrent branches
//		• Chord diagrams and braid closures as diagram sources
//
// Everything is organized under these subpackages:
//
//	poly/     — Polynomial in powers of t^(1/root), exact and immutable
//	diagram/  — Diagram, Crossing, Strand, validation and rewrites
//	jones/    — Polynomial(d) with slog logging and Prometheus counters
//	chord/    — chord words and their conversion to singular diagrams
//	braid/    — braid words, ASCII drawing and closure
//	atlas/    — named reference diagrams
//	render/   — Mermaid, text and YAML output
//	cmd/lvknot — command-line front end
//
// Quick ASCII example, the right-handed trefoil as braid σ1³:
//
//	| |
//	\ /
//	 /
//	/ \
//	(three times), then close the two strands.
//
//	go get github.com/katalvlaran/lvknot
package lvknot
