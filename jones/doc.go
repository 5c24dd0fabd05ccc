// Package jones computes the Jones polynomial of oriented knot and link
// diagrams, including singular diagrams (via the Vassiliev skein relation).
//
// The engine is a direct skein recursion: it walks the diagram from strand
// 0, switching the first crossing it would pass under before having passed
// over it, and splicing away each closed circle the walk completes.
// Intermediate values live at root index 2; the returned polynomial is
// simplified, so the right-handed trefoil evaluates to t + t^3 - t^4.
//
// Conventions:
//
//	V(unknot)         = 1
//	V(L ⊔ unknot)     = -(t^(1/2) + t^(-1/2))·V(L)
//	V(singular point) = V(positive resolution) - V(negative resolution)
//
// Options follow the functional style:
//
//	p, err := jones.Polynomial(d,
//	    jones.WithLogger(slog.Default()),
//	    jones.WithParallelDepth(2),
//	)
//
// The recursion is exponential in the number of crossings; WithParallelDepth
// spreads the top levels over goroutines without changing the result.
// Every step is counted in the lvknot_jones_steps_total Prometheus counter.
package jones
