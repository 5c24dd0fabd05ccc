// SPDX-License-Identifier: MIT
// Package: lvknot/jones
//
// engine.go — the recursive skein evaluation.
//
// Walk (non-singular diagram, strand 0 not a free loop):
//
//	follow strands from strand 0; passing a crossing over marks it,
//	passing a marked crossing under is allowed. The walk either
//	  • closes on itself → the circle is spliced away (StepSmoothing), or
//	  • reaches an unmarked crossing from below → skein switch (StepCrossing):
//	        V(L+) = t^2·V(L-) + (t^(3/2) - t^(1/2))·V(L0)
//	        V(L-) = t^-2·V(L+) + (t^(-3/2) - t^(-1/2))·V(L0)
//
// Each switch makes the walk descend further before it is forced to stop,
// and each smoothing removes a circle, so the recursion terminates.

package jones

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvknot/diagram"
	"github.com/katalvlaran/lvknot/poly"
)

// Polynomial returns the Jones polynomial of d.
//
// Singular diagrams are expanded into signed sums of non-singular ones;
// midpoints are absorbed first. The result is simplified to the smallest
// root index that represents it.
//
// Errors: context cancellation from WithContext, and any rewrite failure
// (which indicates an inconsistent input reaching the engine).
func Polynomial(d diagram.Diagram, opts ...Option) (poly.Polynomial, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	start := time.Now()
	p, err := evaluate(d, o)
	result := "ok"
	if err != nil {
		result = "error"
	}
	evalDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
	if err != nil {
		return poly.Polynomial{}, err
	}

	return p.Simplify(), nil
}

func evaluate(d diagram.Diagram, o Options) (poly.Polynomial, error) {
	if d.HasMidpoints() {
		var err error
		if d, err = d.EliminateMidpoints(); err != nil {
			return poly.Polynomial{}, err
		}
	}
	e := &engine{opts: o}

	return e.eval(o.Ctx, d, 0)
}

type engine struct {
	opts Options
}

var (
	half      = poly.Frac(1, 2)
	minusHalf = poly.Frac(-1, 2)
)

func one() poly.Polynomial { return poly.MustNew(2, 0, 1) }

// unlinkFactor returns -(t^(1/2) + t^(-1/2))·q, the value of adding a
// split circle to a diagram whose polynomial is q.
func unlinkFactor(q poly.Polynomial) poly.Polynomial {
	return poly.Zero().Sub(q.ShiftPower(half)).Sub(q.ShiftPower(minusHalf))
}

func (e *engine) step(kind StepKind, d diagram.Diagram, depth, crossing int) {
	stepsTotal.WithLabelValues(kind.String()).Inc()
	e.opts.Logger.Debug("jones step",
		"kind", kind.String(),
		"depth", depth,
		"crossings", d.NumCrossings(),
		"strands", d.NumStrands(),
		"crossing", crossing,
	)
	if e.opts.OnStep != nil {
		e.opts.OnStep(Step{
			Kind:      kind,
			Depth:     depth,
			Crossings: d.NumCrossings(),
			Strands:   d.NumStrands(),
			Crossing:  crossing,
		})
	}
}

func (e *engine) eval(ctx context.Context, d diagram.Diagram, depth int) (poly.Polynomial, error) {
	if err := ctx.Err(); err != nil {
		return poly.Polynomial{}, err
	}

	if d.IsSingular() {
		return e.singular(ctx, d, depth)
	}

	n := d.NumStrands()
	if n == 0 || (n == 1 && d.Strand(0).IsLoop()) {
		e.step(StepBase, d, depth, -1)
		return one(), nil
	}

	if d.Strand(0).IsLoop() {
		e.step(StepFreeLoop, d, depth, -1)
		rest, err := d.ExciseComponent(diagram.Component{Strands: []int{0}})
		if err != nil {
			return poly.Polynomial{}, err
		}
		q, err := e.eval(ctx, rest, depth+1)
		if err != nil {
			return poly.Polynomial{}, err
		}

		return unlinkFactor(q), nil
	}

	seen := make([]bool, n)
	overPassed := make([]bool, d.NumCrossings())
	var traversed []int
	for cur := 0; !seen[cur]; {
		seen[cur] = true
		traversed = append(traversed, cur)
		c := d.Strand(cur).To
		x, ok := d.Crossing(c).(diagram.Transverse)
		if !ok {
			return poly.Polynomial{}, fmt.Errorf("crossing %d (%s): %w", c, d.Crossing(c), ErrUnexpectedCrossing)
		}
		switch {
		case cur == x.InOver:
			cur = x.OutOver
			overPassed[c] = true
		case overPassed[c]:
			cur = x.OutUnder
		default:
			return e.crossing(ctx, d, c, x.Positive, depth)
		}
	}

	e.step(StepSmoothing, d, depth, -1)
	rest, err := d.SpliceTraversed(traversed)
	if err != nil {
		return poly.Polynomial{}, err
	}
	if rest.NumStrands() == 0 {
		return one(), nil
	}
	q, err := e.eval(ctx, rest, depth+1)
	if err != nil {
		return poly.Polynomial{}, err
	}

	return unlinkFactor(q), nil
}

// crossing applies the skein relation at crossing c.
func (e *engine) crossing(ctx context.Context, d diagram.Diagram, c int, positive bool, depth int) (poly.Polynomial, error) {
	e.step(StepCrossing, d, depth, c)

	switched, err := d.FlipSign(c)
	if err != nil {
		return poly.Polynomial{}, err
	}
	smoothed, err := d.RemoveReidemeister1(c)
	if err != nil {
		return poly.Polynomial{}, err
	}

	var r, q poly.Polynomial
	err = e.run(ctx, depth,
		func(ctx context.Context) (err error) {
			r, err = e.eval(ctx, switched, depth+1)
			return err
		},
		func(ctx context.Context) (err error) {
			q, err = e.eval(ctx, smoothed, depth+1)
			return err
		},
	)
	if err != nil {
		return poly.Polynomial{}, err
	}

	sign := 1
	if !positive {
		sign = -1
	}

	return r.ShiftPower(poly.Whole(2 * sign)).
		Add(q.ShiftPower(poly.Frac(3*sign, 2))).
		Sub(q.ShiftPower(poly.Frac(sign, 2))), nil
}

// singular evaluates Σ V(positive resolutions) - Σ V(negative resolutions).
func (e *engine) singular(ctx context.Context, d diagram.Diagram, depth int) (poly.Polynomial, error) {
	e.step(StepSingular, d, depth, -1)

	pos, neg, err := d.Resolve()
	if err != nil {
		return poly.Polynomial{}, err
	}
	all := append(append([]diagram.Diagram(nil), pos...), neg...)
	values := make([]poly.Polynomial, len(all))
	tasks := make([]func(context.Context) error, len(all))
	for i, k := range all {
		tasks[i] = func(ctx context.Context) (err error) {
			values[i], err = e.eval(ctx, k, depth+1)
			return err
		}
	}
	if err = e.run(ctx, depth, tasks...); err != nil {
		return poly.Polynomial{}, err
	}

	sum := poly.Zero()
	for i, v := range values {
		if i < len(pos) {
			sum = sum.Add(v)
		} else {
			sum = sum.Sub(v)
		}
	}

	return sum, nil
}

// run executes tasks in order, or concurrently when depth is within the
// parallel budget. Either way each task writes only its own result slot.
func (e *engine) run(ctx context.Context, depth int, tasks ...func(context.Context) error) error {
	if depth >= e.opts.ParallelDepth {
		for _, task := range tasks {
			if err := task(ctx); err != nil {
				return err
			}
		}

		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		g.Go(func() error { return task(gctx) })
	}

	return g.Wait()
}
