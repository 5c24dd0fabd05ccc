// SPDX-License-Identifier: MIT
// Package: lvknot/jones
//
// types.go — step kinds, options and sentinel errors for the Jones engine.

package jones

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// ErrUnexpectedCrossing is returned when the walk meets a crossing variant
// the engine cannot traverse. It indicates a diagram that escaped midpoint
// elimination and singular resolution.
var ErrUnexpectedCrossing = errors.New("jones: unexpected crossing variant on walk")

// StepKind classifies one recursion step of the engine.
type StepKind int

const (
	// StepBase: empty diagram or a single free loop, value 1.
	StepBase StepKind = iota
	// StepFreeLoop: strand 0 is a free loop and is split off.
	StepFreeLoop
	// StepSmoothing: the walk closed; the traversed circle is spliced away.
	StepSmoothing
	// StepCrossing: the walk met a crossing that must be switched.
	StepCrossing
	// StepSingular: singular crossings are expanded.
	StepSingular
)

func (k StepKind) String() string {
	switch k {
	case StepBase:
		return "base"
	case StepFreeLoop:
		return "free_loop"
	case StepSmoothing:
		return "smoothing"
	case StepCrossing:
		return "crossing"
	case StepSingular:
		return "singular"
	default:
		return "unknown"
	}
}

// Step describes one recursion step, as reported to OnStep.
type Step struct {
	Kind      StepKind
	Depth     int
	Crossings int
	Strands   int
	// Crossing is the switched crossing for StepCrossing, otherwise -1.
	Crossing int
}

// Option configures a Polynomial call.
type Option func(*Options)

// Options holds the engine configuration.
type Options struct {
	// Ctx cancels a long evaluation between recursion steps.
	Ctx context.Context

	// Logger receives one Debug record per recursion step.
	Logger *slog.Logger

	// ParallelDepth is the number of top recursion levels whose branches are
	// evaluated concurrently. 0 evaluates everything on the calling goroutine.
	ParallelDepth int

	// OnStep, if non-nil, is called once per recursion step. It must be safe
	// for concurrent use when ParallelDepth > 0.
	OnStep func(Step)
}

// DefaultOptions returns a background context, a discarding logger,
// sequential evaluation and no step hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		ParallelDepth: 0,
		OnStep:        nil,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes step records to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithParallelDepth evaluates the branches of the top n recursion levels
// concurrently. It panics if n < 0.
func WithParallelDepth(n int) Option {
	if n < 0 {
		panic("jones: WithParallelDepth requires n >= 0")
	}

	return func(o *Options) { o.ParallelDepth = n }
}

// WithOnStep registers a per-step hook.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) { o.OnStep = fn }
}
