// Package search defines options, strategies and results for the
// obstruction search.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/simulate"
)

// Sentinel errors for obstruction search.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Strategy selects which cells are tried as obstacle placements.
type Strategy int

const (
	// BaselinePath tries only cells on the unobstructed trajectory, unless
	// that trajectory loops, in which case every free cell is tried.
	BaselinePath Strategy = iota
	// Exhaustive tries every free cell, as a brute-force cross-check.
	Exhaustive
)

// String implements fmt.Stringer; the names are the ParseStrategy inputs.
func (s Strategy) String() string {
	switch s {
	case BaselinePath:
		return "path"
	case Exhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps "path" or "exhaustive" (case-insensitive) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "path", "":
		return BaselinePath, nil
	case "exhaustive":
		return Exhaustive, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, s)
	}
}

// Recorder observes finished trials. Implementations must be safe for
// concurrent use.
type Recorder interface {
	ObserveTrial(outcome simulate.Outcome, elapsed time.Duration)
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Workers is the number of concurrent trials; 0 means GOMAXPROCS.
	Workers int

	// Strategy selects the candidate cells.
	Strategy Strategy

	// Recorder, if non-nil, observes every trial.
	Recorder Recorder

	// OnTrial is called after each trial from the worker goroutine.
	OnTrial func(cell grid.Point, outcome simulate.Outcome)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, GOMAXPROCS
// workers, the BaselinePath strategy, no recorder and a no-op OnTrial.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Workers:  0,
		Strategy: BaselinePath,
		OnTrial:  func(grid.Point, simulate.Outcome) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of concurrent trials.
//
//	n > 0: at most n trials at once
//	n == 0: GOMAXPROCS
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithStrategy selects the candidate cells.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != BaselinePath && s != Exhaustive {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithRecorder registers a trial observer.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		o.Recorder = r
	}
}

// WithOnTrial registers a per-trial callback. It runs concurrently on
// worker goroutines.
func WithOnTrial(fn func(cell grid.Point, outcome simulate.Outcome)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTrial = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Loops: number of placements that force a loop.
//   - Obstructions: those placements in row-major order.
//   - Candidates: number of trials run.
//   - Baseline: the unobstructed walk.
type Result struct {
	Loops        int
	Obstructions []grid.Point
	Candidates   int
	Baseline     simulate.Outcome
}
