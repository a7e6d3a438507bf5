// Package search runs independent obstacle-placement trials over a shared,
// read-only base grid and counts the ones that end in a loop.
package search

import (
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/simulate"
)

// Count searches from the grid's own start state. See
// CountLoopInducingObstacles.
func Count(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	s := g.Start()
	return CountLoopInducingObstacles(g, s.Pos, s.Heading, opts...)
}

// CountLoopInducingObstacles tries one extra obstacle on every candidate
// cell, re-simulates from (start, heading) and counts the placements whose
// walk ends in a loop. The start cell and existing obstacles are never
// tried. When start differs from g.Start().Pos, the grid's own marker cell
// is not tried either, since the grid refuses an obstacle there; Candidates
// is one lower accordingly. g is only read.
// Returns ErrGridNil, ErrOptionViolation, any baseline validation error
// from simulate.Simulate, or ctx.Err() on cancellation.
func CountLoopInducingObstacles(g *grid.Grid, start grid.Point, heading grid.Heading, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Workers == 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}

	baseline, err := simulate.Simulate(g, start, heading, simulate.WithPath())
	if err != nil {
		return nil, fmt.Errorf("search: baseline: %w", err)
	}
	cands := candidates(g, start, baseline, o.Strategy)

	looped, err := runTrials(g, start, heading, cands, o)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Candidates: len(cands),
		Baseline:   baseline,
	}
	for i, hit := range looped {
		if hit {
			res.Obstructions = append(res.Obstructions, cands[i])
		}
	}
	res.Loops = len(res.Obstructions)

	return res, nil
}

// candidates lists the cells to try in row-major order. Both the walk's
// start and the grid's own start cell are excluded, since the grid refuses
// an obstacle on the latter.
//
// The baseline-path restriction only holds for an escaping baseline: when
// the unobstructed walk already loops, every cell it never steps onto keeps
// it looping, so all free cells are tried.
func candidates(g *grid.Grid, start grid.Point, baseline simulate.Outcome, s Strategy) []grid.Point {
	marker := g.Start().Pos
	var out []grid.Point
	if s == Exhaustive || baseline.Looped() {
		out = make([]grid.Point, 0, g.Width()*g.Height())
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				p := grid.Point{X: x, Y: y}
				if p != start && p != marker && !g.IsObstacle(x, y) {
					out = append(out, p)
				}
			}
		}
		return out
	}

	// Baseline path cells are distinct and free by construction; order them
	// row-major so both strategies report obstructions identically.
	onPath := make([]bool, g.Width()*g.Height())
	for _, p := range baseline.Path {
		onPath[g.Index(p)] = true
	}
	out = make([]grid.Point, 0, len(baseline.Path))
	for i, hit := range onPath {
		if p := g.Coordinate(i); hit && p != start && p != marker {
			out = append(out, p)
		}
	}
	return out
}

// runTrials fans the candidates out over at most o.Workers goroutines.
// looped[i] is written only by the goroutine that owns cands[i].
func runTrials(g *grid.Grid, start grid.Point, heading grid.Heading, cands []grid.Point, o Options) ([]bool, error) {
	looped := make([]bool, len(cands))

	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	for i, cell := range cands {
		// cancellation check before scheduling more work
		if ctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			variant, err := g.WithAddedObstacle(cell)
			if err != nil {
				return fmt.Errorf("search: place obstacle at %s: %w", cell, err)
			}
			began := time.Now()
			out, err := simulate.Simulate(variant, start, heading)
			if err != nil {
				return fmt.Errorf("search: trial at %s: %w", cell, err)
			}
			if o.Recorder != nil {
				o.Recorder.ObserveTrial(out, time.Since(began))
			}
			o.OnTrial(cell, out)
			looped[i] = out.Looped()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	// The group context is cancelled by Wait; only the caller's matters here.
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}

	return looped, nil
}
