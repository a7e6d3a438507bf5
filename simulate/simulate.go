// Package simulate runs one deterministic agent trajectory over a grid.Grid
// and classifies it as Escaped or Looped.
package simulate

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridwalk/grid"
)

// walker encapsulates the mutable state of one run. Nothing in it outlives
// the call that created it.
type walker struct {
	grid   *grid.Grid
	opts   Options
	cur    grid.AgentState
	steps  int
	states mapset.Set[grid.AgentState]
	cells  mapset.Set[grid.Point]
	path   []grid.Point
}

// Run simulates from the grid's own start state. See Simulate.
func Run(g *grid.Grid, opts ...Option) (Outcome, error) {
	if g == nil {
		return Outcome{}, ErrGridNil
	}
	s := g.Start()
	return Simulate(g, s.Pos, s.Heading, opts...)
}

// Simulate walks an agent from start facing heading until it escapes the
// grid or repeats a state, applying any number of functional Options.
// Returns ErrGridNil, ErrStartOutOfBounds, ErrStartBlocked or
// ErrInvalidHeading for invalid input, ErrOptionViolation for bad options
// and ErrStepLimit when WithMaxSteps cuts the run short. Valid input with no
// step limit always yields an Outcome and a nil error.
func Simulate(g *grid.Grid, start grid.Point, heading grid.Heading, opts ...Option) (Outcome, error) {
	if g == nil {
		return Outcome{}, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Outcome{}, o.err
	}

	if !heading.Valid() {
		return Outcome{}, fmt.Errorf("%w: %s", ErrInvalidHeading, heading)
	}
	if !g.InBounds(start.X, start.Y) {
		return Outcome{}, fmt.Errorf("%w: %s", ErrStartOutOfBounds, start)
	}
	if g.IsObstacle(start.X, start.Y) {
		return Outcome{}, fmt.Errorf("%w: %s", ErrStartBlocked, start)
	}

	w := &walker{
		grid:   g,
		opts:   o,
		cur:    grid.AgentState{Pos: start, Heading: heading},
		states: mapset.New[grid.AgentState](),
		cells:  mapset.New[grid.Point](),
	}
	w.record()

	return w.loop()
}

// loop applies the step rule until termination.
func (w *walker) loop() (Outcome, error) {
	for {
		ahead := w.cur.Ahead()
		if !w.grid.InBounds(ahead.X, ahead.Y) {
			return w.outcome(Escaped), nil
		}
		if w.opts.MaxSteps > 0 && w.steps >= w.opts.MaxSteps {
			return w.outcome(0), fmt.Errorf("%w: %d steps at %s", ErrStepLimit, w.steps, w.cur)
		}

		action := Move
		if w.grid.IsObstacle(ahead.X, ahead.Y) {
			w.cur.Heading = w.cur.Heading.TurnRight()
			action = Turn
		} else {
			w.cur.Pos = ahead
		}
		w.steps++
		w.opts.OnStep(w.steps, w.cur, action)

		if w.states.Has(w.cur) {
			return w.outcome(Looped), nil
		}
		w.record()
	}
}

// record marks the current state seen and its position visited.
func (w *walker) record() {
	w.states.Put(w.cur)
	if w.cells.Has(w.cur.Pos) {
		return
	}
	w.cells.Put(w.cur.Pos)
	if w.opts.RecordPath {
		w.path = append(w.path, w.cur.Pos)
	}
}

func (w *walker) outcome(k Kind) Outcome {
	return Outcome{
		Kind:    k,
		Visited: w.cells.Size(),
		Steps:   w.steps,
		Final:   w.cur,
		Path:    w.path,
	}
}
