// Package simulate provides tunable options, outcome types and error
// definitions for single-agent grid walks.
package simulate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// Sentinel errors for simulation input validation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("simulate: grid is nil")

	// ErrStartOutOfBounds is returned when the start position lies outside the grid.
	ErrStartOutOfBounds = errors.New("simulate: start position out of bounds")

	// ErrStartBlocked is returned when the start position is an obstacle.
	ErrStartBlocked = errors.New("simulate: start position is an obstacle")

	// ErrInvalidHeading is returned for a heading outside North..West.
	ErrInvalidHeading = errors.New("simulate: invalid start heading")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("simulate: invalid option supplied")

	// ErrStepLimit is returned when WithMaxSteps cuts a run short.
	ErrStepLimit = errors.New("simulate: step limit reached")
)

// Kind classifies how a run terminated.
type Kind uint8

const (
	// Escaped means the cell ahead of the agent was outside the grid.
	Escaped Kind = iota + 1
	// Looped means an (position, heading) state repeated.
	Looped
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Escaped:
		return "escaped"
	case Looped:
		return "looped"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Action is the kind of transition taken in one step.
type Action uint8

const (
	// Move advanced the agent one cell.
	Move Action = iota
	// Turn rotated the agent 90° clockwise in place.
	Turn
)

// String implements fmt.Stringer.
func (a Action) String() string {
	if a == Turn {
		return "turn"
	}
	return "move"
}

// Outcome is the result of one run.
//   - Kind: Escaped or Looped.
//   - Visited: distinct positions occupied, start included.
//   - Steps: transitions taken (moves plus turns), at most W×H×4.
//   - Final: for Escaped, the state facing out of the grid;
//     for Looped, the state that repeated.
//   - Path: distinct positions in first-visit order, only with WithPath.
type Outcome struct {
	Kind    Kind
	Visited int
	Steps   int
	Final   grid.AgentState
	Path    []grid.Point
}

// Escaped reports whether the agent left the grid.
func (o Outcome) Escaped() bool { return o.Kind == Escaped }

// Looped reports whether the agent entered a cycle.
func (o Outcome) Looped() bool { return o.Kind == Looped }

// Option configures a run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// run starts.
type Option func(*Options)

// Options holds parameters and callbacks to customise a run.
type Options struct {
	// RecordPath fills Outcome.Path with first-visit order positions.
	RecordPath bool

	// OnStep is called after every transition with the 1-based step number,
	// the resulting state and the action taken. It runs before the repeat
	// check, so the repeated state of a Looped run is reported too.
	OnStep func(step int, s grid.AgentState, a Action)

	// MaxSteps, if > 0, aborts the run with ErrStepLimit after that many
	// transitions. 0 means no limit beyond the natural W×H×4 bound.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no path recording, a no-op OnStep
// and no step limit.
func DefaultOptions() Options {
	return Options{
		RecordPath: false,
		OnStep:     func(int, grid.AgentState, Action) {},
		MaxSteps:   0,
	}
}

// WithPath records the distinct positions visited, in first-visit order.
func WithPath() Option {
	return func(o *Options) {
		o.RecordPath = true
	}
}

// WithOnStep registers a callback to run after every transition.
func WithOnStep(fn func(step int, s grid.AgentState, a Action)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithMaxSteps caps the number of transitions.
//
//	n > 0: stop with ErrStepLimit after n transitions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}
