package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
	"github.com/katalvlaran/gridwalk/simulate"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// With applies fields to e in order and returns it for chaining.
func With(e *bolt.Event, fields ...Field) *bolt.Event {
	for _, f := range fields {
		e = f(e)
	}
	return e
}

// Component adds a component field for categorization.
func Component(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("component", name)
	}
}

// Input adds the input source (a path, or "-" for stdin).
func Input(src string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("input", src)
	}
}

// Cell adds a cell coordinate as "x,y".
func Cell(p grid.Point) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("cell", p.String())
	}
}

// State adds the agent position and heading.
func State(s grid.AgentState) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("cell", s.Pos.String()).Str("heading", s.Heading.String())
	}
}

// Dimensions adds grid width and height.
func Dimensions(g *grid.Grid) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("width", g.Width()).Int("height", g.Height())
	}
}

// Outcome adds the outcome kind, visited count and step count.
func Outcome(o simulate.Outcome) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("outcome", o.Kind.String()).Int("visited", o.Visited).Int("steps", o.Steps)
	}
}

// Action adds a step action (move or turn) and its step number.
func Action(step int, a simulate.Action) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("step", step).Str("action", a.String())
	}
}

// Strategy adds the search strategy.
func Strategy(s search.Strategy) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("strategy", s.String())
	}
}

// Workers adds the worker count.
func Workers(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("workers", n)
	}
}

// Count adds an integer field with a custom key.
func Count(key string, n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int(key, n)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// ErrorField adds an error field. A nil error adds nothing.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}
