// Package grid defines the core value types of the grid model:
// headings, points, agent states and the Grid itself.
package grid

import "fmt"

// Heading is one of the four cardinal directions the agent can face.
type Heading uint8

const (
	// North points toward row 0 ("up" in the input).
	North Heading = iota
	// East points toward increasing x.
	East
	// South points toward increasing y.
	South
	// West points toward x = 0.
	West
)

// clockwise is the one and only turning rule: a 90° right turn.
var clockwise = [...]Heading{
	North: East,
	East:  South,
	South: West,
	West:  North,
}

// deltas holds the unit step for each heading, y growing downward.
var deltas = [...][2]int{
	North: {0, -1},
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
}

var headingNames = [...]string{
	North: "north",
	East:  "east",
	South: "south",
	West:  "west",
}

var headingMarkers = [...]rune{
	North: '^',
	East:  '>',
	South: 'v',
	West:  '<',
}

// Valid reports whether h is one of North, East, South, West.
func (h Heading) Valid() bool {
	return h <= West
}

// TurnRight returns the clockwise successor of h.
// Calling it on an invalid heading panics.
func (h Heading) TurnRight() Heading {
	return clockwise[h]
}

// Delta returns the unit step (dx, dy) for h.
// Calling it on an invalid heading panics.
func (h Heading) Delta() (dx, dy int) {
	d := deltas[h]
	return d[0], d[1]
}

// Marker returns the input character that denotes a start facing h.
func (h Heading) Marker() rune {
	if !h.Valid() {
		return '?'
	}
	return headingMarkers[h]
}

// String implements fmt.Stringer.
func (h Heading) String() string {
	if !h.Valid() {
		return fmt.Sprintf("heading(%d)", uint8(h))
	}
	return headingNames[h]
}

// HeadingFromMarker maps a start marker ('^', '>', 'v', '<') to its heading.
func HeadingFromMarker(r rune) (Heading, bool) {
	for h, m := range headingMarkers {
		if m == r {
			return Heading(h), true
		}
	}
	return 0, false
}

// Point is a cell coordinate. X is the column, Y the row.
type Point struct {
	X, Y int
}

// Step returns the neighbouring point one unit ahead in heading h.
func (p Point) Step(h Heading) Point {
	dx, dy := h.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String implements fmt.Stringer as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// AgentState is the agent's position and heading. Two states are equal iff
// both fields match; this is the key used for cycle detection.
type AgentState struct {
	Pos     Point
	Heading Heading
}

// Ahead returns the cell directly in front of the agent.
func (s AgentState) Ahead() Point {
	return s.Pos.Step(s.Heading)
}

// String implements fmt.Stringer.
func (s AgentState) String() string {
	return fmt.Sprintf("(%s %s)", s.Pos, s.Heading)
}

// Grid is an immutable W×H map of free and obstacle cells with one start
// state. Width, Height and start never change after construction.
//
// blocked is a row-major obstacle bitmap that may be shared between a base
// grid and any number of variants; it is never written after New returns.
// overlay, when ≥ 0, is the row-major index of one extra obstacle that only
// this variant sees.
type Grid struct {
	width, height int
	blocked       []bool
	overlay       int
	start         AgentState
}
