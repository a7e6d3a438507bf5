package grid

import "fmt"

// New constructs a Grid of the given dimensions with the listed obstacles
// and start state. Duplicate obstacles are allowed and collapse to one.
// Returns ErrEmptyGrid for non-positive dimensions, ErrOutOfBounds if any
// obstacle or the start lies outside the grid, ErrObstacleOnStart if the
// start cell is listed as an obstacle, and ErrInvalidHeading for an
// invalid start heading.
// Complexity: O(W×H + len(obstacles)).
func New(width, height int, obstacles []Point, start AgentState) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		width:   width,
		height:  height,
		blocked: make([]bool, width*height),
		overlay: -1,
		start:   start,
	}
	if !start.Heading.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHeading, uint8(start.Heading))
	}
	if !g.InBounds(start.Pos.X, start.Pos.Y) {
		return nil, fmt.Errorf("%w: start %s in %dx%d grid", ErrOutOfBounds, start.Pos, width, height)
	}
	for _, p := range obstacles {
		if !g.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("%w: obstacle %s in %dx%d grid", ErrOutOfBounds, p, width, height)
		}
		if p == start.Pos {
			return nil, fmt.Errorf("%w: %s", ErrObstacleOnStart, p)
		}
		g.blocked[g.index(p.X, p.Y)] = true
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the agent's start position and heading.
func (g *Grid) Start() AgentState { return g.start }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsObstacle reports whether (x,y) holds an obstacle. Out-of-bounds queries
// return false rather than an error: callers bounds-check first, because
// leaving the bounds is itself meaningful to them.
// Complexity: O(1).
func (g *Grid) IsObstacle(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	i := g.index(x, y)
	return i == g.overlay || g.blocked[i]
}

// WithAddedObstacle returns a grid identical to g except that p is an
// obstacle. g itself is never modified, so it stays safe for concurrent
// readers. If p is already an obstacle, g is returned unchanged.
//
// A variant of a base grid shares the base bitmap and costs O(1); adding to
// a variant copies the bitmap once, O(W×H).
// Returns ErrOutOfBounds or ErrObstacleOnStart for invalid p.
func (g *Grid) WithAddedObstacle(p Point) (*Grid, error) {
	if !g.InBounds(p.X, p.Y) {
		return nil, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
	}
	if p == g.start.Pos {
		return nil, fmt.Errorf("%w: %s", ErrObstacleOnStart, p)
	}
	if g.IsObstacle(p.X, p.Y) {
		return g, nil
	}

	variant := *g
	if g.overlay < 0 {
		variant.overlay = g.index(p.X, p.Y)
		return &variant, nil
	}
	// Fold the existing overlay into a private bitmap so that the new cell
	// can take the overlay slot.
	variant.blocked = make([]bool, len(g.blocked))
	copy(variant.blocked, g.blocked)
	variant.blocked[g.overlay] = true
	variant.overlay = g.index(p.X, p.Y)

	return &variant, nil
}

// ObstacleCount returns the number of obstacle cells.
// Complexity: O(W×H).
func (g *Grid) ObstacleCount() int {
	n := 0
	for i := range g.blocked {
		if g.blocked[i] || i == g.overlay {
			n++
		}
	}
	return n
}

// Obstacles lists every obstacle cell in row-major order.
// Complexity: O(W×H).
func (g *Grid) Obstacles() []Point {
	out := make([]Point, 0, g.ObstacleCount())
	for i := range g.blocked {
		if g.blocked[i] || i == g.overlay {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Index maps p to its row-major index. p must be in bounds.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return g.index(p.X, p.Y)
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}
