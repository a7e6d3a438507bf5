// Package grid models a bounded 2D map of free and obstacle cells with a
// single agent start cell and heading.
//
// What:
//
//   - Grid is an immutable rectangle of cells addressed as (x,y), with y
//     growing downward (row 0 is the top line of the input).
//   - Heading is one of North, East, South, West with a fixed clockwise
//     successor table; the agent only ever turns 90° right.
//   - AgentState pairs a Point with a Heading and is comparable, so it can be
//     used directly as a set or map key.
//   - WithAddedObstacle derives a variant grid with one extra obstacle without
//     touching the receiver, so many variants can be simulated concurrently
//     against one shared base.
//
// Input format (Parse / ParseString):
//
//	....#.....
//	.........#
//	..#.......
//	....^.....
//
//	'.' free cell, '#' obstacle, one of '^' '>' 'v' '<' marks the start
//	cell and its heading. Trailing blank lines are ignored.
//
// Complexity:
//
//   - New, Parse:         O(W×H) time and memory.
//   - InBounds, IsObstacle: O(1).
//   - WithAddedObstacle:  O(1) for a variant of a base grid,
//     O(W×H) for a variant of a variant.
//
// Errors:
//
//   - ErrMalformedGrid: parent of every input-shape error below.
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoStart / ErrMultipleStarts: start marker count is not exactly one.
//   - ErrUnknownCell: a character outside the cell alphabet.
//   - ErrOutOfBounds: a constructor was handed a coordinate outside the grid.
//   - ErrObstacleOnStart: an obstacle was requested on the start cell.
//   - ErrInvalidHeading: a Heading value outside the four cardinal values.
package grid
