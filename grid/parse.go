package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Cell characters of the input format.
const (
	FreeCell     = '.'
	ObstacleCell = '#'
)

// maxLineLen bounds a single input row.
const maxLineLen = 1 << 20

// ParseString parses a grid from its textual form. See Parse.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads a rectangular character grid: '.' is free, '#' is an obstacle
// and exactly one of '^', '>', 'v', '<' marks the start cell and heading.
// A trailing '\r' on each line and trailing blank lines are ignored.
//
// Every shape error wraps ErrMalformedGrid and names the offending row
// (1-based) and, where relevant, column.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineLen)

	var rows [][]rune
	for sc.Scan() {
		rows = append(rows, []rune(strings.TrimSuffix(sc.Text(), "\r")))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read input: %w", err)
	}
	for len(rows) > 0 && strings.TrimSpace(string(rows[len(rows)-1])) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	// Widths and columns count runes, not bytes.
	w, h := len(rows[0]), len(rows)
	var (
		obstacles []Point
		start     AgentState
		starts    int
	)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, y+1, len(row), w)
		}
		for x, c := range row {
			switch c {
			case FreeCell:
			case ObstacleCell:
				obstacles = append(obstacles, Point{X: x, Y: y})
			default:
				hd, ok := HeadingFromMarker(c)
				if !ok {
					return nil, fmt.Errorf("%w: %q at row %d, column %d", ErrUnknownCell, c, y+1, x+1)
				}
				starts++
				if starts > 1 {
					return nil, fmt.Errorf("%w: second marker at row %d, column %d", ErrMultipleStarts, y+1, x+1)
				}
				start = AgentState{Pos: Point{X: x, Y: y}, Heading: hd}
			}
		}
	}
	if starts == 0 {
		return nil, ErrNoStart
	}

	return New(w, h, obstacles, start)
}
