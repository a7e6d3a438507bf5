package grid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/grid"
)

const reference = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

// TestParse_Reference parses the 10×10 reference grid.
func TestParse_Reference(t *testing.T) {
	g, err := grid.ParseString(reference)
	require.NoError(t, err)

	require.Equal(t, 10, g.Width())
	require.Equal(t, 10, g.Height())
	require.Equal(t, grid.AgentState{Pos: grid.Point{X: 4, Y: 6}, Heading: grid.North}, g.Start())
	require.Equal(t, 8, g.ObstacleCount())
	require.True(t, g.IsObstacle(4, 0))
	require.True(t, g.IsObstacle(9, 1))
	require.False(t, g.IsObstacle(4, 6))
}

// TestParse_RoundTrip verifies String reproduces the input exactly.
func TestParse_RoundTrip(t *testing.T) {
	g, err := grid.ParseString(reference)
	require.NoError(t, err)
	require.Equal(t, reference, g.String())
}

// TestParse_Tolerance checks CRLF endings and trailing blank lines.
func TestParse_Tolerance(t *testing.T) {
	in := "..#\r\n.>.\r\n...\r\n\r\n   \n\n"
	g, err := grid.ParseString(in)
	require.NoError(t, err)
	require.Equal(t, 3, g.Height())
	require.Equal(t, grid.East, g.Start().Heading)
}

// TestParse_Errors verifies every malformed input is rejected with its
// specific sentinel and with ErrMalformedGrid.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"OnlyBlankLines", "\n\n\n", grid.ErrEmptyGrid},
		{"Ragged", "...\n.^\n...\n", grid.ErrNonRectangular},
		{"NoStart", "...\n...\n", grid.ErrNoStart},
		{"TwoStarts", "^..\n..v\n", grid.ErrMultipleStarts},
		{"UnknownCell", ".^.\n.x.\n", grid.ErrUnknownCell},
		{"InteriorBlankLine", ".^.\n\n...\n", grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(strings.NewReader(tc.input))
			if !errors.Is(err, tc.err) {
				t.Fatalf("Parse(%q) error = %v; want %v", tc.input, err, tc.err)
			}
			require.ErrorIs(t, err, grid.ErrMalformedGrid)
		})
	}
}

// TestRender overlays a path and keeps the start marker on top.
func TestRender(t *testing.T) {
	g, err := grid.ParseString("...\n.^#\n...\n")
	require.NoError(t, err)

	onColumn1 := func(p grid.Point) bool { return p.X == 1 }
	want := ".X.\n.^#\n.X.\n"
	require.Equal(t, want, g.Render(onColumn1, 'X'))
}

// TestParse_MultiByteCell verifies a non-ASCII character is reported whole,
// with its column counted in characters rather than bytes.
func TestParse_MultiByteCell(t *testing.T) {
	_, err := grid.ParseString(".é.\n.^.\n")
	require.ErrorIs(t, err, grid.ErrUnknownCell)
	require.Contains(t, err.Error(), `'é' at row 1, column 2`)

	_, err = grid.ParseString("..é\n.^.\n")
	require.Contains(t, err.Error(), "column 3")
}
