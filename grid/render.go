package grid

import "strings"

// String renders g in the input format, one row per line with a trailing
// newline. Parse(g.String()) reproduces g.
func (g *Grid) String() string {
	return g.Render(nil, 0)
}

// Render renders g like String, drawing mark over every free cell for which
// marked returns true. The start marker always wins over mark.
// A nil marked draws nothing extra.
func (g *Grid) Render(marked func(Point) bool, mark rune) string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Point{X: x, Y: y}
			switch {
			case p == g.start.Pos:
				sb.WriteRune(g.start.Heading.Marker())
			case g.IsObstacle(x, y):
				sb.WriteByte(ObstacleCell)
			case marked != nil && marked(p):
				sb.WriteRune(mark)
			default:
				sb.WriteByte(FreeCell)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
