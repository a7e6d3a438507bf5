package grid_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/gridwalk/grid"
)

// randomGrid builds a deterministic n×n map with ~density obstacles and the
// start in the centre.
func randomGrid(n int, density float64) string {
	rng := rand.New(rand.NewSource(42))
	var sb strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			switch {
			case x == n/2 && y == n/2:
				sb.WriteByte('^')
			case rng.Float64() < density:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// BenchmarkParse measures parsing a 130×130 map.
func BenchmarkParse(b *testing.B) {
	in := randomGrid(130, 0.05)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.ParseString(in); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkWithAddedObstacle measures deriving a variant from a base grid.
// Complexity: O(1) per call.
func BenchmarkWithAddedObstacle(b *testing.B) {
	g, err := grid.ParseString(randomGrid(130, 0.05))
	if err != nil {
		b.Fatalf("setup ParseString failed: %v", err)
	}
	p := grid.Point{X: 0, Y: 0}
	if g.IsObstacle(0, 0) {
		p = grid.Point{X: 1, Y: 0}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.WithAddedObstacle(p)
	}
}
