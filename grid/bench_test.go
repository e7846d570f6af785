package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rinkpath/grid"
)

// BenchmarkComponent measures the flood fill from the corner of a random
// 500×500 grid with roughly 25% obstacles.
// Complexity: O(R×C)
func BenchmarkComponent(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	cells := make([][]grid.Cell, n)
	for r := range cells {
		cells[r] = make([]grid.Cell, n)
		for c := range cells[r] {
			cells[r][c].Cost = int64(rng.Intn(4))
			if rng.Intn(4) == 0 {
				cells[r][c].Markers = grid.MarkerObstacle
			}
		}
	}
	cells[0][0].Markers = 0 // the fill needs an open seed
	g, err := grid.New(cells)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Component(grid.Position{})
	}
}
