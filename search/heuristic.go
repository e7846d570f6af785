package search

import "github.com/katalvlaran/rinkpath/grid"

// Heuristic estimates the remaining cost from a position to the nearest goal.
type Heuristic func(p grid.Position) int64

// Manhattan returns the heuristic min over goals of |Δrow| + |Δcol|.
// With no goals it always returns 0.
// It never overestimates when every traversable cell costs at least 1.
func Manhattan(goals []grid.Position) Heuristic {
	gs := append([]grid.Position(nil), goals...)
	return func(p grid.Position) int64 {
		if len(gs) == 0 {
			return 0
		}
		best := distance(p, gs[0])
		for _, g := range gs[1:] {
			if d := distance(p, g); d < best {
				best = d
			}
		}
		return best
	}
}

func distance(a, b grid.Position) int64 {
	return int64(abs(a.Row-b.Row) + abs(a.Col-b.Col))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
