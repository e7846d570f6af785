package search

import (
	"fmt"

	"github.com/katalvlaran/rinkpath/grid"
)

// Replay walks path from start over f and returns the final position and
// the summed cost of every cell entered. It fails with ErrInvalidPath when a
// step leaves the grid or enters an obstacle.
func Replay(f Field, start grid.Position, path []grid.Move) (grid.Position, int64, error) {
	cur, cost := start, int64(0)
	for i, m := range path {
		next := cur.Add(m)
		if !f.Traversable(next) {
			return cur, cost, fmt.Errorf("%w: step %d (%v) from %v is not traversable", ErrInvalidPath, i, m, cur)
		}
		cost += f.Cost(next)
		cur = next
	}
	return cur, cost, nil
}

// Validate checks that a found Result replays from f's start onto a goal
// with exactly the reported cost. Unreachable results are valid when they
// carry no path and the Unreachable cost.
func Validate(f Field, res *Result) error {
	if res == nil {
		return fmt.Errorf("%w: nil result", ErrInvalidPath)
	}
	if !res.Found {
		if res.Path != nil || res.Cost != Unreachable {
			return fmt.Errorf("%w: unreachable result carries a path or a finite cost", ErrInvalidPath)
		}
		return nil
	}
	start, err := f.Start()
	if err != nil {
		return err
	}
	end, cost, err := Replay(f, start, res.Path)
	if err != nil {
		return err
	}
	if !f.IsGoal(end) {
		return fmt.Errorf("%w: path ends on %v, which is not a goal", ErrInvalidPath, end)
	}
	if cost != res.Cost {
		return fmt.Errorf("%w: replayed cost %d, reported %d", ErrInvalidPath, cost, res.Cost)
	}
	return nil
}
