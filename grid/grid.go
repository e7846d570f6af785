package grid

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D slice of Cells.
// It deep-copies the input so later changes by the caller cannot leak in.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrNegativeCost if a
// cell cost is below zero. ErrStartObstructed is returned when the start
// cell also carries the obstacle marker. A missing start marker is not a construction
// error; it is reported by Start.
// Complexity: O(R×C) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}

	g := &Grid{
		Rows:    rows,
		Cols:    cols,
		cells:   make([][]Cell, rows),
		goalSet: make(map[Position]struct{}),
	}
	for r := 0; r < rows; r++ {
		g.cells[r] = make([]Cell, cols)
		copy(g.cells[r], cells[r])
		for c, cell := range g.cells[r] {
			if cell.Cost < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d) cost %d", ErrNegativeCost, r, c, cell.Cost)
			}
			g.index(Position{Row: r, Col: c}, cell.Markers)
		}
	}
	if g.hasStart && g.cells[g.start.Row][g.start.Col].Markers.Has(MarkerObstacle) {
		return nil, fmt.Errorf("%w: cell %v", ErrStartObstructed, g.start)
	}

	return g, nil
}

// index records p in the marker lists for every marker it carries.
// The first start marker in row-major order wins.
func (g *Grid) index(p Position, m Marker) {
	if m.Has(MarkerStart) && !g.hasStart {
		g.start, g.hasStart = p, true
	}
	if m.Has(MarkerGoal) {
		g.goals = append(g.goals, p)
		g.goalSet[p] = struct{}{}
	}
	if m.Has(MarkerPuck) {
		g.pucks = append(g.pucks, p)
	}
	if m.Has(MarkerObstacle) {
		g.obstacles = append(g.obstacles, p)
	}
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// Traversable reports whether p is inside the grid and not an obstacle.
// Out-of-bounds positions are simply not traversable.
func (g *Grid) Traversable(p Position) bool {
	return g.InBounds(p) && !g.cells[p.Row][p.Col].Markers.Has(MarkerObstacle)
}

// Cost returns the movement cost of stepping into p, or 0 when p is out of bounds.
func (g *Grid) Cost(p Position) int64 {
	if !g.InBounds(p) {
		return 0
	}
	return g.cells[p.Row][p.Col].Cost
}

// Cell returns the content at p and whether p is in bounds.
func (g *Grid) Cell(p Position) (Cell, bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	return g.cells[p.Row][p.Col], true
}

// Start returns the first start marker in row-major order,
// or ErrNoStart when the grid has none.
func (g *Grid) Start() (Position, error) {
	if !g.hasStart {
		return Position{}, ErrNoStart
	}
	return g.start, nil
}

// Goals returns a copy of all goal positions in row-major order.
// An empty result is valid: every search then reports unreachable.
func (g *Grid) Goals() []Position {
	return append([]Position(nil), g.goals...)
}

// IsGoal reports whether p carries the goal marker. Complexity: O(1).
func (g *Grid) IsGoal(p Position) bool {
	_, ok := g.goalSet[p]
	return ok
}

// Pucks returns a copy of all puck positions in row-major order.
func (g *Grid) Pucks() []Position {
	return append([]Position(nil), g.pucks...)
}

// Obstacles returns a copy of all obstacle positions in row-major order.
func (g *Grid) Obstacles() []Position {
	return append([]Position(nil), g.obstacles...)
}

// MinCost returns the smallest movement cost among traversable cells,
// or DefaultCost when every cell is an obstacle.
func (g *Grid) MinCost() int64 {
	lowest, seen := DefaultCost, false
	for _, row := range g.cells {
		for _, cell := range row {
			if cell.Markers.Has(MarkerObstacle) {
				continue
			}
			if !seen || cell.Cost < lowest {
				lowest, seen = cell.Cost, true
			}
		}
	}
	return lowest
}
