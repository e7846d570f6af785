package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid construction and queries.
var (
	// ErrConfiguration is the base of every error that makes a grid unsearchable.
	ErrConfiguration = errors.New("grid: configuration error")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrConfiguration)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrConfiguration)
	// ErrNegativeCost indicates a cell with a movement cost below zero.
	ErrNegativeCost = fmt.Errorf("%w: movement cost must be non-negative", ErrConfiguration)
	// ErrStartObstructed indicates the start cell is also an obstacle.
	ErrStartObstructed = fmt.Errorf("%w: start cell is an obstacle", ErrConfiguration)
	// ErrNoStart indicates the grid carries no start marker.
	ErrNoStart = fmt.Errorf("%w: no start marker", ErrConfiguration)
)

// DefaultCost is the movement cost of a cell whose encoding carries no number.
const DefaultCost int64 = 1

// Position is a (row, column) coordinate. It is comparable and used as a map key.
type Position struct {
	Row, Col int
}

// Add returns the position reached by applying m to p.
func (p Position) Add(m Move) Position {
	return Position{Row: p.Row + m.DRow, Col: p.Col + m.DCol}
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Move is a unit step on the grid.
type Move struct {
	DRow, DCol int
}

// The four unit moves.
var (
	Up    = Move{DRow: -1, DCol: 0}
	Down  = Move{DRow: 1, DCol: 0}
	Left  = Move{DRow: 0, DCol: -1}
	Right = Move{DRow: 0, DCol: 1}
)

// Moves lists the unit moves in expansion order. Every search strategy
// generates neighbors in exactly this order.
var Moves = [4]Move{Up, Down, Left, Right}

// String returns "up", "down", "left" or "right", or the raw delta for
// anything else.
func (m Move) String() string {
	switch m {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("(%d,%d)", m.DRow, m.DCol)
}

// Marker is a bitset of semantic tags a cell may carry.
type Marker uint8

const (
	// MarkerStart tags the agent's starting cell.
	MarkerStart Marker = 1 << iota
	// MarkerGoal tags a goal cell.
	MarkerGoal
	// MarkerPuck tags a puck. Pucks are recorded but never consulted by search.
	MarkerPuck
	// MarkerObstacle tags an impassable cell.
	MarkerObstacle
)

// Has reports whether every bit of x is set in m.
func (m Marker) Has(x Marker) bool {
	return x != 0 && m&x == x
}

// String lists the set markers joined by "|", or "none".
func (m Marker) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for _, n := range []struct {
		bit  Marker
		name string
	}{
		{MarkerStart, "start"},
		{MarkerGoal, "goal"},
		{MarkerPuck, "puck"},
		{MarkerObstacle, "obstacle"},
	} {
		if m.Has(n.bit) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Cell is the canonical content of one grid position: the cost of stepping
// into it and the markers it carries.
type Cell struct {
	Cost    int64
	Markers Marker
}

// Grid is an immutable rectangular matrix of Cells.
// Rows and Cols define dimensions; cells[r][c] holds the decoded content.
// Marker positions are indexed once during construction, in row-major order.
type Grid struct {
	Rows, Cols int
	cells      [][]Cell
	start      Position
	hasStart   bool
	goals      []Position
	goalSet    map[Position]struct{}
	pucks      []Position
	obstacles  []Position
}
