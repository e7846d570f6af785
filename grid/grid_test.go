package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rinkpath/grid"
)

// layout builds a Grid from compact rows: digits are costs, 'P' start,
// 'G' goal, 'B' puck, 'X' obstacle; markers cost grid.DefaultCost.
func layout(t testing.TB, rows ...string) *grid.Grid {
	t.Helper()
	cells := make([][]grid.Cell, len(rows))
	for r, row := range rows {
		for _, ch := range row {
			cell := grid.Cell{Cost: grid.DefaultCost}
			switch {
			case ch >= '0' && ch <= '9':
				cell.Cost = int64(ch - '0')
			case ch == 'P':
				cell.Markers = grid.MarkerStart
			case ch == 'G':
				cell.Markers = grid.MarkerGoal
			case ch == 'B':
				cell.Markers = grid.MarkerPuck
			case ch == 'X':
				cell.Markers = grid.MarkerObstacle
			}
			cells[r] = append(cells[r], cell)
		}
	}
	g, err := grid.New(cells)
	require.NoError(t, err)
	return g
}

func TestNew_Errors(t *testing.T) {
	_, err := grid.New(nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	assert.ErrorIs(t, err, grid.ErrConfiguration)

	_, err = grid.New([][]grid.Cell{{}})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.New([][]grid.Cell{{{Cost: 1}, {Cost: 1}}, {{Cost: 1}}})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
	assert.ErrorIs(t, err, grid.ErrConfiguration)

	_, err = grid.New([][]grid.Cell{{{Cost: -1}}})
	assert.ErrorIs(t, err, grid.ErrNegativeCost)
}

func TestNew_DeepCopy(t *testing.T) {
	cells := [][]grid.Cell{{{Cost: 3, Markers: grid.MarkerStart}, {Cost: 2}}}
	g, err := grid.New(cells)
	require.NoError(t, err)

	cells[0][1].Cost = 9
	cells[0][1].Markers = grid.MarkerObstacle
	assert.Equal(t, int64(2), g.Cost(grid.Position{Row: 0, Col: 1}))
	assert.True(t, g.Traversable(grid.Position{Row: 0, Col: 1}))
}

func TestGrid_Queries(t *testing.T) {
	g := layout(t,
		"1P10X",
		"0X1B2",
		"11G3G",
	)
	assert.Equal(t, 3, g.Rows)
	assert.Equal(t, 5, g.Cols)

	// bounds
	assert.True(t, g.InBounds(grid.Position{Row: 2, Col: 4}))
	for _, p := range []grid.Position{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 3, Col: 0}, {Row: 0, Col: 5}} {
		assert.False(t, g.InBounds(p), "%v", p)
		assert.False(t, g.Traversable(p), "%v", p)
		assert.Zero(t, g.Cost(p), "%v", p)
	}

	// obstacles are in bounds but not traversable
	assert.False(t, g.Traversable(grid.Position{Row: 0, Col: 4}))
	assert.False(t, g.Traversable(grid.Position{Row: 1, Col: 1}))
	assert.True(t, g.Traversable(grid.Position{Row: 1, Col: 3}), "pucks do not block")

	// costs
	assert.Equal(t, int64(0), g.Cost(grid.Position{Row: 0, Col: 3}))
	assert.Equal(t, int64(3), g.Cost(grid.Position{Row: 2, Col: 3}))
	assert.Equal(t, grid.DefaultCost, g.Cost(grid.Position{Row: 2, Col: 2}))

	start, err := g.Start()
	require.NoError(t, err)
	assert.Equal(t, grid.Position{Row: 0, Col: 1}, start)

	assert.Equal(t, []grid.Position{{Row: 2, Col: 2}, {Row: 2, Col: 4}}, g.Goals())
	assert.True(t, g.IsGoal(grid.Position{Row: 2, Col: 4}))
	assert.False(t, g.IsGoal(start))
	assert.Equal(t, []grid.Position{{Row: 1, Col: 3}}, g.Pucks())
	assert.Equal(t, []grid.Position{{Row: 0, Col: 4}, {Row: 1, Col: 1}}, g.Obstacles())
	assert.Equal(t, int64(0), g.MinCost())
}

func TestGrid_GoalsReturnsCopy(t *testing.T) {
	g := layout(t, "PG")
	goals := g.Goals()
	goals[0] = grid.Position{Row: 5, Col: 5}
	assert.Equal(t, []grid.Position{{Row: 0, Col: 1}}, g.Goals())
}

func TestGrid_NoStart(t *testing.T) {
	g := layout(t, "11G")
	_, err := g.Start()
	assert.True(t, errors.Is(err, grid.ErrNoStart))
	assert.True(t, errors.Is(err, grid.ErrConfiguration))
}

func TestGrid_StartObstructed(t *testing.T) {
	_, err := grid.New([][]grid.Cell{{
		{Cost: 1, Markers: grid.MarkerStart | grid.MarkerObstacle},
		{Cost: 1, Markers: grid.MarkerGoal},
	}})
	assert.True(t, errors.Is(err, grid.ErrStartObstructed))
	assert.True(t, errors.Is(err, grid.ErrConfiguration))

	// Only the start that wins is checked; a later blocked start is ignored.
	g, err := grid.New([][]grid.Cell{{
		{Cost: 1, Markers: grid.MarkerStart},
		{Cost: 1, Markers: grid.MarkerStart | grid.MarkerObstacle},
		{Cost: 1, Markers: grid.MarkerGoal},
	}})
	require.NoError(t, err)
	start, err := g.Start()
	require.NoError(t, err)
	assert.Equal(t, grid.Position{}, start)
}

func TestGrid_FirstStartWins(t *testing.T) {
	g := layout(t, "1P", "P1")
	start, err := g.Start()
	require.NoError(t, err)
	assert.Equal(t, grid.Position{Row: 0, Col: 1}, start)
}

func TestGrid_CombinedMarkers(t *testing.T) {
	g, err := grid.New([][]grid.Cell{{
		{Cost: 1, Markers: grid.MarkerStart},
		{Cost: 0, Markers: grid.MarkerGoal | grid.MarkerPuck},
	}})
	require.NoError(t, err)
	p := grid.Position{Row: 0, Col: 1}
	assert.True(t, g.IsGoal(p))
	assert.Equal(t, []grid.Position{p}, g.Pucks())
	cell, ok := g.Cell(p)
	require.True(t, ok)
	assert.Equal(t, "goal|puck", cell.Markers.String())
}

func TestMoveAndMarkerStrings(t *testing.T) {
	assert.Equal(t, "up", grid.Up.String())
	assert.Equal(t, "down", grid.Down.String())
	assert.Equal(t, "left", grid.Left.String())
	assert.Equal(t, "right", grid.Right.String())
	assert.Equal(t, "(2,2)", grid.Move{DRow: 2, DCol: 2}.String())
	assert.Equal(t, "none", grid.Marker(0).String())
	assert.Equal(t, "start|obstacle", (grid.MarkerStart | grid.MarkerObstacle).String())
	assert.False(t, grid.MarkerGoal.Has(0))
	assert.Equal(t, grid.Position{Row: 1, Col: 4}, grid.Position{Row: 1, Col: 3}.Add(grid.Right))
	assert.Equal(t, "(1,3)", grid.Position{Row: 1, Col: 3}.String())
}
