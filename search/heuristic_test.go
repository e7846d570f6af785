package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/rinkpath/grid"
	"github.com/katalvlaran/rinkpath/search"
)

func TestManhattan(t *testing.T) {
	h := search.Manhattan([]grid.Position{{Row: 0, Col: 9}, {Row: 4, Col: 1}})
	assert.Equal(t, int64(0), h(grid.Position{Row: 4, Col: 1}))
	assert.Equal(t, int64(3), h(grid.Position{Row: 2, Col: 0}))  // 2+1 to (4,1)
	assert.Equal(t, int64(2), h(grid.Position{Row: 1, Col: 8}))  // 1+1 to (0,9)
	assert.Equal(t, int64(7), h(grid.Position{Row: -3, Col: 1})) // symmetric
}

func TestManhattan_NoGoals(t *testing.T) {
	h := search.Manhattan(nil)
	assert.Zero(t, h(grid.Position{Row: 7, Col: 7}))
}

func TestManhattan_CopiesGoals(t *testing.T) {
	goals := []grid.Position{{Row: 0, Col: 0}}
	h := search.Manhattan(goals)
	goals[0] = grid.Position{Row: 5, Col: 5}
	assert.Equal(t, int64(2), h(grid.Position{Row: 1, Col: 1}))
}
