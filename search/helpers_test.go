package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rinkpath/grid"
	"github.com/katalvlaran/rinkpath/search"
	"github.com/katalvlaran/rinkpath/textgrid"
)

// rink parses a Letters layout or fails the test.
func rink(t testing.TB, text string) *grid.Grid {
	t.Helper()
	g, err := textgrid.Parse(text, textgrid.Letters)
	require.NoError(t, err)
	return g
}

// runAll runs every algorithm on g and validates each result.
func runAll(t *testing.T, g *grid.Grid) map[search.Algorithm]*search.Result {
	t.Helper()
	out := make(map[search.Algorithm]*search.Result)
	for _, alg := range search.Algorithms() {
		res, err := search.Run(g, alg)
		require.NoError(t, err, alg.String())
		require.NoError(t, search.Validate(g, res), alg.String())
		require.Equal(t, alg, res.Algorithm)
		out[alg] = res
	}
	return out
}
