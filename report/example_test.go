package report_test

import (
	"os"

	"github.com/katalvlaran/rinkpath/report"
	"github.com/katalvlaran/rinkpath/search"
	"github.com/katalvlaran/rinkpath/textgrid"
)

func ExampleText() {
	g, _ := textgrid.Parse("P 1\n1 G", textgrid.Letters)
	res, _ := search.BFS.Search(g)
	_ = report.Text(os.Stdout, res)
	// Output:
	// bfs Path: [down right]
	// Total Cost: 2
	// Search Depth: 3
	// ----------------------------------------
}
