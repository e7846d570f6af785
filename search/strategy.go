package search

import (
	"github.com/katalvlaran/rinkpath/frontier"
	"github.com/katalvlaran/rinkpath/grid"
)

// strategy is what distinguishes the five loop-based searches: the frontier
// ordering and the key attached to each pushed node.
type strategy struct {
	newFrontier func(capacity int) frontier.Frontier[*node]
	// key computes the push priority from cumulative cost g and heuristic h.
	// nil for unordered frontiers.
	key func(g, h int64) int64
}

var strategies = map[Algorithm]strategy{
	BFS: {
		newFrontier: func(n int) frontier.Frontier[*node] { return frontier.NewQueue[*node](n) },
	},
	DFS: {
		newFrontier: func(n int) frontier.Frontier[*node] { return frontier.NewStack[*node](n) },
	},
	UCS: {
		newFrontier: newPriority,
		key:         func(g, _ int64) int64 { return g },
	},
	Greedy: {
		newFrontier: newPriority,
		key:         func(_, h int64) int64 { return h },
	},
	AStar: {
		newFrontier: newPriority,
		key:         func(g, h int64) int64 { return g + h },
	},
}

func newPriority(n int) frontier.Frontier[*node] { return frontier.NewPriority[*node](n) }

// node is one pending search state. Nodes are never modified after
// creation; paths share prefixes through parent links.
type node struct {
	pos    grid.Position
	cost   int64
	move   grid.Move // move that reached pos; zero for the root
	parent *node
	depth  int
}

// child derives the node reached from n by m, entering a cell of the given cost.
func (n *node) child(m grid.Move, stepCost int64) *node {
	return &node{
		pos:    n.pos.Add(m),
		cost:   n.cost + stepCost,
		move:   m,
		parent: n,
		depth:  n.depth + 1,
	}
}

// path rebuilds the move sequence from the root to n. The root yields an
// empty, non-nil slice.
func (n *node) path() []grid.Move {
	moves := make([]grid.Move, n.depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		moves[cur.depth-1] = cur.move
	}
	return moves
}
