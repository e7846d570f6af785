package search

import (
	"fmt"

	"github.com/katalvlaran/rinkpath/frontier"
	"github.com/katalvlaran/rinkpath/grid"
)

// Run searches f from its start cell with the chosen algorithm.
//
// Validation (in order):
//  1. f must be non-nil (ErrNilField).
//  2. alg must be one of the six strategies (ErrUnknownAlgorithm).
//  3. f must have a start marker (grid.ErrNoStart, returned unchanged).
//  4. the start must be traversable (grid.ErrStartObstructed).
//
// An unreachable goal, or no goal at all, is not an error: the Result has
// Found == false, a nil Path and Cost == Unreachable.
// A non-nil error from the OnExpand hook aborts the search and is returned
// wrapped in ErrHook.
func Run(f Field, alg Algorithm, opts ...Option) (*Result, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if g, ok := f.(*grid.Grid); ok && g == nil {
		return nil, ErrNilField
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s, isLoop := strategies[alg]
	if !isLoop && alg != IDAStar {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}

	start, err := f.Start()
	if err != nil {
		return nil, err
	}
	if !f.Traversable(start) {
		return nil, fmt.Errorf("%w: cell %v", grid.ErrStartObstructed, start)
	}

	h := Manhattan(f.Goals())
	if alg == AStar || alg == IDAStar {
		warnInadmissible(f, alg, o)
	}
	o.Logger.Debug("search started", "algorithm", alg, "start", start)

	var res *Result
	if alg == IDAStar {
		res, err = newBounded(f, h, o).run(start)
	} else {
		res, err = newEngine(f, s, h, o).run(alg, start)
	}
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("search finished",
		"algorithm", alg, "found", res.Found, "cost", res.Cost, "visited", res.Visited, "moves", len(res.Path))

	return res, nil
}

// Search is shorthand for Run(f, a, opts...).
func (a Algorithm) Search(f Field, opts ...Option) (*Result, error) {
	return Run(f, a, opts...)
}

// warnInadmissible logs when the grid has traversable cells cheaper than 1,
// which breaks the optimality guarantee of the Manhattan heuristic.
func warnInadmissible(f Field, alg Algorithm, o Options) {
	mc, ok := f.(interface{ MinCost() int64 })
	if !ok {
		return
	}
	if lowest := mc.MinCost(); lowest < 1 {
		o.Logger.Warn("heuristic not admissible: optimality not guaranteed",
			"algorithm", alg, "min_cost", lowest)
	}
}

// engine holds the mutable state for a single loop-based search.
type engine struct {
	field    Field
	strategy strategy
	h        Heuristic
	opts     Options
	frontier frontier.Frontier[*node]
	visited  map[grid.Position]struct{}
}

// newEngine prepares a fresh frontier and visited set for one run.
func newEngine(f Field, s strategy, h Heuristic, o Options) *engine {
	return &engine{
		field:    f,
		strategy: s,
		h:        h,
		opts:     o,
		frontier: s.newFrontier(64),
		visited:  make(map[grid.Position]struct{}),
	}
}

// run is the shared pop / goal-check / first-pop-wins / expand cycle.
func (e *engine) run(alg Algorithm, start grid.Position) (*Result, error) {
	e.frontier.Push(&node{pos: start}, 0)

	for e.frontier.Len() > 0 {
		n, _ := e.frontier.Pop()

		// 1) Goal reached: the path and cost are those of the popped node.
		if e.field.IsGoal(n.pos) {
			return &Result{
				Algorithm: alg,
				Path:      n.path(),
				Cost:      n.cost,
				Visited:   len(e.visited),
				Found:     true,
			}, nil
		}

		// 2) Stale entry: the position was already expanded at a key no worse.
		if _, seen := e.visited[n.pos]; seen {
			continue
		}
		e.visited[n.pos] = struct{}{}

		if err := e.opts.OnExpand(n.pos, n.cost); err != nil {
			return nil, fmt.Errorf("%w: at %v: %w", ErrHook, n.pos, err)
		}

		// 3) Push every traversable neighbor with the strategy's key.
		e.expand(n)
	}

	return &Result{
		Algorithm: alg,
		Cost:      Unreachable,
		Visited:   len(e.visited),
	}, nil
}

// expand pushes the children of n in grid.Moves order.
func (e *engine) expand(n *node) {
	for _, m := range grid.Moves {
		next := n.pos.Add(m)
		if !e.field.Traversable(next) {
			continue
		}
		c := n.child(m, e.field.Cost(next))
		var key int64
		if e.strategy.key != nil {
			key = e.strategy.key(c.cost, e.h(next))
		}
		e.frontier.Push(c, key)
	}
}
