package search

import (
	"fmt"

	"github.com/katalvlaran/rinkpath/grid"
)

// bounded holds the state of one iterative-deepening A* run. Each pass is a
// depth-first walk along a single growing path; only positions already on
// that path are excluded, so a position abandoned earlier may be entered
// again through a different route.
type bounded struct {
	field Field
	h     Heuristic
	opts  Options

	stack  []frame                    // current path, root first
	onPath map[grid.Position]struct{} // O(1) membership for stack positions
	pruned int64                      // smallest f that exceeded the bound this pass
}

// frame is one entered position on the current path.
type frame struct {
	pos  grid.Position
	g    int64
	move grid.Move // move that reached pos; zero for the root
	next int       // index into grid.Moves of the next neighbor to try
}

// outcome of trying to enter a position.
type outcome int

const (
	entered outcome = iota
	pruned
	reached
)

func newBounded(f Field, h Heuristic, o Options) *bounded {
	return &bounded{
		field:  f,
		h:      h,
		opts:   o,
		onPath: make(map[grid.Position]struct{}),
	}
}

// run raises the bound pass after pass until a goal is reached.
// Goals outside the start's component are detected up front so that an
// enclosed goal does not force an enumeration of every simple path.
func (b *bounded) run(start grid.Position) (*Result, error) {
	comp := b.field.Component(start)
	if !b.anyGoal(start, comp) {
		visited := len(comp)
		if visited == 0 {
			visited = 1
		}
		return &Result{Algorithm: IDAStar, Cost: Unreachable, Visited: visited}, nil
	}

	bound := b.h(start)
	for pass := 1; ; pass++ {
		b.opts.Logger.Debug("ida* pass", "pass", pass, "bound", bound)
		res, err := b.pass(start, bound)
		if err != nil || res != nil {
			return res, err
		}
		if b.pruned == Unreachable {
			return &Result{Algorithm: IDAStar, Cost: Unreachable, Visited: len(comp)}, nil
		}
		bound = b.pruned
	}
}

// anyGoal reports whether start or any position in comp is a goal.
func (b *bounded) anyGoal(start grid.Position, comp []grid.Position) bool {
	if b.field.IsGoal(start) {
		return true
	}
	for _, p := range comp {
		if b.field.IsGoal(p) {
			return true
		}
	}
	return false
}

// pass performs one bounded depth-first walk with an explicit stack.
// It returns a Result on success, or nil with b.pruned set to the next bound.
func (b *bounded) pass(start grid.Position, bound int64) (*Result, error) {
	b.stack = b.stack[:0]
	clear(b.onPath)
	b.pruned = Unreachable

	switch o, err := b.enter(frame{pos: start}, bound); {
	case err != nil:
		return nil, err
	case o == reached:
		return b.success(frame{pos: start}), nil
	case o == pruned:
		return nil, nil
	}

	for len(b.stack) > 0 {
		top := &b.stack[len(b.stack)-1]
		if top.next == len(grid.Moves) {
			delete(b.onPath, top.pos)
			b.stack = b.stack[:len(b.stack)-1]
			continue
		}
		m := grid.Moves[top.next]
		top.next++

		nb := top.pos.Add(m)
		if !b.field.Traversable(nb) {
			continue
		}
		if _, ok := b.onPath[nb]; ok {
			continue
		}
		child := frame{pos: nb, g: top.g + b.field.Cost(nb), move: m}
		o, err := b.enter(child, bound)
		if err != nil {
			return nil, err
		}
		if o == reached {
			return b.success(child), nil
		}
	}
	return nil, nil
}

// enter evaluates f = g + h at fr. Positions over the bound are pruned and
// recorded, goals end the pass, and everything else is pushed on the path.
func (b *bounded) enter(fr frame, bound int64) (outcome, error) {
	f := fr.g + b.h(fr.pos)
	if f > bound {
		if f < b.pruned {
			b.pruned = f
		}
		return pruned, nil
	}
	if b.field.IsGoal(fr.pos) {
		return reached, nil
	}
	if err := b.opts.OnExpand(fr.pos, fr.g); err != nil {
		return pruned, fmt.Errorf("%w: at %v: %w", ErrHook, fr.pos, err)
	}
	b.stack = append(b.stack, fr)
	b.onPath[fr.pos] = struct{}{}
	return entered, nil
}

// success builds the Result for a goal frame reached from the current stack.
func (b *bounded) success(goal frame) *Result {
	path := make([]grid.Move, 0, len(b.stack))
	if len(b.stack) > 0 {
		for _, fr := range b.stack[1:] {
			path = append(path, fr.move)
		}
		path = append(path, goal.move)
	}
	return &Result{
		Algorithm: IDAStar,
		Path:      path,
		Cost:      goal.g,
		Visited:   len(path) + 1,
		Found:     true,
	}
}
