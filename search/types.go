package search

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/katalvlaran/rinkpath/grid"
)

// Sentinel errors returned by Run.
var (
	// ErrNilField indicates a nil Field was passed to Run.
	ErrNilField = errors.New("search: field is nil")
	// ErrUnknownAlgorithm indicates an Algorithm value or name that is not one of the six strategies.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
	// ErrHook wraps an error returned by the OnExpand hook; the search stops.
	ErrHook = errors.New("search: expansion hook failed")
	// ErrInvalidPath indicates a path that leaves the grid, hits an obstacle
	// or does not end on a goal.
	ErrInvalidPath = errors.New("search: invalid path")
)

// Unreachable is the Result.Cost reported when no goal can be reached.
const Unreachable int64 = math.MaxInt64

// Field is the read-only grid view consumed by the search strategies.
// *grid.Grid implements it.
type Field interface {
	Traversable(p grid.Position) bool
	Cost(p grid.Position) int64
	Start() (grid.Position, error)
	Goals() []grid.Position
	IsGoal(p grid.Position) bool
	Component(p grid.Position) []grid.Position
}

var _ Field = (*grid.Grid)(nil)

// Algorithm selects a search strategy.
type Algorithm int

const (
	// BFS is breadth-first search.
	BFS Algorithm = iota
	// DFS is depth-first search.
	DFS
	// UCS is uniform-cost search.
	UCS
	// Greedy is greedy best-first search.
	Greedy
	// AStar is A* search.
	AStar
	// IDAStar is iterative-deepening A*.
	IDAStar
)

var algorithmNames = [...]string{
	BFS:     "bfs",
	DFS:     "dfs",
	UCS:     "ucs",
	Greedy:  "greedy",
	AStar:   "a_star",
	IDAStar: "ida_star",
}

// Algorithms returns all strategies in canonical order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, UCS, Greedy, AStar, IDAStar}
}

// String returns the canonical lowercase name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm maps a case-insensitive name or alias to an Algorithm.
// Accepted: bfs, dfs, ucs, greedy, astar|a*|a_star|a-star,
// idastar|ida*|ida_star|ida-star.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "ucs":
		return UCS, nil
	case "greedy":
		return Greedy, nil
	case "astar", "a*", "a_star", "a-star":
		return AStar, nil
	case "idastar", "ida*", "ida_star", "ida-star":
		return IDAStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Result is the outcome of one search. It is created once per Run and never
// modified afterwards.
type Result struct {
	// Algorithm that produced the result.
	Algorithm Algorithm
	// Path is the move sequence from start to a goal; nil when unreachable.
	// An empty non-nil path means the start is itself a goal.
	Path []grid.Move
	// Cost is the sum of the movement costs of every cell entered,
	// or Unreachable.
	Cost int64
	// Visited counts explored positions. See the package documentation:
	// IDAStar reports path length instead of a visited-set size.
	Visited int
	// Found reports whether a goal was reached.
	Found bool
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds per-call hooks and diagnostics.
type Options struct {
	// OnExpand is called each time a position is expanded, with its
	// cumulative cost. Returning an error aborts the search; Run returns it
	// wrapped in ErrHook. Callers use it for tracing or cancellation.
	OnExpand func(pos grid.Position, cost int64) error

	// Logger receives debug traces and admissibility warnings.
	Logger *slog.Logger
}

// DefaultOptions returns Options with a no-op hook and a discarding logger.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(grid.Position, int64) error { return nil },
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// WithOnExpand installs fn as the expansion hook. A nil fn is ignored.
func WithOnExpand(fn func(pos grid.Position, cost int64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
