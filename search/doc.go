// Package search explores a grid.Grid from its start cell toward the nearest
// goal with six interchangeable strategies and reports the path, its
// cumulative cost and how many nodes were visited.
//
// Strategies:
//
//   - BFS:     FIFO frontier; fewest moves, not necessarily cheapest.
//   - DFS:     LIFO frontier; any path.
//   - UCS:     min-heap keyed by cumulative cost g; cheapest path.
//   - Greedy:  min-heap keyed by heuristic h; any path, usually few expansions.
//   - AStar:   min-heap keyed by g + h; cheapest path.
//   - IDAStar: depth-first passes bounded by g + h, the bound raised to the
//     smallest pruned value after each pass; cheapest path, linear memory.
//
// The first five share one loop: pop, goal check, first-pop-wins visited
// check, expand the four unit moves in grid.Moves order. Ties in the
// priority frontiers break by insertion order, so every run is
// deterministic and re-running against the same grid yields an identical
// Result.
//
// Heuristic:
//
// Manhattan distance to the nearest goal. It is admissible only when every
// traversable cell costs at least 1. Grids with cheaper cells are searched
// anyway; AStar and IDAStar then log a warning and their results are not
// guaranteed optimal.
//
// Visited counts:
//
//   - Loop strategies: number of distinct positions expanded when the goal
//     was popped (or when the frontier emptied).
//   - IDAStar: positions on the successful path, start included
//     (len(Path)+1); when no goal is reachable, the size of the start's
//     connected component.
//
// Complexity (R×C grid, N = R·C):
//
//   - BFS, DFS:         O(N) time and memory.
//   - UCS, Greedy, A*:  O(N log N) time, O(N) memory (lazy duplicates in the heap).
//   - IDAStar:          exponential in the worst case, O(path) memory per pass.
//
// Searches never mutate the grid and keep all state per call, so concurrent
// Run calls against one grid need no synchronization.
package search
