// Package grid models a weighted rink: a rectangular 2D matrix of cells where
// one cell holds the agent (start), any number hold goals, pucks or
// obstacles, and every cell carries a movement cost.
//
// What:
//
//   - Grid wraps a rectangular [][]Cell and is immutable once built.
//   - Answers bounds, traversability and movement-cost queries in O(1).
//   - Locates the start cell and the goal, puck and obstacle sets.
//   - Computes the 4-connected traversable component around a position.
//
// Why:
//
//   - Search strategies share one read-only Grid; since nothing mutates it,
//     concurrent searches need no locking.
//
// Cells:
//
//   - A Cell is a canonical record: an explicit Cost plus a Marker bitset.
//     Text encodings are decoded into Cells elsewhere (see package textgrid),
//     so the grid itself never parses strings.
//
// Complexity:
//
//   - New:        O(R×C) time and memory (deep copy + marker index).
//   - Queries:    O(1).
//   - Component:  O(R×C).
//
// Errors:
//
//   - ErrConfiguration: base error matched by every construction failure.
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cell carries a negative movement cost.
//   - ErrNoStart: the grid has no start marker, so it cannot be searched.
package grid
