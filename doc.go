// Package rinkpath finds paths for a hockey player across a weighted rink.
//
// 🚀 What is rinkpath?
//
//	A small, dependency-light toolkit that brings together:
//		• Grid model: rectangular rinks with per-cell costs and markers
//		• Frontiers: FIFO queue, LIFO stack, stable priority queue
//		• Search: BFS, DFS, UCS, Greedy best-first, A*, IDA*
//		• Heuristic: Manhattan distance to the nearest goal
//		• Puzzle files: rinks declared in HCL
//		• Reports: the classic text layout or JSON
//
// ✨ Why rinkpath?
//
//   - One search loop, five strategies: only the frontier and its key change
//   - Immutable grids: any number of goroutines may search the same rink
//   - Hooks: OnExpand for tracing or cancellation
//   - Every result replays: search.Validate checks path, goal and cost
//
// Packages, leaf first:
//
//	grid/       Position, Move, Cell and the immutable Grid
//	frontier/   Queue, Stack and Priority containers
//	search/     the algorithms, Manhattan heuristic and path replay
//	textgrid/   the two cell encodings and text layouts
//	puzzle/     HCL puzzle loading
//	report/     text and JSON output
//	runner/     concurrent batches of algorithms over one rink
//	ctxlog/     context-carried slog loggers
//	cli/        flag parsing for cmd/rinkpath
//
// Quick ASCII example:
//
//	P 1
//	1 G
//
//	is a 2×2 rink; BFS answers [down right] with cost 2.
//
//	go run ./cmd/rinkpath examples/rinks
package rinkpath
