// Package frontier provides the ordered containers that hold pending search
// nodes. Every container satisfies Frontier and differs only in pop order:
//
//   - Queue:    first in, first out (breadth-first search).
//   - Stack:    last in, first out (depth-first search).
//   - Priority: smallest priority first; equal priorities pop in insertion
//     order, so ordering is stable and deterministic.
//
// Queue and Stack ignore the priority argument of Push.
//
// Complexity:
//
//   - Queue, Stack: O(1) amortized Push and Pop.
//   - Priority:     O(log n) Push and Pop (binary heap keyed by
//     (priority, sequence)).
//
// Containers are not safe for concurrent use; each search owns its own.
package frontier
