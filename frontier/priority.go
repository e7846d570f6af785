package frontier

import "container/heap"

// Priority is a min-heap frontier. Items with equal priority pop in the
// order they were pushed: every entry carries a monotonically increasing
// sequence number used as the secondary key.
type Priority[T any] struct {
	h   entryHeap[T]
	seq uint64
}

// NewPriority returns an empty Priority with the given initial capacity.
func NewPriority[T any](capacity int) *Priority[T] {
	p := &Priority[T]{h: make(entryHeap[T], 0, capacity)}
	heap.Init(&p.h)
	return p
}

// Push inserts item with the given priority.
func (p *Priority[T]) Push(item T, priority int64) {
	heap.Push(&p.h, entry[T]{item: item, priority: priority, seq: p.seq})
	p.seq++
}

// Pop removes the item with the smallest (priority, sequence) key.
func (p *Priority[T]) Pop() (T, bool) {
	if p.h.Len() == 0 {
		var zero T
		return zero, false
	}
	e := heap.Pop(&p.h).(entry[T])
	return e.item, true
}

// Len returns the number of pending items.
func (p *Priority[T]) Len() int { return p.h.Len() }

// entry is one heap slot.
type entry[T any] struct {
	item     T
	priority int64
	seq      uint64
}

// entryHeap implements heap.Interface ordered by (priority, seq) ascending.
type entryHeap[T any] []entry[T]

// Len returns the number of entries in the heap.
func (h entryHeap[T]) Len() int { return len(h) }

// Less orders by priority, then by insertion sequence.
func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

// Swap swaps two entries.
func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an entry[T].
func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

// Pop is called by heap.Pop and removes the last element.
func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = entry[T]{}
	*h = old[:n-1]

	return e
}
