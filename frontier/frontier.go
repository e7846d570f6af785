package frontier

// Frontier is an ordered container of pending items.
type Frontier[T any] interface {
	// Push adds item. Ordered containers use priority; others ignore it.
	Push(item T, priority int64)
	// Pop removes and returns the next item, or false when empty.
	Pop() (T, bool)
	// Len returns the number of pending items.
	Len() int
}

var (
	_ Frontier[int] = (*Queue[int])(nil)
	_ Frontier[int] = (*Stack[int])(nil)
	_ Frontier[int] = (*Priority[int])(nil)
)

// Queue is a FIFO ring buffer that grows as needed.
type Queue[T any] struct {
	items []T
	head  int
	count int
}

// NewQueue returns an empty Queue with room for capacity items before growing.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue[T]{items: make([]T, capacity)}
}

// Push appends item at the tail; priority is ignored.
func (q *Queue[T]) Push(item T, _ int64) {
	if q.count == len(q.items) {
		q.grow()
	}
	q.items[(q.head+q.count)%len(q.items)] = item
	q.count++
}

// Pop removes the head item.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.count--
	return item, true
}

// Len returns the number of pending items.
func (q *Queue[T]) Len() int { return q.count }

// grow doubles the buffer, unrolling the ring so head lands at index 0.
func (q *Queue[T]) grow() {
	size := len(q.items) * 2
	if size == 0 {
		size = 1
	}
	items := make([]T, size)
	n := copy(items, q.items[q.head:])
	copy(items[n:], q.items[:q.head])
	q.items = items
	q.head = 0
}

// Stack is a LIFO container.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty Stack with the given initial capacity.
func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push places item on top; priority is ignored.
func (s *Stack[T]) Push(item T, _ int64) { s.items = append(s.items, item) }

// Pop removes the top item.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	item := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return item, true
}

// Len returns the number of pending items.
func (s *Stack[T]) Len() int { return len(s.items) }
