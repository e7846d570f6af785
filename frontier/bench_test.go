package frontier_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rinkpath/frontier"
)

// BenchmarkPriority_PushPop pushes n random keys then drains the heap.
// Complexity: O(n log n)
func BenchmarkPriority_PushPop(b *testing.B) {
	const n = 10000
	rng := rand.New(rand.NewSource(42))
	keys := make([]int64, n)
	for i := range keys {
		keys[i] = rng.Int63n(1000)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := frontier.NewPriority[int](n)
		for j, k := range keys {
			p.Push(j, k)
		}
		for p.Len() > 0 {
			p.Pop()
		}
	}
}

// BenchmarkQueue_PushPop measures amortized ring-buffer growth.
func BenchmarkQueue_PushPop(b *testing.B) {
	const n = 10000
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q := frontier.NewQueue[int](1)
		for j := 0; j < n; j++ {
			q.Push(j, 0)
		}
		for q.Len() > 0 {
			q.Pop()
		}
	}
}
