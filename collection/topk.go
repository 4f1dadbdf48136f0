package collection

import "container/heap"

// WithPriority pairs an item with the priority it was pushed at.
type WithPriority[T any] struct {
	Item     T
	Priority float64
}

// max-heap ordered by priority, so the worst kept item is at the root
type topKHeap[T any] []WithPriority[T]

func (h topKHeap[T]) Len() int { return len(h) }

func (h topKHeap[T]) Less(i, j int) bool {
	return h[j].Priority < h[i].Priority
}

func (h topKHeap[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *topKHeap[T]) Push(x any) {
	*h = append(*h, x.(WithPriority[T]))
}

func (h *topKHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// TopK keeps the k lowest-priority items pushed into it, in bounded
// memory. Pushing beyond capacity evicts the current worst item.
type TopK[T any] struct {
	h topKHeap[T]
	k int
}

func NewTopK[T any](k int) *TopK[T] {
	return &TopK[T]{
		h: make(topKHeap[T], 0, k),
		k: k,
	}
}

func (t *TopK[T]) Len() int { return len(t.h) }

// Push offers an item. It is kept only while it ranks among the k
// lowest priorities seen so far.
func (t *TopK[T]) Push(item T, priority float64) {
	if len(t.h) < t.k {
		heap.Push(&t.h, WithPriority[T]{Item: item, Priority: priority})
		return
	}
	if t.k == 0 || t.h[0].Priority <= priority {
		return
	}
	t.h[0] = WithPriority[T]{Item: item, Priority: priority}
	heap.Fix(&t.h, 0)
}

// Worst returns the highest-priority kept item without removing it.
func (t *TopK[T]) Worst() (WithPriority[T], bool) {
	if len(t.h) == 0 {
		var zero WithPriority[T]
		return zero, false
	}
	return t.h[0], true
}

// Drain empties the container and returns the kept items ordered by
// ascending priority.
func (t *TopK[T]) Drain() []WithPriority[T] {
	out := make([]WithPriority[T], len(t.h))
	for i := len(out) - 1; 0 <= i; i-- {
		out[i] = heap.Pop(&t.h).(WithPriority[T])
	}
	return out
}
