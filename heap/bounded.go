package heap

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// @Author KHighness
// @Update 2024-01-21

// Bounded is a capacity-limited MinMax heap that retains the k largest
// elements offered to it. The backing min-max layout keeps both the
// retention threshold (the minimum) and the top element (the maximum)
// readable in O(1).
type Bounded[T any] struct {
	heap *MinMax[T]
	k    int
}

// NewBounded creates a Bounded heap of capacity k ordered by the
// natural "<".
func NewBounded[T constraints.Ordered](k int) *Bounded[T] {
	return &Bounded[T]{heap: New[T](), k: k}
}

// NewBoundedFunc creates a Bounded heap of capacity k ordered by less.
func NewBoundedFunc[T any](k int, less func(a, b T) bool) *Bounded[T] {
	return &Bounded[T]{heap: NewFunc(less), k: k}
}

// Add offers x to the heap. Below capacity x is always admitted. At
// capacity, x replaces the current minimum only if it is greater; the
// expelled minimum is returned with true. An x that does not beat the
// minimum is dropped and nothing is expelled.
func (b *Bounded[T]) Add(x T) (T, bool) {
	var zero T
	if !b.IsFull() {
		b.heap.Push(x)
		return zero, false
	}
	if min, _ := b.heap.Min(); b.heap.less(min, x) {
		expelled, _ := b.heap.ReplaceMin(x)
		return expelled, true
	}
	return zero, false
}

// Min returns the smallest retained element, the eviction threshold.
func (b *Bounded[T]) Min() (T, bool) { return b.heap.Min() }

// Max returns the largest retained element.
func (b *Bounded[T]) Max() (T, bool) { return b.heap.Max() }

// PopMin removes and returns the smallest retained element.
func (b *Bounded[T]) PopMin() (T, bool) { return b.heap.PopMin() }

// PopMax removes and returns the largest retained element.
func (b *Bounded[T]) PopMax() (T, bool) { return b.heap.PopMax() }

// Find returns the index of the first element satisfying match and
// whether one exists.
func (b *Bounded[T]) Find(match func(T) bool) (int, bool) {
	for i, x := range b.heap.data {
		if match(x) {
			return i, true
		}
	}
	return 0, false
}

// Update replaces the element at index idx with x and re-establishes
// the heap ordering around it.
func (b *Bounded[T]) Update(idx int, x T) {
	if idx < 0 || idx >= b.Len() {
		panic(fmt.Errorf("Bounded: idx(%d) is out bound of [0, %d)", idx, b.Len()))
	}
	b.heap.data[idx] = x
	b.heap.up(idx)
	b.heap.down(idx)
}

// Reweigh applies f to every retained element and re-establishes the
// heap ordering in O(k).
func (b *Bounded[T]) Reweigh(f func(T) T) {
	for i, x := range b.heap.data {
		b.heap.data[i] = f(x)
	}
	b.heap.init()
}

// Sorted returns the retained elements sorted in descending order.
func (b *Bounded[T]) Sorted() []T {
	items := b.heap.Unordered()
	slices.SortFunc(items, func(x, y T) bool { return b.heap.less(y, x) })
	return items
}

// Unordered returns a copy of the retained elements in heap order.
func (b *Bounded[T]) Unordered() []T { return b.heap.Unordered() }

// Len returns the number of retained elements.
func (b *Bounded[T]) Len() int { return b.heap.Len() }

// Cap returns the retention capacity k.
func (b *Bounded[T]) Cap() int { return b.k }

// IsEmpty checks if the heap is empty.
func (b *Bounded[T]) IsEmpty() bool { return b.heap.IsEmpty() }

// IsFull checks if the heap is at capacity.
func (b *Bounded[T]) IsFull() bool { return b.heap.Len() >= b.k }
