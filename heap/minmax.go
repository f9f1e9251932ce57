package heap

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// @Author KHighness
// @Update 2024-01-21

// MinMax is a double-ended priority heap: a complete binary tree stored
// in a slice whose levels alternate between min ordering and max
// ordering, so that both the minimum and the maximum element are
// reachable in O(1) and removable in O(log n).
//
// See: Atkinson et al., "Min-Max Heaps and Generalized Priority Queues",
// CACM 29(10), 1986.
type MinMax[T any] struct {
	data []T
	less func(a, b T) bool
}

// New creates an empty MinMax heap ordered by the natural "<".
func New[T constraints.Ordered]() *MinMax[T] {
	return NewFunc[T](func(a, b T) bool { return a < b })
}

// NewFunc creates an empty MinMax heap ordered by less.
func NewFunc[T any](less func(a, b T) bool) *MinMax[T] {
	return &MinMax[T]{less: less}
}

// From creates a MinMax heap holding a copy of items, ordered by the
// natural "<". Building costs O(n).
func From[T constraints.Ordered](items []T) *MinMax[T] {
	return FromFunc(items, func(a, b T) bool { return a < b })
}

// FromFunc creates a MinMax heap holding a copy of items, ordered by less.
func FromFunc[T any](items []T, less func(a, b T) bool) *MinMax[T] {
	h := NewFunc(less)
	h.data = append(h.data, items...)
	h.init()
	return h
}

// Len returns the number of elements in the heap.
func (h *MinMax[T]) Len() int { return len(h.data) }

// IsEmpty checks if the heap is empty.
func (h *MinMax[T]) IsEmpty() bool { return len(h.data) == 0 }

// Clear removes all elements from the heap.
func (h *MinMax[T]) Clear() { h.data = h.data[:0] }

// Unordered returns a copy of the backing slice in heap order.
// Mutating the returned slice does not affect the heap.
func (h *MinMax[T]) Unordered() []T {
	return append([]T(nil), h.data...)
}

// Push adds x to the heap. Amortized O(log n).
func (h *MinMax[T]) Push(x T) {
	h.data = append(h.data, x)
	h.up(len(h.data) - 1)
}

// PushAll adds every element of items to the heap. On an empty heap it
// bulk-loads in O(n) instead of pushing one by one.
func (h *MinMax[T]) PushAll(items []T) {
	if len(h.data) == 0 {
		h.data = append(h.data, items...)
		h.init()
		return
	}
	for _, x := range items {
		h.Push(x)
	}
}

// Min returns the minimum element. The second return value is false if
// the heap is empty.
func (h *MinMax[T]) Min() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	return h.data[0], true
}

// Max returns the maximum element. The second return value is false if
// the heap is empty.
func (h *MinMax[T]) Max() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	return h.data[h.maxIndex()], true
}

// PopMin removes and returns the minimum element. The second return
// value is false if the heap is empty.
func (h *MinMax[T]) PopMin() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	return h.popAt(0), true
}

// PopMax removes and returns the maximum element. The second return
// value is false if the heap is empty.
func (h *MinMax[T]) PopMax() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	return h.popAt(h.maxIndex()), true
}

// ReplaceMin replaces the minimum element with x in a single pass and
// returns the displaced minimum. The second return value is false if
// the heap is empty, in which case nothing is inserted.
func (h *MinMax[T]) ReplaceMin(x T) (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	old := h.data[0]
	h.data[0] = x
	h.down(0)
	return old, true
}

// ReplaceMax replaces the maximum element with x in a single pass and
// returns the displaced maximum. The second return value is false if
// the heap is empty, in which case nothing is inserted.
func (h *MinMax[T]) ReplaceMax(x T) (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	m := h.maxIndex()
	old := h.data[m]
	h.data[m] = x
	// An arbitrary value at a max-level node can violate the bound
	// against its ancestors or against its subtree.
	h.up(m)
	h.down(m)
	return old, true
}

// maxIndex returns the index of the maximum element of a non-empty
// heap: the root for a single element, index 1 for two, otherwise the
// larger of the two max-level children of the root. Index 1 wins ties.
func (h *MinMax[T]) maxIndex() int {
	switch n := len(h.data); {
	case n <= 1:
		return 0
	case n == 2:
		return 1
	default:
		if h.less(h.data[1], h.data[2]) {
			return 2
		}
		return 1
	}
}

// popAt removes and returns the element at index i by swapping the
// last element into the hole and trickling it down.
func (h *MinMax[T]) popAt(i int) T {
	n := len(h.data) - 1
	h.swap(i, n)
	x := h.data[n]
	h.data = h.data[:n]
	if i < n {
		h.down(i)
	}
	return x
}

// init establishes the min-max invariant bottom-up in O(n).
func (h *MinMax[T]) init() {
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.down(i)
	}
}

// asc reports whether a ranks before b seeking the minimum.
func (h *MinMax[T]) asc(a, b T) bool { return h.less(a, b) }

// desc reports whether a ranks before b seeking the maximum.
func (h *MinMax[T]) desc(a, b T) bool { return h.less(b, a) }

// up restores the invariant after placing a value at index i. It first
// checks i against its parent, which lives on the opposite level
// parity; a violation there means the value belongs to the parent's
// ordering class, so the climb continues in the flipped direction. The
// climb itself compares against grandparents only, since they share
// the element's level parity.
func (h *MinMax[T]) up(i int) {
	if !hasParent(i) {
		return
	}
	p := parent(i)
	var by func(a, b T) bool
	if isMinLevel(i) {
		by = h.asc
		if h.less(h.data[p], h.data[i]) {
			h.swap(i, p)
			i, by = p, h.desc
		}
	} else {
		by = h.desc
		if h.less(h.data[i], h.data[p]) {
			h.swap(i, p)
			i, by = p, h.asc
		}
	}
	for hasGrandparent(i) {
		g := grandparent(i)
		if !by(h.data[i], h.data[g]) {
			return
		}
		h.swap(i, g)
		i = g
	}
}

// down restores the invariant after placing a value at index i, moving
// it toward the leaves. At each step the most extreme of i's children
// and grandchildren is selected, scanning children first and left to
// right so that ties keep the earlier candidate. A swap with a
// grandchild can leave the intermediate child out of order, which is
// repaired before descending further; a swap with a direct child
// terminates the descent.
func (h *MinMax[T]) down(i int) {
	by := h.asc
	if !isMinLevel(i) {
		by = h.desc
	}
	n := len(h.data)
	for {
		l := lchild(i)
		if l >= n || l < 0 /* overflow */ {
			return
		}
		m := l
		if r := rchild(i); r < n && by(h.data[r], h.data[m]) {
			m = r
		}
		for g, last := lgrandchild(i), rgrandchild(i); g < n && g <= last; g++ {
			if by(h.data[g], h.data[m]) {
				m = g
			}
		}
		if !by(h.data[m], h.data[i]) {
			return
		}
		h.swap(i, m)
		if m <= rchild(i) {
			return
		}
		if p := parent(m); by(h.data[p], h.data[m]) {
			h.swap(m, p)
		}
		i = m
	}
}

func (h *MinMax[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

// level returns the depth of index i: floor(log2(i + 1)).
func level(i int) int {
	return bits.Len(uint(i)+1) - 1
}

// isMinLevel checks if index i lies on a min-ordered level.
// The root is on a min level.
func isMinLevel(i int) bool {
	return level(i)%2 == 0
}

func lchild(i int) int { return i*2 + 1 }
func rchild(i int) int { return i*2 + 2 }

func lgrandchild(i int) int { return i*4 + 3 }
func rgrandchild(i int) int { return i*4 + 6 }

func parent(i int) int { return (i - 1) / 2 }

func grandparent(i int) int { return (i - 3) / 4 }

func hasParent(i int) bool { return i > 0 }

func hasGrandparent(i int) bool { return i > 2 }
