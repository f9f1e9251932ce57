package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// @Author KHighness
// @Update 2024-01-21

func TestBounded_Api(t *testing.T) {
	b := NewBounded[int](3)
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 3, b.Cap())

	for _, x := range []int{1, 2, 3} {
		expelled, ok := b.Add(x)
		assert.False(t, ok)
		assert.Equal(t, 0, expelled)
	}
	assert.True(t, b.IsFull())

	for i, x := range []int{4, 5, 6} {
		expelled, ok := b.Add(x)
		assert.True(t, ok)
		assert.Equal(t, i+1, expelled)
	}

	min, _ := b.Min()
	max, _ := b.Max()
	assert.Equal(t, 4, min)
	assert.Equal(t, 6, max)
	assert.Equal(t, []int{6, 5, 4}, b.Sorted())

	// Below the retention threshold: dropped, nothing expelled.
	_, ok := b.Add(0)
	assert.False(t, ok)
	assert.Equal(t, 3, b.Len())
	min, _ = b.Min()
	assert.Equal(t, 4, min)
}

func TestBounded_Pop(t *testing.T) {
	b := NewBounded[int](4)
	for _, x := range []int{9, 2, 7, 5} {
		b.Add(x)
	}

	min, ok := b.PopMin()
	assert.True(t, ok)
	assert.Equal(t, 2, min)

	max, ok := b.PopMax()
	assert.True(t, ok)
	assert.Equal(t, 9, max)

	assert.Equal(t, 2, b.Len())
	assert.False(t, b.IsFull())
}

func TestBounded_Update(t *testing.T) {
	b := NewBounded[int](3)
	for _, x := range []int{4, 5, 6} {
		b.Add(x)
	}

	idx, ok := b.Find(func(x int) bool { return x == 5 })
	assert.True(t, ok)
	b.Update(idx, 10)
	assertInvariant(t, b.heap)

	min, _ := b.Min()
	max, _ := b.Max()
	assert.Equal(t, 4, min)
	assert.Equal(t, 10, max)

	_, ok = b.Find(func(x int) bool { return x == 5 })
	assert.False(t, ok)

	assert.Panics(t, func() { b.Update(3, 1) })
	assert.Panics(t, func() { b.Update(-1, 1) })
}

func TestBounded_Reweigh(t *testing.T) {
	b := NewBounded[int](3)
	for _, x := range []int{4, 10, 6} {
		b.Add(x)
	}

	b.Reweigh(func(x int) int { return x / 2 })
	assertInvariant(t, b.heap)

	min, _ := b.Min()
	max, _ := b.Max()
	assert.Equal(t, 2, min)
	assert.Equal(t, 5, max)
}

func TestBounded_Empty(t *testing.T) {
	b := NewBounded[int](2)

	_, ok := b.Min()
	assert.False(t, ok)
	_, ok = b.Max()
	assert.False(t, ok)
	_, ok = b.PopMin()
	assert.False(t, ok)
	_, ok = b.Find(func(int) bool { return true })
	assert.False(t, ok)
}
