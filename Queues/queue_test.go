package Queues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayQueue_FIFO(t *testing.T) {
	for _, initCap := range []uint{0, 1, 2, 7, 64} {
		q := MakeArrayQueue[int](initCap)
		require.True(t, q.Empty())
		next := 0
		// interleave pushes and pops so the content wraps around while growing.
		for i := range 1000 {
			q.Push(i)
			if i%3 == 0 {
				v, err := q.Pop()
				require.NoError(t, err)
				require.Equal(t, next, v)
				next++
			}
		}
		require.Equal(t, uint(1000-next), q.Size())
		require.Equal(t, next, q.Peek())
		for !q.Empty() {
			v, err := q.Pop()
			require.NoError(t, err)
			require.Equal(t, next, v)
			next++
		}
		assert.Equal(t, 1000, next)
	}
}

func TestArrayQueue_Empty(t *testing.T) {
	q := MakeArrayQueue[string](4)
	v, err := q.Pop()
	assert.Equal(t, "", v)
	assert.IsType(t, &EmptyQueueError{}, err)
	assert.Equal(t, "", q.Peek())
}

func TestArrayQueue_ShrinkClear(t *testing.T) {
	q := MakeArrayQueue[int](2)
	for i := range 100 {
		q.Push(i)
	}
	for range 95 {
		_, err := q.Pop()
		require.NoError(t, err)
	}
	q.Shrink()
	assert.Equal(t, uint(5), q.Size())
	q.Push(100)
	for i := 95; i <= 100; i++ {
		v, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	q.Shrink()
	q.Push(1)
	q.Push(2)
	q.Clear()
	assert.True(t, q.Empty())
	assert.Equal(t, uint(0), q.Size())
	q.Push(3)
	v, _ := q.Pop()
	assert.Equal(t, 3, v)
}

func TestLinkedStack_LIFO(t *testing.T) {
	s := MakeLinkedStack[int]()
	assert.True(t, s.Empty())
	for i := range 100 {
		s.Push(i)
	}
	assert.Equal(t, uint(100), s.Size())
	assert.Equal(t, 99, s.Peek())
	for i := 99; i >= 0; i-- {
		v, err := s.Pop()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	assert.True(t, s.Empty())
	v, err := s.Pop()
	assert.Equal(t, 0, v)
	assert.IsType(t, &EmptyStackError{}, err)
	assert.EqualError(t, err, "Stack is Empty: cannot Pop.")
	assert.Equal(t, 0, s.Peek())
}
