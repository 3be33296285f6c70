package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue(t *testing.T) {
	var q Queue[int]
	assert.True(t, q.Empty())

	q.Push(1)
	assert.False(t, q.Empty())
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, q.Pop(), 1)
	assert.True(t, q.Empty())

	q.Push(2)
	q.Push(3)

	assert.Equal(t, q.Pop(), 2)
	assert.Equal(t, q.Pop(), 3)
	assert.True(t, q.Empty())

	assert.Panics(t, func() { q.Pop() })
}

func TestDrain(t *testing.T) {
	t.Run("All", func(t *testing.T) {
		q := Of(1, 2, 3)
		var got []int
		q.Drain()(func(x int) bool {
			got = append(got, x)
			return true
		})
		assert.Equal(t, []int{1, 2, 3}, got)
		assert.True(t, q.Empty())
	})

	t.Run("Stop", func(t *testing.T) {
		q := Of(1, 2, 3)
		var got []int
		q.Drain()(func(x int) bool {
			got = append(got, x)
			return x < 2
		})
		assert.Equal(t, []int{1, 2}, got)
		assert.Equal(t, 1, q.Len(), "only the unvisited element should remain")
	})

	t.Run("SinglePass", func(t *testing.T) {
		q := Of("a")
		seq := q.Drain()
		n := 0
		seq(func(string) bool { n++; return true })
		seq(func(string) bool { n++; return true })
		assert.Equal(t, 1, n)
	})
}
