package Queues

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayQueue_FIFO(t *testing.T) {
	q := MakeArrayQueue[int](0)
	_, err := q.Pop()
	require.ErrorIs(t, err, ErrEmpty)
	for i := range 100 {
		q.Push(i)
		if i%3 == 0 {
			v, err := q.Pop()
			require.NoError(t, err)
			assert.Equal(t, i/3, v)
		}
	}
	assert.EqualValues(t, 100-34, q.Size())
	assert.Equal(t, 34, q.Peek())
	q.Shrink()
	for i := 34; i < 100; i++ {
		v, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	assert.True(t, q.Empty())
	assert.Zero(t, q.Peek())
}

func TestArrayQueue_Wrap(t *testing.T) {
	q := MakeArrayQueue[int](4)
	q.Push(0)
	q.Push(1)
	q.Push(2)
	q.Pop()
	q.Pop()
	q.Push(3)
	q.Push(4)
	q.Push(5) //full and wrapped.
	q.Push(6)
	var got []int
	for !q.Empty() {
		v, _ := q.Pop()
		got = append(got, v)
	}
	assert.Equal(t, []int{2, 3, 4, 5, 6}, got)
	q.Push(7)
	q.Clear()
	assert.True(t, q.Empty())
}

func TestConcurrentLinkedQueue(t *testing.T) {
	const producers, each = 8, 1000
	q := MakeConcurrentLinkedQueue[int]()
	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range each {
				q.Push(p*each + i)
			}
		}()
	}
	wg.Wait()
	seen := make([]bool, producers*each)
	var mu sync.Mutex
	for range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				v, err := q.Pop()
				if err != nil {
					return
				}
				mu.Lock()
				seen[v] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	for i, s := range seen {
		require.True(t, s, "lost %d", i)
	}
	assert.True(t, q.Empty())
}
