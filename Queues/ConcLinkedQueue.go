package Queues

import (
	"sync/atomic"
)

type node[T any] struct {
	v  T
	nx atomic.Pointer[node[T]]
}

// syncLinkedQ is the Michael-Scott queue. head always points to a dummy node
// whose successor is the oldest item; tail lags behind the last node by at
// most one step.
type syncLinkedQ[T any] struct {
	head, tail atomic.Pointer[node[T]]
}

// MakeConcurrentLinkedQueue returns an empty Queue safe for concurrent use by
// any number of goroutines.
func MakeConcurrentLinkedQueue[T any]() Queue[T] {
	t := new(syncLinkedQ[T])
	a := new(node[T])
	t.head.Store(a)
	t.tail.Store(a)
	return t
}

// Push [Queue.Push]
// Lock free.
func (c *syncLinkedQ[T]) Push(item T) {
	n := &node[T]{v: item}
	for {
		last := c.tail.Load()
		if next := last.nx.Load(); next != nil {
			c.tail.CompareAndSwap(last, next) //help the lagging tail.
		} else if last.nx.CompareAndSwap(nil, n) {
			c.tail.CompareAndSwap(last, n)
			return
		}
	}
}

// Pop [Queue.Pop]
// Lock free.
func (c *syncLinkedQ[T]) Pop() (T, error) {
	for {
		first, last := c.head.Load(), c.tail.Load()
		next := first.nx.Load()
		if first == last {
			if next == nil {
				return *new(T), ErrEmpty
			}
			c.tail.CompareAndSwap(last, next)
		} else if c.head.CompareAndSwap(first, next) {
			return next.v, nil
		}
	}
}

func (c *syncLinkedQ[T]) Peek() (v T) {
	if next := c.head.Load().nx.Load(); next != nil {
		v = next.v
	}
	return
}

func (c *syncLinkedQ[T]) Empty() bool {
	return c.head.Load().nx.Load() == nil
}
