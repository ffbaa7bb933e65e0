// Package Queues holds FIFO queues: a growable circular array for single
// goroutine use and a lock free linked queue for many.
package Queues

import "github.com/pkg/errors"

// ErrEmpty is returned by Pop on an empty queue.
var ErrEmpty = errors.New("queue is empty: cannot pop")

type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item, ErrEmpty if there is none.
	Pop() (T, error)
	//Peek at the oldest item; the zero value if there is none.
	Peek() T
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing array to the current size.
	Shrink()
	Clear()
	Size() uint
}
