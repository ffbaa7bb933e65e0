package Queues

// circArrQ is a circular buffer; content[head] is the oldest item and
// content[tail] the next free slot.
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue returns an empty ArrayQueue with room for initCap items
// before the first growth.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{content: make([]T, max(initCap, 1))}
}

func (this *circArrQ[T]) Empty() bool {
	return this.sz == 0
}

// resize moves the items to a new array of length newLen >= sz, oldest first.
func (this *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.head < this.tail {
		copy(nc, this.content[this.head:this.tail])
	} else if this.sz > 0 {
		n := copy(nc, this.content[this.head:])
		copy(nc[n:], this.content[:this.tail])
	}
	this.head, this.tail = 0, this.sz%newLen
	this.content = nc
}

func (this *circArrQ[T]) Shrink() {
	this.resize(max(this.sz, 1))
}

func (this *circArrQ[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this *circArrQ[T]) Size() uint {
	return this.sz
}

// Push [Queue.Push]
// Time: amortized O(1)
func (this *circArrQ[T]) Push(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(this.sz + this.sz>>1 + 1)
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
}

// Pop [Queue.Pop]
// Time: O(1)
func (this *circArrQ[T]) Pop() (item T, e error) {
	if this.Empty() {
		return item, ErrEmpty
	}
	item = this.content[this.head]
	this.content[this.head] = *new(T)
	this.head = (this.head + 1) % uint(len(this.content))
	this.sz--
	return item, nil
}

func (this *circArrQ[T]) Peek() (item T) {
	if !this.Empty() {
		item = this.content[this.head]
	}
	return
}
