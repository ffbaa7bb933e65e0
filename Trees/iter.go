package Trees

import (
	"iter"

	"github.com/g-m-twostay/go-trees/Queues"
)

// Iterator walks the nodes of a tree in ascending order using an explicit
// stack. It remembers the generation of its tree: once the tree changes
// shape, Next returns false and Err returns ErrInvalidated. Note that Search on
// a SplayTree changes shape too.
// The zero value is meaningless; get one from [Tree.Iter].
type Iterator[K any] struct {
	root **Node[K]
	gen  *uint64
	at   uint64
	st   []*Node[K]
	cur  *Node[K]
	err  error
}

// Iter [Tree.Iter]
func (u *base[K, A]) Iter() *Iterator[K] {
	it := &Iterator[K]{root: &u.root, gen: &u.gen}
	it.Reset()
	return it
}

// Reset rewinds the iterator to the smallest key of the tree's current
// content, clearing any invalidation.
func (it *Iterator[K]) Reset() {
	it.at, it.cur, it.err = *it.gen, nil, nil
	it.st = it.st[:0]
	for n := *it.root; n != nil; n = n.l {
		it.st = append(it.st, n)
	}
}

// Next advances to the next node, reporting whether there is one.
// Time: amortized O(1).
func (it *Iterator[K]) Next() bool {
	if it.err != nil {
		return false
	} else if *it.gen != it.at {
		it.err, it.cur, it.st = ErrInvalidated, nil, it.st[:0]
		return false
	} else if len(it.st) == 0 {
		it.cur = nil
		return false
	}
	it.cur, it.st = it.st[len(it.st)-1], it.st[:len(it.st)-1]
	for n := it.cur.r; n != nil; n = n.l {
		it.st = append(it.st, n)
	}
	return true
}

// Node the iterator is at. nil before the first Next and after exhaustion.
func (it *Iterator[K]) Node() *Node[K] {
	return it.cur
}

// Key of Node. Must only be called after Next returned true.
func (it *Iterator[K]) Key() K {
	return it.cur.Key
}

// Err returns ErrInvalidated if the tree changed shape under the iterator.
func (it *Iterator[K]) Err() error {
	return it.err
}

// All [Tree.All]
// The sequence can be ranged over any number of times. Changing the shape of
// the tree while ranging over it panics with ErrInvalidated.
func (u *base[K, A]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		it := u.Iter()
		for it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
		if it.Err() != nil {
			panic(it.Err())
		}
	}
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function.
func (u *base[K, A]) InOrder() func() (K, bool) {
	it := u.Iter()
	return func() (r K, has bool) {
		if it.Next() {
			return it.Key(), true
		}
		return
	}
}

type leveled[K any] struct {
	n *Node[K]
	d int
}

// LevelOrder [Tree.LevelOrder]
// Time: O(n); Space: O(width)
func (u *base[K, A]) LevelOrder(f func(n *Node[K], depth int) bool) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[leveled[K]](16)
	q.Push(leveled[K]{u.root, 0})
	for !q.Empty() {
		e, _ := q.Pop()
		if !f(e.n, e.d) {
			return
		}
		if e.n.l != nil {
			q.Push(leveled[K]{e.n.l, e.d + 1})
		}
		if e.n.r != nil {
			q.Push(leveled[K]{e.n.r, e.d + 1})
		}
	}
}

// Height [Tree.Height]
// Time: O(n)
func (u *base[K, A]) Height() (h int) {
	u.LevelOrder(func(_ *Node[K], d int) bool {
		h = max(h, d+1)
		return true
	})
	return
}
