package main

import (
	"iter"

	"github.com/g-m-twostay/go-trees/Trees"
)

// subject hides the concrete tree type behind the operations treefuzz drives.
type subject interface {
	insert(k int) bool
	remove(k int) bool
	has(k int) bool
	at(i int) (int, bool)
	position(k int) int
	size() int
	height() int
	verify() bool
	// splitJoin splits the tree at k, verifies both parts and concatenates
	// them back.
	splitJoin(k int) bool
	keys() iter.Seq[int]
}

type adapter[T Trees.Tree[int, T]] struct {
	t T
}

func (a *adapter[T]) insert(k int) bool {
	return a.t.Insert(Trees.NewNode(k)) != nil
}

func (a *adapter[T]) remove(k int) bool {
	return a.t.Remove(k) != nil
}

func (a *adapter[T]) has(k int) bool {
	return a.t.Search(k) != nil
}

func (a *adapter[T]) at(i int) (int, bool) {
	if p := a.t.Select(i); p != nil {
		return p.Key, true
	}
	return 0, false
}

func (a *adapter[T]) position(k int) int {
	i, _ := a.t.Position(k)
	return i
}

func (a *adapter[T]) size() int {
	return a.t.Size()
}

func (a *adapter[T]) height() int {
	return a.t.Height()
}

func (a *adapter[T]) verify() bool {
	return a.t.Verify()
}

func (a *adapter[T]) splitJoin(k int) bool {
	l, r := a.t.SplitDup(k)
	ok := a.t.Empty() && l.Verify() && r.Verify()
	if m := l.Max(); m != nil && m.Key >= k {
		ok = false
	}
	if m := r.Min(); m != nil && m.Key < k {
		ok = false
	}
	l.JoinExclusive(r)
	a.t = l
	return ok && r.Empty()
}

func (a *adapter[T]) keys() iter.Seq[int] {
	return a.t.All()
}

func wrap[T Trees.Tree[int, T]](t T) subject {
	return &adapter[T]{t}
}

// newSubject returns an empty tree of the named strategy. sb and rand trees
// are always rank augmented.
func newSubject(name string, rank bool, seed uint64) subject {
	switch name {
	case "bin":
		if rank {
			return wrap(Trees.NewBin[int, Trees.Rank]())
		}
		return wrap(Trees.NewBin[int, Trees.Plain]())
	case "avl":
		if rank {
			return wrap(Trees.NewAvl[int, Trees.Rank]())
		}
		return wrap(Trees.NewAvl[int, Trees.Plain]())
	case "rb":
		if rank {
			return wrap(Trees.NewRb[int, Trees.Rank]())
		}
		return wrap(Trees.NewRb[int, Trees.Plain]())
	case "treap":
		if rank {
			return wrap(Trees.NewTreap[int, Trees.Rank](seed))
		}
		return wrap(Trees.NewTreap[int, Trees.Plain](seed))
	case "splay":
		if rank {
			return wrap(Trees.NewSplay[int, Trees.Rank]())
		}
		return wrap(Trees.NewSplay[int, Trees.Plain]())
	case "sb":
		return wrap(Trees.NewSb[int]())
	case "rand":
		return wrap(Trees.NewRand[int](seed))
	}
	return nil
}
