package Sets

import (
	"iter"

	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/pkg/errors"
)

// TreeSet is an ordered set of distinct keys stored in a tree of type T. Any
// strategy and augmentation of package Trees works; Rank makes At, Rank and
// Split logarithmic.
type TreeSet[K any, T Trees.Tree[K, T]] struct {
	t T
}

// New returns a set over the tree t, which should be empty and must not be
// used directly afterwards.
func New[K any, T Trees.Tree[K, T]](t T) *TreeSet[K, T] {
	return &TreeSet[K, T]{t}
}

// Tree the set is stored in.
func (u *TreeSet[K, T]) Tree() T {
	return u.t
}

// Put k, ErrDuplicateKey if it's already present.
func (u *TreeSet[K, T]) Put(k K) error {
	if u.t.Insert(Trees.NewNode(k)) == nil {
		return errors.Wrapf(ErrDuplicateKey, "put %v", k)
	}
	return nil
}

func (u *TreeSet[K, T]) Has(k K) bool {
	return u.t.Search(k) != nil
}

// Remove k, ErrKeyNotFound if it's absent.
func (u *TreeSet[K, T]) Remove(k K) error {
	if u.t.Remove(k) == nil {
		return errors.Wrapf(ErrKeyNotFound, "remove %v", k)
	}
	return nil
}

func (u *TreeSet[K, T]) Size() int {
	return u.t.Size()
}

// Range calls f on the keys in ascending order until f returns false. f must
// not modify the set.
func (u *TreeSet[K, T]) Range(f func(K) bool) {
	for k := range u.t.All() {
		if !f(k) {
			return
		}
	}
}

func (u *TreeSet[K, T]) Keys() iter.Seq[K] {
	return u.t.All()
}

func (u *TreeSet[K, T]) At(i int) (k K, err error) {
	if p := u.t.Select(i); p != nil {
		return p.Key, nil
	}
	return k, errors.Wrapf(ErrOutOfRange, "at %d of %d", i, u.t.Size())
}

func (u *TreeSet[K, T]) Rank(k K) (int, error) {
	if i, p := u.t.Position(k); p != nil {
		return i, nil
	}
	return -1, errors.Wrapf(ErrKeyNotFound, "rank of %v", k)
}

func (u *TreeSet[K, T]) Min() (k K, err error) {
	if p := u.t.Min(); p != nil {
		return p.Key, nil
	}
	return k, errors.Wrap(ErrOutOfRange, "min of empty set")
}

func (u *TreeSet[K, T]) Max() (k K, err error) {
	if p := u.t.Max(); p != nil {
		return p.Key, nil
	}
	return k, errors.Wrap(ErrOutOfRange, "max of empty set")
}

func (u *TreeSet[K, T]) Lower(k K) (K, bool) {
	if p := u.t.Predecessor(k); p != nil {
		return p.Key, true
	}
	return *new(K), false
}

func (u *TreeSet[K, T]) Higher(k K) (K, bool) {
	if p := u.t.Successor(k); p != nil {
		return p.Key, true
	}
	return *new(K), false
}

// Split moves the keys less than k to l and those greater than k to r, leaving
// u empty. It fails with ErrPrecondition, changing nothing, if k is present.
func (u *TreeSet[K, T]) Split(k K) (l, r *TreeSet[K, T], err error) {
	a, b, ok := u.t.Split(k)
	if !ok {
		return nil, nil, errors.Wrapf(ErrPrecondition, "split at present key %v", k)
	}
	return New[K](a), New[K](b), nil
}

// SplitAt moves the first i keys to l and the rest to r, leaving u empty.
func (u *TreeSet[K, T]) SplitAt(i int) (l, r *TreeSet[K, T], err error) {
	if n := u.t.Size(); i < 0 || i > n {
		return nil, nil, errors.Wrapf(ErrOutOfRange, "split at %d of %d", i, n)
	}
	a, b := u.t.SplitPos(i)
	return New[K](a), New[K](b), nil
}

// Union moves every key of o into u, leaving o empty. Keys present in both
// stay in u; o's copies are returned.
func (u *TreeSet[K, T]) Union(o *TreeSet[K, T]) (dup []K) {
	for _, p := range u.t.Join(o.t) {
		dup = append(dup, p.Key)
	}
	return
}

// Concat appends o to u, leaving o empty. Every key of u must be less than
// every key of o; otherwise ErrPrecondition is returned and nothing changes.
func (u *TreeSet[K, T]) Concat(o *TreeSet[K, T]) error {
	if a, b := u.t.Max(), o.t.Min(); a != nil && b != nil && u.t.Predecessor(b.Key) != a {
		return errors.Wrapf(ErrPrecondition, "concat %v after %v", b.Key, a.Key)
	}
	u.t.JoinExclusive(o.t)
	return nil
}

var _ OrderedSet[int] = (*TreeSet[int, *Trees.AvlTree[int, Trees.Rank]])(nil)
