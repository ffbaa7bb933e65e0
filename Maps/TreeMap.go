package Maps

import (
	"cmp"
	"iter"

	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Entry is the key of the tree nodes backing a TreeMap. Entries are ordered by
// Key alone.
type Entry[K, V any] struct {
	Key K
	Val V
}

// TreeMap is an ordered map stored in a rank augmented red-black tree.
type TreeMap[K, V any] struct {
	t   *Trees.RbTree[Entry[K, V], Trees.Rank]
	cmp func(K, K) int
}

// New returns an empty TreeMap ordered by the natural order of K.
func New[K constraints.Ordered, V any]() *TreeMap[K, V] {
	return NewC[K, V](cmp.Compare[K])
}

// NewC returns an empty TreeMap ordered by cmp.
func NewC[K, V any](cmp func(K, K) int) *TreeMap[K, V] {
	return &TreeMap[K, V]{Trees.NewRbC[Entry[K, V], Trees.Rank](func(a, b Entry[K, V]) int {
		return cmp(a.Key, b.Key)
	}), cmp}
}

func (u *TreeMap[K, V]) find(k K) *Trees.Node[Entry[K, V]] {
	return u.t.Search(Entry[K, V]{Key: k})
}

// Insert [Map.Insert]
// Time: O(log n)
func (u *TreeMap[K, V]) Insert(k K, v V) error {
	if u.t.Insert(Trees.NewNode(Entry[K, V]{k, v})) == nil {
		return errors.Wrapf(ErrDuplicateKey, "insert %v", k)
	}
	return nil
}

// Put [Map.Put]
// Time: O(log n)
func (u *TreeMap[K, V]) Put(k K, v V) (old V, ok bool) {
	p := Trees.NewNode(Entry[K, V]{k, v})
	if q := u.t.SearchOrInsert(p); q != p {
		old, q.Key.Val = q.Key.Val, v
		return old, true
	}
	return
}

// Get [Map.Get]
// Time: O(log n)
func (u *TreeMap[K, V]) Get(k K) (v V, err error) {
	if p := u.find(k); p != nil {
		return p.Key.Val, nil
	}
	return v, errors.Wrapf(ErrKeyNotFound, "get %v", k)
}

func (u *TreeMap[K, V]) Has(k K) bool {
	return u.find(k) != nil
}

// Delete [Map.Delete]
// Time: O(log n)
func (u *TreeMap[K, V]) Delete(k K) (v V, err error) {
	if p := u.t.Remove(Entry[K, V]{Key: k}); p != nil {
		return p.Key.Val, nil
	}
	return v, errors.Wrapf(ErrKeyNotFound, "delete %v", k)
}

func (u *TreeMap[K, V]) Len() int {
	return u.t.Size()
}

// At returns the pair at position i in key order.
// Time: O(log n)
func (u *TreeMap[K, V]) At(i int) (k K, v V, err error) {
	if p := u.t.Select(i); p != nil {
		return p.Key.Key, p.Key.Val, nil
	}
	return k, v, errors.Wrapf(ErrOutOfRange, "at %d of %d", i, u.t.Size())
}

// IndexOf returns the position of k in key order.
// Time: O(log n)
func (u *TreeMap[K, V]) IndexOf(k K) (int, error) {
	if i, p := u.t.Position(Entry[K, V]{Key: k}); p != nil {
		return i, nil
	}
	return -1, errors.Wrapf(ErrKeyNotFound, "index of %v", k)
}

// All pairs in key order.
func (u *TreeMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range u.t.All() {
			if !yield(e.Key, e.Val) {
				return
			}
		}
	}
}

// Range calls f on the pairs with from <= key < to in key order until f returns
// false. f must not modify u.
// Time: O((m+1)*log n)
func (u *TreeMap[K, V]) Range(from, to K, f func(K, V) bool) {
	p := u.find(from)
	if p == nil {
		p = u.t.Successor(Entry[K, V]{Key: from})
	}
	for ; p != nil && u.cmp(p.Key.Key, to) < 0; p = u.t.Successor(p.Key) {
		if !f(p.Key.Key, p.Key.Val) {
			return
		}
	}
}

// Split moves the pairs with keys less than k to l and the others to r,
// leaving u empty.
// Time: O(log n)
func (u *TreeMap[K, V]) Split(k K) (l, r *TreeMap[K, V]) {
	a, b := u.t.SplitDup(Entry[K, V]{Key: k})
	return &TreeMap[K, V]{a, u.cmp}, &TreeMap[K, V]{b, u.cmp}
}

// Merge moves all pairs of o into u, leaving o empty. For keys present in both
// u's values are kept and the keys are returned.
func (u *TreeMap[K, V]) Merge(o *TreeMap[K, V]) (dup []K) {
	for _, p := range u.t.Join(o.t) {
		dup = append(dup, p.Key.Key)
	}
	return
}

var _ OrderedMap[int, int] = (*TreeMap[int, int])(nil)
