package Trees

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// SbTree is a size balanced tree: every subtree is at least as large as each
// of its sibling's subtrees. It balances by the subtree counts it keeps for
// Rank anyway, so it carries no other bookkeeping and is always augmented.
// The worst case height of the tree is less than f(n)=1.44*log2(n+1.5)-1.33. So
// the height D of the tree is of O(log n). However, on average, D=log2(n).
// Insertion and removal are recursive; Split and JoinExclusive rebuild the
// result from the sorted nodes and cost O(n).
type SbTree[K any] struct {
	base[K, Rank]
}

// ErrUnsorted is returned by BuildSb when the given keys aren't strictly
// ascending.
var ErrUnsorted = errors.New("keys aren't strictly ascending")

// NewSb returns an empty SbTree ordered by the natural order of K.
func NewSb[K constraints.Ordered]() *SbTree[K] {
	return NewSbC[K](natural[K])
}

// NewSbC returns an empty SbTree ordered by cmp.
func NewSbC[K any](cmp func(K, K) int) *SbTree[K] {
	return &SbTree[K]{makeBase[K, Rank](cmp)}
}

// BuildSb builds a SbTree from keys that must be sorted in ascending order
// without repetition. This is faster than repeatedly calling Insert.
// Time: O(n).
func BuildSb[K any](cmp func(K, K) int, keys []K) (*SbTree[K], error) {
	ns := make([]*Node[K], len(keys))
	for i, k := range keys {
		if i > 0 && cmp(keys[i-1], k) >= 0 {
			return nil, errors.Wrapf(ErrUnsorted, "at index %d", i)
		}
		ns[i] = NewNode(k)
	}
	u := NewSbC[K](cmp)
	u.root = build(ns)
	return u, nil
}

func (u *SbTree[K]) spawn(root *Node[K]) *SbTree[K] {
	return &SbTree[K]{base[K, Rank]{root: root, cmp: u.cmp, rk: true}}
}

// build links the sorted nodes into a perfectly balanced tree, which is
// always size balanced.
func build[K any](ns []*Node[K]) *Node[K] {
	if len(ns) == 0 {
		return nil
	}
	mid := len(ns) >> 1
	n := ns[mid]
	n.l, n.r, n.cnt = build(ns[:mid]), build(ns[mid+1:]), len(ns)
	return n
}

// flatten appends the nodes of the subtree rooting at n to dst in order.
func flatten[K any](n *Node[K], dst []*Node[K]) []*Node[K] {
	var st []*Node[K]
	for n != nil || len(st) > 0 {
		for ; n != nil; n = n.l {
			st = append(st, n)
		}
		n, st = st[len(st)-1], st[:len(st)-1]
		dst = append(dst, n)
		n = n.r
	}
	return dst
}

// rotate fixes a size violation at the node held by ln on one side: with
// rightBigger, a subtree of the right child larger than the left child.
// Reports whether it rotated.
func (u *SbTree[K]) rotate(ln **Node[K], rightBigger bool) bool {
	cur := *ln
	if rightBigger {
		rc, lc := cur.r, cur.l.Count()
		if rc == nil {
			return false
		} else if rc.r.Count() > lc {
			u.rotL(ln)
		} else if rc.l.Count() > lc {
			u.rotR(&cur.r)
			u.rotL(ln)
		} else {
			return false
		}
		return true
	}
	lc, rc := cur.l, cur.r.Count()
	if lc == nil {
		return false
	} else if lc.l.Count() > rc {
		u.rotR(ln)
	} else if lc.r.Count() > rc {
		u.rotL(&cur.l)
		u.rotR(ln)
	} else {
		return false
	}
	return true
}

// maintain the subtree held by ln, whose two children are size balanced, to
// be size balanced as a whole. rightBigger tells which side to check first,
// i.e. which side has grown or whose sibling has shrunk.
// Time: amortized O(1)
func (u *SbTree[K]) maintain(ln **Node[K], rightBigger bool) {
	if *ln == nil || !u.rotate(ln, rightBigger) && !u.rotate(ln, !rightBigger) {
		return
	}
	cur := *ln
	u.maintain(&cur.l, false)
	u.maintain(&cur.r, true)
	u.maintain(ln, rightBigger)
}

// insert p to the subtree held by ln recursively. Returns p, or the node
// already holding its key when !dup.
func (u *SbTree[K]) insert(ln **Node[K], p *Node[K], dup bool) *Node[K] {
	cur := *ln
	if cur == nil {
		*ln = p
		return p
	}
	c := u.cmp(p.Key, cur.Key)
	if c == 0 && !dup {
		return cur
	}
	var q *Node[K]
	if c < 0 {
		q = u.insert(&cur.l, p, dup)
	} else {
		q = u.insert(&cur.r, p, dup)
	}
	if q == p {
		cur.cnt++
		u.maintain(ln, c >= 0)
	}
	return q
}

// insertPos links p at position i of the subtree held by ln recursively.
func (u *SbTree[K]) insertPos(ln **Node[K], p *Node[K], i int) {
	cur := *ln
	if cur == nil {
		*ln = p
		return
	}
	right := i > cur.l.Count()
	if right {
		u.insertPos(&cur.r, p, i-cur.l.Count()-1)
	} else {
		u.insertPos(&cur.l, p, i)
	}
	cur.cnt++
	u.maintain(ln, right)
}

// InsertPos [Tree.InsertPos]. Recursive.
// Time: O(D)
func (u *SbTree[K]) InsertPos(p *Node[K], i int) {
	p.reset()
	u.insertPos(&u.root, p, i)
	u.touch()
}

func (u *SbTree[K]) insertRoot(p *Node[K], dup bool) *Node[K] {
	p.reset()
	q := u.insert(&u.root, p, dup)
	if q == p {
		u.touch()
	}
	return q
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *SbTree[K]) Insert(p *Node[K]) *Node[K] {
	if q := u.insertRoot(p, false); q == p {
		return p
	}
	return nil
}

// InsertDup [Tree.InsertDup]. Recursive.
// Time: O(D)
func (u *SbTree[K]) InsertDup(p *Node[K]) *Node[K] {
	return u.insertRoot(p, true)
}

// SearchOrInsert [Tree.SearchOrInsert]. Recursive.
// Time: O(D)
func (u *SbTree[K]) SearchOrInsert(p *Node[K]) *Node[K] {
	return u.insertRoot(p, false)
}

// popMin detaches the minimum of the non empty subtree held by ln.
func (u *SbTree[K]) popMin(ln **Node[K]) *Node[K] {
	cur := *ln
	if cur.l == nil {
		*ln = cur.r
		return cur
	}
	p := u.popMin(&cur.l)
	cur.cnt--
	u.maintain(ln, true)
	return p
}

// remove a node holding k from the subtree held by ln recursively. A node
// with two children is replaced by the minimum of its right subtree.
func (u *SbTree[K]) remove(ln **Node[K], k K) *Node[K] {
	cur := *ln
	if cur == nil {
		return nil
	}
	if c := u.cmp(k, cur.Key); c < 0 {
		if p := u.remove(&cur.l, k); p != nil {
			cur.cnt--
			u.maintain(ln, true)
			return p
		}
		return nil
	} else if c > 0 {
		if p := u.remove(&cur.r, k); p != nil {
			cur.cnt--
			u.maintain(ln, false)
			return p
		}
		return nil
	}
	if cur.l == nil {
		*ln = cur.r
	} else if cur.r == nil {
		*ln = cur.l
	} else {
		s := u.popMin(&cur.r)
		s.l, s.r, s.cnt = cur.l, cur.r, cur.cnt-1
		*ln = s
		u.maintain(ln, false)
	}
	return cur
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D)
func (u *SbTree[K]) Remove(k K) *Node[K] {
	p := u.remove(&u.root, k)
	if p != nil {
		p.reset()
		u.touch()
	}
	return p
}

// RemovePos [Tree.RemovePos]
// Time: O(D)
func (u *SbTree[K]) RemovePos(i int) *Node[K] {
	if p := u.Select(i); p != nil {
		return u.Remove(p.Key)
	}
	return nil
}

// cut rebuilds the first i nodes and the rest into two trees.
// Time: O(n)
func (u *SbTree[K]) cut(i int) (*SbTree[K], *SbTree[K]) {
	ns := make([]*Node[K], 0, u.count(u.root))
	ns = flatten(u.take(), ns)
	i = min(max(i, 0), len(ns))
	return u.spawn(build(ns[:i])), u.spawn(build(ns[i:]))
}

// Split [Tree.Split]
// Time: O(n)
func (u *SbTree[K]) Split(k K) (*SbTree[K], *SbTree[K], bool) {
	i, p := u.FindPosition(k)
	if p != nil {
		return nil, nil, false
	}
	l, r := u.cut(i)
	return l, r, true
}

// SplitDup [Tree.SplitDup]
// Time: O(n)
func (u *SbTree[K]) SplitDup(k K) (*SbTree[K], *SbTree[K]) {
	i, _ := u.FindPosition(k)
	return u.cut(i)
}

// SplitPos [Tree.SplitPos]
// Time: O(n)
func (u *SbTree[K]) SplitPos(i int) (*SbTree[K], *SbTree[K]) {
	return u.cut(i)
}

// Join [Tree.Join]
// Time: O(m*log(n+m))
func (u *SbTree[K]) Join(o *SbTree[K]) (dup []*Node[K]) {
	drain(o.take(), func(p *Node[K]) {
		if u.Insert(p) == nil {
			dup = append(dup, p)
		}
	})
	return
}

// JoinDup [Tree.JoinDup]
func (u *SbTree[K]) JoinDup(o *SbTree[K]) {
	drain(o.take(), func(p *Node[K]) {
		u.InsertDup(p)
	})
}

// JoinExclusive [Tree.JoinExclusive]
// Time: O(n+m)
func (u *SbTree[K]) JoinExclusive(o *SbTree[K]) {
	if o.root == nil {
		return
	}
	ns := make([]*Node[K], 0, u.count(u.root)+o.count(o.root))
	ns = flatten(u.take(), ns)
	u.root = build(flatten(o.take(), ns))
}

// Verify [Tree.Verify]
func (u *SbTree[K]) Verify() bool {
	return u.sound() && sizeBalanced(u.root)
}

func sizeBalanced[K any](n *Node[K]) bool {
	if n == nil {
		return true
	}
	l, r := n.l, n.r
	if l != nil && (l.l.Count() > r.Count() || l.r.Count() > r.Count()) {
		return false
	} else if r != nil && (r.l.Count() > l.Count() || r.r.Count() > l.Count()) {
		return false
	}
	return sizeBalanced(l) && sizeBalanced(r)
}
