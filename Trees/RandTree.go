package Trees

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// RandTree is a randomized binary search tree: a new node of a subtree of n
// nodes becomes that subtree's root with probability 1/(n+1), and removal
// replaces a node by a random concatenation of its children weighted by their
// sizes. Whatever the order of insertions and removals, the tree is distributed
// like a plain BST built from a random permutation, so D is O(log n) expected.
// It draws its randomness from the subtree counts, so it's always augmented.
// Concatenation (JoinExclusive) of independent trees costs O(log n + log m)
// expected and keeps the distribution.
type RandTree[K any] struct {
	base[K, Rank]
	rng *rand.Rand
}

// NewRand returns an empty RandTree ordered by the natural order of K, drawing
// from a generator seeded with seed.
func NewRand[K constraints.Ordered](seed uint64) *RandTree[K] {
	return NewRandC[K](natural[K], seed)
}

// NewRandC returns an empty RandTree ordered by cmp.
func NewRandC[K any](cmp func(K, K) int, seed uint64) *RandTree[K] {
	return &RandTree[K]{makeBase[K, Rank](cmp), rand.New(rand.NewPCG(seed, ^seed))}
}

func (u *RandTree[K]) spawn(root *Node[K]) *RandTree[K] {
	s := u.rng.Uint64()
	return &RandTree[K]{base[K, Rank]{root: root, cmp: u.cmp, rk: true}, rand.New(rand.NewPCG(s, ^s))}
}

// wins draws whether a node joining a subtree of n nodes takes its root.
func (u *RandTree[K]) wins(n int) bool {
	return u.rng.IntN(n+1) == n
}

// insert p to the subtree held by ln recursively. Returns p, or the node
// already holding its key when !dup.
func (u *RandTree[K]) insert(ln **Node[K], p *Node[K], dup bool) *Node[K] {
	cur := *ln
	if cur == nil {
		*ln = p
		return p
	}
	if u.wins(cur.cnt) {
		if !dup {
			if q := u.find(cur, p.Key); q != nil {
				return q
			}
		}
		p.l, p.r = u.splitRaw(cur, u.byKey(p.Key))
		u.fix(p)
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
	}
	return q
}

func (u *RandTree[K]) insertRoot(p *Node[K], dup bool) *Node[K] {
	p.reset()
	q := u.insert(&u.root, p, dup)
	if q == p {
		u.touch()
	}
	return q
}

// Insert [Tree.Insert]. Recursive.
// Time: expected O(log n)
func (u *RandTree[K]) Insert(p *Node[K]) *Node[K] {
	if q := u.insertRoot(p, false); q == p {
		return p
	}
	return nil
}

// InsertDup [Tree.InsertDup]. Recursive.
// Time: expected O(log n)
func (u *RandTree[K]) InsertDup(p *Node[K]) *Node[K] {
	return u.insertRoot(p, true)
}

// SearchOrInsert [Tree.SearchOrInsert]. Recursive.
// Time: expected O(log n)
func (u *RandTree[K]) SearchOrInsert(p *Node[K]) *Node[K] {
	return u.insertRoot(p, false)
}

// insertPos links p at position i of the subtree held by ln, with the same
// raffle for the root as insert.
func (u *RandTree[K]) insertPos(ln **Node[K], p *Node[K], i int) {
	cur := *ln
	if cur == nil {
		*ln = p
		return
	}
	if u.wins(cur.cnt) {
		p.l, p.r = u.splitRaw(cur, u.byPos(i))
		u.fix(p)
		*ln = p
		return
	}
	if lc := cur.l.Count(); i <= lc {
		u.insertPos(&cur.l, p, i)
	} else {
		u.insertPos(&cur.r, p, i-lc-1)
	}
	cur.cnt++
}

// InsertPos [Tree.InsertPos]. Recursive.
// Time: expected O(log n)
func (u *RandTree[K]) InsertPos(p *Node[K], i int) {
	p.reset()
	u.insertPos(&u.root, p, i)
	u.touch()
}

// merge concatenates the trees rooting at a and b, all keys of a being not
// greater than those of b. Each root wins with probability proportional to the
// size of its tree.
// Time: expected O(log n + log m)
func (u *RandTree[K]) merge(a, b *Node[K]) *Node[K] {
	if a == nil {
		return b
	} else if b == nil {
		return a
	} else if u.rng.IntN(a.cnt+b.cnt) < a.cnt {
		a.r = u.merge(a.r, b)
		u.fix(a)
		return a
	}
	b.l = u.merge(a, b.l)
	u.fix(b)
	return b
}

func (u *RandTree[K]) remove(ln **Node[K], k K) *Node[K] {
	cur := *ln
	if cur == nil {
		return nil
	}
	var p *Node[K]
	if c := u.cmp(k, cur.Key); c < 0 {
		p = u.remove(&cur.l, k)
	} else if c > 0 {
		p = u.remove(&cur.r, k)
	} else {
		*ln = u.merge(cur.l, cur.r)
		return cur
	}
	if p != nil {
		cur.cnt--
	}
	return p
}

// Remove [Tree.Remove]. Recursive.
// Time: expected O(log n)
func (u *RandTree[K]) Remove(k K) *Node[K] {
	p := u.remove(&u.root, k)
	if p != nil {
		p.reset()
		u.touch()
	}
	return p
}

// removePos cuts the node at position i, which must be in range, from the
// subtree held by ln.
func (u *RandTree[K]) removePos(ln **Node[K], i int) *Node[K] {
	cur := *ln
	lc := cur.l.Count()
	if i == lc {
		*ln = u.merge(cur.l, cur.r)
		return cur
	}
	cur.cnt--
	if i < lc {
		return u.removePos(&cur.l, i)
	}
	return u.removePos(&cur.r, i-lc-1)
}

// RemovePos [Tree.RemovePos]. Unlike the other trees it removes exactly the
// node at position i, even among equal keys.
// Time: expected O(log n)
func (u *RandTree[K]) RemovePos(i int) *Node[K] {
	if i < 0 || i >= u.root.Count() {
		return nil
	}
	p := u.removePos(&u.root, i)
	p.reset()
	u.touch()
	return p
}

// Split [Tree.Split]
// Time: expected O(log n)
func (u *RandTree[K]) Split(k K) (*RandTree[K], *RandTree[K], bool) {
	if u.hasKey(k) {
		return nil, nil, false
	}
	l, r := u.SplitDup(k)
	return l, r, true
}

// SplitDup [Tree.SplitDup]
// Time: expected O(log n)
func (u *RandTree[K]) SplitDup(k K) (*RandTree[K], *RandTree[K]) {
	l, r := u.splitRaw(u.take(), u.byKey(k))
	return u.spawn(l), u.spawn(r)
}

// SplitPos [Tree.SplitPos]
// Time: expected O(log n)
func (u *RandTree[K]) SplitPos(i int) (*RandTree[K], *RandTree[K]) {
	l, r := u.splitRaw(u.take(), u.byPos(i))
	return u.spawn(l), u.spawn(r)
}

// union merges the trees rooting at a and b keeping equal keys. The root of
// either tree is picked with probability proportional to its size, and the
// other tree is split around it.
func (u *RandTree[K]) union(a, b *Node[K]) *Node[K] {
	if a == nil {
		return b
	} else if b == nil {
		return a
	}
	if u.rng.IntN(a.cnt+b.cnt) >= a.cnt {
		a, b = b, a
	}
	bl, br := u.splitRaw(b, u.byKey(a.Key))
	a.l, a.r = u.union(a.l, bl), u.union(a.r, br)
	u.fix(a)
	return a
}

// Join [Tree.Join]
// Time: expected O(m*log(n+m))
func (u *RandTree[K]) Join(o *RandTree[K]) (dup []*Node[K]) {
	drain(o.take(), func(p *Node[K]) {
		if u.Insert(p) == nil {
			dup = append(dup, p)
		}
	})
	return
}

// JoinDup [Tree.JoinDup]
// The two trees are merged without reinserting single nodes.
func (u *RandTree[K]) JoinDup(o *RandTree[K]) {
	if o.root == nil {
		return
	}
	u.root = u.union(u.root, o.take())
	u.touch()
}

// JoinExclusive [Tree.JoinExclusive]
// Time: expected O(log n + log m)
func (u *RandTree[K]) JoinExclusive(o *RandTree[K]) {
	if o.root == nil {
		return
	}
	u.root = u.merge(u.root, o.take())
	u.touch()
}

// Verify [Tree.Verify]
// Any shape is a valid randomized tree; only the order and counts are checked.
func (u *RandTree[K]) Verify() bool {
	return u.sound()
}
