package Trees

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// Treap is a binary search tree on keys that is at the same time a max-heap on
// random priorities drawn when nodes are inserted. Its shape is that of a BST
// built by inserting in random order, so the expected D is O(log n) whatever
// the actual insertion order.
type Treap[K any, A Aug] struct {
	base[K, A]
	rng *rand.Rand
}

// NewTreap returns an empty Treap ordered by the natural order of K, drawing
// priorities from a generator seeded with seed.
func NewTreap[K constraints.Ordered, A Aug](seed uint64) *Treap[K, A] {
	return NewTreapC[K, A](natural[K], seed)
}

// NewTreapC returns an empty Treap ordered by cmp.
func NewTreapC[K any, A Aug](cmp func(K, K) int, seed uint64) *Treap[K, A] {
	return &Treap[K, A]{makeBase[K, A](cmp), rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (u *Treap[K, A]) spawn(root *Node[K]) *Treap[K, A] {
	s := u.rng.Uint64()
	return &Treap[K, A]{base[K, A]{root: root, cmp: u.cmp, rk: u.rk}, rand.New(rand.NewPCG(s, s>>1))}
}

func (u *Treap[K, A]) insert(p *Node[K], dup bool) *Node[K] {
	ln, st := u.descend(p.Key, dup, u.st[:0])
	defer func() { u.st = st[:0] }()
	if *ln != nil {
		return *ln
	}
	u.link(p, ln, st)
	return p
}

// InsertPos [Tree.InsertPos]
// Time: expected O(log n) under Rank
func (u *Treap[K, A]) InsertPos(p *Node[K], i int) {
	ln, st := u.descendPos(i, u.st[:0])
	u.link(p, ln, st)
	u.st = st[:0]
}

// link p as a leaf at the nil link ln with a fresh priority, then rotate it up
// the path st.
func (u *Treap[K, A]) link(p *Node[K], ln **Node[K], st []**Node[K]) {
	p.reset()
	p.prio = u.rng.Uint64()
	*ln = p
	u.grow(st)
	// rotate p up while it outranks its parent.
	for i := len(st) - 1; i >= 0; i-- {
		pl := st[i]
		if par := *pl; p.prio <= par.prio {
			break
		} else if par.l == p {
			u.rotR(pl)
		} else {
			u.rotL(pl)
		}
	}
	u.touch()
}

// Insert [Tree.Insert]
// Time: expected O(log n)
func (u *Treap[K, A]) Insert(p *Node[K]) *Node[K] {
	if q := u.insert(p, false); q == p {
		return p
	}
	return nil
}

// InsertDup [Tree.InsertDup]
// Time: expected O(log n)
func (u *Treap[K, A]) InsertDup(p *Node[K]) *Node[K] {
	return u.insert(p, true)
}

// SearchOrInsert [Tree.SearchOrInsert]
// Time: expected O(log n)
func (u *Treap[K, A]) SearchOrInsert(p *Node[K]) *Node[K] {
	return u.insert(p, false)
}

// merge concatenates the treaps rooting at a and b, all keys of a being not
// greater than those of b, by priority. This is the same as rotating a virtual
// root above them down to a leaf.
// Time: expected O(log n)
func (u *Treap[K, A]) merge(a, b *Node[K]) *Node[K] {
	if a == nil {
		return b
	} else if b == nil {
		return a
	} else if a.prio > b.prio {
		a.r = u.merge(a.r, b)
		u.fix(a)
		return a
	}
	b.l = u.merge(a, b.l)
	u.fix(b)
	return b
}

// Remove [Tree.Remove]
// The node is sunk, always under the child of larger priority, until it's a
// leaf and then cut.
// Time: expected O(log n)
func (u *Treap[K, A]) Remove(k K) *Node[K] {
	ln, st := u.descend(k, false, u.st[:0])
	defer func() { u.st = st[:0] }()
	p := *ln
	if p == nil {
		return nil
	}
	*ln = u.merge(p.l, p.r)
	u.shrink(st)
	p.reset()
	u.touch()
	return p
}

// RemovePos [Tree.RemovePos]
func (u *Treap[K, A]) RemovePos(i int) *Node[K] {
	if p := u.Select(i); p != nil {
		return u.Remove(p.Key)
	}
	return nil
}

// Split [Tree.Split]
// Time: expected O(log n)
func (u *Treap[K, A]) Split(k K) (*Treap[K, A], *Treap[K, A], bool) {
	if u.hasKey(k) {
		return nil, nil, false
	}
	l, r := u.SplitDup(k)
	return l, r, true
}

// SplitDup [Tree.SplitDup]
// Time: expected O(log n)
func (u *Treap[K, A]) SplitDup(k K) (*Treap[K, A], *Treap[K, A]) {
	l, r := u.splitRaw(u.take(), u.byKey(k))
	return u.spawn(l), u.spawn(r)
}

// SplitPos [Tree.SplitPos]
// Time: expected O(log n) under Rank
func (u *Treap[K, A]) SplitPos(i int) (*Treap[K, A], *Treap[K, A]) {
	l, r := u.splitRaw(u.take(), u.byPos(i))
	return u.spawn(l), u.spawn(r)
}

// Join [Tree.Join]
// Time: expected O(m*log(n+m))
func (u *Treap[K, A]) Join(o *Treap[K, A]) (dup []*Node[K]) {
	drain(o.take(), func(p *Node[K]) {
		if u.Insert(p) == nil {
			dup = append(dup, p)
		}
	})
	return
}

// JoinDup [Tree.JoinDup]
func (u *Treap[K, A]) JoinDup(o *Treap[K, A]) {
	drain(o.take(), func(p *Node[K]) {
		u.InsertDup(p)
	})
}

// JoinExclusive [Tree.JoinExclusive]
// Time: expected O(log n + log m)
func (u *Treap[K, A]) JoinExclusive(o *Treap[K, A]) {
	if o.root == nil {
		return
	}
	u.root = u.merge(u.root, o.take())
	u.touch()
}

// Verify [Tree.Verify]
func (u *Treap[K, A]) Verify() bool {
	return u.sound() && heapOrdered(u.root)
}

func heapOrdered[K any](n *Node[K]) bool {
	if n == nil {
		return true
	}
	if (n.l != nil && n.l.prio > n.prio) || (n.r != nil && n.r.prio > n.prio) {
		return false
	}
	return heapOrdered(n.l) && heapOrdered(n.r)
}
