package Trees

import "golang.org/x/exp/constraints"

// SplayTree is a self-adjusting binary search tree. It keeps no balance
// information; instead every search, insertion and removal moves the accessed
// node to the root by bottom-up zig, zig-zig and zig-zag rotations, which makes
// any sequence of m operations cost O(m*log n) in total.
// Search, Insert, InsertDup, SearchOrInsert and Remove restructure the tree.
// When the searched key is absent, the last node met on the search path is
// moved to the root instead. The read-only queries (Select, Position, Min,
// Predecessor...) don't restructure.
type SplayTree[K any, A Aug] struct {
	base[K, A]
}

// NewSplay returns an empty SplayTree ordered by the natural order of K.
func NewSplay[K constraints.Ordered, A Aug]() *SplayTree[K, A] {
	return NewSplayC[K, A](natural[K])
}

// NewSplayC returns an empty SplayTree ordered by cmp.
func NewSplayC[K any, A Aug](cmp func(K, K) int) *SplayTree[K, A] {
	return &SplayTree[K, A]{makeBase[K, A](cmp)}
}

func (u *SplayTree[K, A]) spawn(root *Node[K]) *SplayTree[K, A] {
	return &SplayTree[K, A]{base[K, A]{root: root, cmp: u.cmp, rk: u.rk}}
}

// splay moves the node x up to the link st[0], st holding the links of all
// of x's ancestors from st[0] down.
// Time: O(len(st))
func (u *base[K, A]) splay(x *Node[K], st []**Node[K]) {
	i := len(st) - 1
	for ; i > 0; i -= 2 {
		pl, gl := st[i], st[i-1]
		p, g := *pl, *gl
		if xl, pLeft := p.l == x, g.l == p; xl == pLeft { //zig-zig
			if xl {
				u.rotR(gl)
				u.rotR(gl)
			} else {
				u.rotL(gl)
				u.rotL(gl)
			}
		} else { //zig-zag
			if xl {
				u.rotR(pl)
				u.rotL(gl)
			} else {
				u.rotL(pl)
				u.rotR(gl)
			}
		}
	}
	if i == 0 { //zig
		if (*st[0]).l == x {
			u.rotR(st[0])
		} else {
			u.rotL(st[0])
		}
	}
}

// access searches k and splays the node found, or the last node of the search
// path when k is absent. Reports whether k was found; if so the root holds it.
func (u *SplayTree[K, A]) access(k K) bool {
	ln, st := u.descend(k, false, u.st[:0])
	defer func() { u.st = st[:0] }()
	if x := *ln; x != nil {
		u.splay(x, st)
	} else if len(st) > 0 {
		u.splay(*st[len(st)-1], st[:len(st)-1])
	} else {
		return false
	}
	u.touch()
	return u.cmp(k, u.root.Key) == 0
}

// Search [Tree.Search]
// Time: amortized O(log n)
func (u *SplayTree[K, A]) Search(k K) *Node[K] {
	if u.access(k) {
		return u.root
	}
	return nil
}

func (u *SplayTree[K, A]) insert(p *Node[K], dup bool) *Node[K] {
	ln, st := u.descend(p.Key, dup, u.st[:0])
	defer func() { u.st = st[:0] }()
	if x := *ln; x != nil {
		u.splay(x, st)
		u.touch()
		return x
	}
	u.link(p, ln, st)
	return p
}

// link p as a leaf at the nil link ln and splay it up the path st.
func (u *SplayTree[K, A]) link(p *Node[K], ln **Node[K], st []**Node[K]) {
	p.reset()
	*ln = p
	u.grow(st)
	u.splay(p, st)
	u.touch()
}

// InsertPos [Tree.InsertPos]
// p ends up at the root.
// Time: amortized O(log n) under Rank
func (u *SplayTree[K, A]) InsertPos(p *Node[K], i int) {
	ln, st := u.descendPos(i, u.st[:0])
	u.link(p, ln, st)
	u.st = st[:0]
}

// Insert [Tree.Insert]
// Time: amortized O(log n)
func (u *SplayTree[K, A]) Insert(p *Node[K]) *Node[K] {
	if q := u.insert(p, false); q == p {
		return p
	}
	return nil
}

// InsertDup [Tree.InsertDup]
// Time: amortized O(log n)
func (u *SplayTree[K, A]) InsertDup(p *Node[K]) *Node[K] {
	return u.insert(p, true)
}

// SearchOrInsert [Tree.SearchOrInsert]
// Time: amortized O(log n)
func (u *SplayTree[K, A]) SearchOrInsert(p *Node[K]) *Node[K] {
	return u.insert(p, false)
}

// concat links the trees rooting at a and b, every key of a being not greater
// than those of b, by splaying the maximum of a to its root and hanging b to
// its right.
func (u *SplayTree[K, A]) concat(a, b *Node[K]) *Node[K] {
	if a == nil {
		return b
	} else if b != nil {
		ln, st := maxLink(&a, u.st[:0])
		u.splay(*ln, st)
		u.st = st[:0]
		a.r = b
		u.fix(a)
	}
	return a
}

// Remove [Tree.Remove]
// The node holding k is splayed to the root, cut off, and its two subtrees
// concatenated.
// Time: amortized O(log n)
func (u *SplayTree[K, A]) Remove(k K) *Node[K] {
	if !u.access(k) {
		return nil
	}
	p := u.root
	u.root = u.concat(p.l, p.r)
	p.reset()
	return p
}

// RemovePos [Tree.RemovePos]
func (u *SplayTree[K, A]) RemovePos(i int) *Node[K] {
	if p := u.Select(i); p != nil {
		return u.Remove(p.Key)
	}
	return nil
}

// Split [Tree.Split]
// Time: O(D)
func (u *SplayTree[K, A]) Split(k K) (*SplayTree[K, A], *SplayTree[K, A], bool) {
	if u.hasKey(k) {
		return nil, nil, false
	}
	l, r := u.SplitDup(k)
	return l, r, true
}

// SplitDup [Tree.SplitDup]
// Time: O(D)
func (u *SplayTree[K, A]) SplitDup(k K) (*SplayTree[K, A], *SplayTree[K, A]) {
	l, r := u.splitRaw(u.take(), u.byKey(k))
	return u.spawn(l), u.spawn(r)
}

// SplitPos [Tree.SplitPos]
// Time: O(D) under Rank
func (u *SplayTree[K, A]) SplitPos(i int) (*SplayTree[K, A], *SplayTree[K, A]) {
	l, r := u.splitRaw(u.take(), u.byPos(i))
	return u.spawn(l), u.spawn(r)
}

// Join [Tree.Join]
// Time: amortized O(m*log(n+m))
func (u *SplayTree[K, A]) Join(o *SplayTree[K, A]) (dup []*Node[K]) {
	drain(o.take(), func(p *Node[K]) {
		if u.Insert(p) == nil {
			dup = append(dup, p)
		}
	})
	return
}

// JoinDup [Tree.JoinDup]
func (u *SplayTree[K, A]) JoinDup(o *SplayTree[K, A]) {
	drain(o.take(), func(p *Node[K]) {
		u.InsertDup(p)
	})
}

// JoinExclusive [Tree.JoinExclusive]
// Time: amortized O(log n)
func (u *SplayTree[K, A]) JoinExclusive(o *SplayTree[K, A]) {
	if o.root == nil {
		return
	}
	u.root = u.concat(u.root, o.take())
	u.touch()
}

// Verify [Tree.Verify]
// A splay tree has no shape condition beyond the search order and counts.
func (u *SplayTree[K, A]) Verify() bool {
	return u.sound()
}
