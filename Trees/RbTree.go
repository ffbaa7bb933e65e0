package Trees

import "golang.org/x/exp/constraints"

// RbTree is a red-black tree: the root is black, a red node has no red child
// and every path from a node down to a nil link meets the same number of black
// nodes. D <= 2*log2(n+1).
// Fix-ups run bottom-up along the search path kept as a stack of links.
type RbTree[K any, A Aug] struct {
	base[K, A]
}

// NewRb returns an empty RbTree ordered by the natural order of K.
func NewRb[K constraints.Ordered, A Aug]() *RbTree[K, A] {
	return NewRbC[K, A](natural[K])
}

// NewRbC returns an empty RbTree ordered by cmp.
func NewRbC[K any, A Aug](cmp func(K, K) int) *RbTree[K, A] {
	return &RbTree[K, A]{makeBase[K, A](cmp)}
}

func (u *RbTree[K, A]) spawn(root *Node[K]) *RbTree[K, A] {
	if root != nil {
		root.red = false
	}
	return &RbTree[K, A]{base[K, A]{root: root, cmp: u.cmp, rk: u.rk}}
}

// blackHeight counts the black nodes on the leftmost path below and including n.
func blackHeight[K any](n *Node[K]) (bh int) {
	for ; n != nil; n = n.l {
		if !n.red {
			bh++
		}
	}
	return
}

// fixRed removes a red-red violation between the red node p and its parent,
// st holding the links of p's ancestors. A red uncle is resolved by recoloring
// and moving the violation two levels up; a black uncle by one or two
// rotations.
func (u *RbTree[K, A]) fixRed(p *Node[K], st []**Node[K]) {
	for i := len(st) - 1; i > 0; i -= 2 {
		pp := *st[i]
		if !pp.red {
			break
		}
		gl := st[i-1]
		g := *gl
		ppLeft := pp == g.l
		uncle := g.l
		if ppLeft {
			uncle = g.r
		}
		if isRed(uncle) {
			pp.red, uncle.red, g.red = false, false, true
			p = g
			continue
		}
		if ppLeft {
			if p == pp.r {
				u.rotL(&g.l)
			}
			u.rotR(gl)
		} else {
			if p == pp.l {
				u.rotR(&g.r)
			}
			u.rotL(gl)
		}
		(*gl).red, g.red = false, true
		break
	}
	u.root.red = false
}

func (u *RbTree[K, A]) insert(p *Node[K], dup bool) *Node[K] {
	ln, st := u.descend(p.Key, dup, u.st[:0])
	defer func() { u.st = st[:0] }()
	if *ln != nil {
		return *ln
	}
	u.link(p, ln, st)
	return p
}

// link p as a red leaf at the nil link ln and fix the colors along st.
func (u *RbTree[K, A]) link(p *Node[K], ln **Node[K], st []**Node[K]) {
	p.reset()
	p.red = true
	*ln = p
	u.grow(st)
	u.fixRed(p, st)
	u.touch()
}

// InsertPos [Tree.InsertPos]
// Time: O(D) under Rank
func (u *RbTree[K, A]) InsertPos(p *Node[K], i int) {
	ln, st := u.descendPos(i, u.st[:0])
	u.link(p, ln, st)
	u.st = st[:0]
}

// Insert [Tree.Insert]
// Time: O(D)
func (u *RbTree[K, A]) Insert(p *Node[K]) *Node[K] {
	if q := u.insert(p, false); q == p {
		return p
	}
	return nil
}

// InsertDup [Tree.InsertDup]
// Time: O(D)
func (u *RbTree[K, A]) InsertDup(p *Node[K]) *Node[K] {
	return u.insert(p, true)
}

// SearchOrInsert [Tree.SearchOrInsert]
// Time: O(D)
func (u *RbTree[K, A]) SearchOrInsert(p *Node[K]) *Node[K] {
	return u.insert(p, false)
}

// fixBlack resolves the missing black node in the subtree held by x, st
// holding the links of its ancestors. The deficiency climbs while the sibling
// and its children are black; a red sibling is first rotated above the parent,
// and a sibling with a red child ends the climb with one or two rotations.
func (u *RbTree[K, A]) fixBlack(x **Node[K], st []**Node[K]) {
	for i := len(st) - 1; i >= 0; i-- {
		pl := st[i]
		par := *pl
		if x == &par.l {
			s := par.r
			if s.red {
				s.red, par.red = false, true
				u.rotL(pl)
				pl = &s.l
				s = par.r
			}
			if !isRed(s.l) && !isRed(s.r) {
				s.red = true
				if par.red {
					par.red = false
					return
				}
				x = pl
				continue
			}
			if !isRed(s.r) {
				s.l.red, s.red = false, true
				u.rotR(&par.r)
				s = par.r
			}
			s.red, par.red, s.r.red = par.red, false, false
			u.rotL(pl)
			return
		}
		s := par.l
		if s.red {
			s.red, par.red = false, true
			u.rotR(pl)
			pl = &s.r
			s = par.l
		}
		if !isRed(s.l) && !isRed(s.r) {
			s.red = true
			if par.red {
				par.red = false
				return
			}
			x = pl
			continue
		}
		if !isRed(s.l) {
			s.r.red, s.red = false, true
			u.rotL(&par.l)
			s = par.l
		}
		s.red, par.red, s.l.red = par.red, false, false
		u.rotR(pl)
		return
	}
}

// Remove [Tree.Remove]
// Time: O(D)
func (u *RbTree[K, A]) Remove(k K) *Node[K] {
	ln, st := u.descend(k, false, u.st[:0])
	defer func() { u.st = st[:0] }()
	p := *ln
	if p == nil {
		return nil
	}
	if p.l != nil && p.r != nil {
		ln, st = u.swapSucc(ln, st)
	}
	c := p.r
	if c == nil {
		c = p.l
	}
	*ln = c
	u.shrink(st)
	if !p.red {
		if isRed(c) {
			c.red = false
		} else {
			u.fixBlack(ln, st)
		}
	}
	if u.root != nil {
		u.root.red = false
	}
	p.reset()
	u.touch()
	return p
}

// RemovePos [Tree.RemovePos]
func (u *RbTree[K, A]) RemovePos(i int) *Node[K] {
	if p := u.Select(i); p != nil {
		return u.Remove(p.Key)
	}
	return nil
}

// joinRight hangs k and r off the right spine of l, where bl > br are the
// black heights of l and r and r's root is black. The result may have a red
// root, never with a red right child above a red grandchild.
func (u *RbTree[K, A]) joinRight(l *Node[K], bl int, k, r *Node[K], br int) *Node[K] {
	if !isRed(l) && bl == br {
		k.l, k.r, k.red = l, r, true
		u.fix(k)
		return k
	}
	if !l.red {
		bl--
	}
	l.r = u.joinRight(l.r, bl, k, r, br)
	u.fix(l)
	if !l.red && isRed(l.r) && isRed(l.r.r) {
		l.r.r.red = false
		u.rotL(&l)
	}
	return l
}

// joinLeft is the mirror of joinRight, for bl < br.
func (u *RbTree[K, A]) joinLeft(l *Node[K], bl int, k, r *Node[K], br int) *Node[K] {
	if !isRed(r) && bl == br {
		k.l, k.r, k.red = l, r, true
		u.fix(k)
		return k
	}
	if !r.red {
		br--
	}
	r.l = u.joinLeft(l, bl, k, r.l, br)
	u.fix(r)
	if !r.red && isRed(r.l) && isRed(r.l.l) {
		r.l.l.red = false
		u.rotR(&r)
	}
	return r
}

// join3 links l, k and r into one red-black tree with a black root, like
// AvlTree.join3 but guided by black heights. Returns the root and its black
// height.
// Time: O(|bl-br|+1)
func (u *RbTree[K, A]) join3(l *Node[K], bl int, k, r *Node[K], br int) (*Node[K], int) {
	if isRed(l) {
		l.red = false
		bl++
	}
	if isRed(r) {
		r.red = false
		br++
	}
	var t *Node[K]
	bh := max(bl, br)
	if bl > br {
		t = u.joinRight(l, bl, k, r, br)
	} else if br > bl {
		t = u.joinLeft(l, bl, k, r, br)
	} else {
		k.l, k.r = l, r
		u.fix(k)
		t = k
		t.red = true
	}
	if t.red {
		t.red = false
		bh++
	}
	return t, bh
}

// split partitions the subtree rooting at n of black height bh.
// Time: O(D)
func (u *RbTree[K, A]) split(n *Node[K], bh int, goesLeft func(*Node[K]) bool) (l *Node[K], bl int, r *Node[K], br int) {
	if n == nil {
		return
	}
	if !n.red {
		bh--
	}
	nl, nr := n.l, n.r
	if goesLeft(n) {
		a, ba, b, bb := u.split(nr, bh, goesLeft)
		l, bl = u.join3(nl, bh, n, a, ba)
		return l, bl, b, bb
	}
	a, ba, b, bb := u.split(nl, bh, goesLeft)
	r, br = u.join3(b, bb, n, nr, bh)
	return a, ba, r, br
}

func (u *RbTree[K, A]) splitBy(goesLeft func(*Node[K]) bool) (*RbTree[K, A], *RbTree[K, A]) {
	bh := blackHeight(u.root)
	l, _, r, _ := u.split(u.take(), bh, goesLeft)
	return u.spawn(l), u.spawn(r)
}

// Split [Tree.Split]
// Time: O(D)
func (u *RbTree[K, A]) Split(k K) (*RbTree[K, A], *RbTree[K, A], bool) {
	if u.hasKey(k) {
		return nil, nil, false
	}
	l, r := u.splitBy(u.byKey(k))
	return l, r, true
}

// SplitDup [Tree.SplitDup]
// Time: O(D)
func (u *RbTree[K, A]) SplitDup(k K) (*RbTree[K, A], *RbTree[K, A]) {
	return u.splitBy(u.byKey(k))
}

// SplitPos [Tree.SplitPos]
// Time: O(D) under Rank
func (u *RbTree[K, A]) SplitPos(i int) (*RbTree[K, A], *RbTree[K, A]) {
	return u.splitBy(u.byPos(i))
}

// Join [Tree.Join]
// Time: O(m*log(n+m))
func (u *RbTree[K, A]) Join(o *RbTree[K, A]) (dup []*Node[K]) {
	drain(o.take(), func(p *Node[K]) {
		if u.Insert(p) == nil {
			dup = append(dup, p)
		}
	})
	return
}

// JoinDup [Tree.JoinDup]
func (u *RbTree[K, A]) JoinDup(o *RbTree[K, A]) {
	drain(o.take(), func(p *Node[K]) {
		u.InsertDup(p)
	})
}

// JoinExclusive [Tree.JoinExclusive]
// Time: O(log n + log m)
func (u *RbTree[K, A]) JoinExclusive(o *RbTree[K, A]) {
	if o.root == nil {
		return
	}
	k := o.Remove(o.Min().Key)
	bl, br := blackHeight(u.root), blackHeight(o.root)
	u.root, _ = u.join3(u.root, bl, k, o.take(), br)
	u.touch()
}

// Verify [Tree.Verify]
func (u *RbTree[K, A]) Verify() bool {
	return u.sound() && !isRed(u.root) && rbCheck(u.root) >= 0
}

// rbCheck returns the black height of n, or -1 if a red node has a red child
// or two paths disagree on their black count.
func rbCheck[K any](n *Node[K]) int {
	if n == nil {
		return 0
	}
	if n.red && (isRed(n.l) || isRed(n.r)) {
		return -1
	}
	bl, br := rbCheck(n.l), rbCheck(n.r)
	if bl < 0 || bl != br {
		return -1
	}
	if n.red {
		return bl
	}
	return bl + 1
}
