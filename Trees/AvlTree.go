package Trees

import "golang.org/x/exp/constraints"

// AvlTree is a height balanced binary search tree: the heights of the two
// subtrees of any node differ by at most 1, so D < 1.44*log2(n+2).
// Every node stores its balance factor height(r)-height(l) in {-1,0,1}.
// Insertion rotates at most once (single or double); removal may rotate at
// every node of the path.
type AvlTree[K any, A Aug] struct {
	base[K, A]
}

// NewAvl returns an empty AvlTree ordered by the natural order of K.
func NewAvl[K constraints.Ordered, A Aug]() *AvlTree[K, A] {
	return NewAvlC[K, A](natural[K])
}

// NewAvlC returns an empty AvlTree ordered by cmp.
func NewAvlC[K any, A Aug](cmp func(K, K) int) *AvlTree[K, A] {
	return &AvlTree[K, A]{makeBase[K, A](cmp)}
}

func (u *AvlTree[K, A]) spawn(root *Node[K]) *AvlTree[K, A] {
	return &AvlTree[K, A]{base[K, A]{root: root, cmp: u.cmp, rk: u.rk}}
}

// avlHeight of the subtree rooting at n, following the taller side.
// Time: O(D)
func avlHeight[K any](n *Node[K]) (h int) {
	for ; n != nil; h++ {
		if n.bal < 0 {
			n = n.l
		} else {
			n = n.r
		}
	}
	return
}

// avlChildHeights derives the heights of n's subtrees from n's height h.
func avlChildHeights[K any](n *Node[K], h int) (hl, hr int) {
	hl, hr = h-1, h-1
	if n.bal < 0 {
		hr--
	} else if n.bal > 0 {
		hl--
	}
	return
}

// rebalance restores the AVL condition at the node held by ln, whose factor
// is ±2 while both of its subtrees are AVL trees. It reports whether the
// height of the subtree is now one less than it was with the factor at ±2.
// Time: O(1)
func (u *AvlTree[K, A]) rebalance(ln **Node[K]) (shrunk bool) {
	p := *ln
	if p.bal > 0 {
		q := p.r
		if q.bal >= 0 { //RR
			u.rotL(ln)
			if q.bal == 0 {
				p.bal, q.bal = 1, -1
				return false
			}
			p.bal, q.bal = 0, 0
			return true
		}
		//RL
		r := q.l
		u.rotR(&p.r)
		u.rotL(ln)
		p.bal, q.bal = 0, 0
		if r.bal > 0 {
			p.bal = -1
		} else if r.bal < 0 {
			q.bal = 1
		}
		r.bal = 0
		return true
	}
	q := p.l
	if q.bal <= 0 { //LL
		u.rotR(ln)
		if q.bal == 0 {
			p.bal, q.bal = -1, 1
			return false
		}
		p.bal, q.bal = 0, 0
		return true
	}
	//LR
	r := q.r
	u.rotL(&p.l)
	u.rotR(ln)
	p.bal, q.bal = 0, 0
	if r.bal < 0 {
		p.bal = 1
	} else if r.bal > 0 {
		q.bal = -1
	}
	r.bal = 0
	return true
}

func (u *AvlTree[K, A]) insert(p *Node[K], dup bool) *Node[K] {
	ln, st := u.descend(p.Key, dup, u.st[:0])
	defer func() { u.st = st[:0] }()
	if *ln != nil {
		return *ln
	}
	u.link(p, ln, st)
	return p
}

// InsertPos [Tree.InsertPos]
// Time: O(D) under Rank
func (u *AvlTree[K, A]) InsertPos(p *Node[K], i int) {
	ln, st := u.descendPos(i, u.st[:0])
	u.link(p, ln, st)
	u.st = st[:0]
}

// link p as a leaf at the nil link ln and rebalance the path st above it.
func (u *AvlTree[K, A]) link(p *Node[K], ln **Node[K], st []**Node[K]) {
	p.reset()
	*ln = p
	u.grow(st)
	u.touch()
	// heights grow bottom-up until a factor returns to 0 or a rotation absorbs the growth.
	for i, child := len(st)-1, ln; i >= 0; i-- {
		q := *st[i]
		if child == &q.l {
			q.bal--
		} else {
			q.bal++
		}
		if q.bal == 0 {
			break
		} else if q.bal == 2 || q.bal == -2 {
			u.rebalance(st[i])
			break
		}
		child = st[i]
	}
}

// Insert [Tree.Insert]
// Time: O(D)
func (u *AvlTree[K, A]) Insert(p *Node[K]) *Node[K] {
	if q := u.insert(p, false); q == p {
		return p
	}
	return nil
}

// InsertDup [Tree.InsertDup]
// Time: O(D)
func (u *AvlTree[K, A]) InsertDup(p *Node[K]) *Node[K] {
	return u.insert(p, true)
}

// SearchOrInsert [Tree.SearchOrInsert]
// Time: O(D)
func (u *AvlTree[K, A]) SearchOrInsert(p *Node[K]) *Node[K] {
	return u.insert(p, false)
}

// Remove [Tree.Remove]
// Time: O(D)
func (u *AvlTree[K, A]) Remove(k K) *Node[K] {
	ln, st := u.descend(k, false, u.st[:0])
	defer func() { u.st = st[:0] }()
	p := *ln
	if p == nil {
		return nil
	}
	if p.l != nil && p.r != nil {
		ln, st = u.swapSucc(ln, st)
	}
	if p.l == nil {
		*ln = p.r
	} else {
		*ln = p.l
	}
	u.shrink(st)
	// heights shrink bottom-up until a factor becomes ±1 or a rotation keeps the height.
	for i, child := len(st)-1, ln; i >= 0; i-- {
		q := *st[i]
		if child == &q.l {
			q.bal++
		} else {
			q.bal--
		}
		if q.bal == 1 || q.bal == -1 {
			break
		} else if q.bal != 0 && !u.rebalance(st[i]) {
			break
		}
		child = st[i]
	}
	p.reset()
	u.touch()
	return p
}

// RemovePos [Tree.RemovePos]
func (u *AvlTree[K, A]) RemovePos(i int) *Node[K] {
	if p := u.Select(i); p != nil {
		return u.Remove(p.Key)
	}
	return nil
}

// join3 links l, k and r, where every key of l is not greater than k.Key and
// every key of r is not less, into one AVL tree. hl and hr are the heights of
// l and r. The taller tree's spine is followed down to a subtree of about the
// other's height, k is hung there and the path is rebalanced on the way back.
// Returns the root and the height of the result.
// Time: O(|hl-hr|+1)
func (u *AvlTree[K, A]) join3(l *Node[K], hl int, k *Node[K], r *Node[K], hr int) (*Node[K], int) {
	if hl > hr+1 {
		hll, hlr := avlChildHeights(l, hl)
		nr, hn := u.join3(l.r, hlr, k, r, hr)
		l.r, l.bal = nr, int8(hn-hll)
		u.fix(l)
		if l.bal < 2 {
			return l, max(hll, hn) + 1
		}
		h := hn + 1
		if u.rebalance(&l) {
			h--
		}
		return l, h
	} else if hr > hl+1 {
		hrl, hrr := avlChildHeights(r, hr)
		nl, hn := u.join3(l, hl, k, r.l, hrl)
		r.l, r.bal = nl, int8(hrr-hn)
		u.fix(r)
		if r.bal > -2 {
			return r, max(hrr, hn) + 1
		}
		h := hn + 1
		if u.rebalance(&r) {
			h--
		}
		return r, h
	}
	k.l, k.r, k.bal = l, r, int8(hr-hl)
	u.fix(k)
	return k, max(hl, hr) + 1
}

// split partitions the subtree rooting at n, of height h, rejoining the
// pieces hanging off the search path with join3.
// Time: O(D)
func (u *AvlTree[K, A]) split(n *Node[K], h int, goesLeft func(*Node[K]) bool) (l *Node[K], hl int, r *Node[K], hr int) {
	if n == nil {
		return
	}
	hnl, hnr := avlChildHeights(n, h)
	nl, nr := n.l, n.r
	if goesLeft(n) {
		a, ha, b, hb := u.split(nr, hnr, goesLeft)
		l, hl = u.join3(nl, hnl, n, a, ha)
		return l, hl, b, hb
	}
	a, ha, b, hb := u.split(nl, hnl, goesLeft)
	r, hr = u.join3(b, hb, n, nr, hnr)
	return a, ha, r, hr
}

func (u *AvlTree[K, A]) splitBy(goesLeft func(*Node[K]) bool) (*AvlTree[K, A], *AvlTree[K, A]) {
	h := avlHeight(u.root)
	l, _, r, _ := u.split(u.take(), h, goesLeft)
	return u.spawn(l), u.spawn(r)
}

// Split [Tree.Split]
// Time: O(D)
func (u *AvlTree[K, A]) Split(k K) (*AvlTree[K, A], *AvlTree[K, A], bool) {
	if u.hasKey(k) {
		return nil, nil, false
	}
	l, r := u.splitBy(u.byKey(k))
	return l, r, true
}

// SplitDup [Tree.SplitDup]
// Time: O(D)
func (u *AvlTree[K, A]) SplitDup(k K) (*AvlTree[K, A], *AvlTree[K, A]) {
	return u.splitBy(u.byKey(k))
}

// SplitPos [Tree.SplitPos]
// Time: O(D) under Rank
func (u *AvlTree[K, A]) SplitPos(i int) (*AvlTree[K, A], *AvlTree[K, A]) {
	return u.splitBy(u.byPos(i))
}

// Join [Tree.Join]
// Time: O(m*log(n+m))
func (u *AvlTree[K, A]) Join(o *AvlTree[K, A]) (dup []*Node[K]) {
	drain(o.take(), func(p *Node[K]) {
		if u.Insert(p) == nil {
			dup = append(dup, p)
		}
	})
	return
}

// JoinDup [Tree.JoinDup]
func (u *AvlTree[K, A]) JoinDup(o *AvlTree[K, A]) {
	drain(o.take(), func(p *Node[K]) {
		u.InsertDup(p)
	})
}

// JoinExclusive [Tree.JoinExclusive]
// The minimum of o is taken out and used as the pivot of join3.
// Time: O(log n + log m)
func (u *AvlTree[K, A]) JoinExclusive(o *AvlTree[K, A]) {
	if o.root == nil {
		return
	}
	k := o.Remove(o.Min().Key)
	hl, hr := avlHeight(u.root), avlHeight(o.root)
	u.root, _ = u.join3(u.root, hl, k, o.take(), hr)
	u.touch()
}

// Verify [Tree.Verify]
func (u *AvlTree[K, A]) Verify() bool {
	return u.sound() && avlCheck(u.root) >= 0
}

// avlCheck returns the height of n, or -1 if some node of the subtree has a
// wrong or out of range balance factor.
func avlCheck[K any](n *Node[K]) int {
	if n == nil {
		return 0
	}
	hl := avlCheck(n.l)
	if hl < 0 {
		return -1
	}
	hr := avlCheck(n.r)
	if hr < 0 || hr-hl != int(n.bal) || n.bal < -1 || n.bal > 1 {
		return -1
	}
	return max(hl, hr) + 1
}
