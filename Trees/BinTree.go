package Trees

import "golang.org/x/exp/constraints"

// BinTree is a plain binary search tree: the bare engine without any balancing.
// Its height D depends entirely on the insertion order, from log2(n) up to n.
type BinTree[K any, A Aug] struct {
	base[K, A]
}

// NewBin returns an empty BinTree ordered by the natural order of K.
func NewBin[K constraints.Ordered, A Aug]() *BinTree[K, A] {
	return NewBinC[K, A](natural[K])
}

// NewBinC returns an empty BinTree ordered by cmp.
func NewBinC[K any, A Aug](cmp func(K, K) int) *BinTree[K, A] {
	return &BinTree[K, A]{makeBase[K, A](cmp)}
}

func (u *BinTree[K, A]) spawn(root *Node[K]) *BinTree[K, A] {
	return &BinTree[K, A]{base[K, A]{root: root, cmp: u.cmp, rk: u.rk}}
}

func (u *BinTree[K, A]) insert(p *Node[K], dup bool) *Node[K] {
	ln, st := u.descend(p.Key, dup, u.st[:0])
	u.st = st[:0]
	if *ln != nil {
		return *ln
	}
	u.link(p, ln, st)
	return p
}

// link p as a leaf at the nil link ln, st holding the links above it.
func (u *BinTree[K, A]) link(p *Node[K], ln **Node[K], st []**Node[K]) {
	p.reset()
	*ln = p
	u.grow(st)
	u.touch()
}

// InsertPos [Tree.InsertPos]
// Time: O(D) under Rank
func (u *BinTree[K, A]) InsertPos(p *Node[K], i int) {
	ln, st := u.descendPos(i, u.st[:0])
	u.link(p, ln, st)
	u.st = st[:0]
}

// Insert [Tree.Insert]
// Time: O(D)
func (u *BinTree[K, A]) Insert(p *Node[K]) *Node[K] {
	if q := u.insert(p, false); q == p {
		return p
	}
	return nil
}

// InsertDup [Tree.InsertDup]
// Time: O(D)
func (u *BinTree[K, A]) InsertDup(p *Node[K]) *Node[K] {
	return u.insert(p, true)
}

// SearchOrInsert [Tree.SearchOrInsert]
// Time: O(D)
func (u *BinTree[K, A]) SearchOrInsert(p *Node[K]) *Node[K] {
	return u.insert(p, false)
}

// Remove [Tree.Remove]
// A node with two children is first swapped with its successor.
// Time: O(D)
func (u *BinTree[K, A]) Remove(k K) *Node[K] {
	ln, st := u.descend(k, false, u.st[:0])
	p := *ln
	if p == nil {
		u.st = st[:0]
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
	u.st = st[:0]
	p.reset()
	u.touch()
	return p
}

// RemovePos [Tree.RemovePos]
func (u *BinTree[K, A]) RemovePos(i int) *Node[K] {
	if p := u.Select(i); p != nil {
		return u.Remove(p.Key)
	}
	return nil
}

// Split [Tree.Split]
// Time: O(D)
func (u *BinTree[K, A]) Split(k K) (*BinTree[K, A], *BinTree[K, A], bool) {
	if u.hasKey(k) {
		return nil, nil, false
	}
	l, r := u.SplitDup(k)
	return l, r, true
}

// SplitDup [Tree.SplitDup]
// Time: O(D)
func (u *BinTree[K, A]) SplitDup(k K) (*BinTree[K, A], *BinTree[K, A]) {
	l, r := u.splitRaw(u.take(), u.byKey(k))
	return u.spawn(l), u.spawn(r)
}

// SplitPos [Tree.SplitPos]
// Time: O(D) under Rank
func (u *BinTree[K, A]) SplitPos(i int) (*BinTree[K, A], *BinTree[K, A]) {
	l, r := u.splitRaw(u.take(), u.byPos(i))
	return u.spawn(l), u.spawn(r)
}

// Join [Tree.Join]
// Time: O(m*D)
func (u *BinTree[K, A]) Join(o *BinTree[K, A]) (dup []*Node[K]) {
	drain(o.take(), func(p *Node[K]) {
		if u.Insert(p) == nil {
			dup = append(dup, p)
		}
	})
	return
}

// JoinDup [Tree.JoinDup]
func (u *BinTree[K, A]) JoinDup(o *BinTree[K, A]) {
	drain(o.take(), func(p *Node[K]) {
		u.InsertDup(p)
	})
}

// JoinExclusive [Tree.JoinExclusive]
// o's root is hung to the right of u's maximum.
// Time: O(D)
func (u *BinTree[K, A]) JoinExclusive(o *BinTree[K, A]) {
	r := o.take()
	if r == nil {
		return
	} else if u.root == nil {
		u.root = r
	} else {
		ln, st := maxLink(&u.root, u.st[:0])
		st = append(st, ln)
		(*ln).r = r
		if u.rk {
			for _, a := range st {
				(*a).cnt += r.cnt
			}
		}
		u.st = st[:0]
	}
	u.touch()
}

// Verify [Tree.Verify]
func (u *BinTree[K, A]) Verify() bool {
	return u.sound()
}
