package Trees

import (
	"golang.org/x/exp/constraints"
)

// base is the engine every tree embeds: the root, the comparison function,
// pure search-order logic and the shared bookkeeping. It knows nothing about
// balancing; strategies call into it and add their own fix-ups.
type base[K any, A Aug] struct {
	root *Node[K]
	//returns negative number if first < second, 0 if first==second, positive number if first>second. see cmp.Compare for an example.
	cmp func(K, K) int
	rk  bool        // whether counts are maintained, fixed by A.
	gen uint64      // bumped by every structural change; iterators compare against it.
	st  []**Node[K] // reusable path buffer of links.
}

func makeBase[K any, A Aug](cmp func(K, K) int) base[K, A] {
	var a A
	return base[K, A]{cmp: cmp, rk: a.counting()}
}

// natural order of ordered keys.
func natural[K constraints.Ordered](a, b K) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// touch records a structural change.
func (u *base[K, A]) touch() {
	u.gen++
}

// take the whole node set out of u, leaving it empty.
func (u *base[K, A]) take() *Node[K] {
	r := u.root
	u.root = nil
	u.touch()
	return r
}

// Root of the tree, nil if the tree is empty. The nodes reachable from it are
// read only for the caller.
func (u *base[K, A]) Root() *Node[K] {
	return u.root
}

// Empty [Tree.Empty]
func (u *base[K, A]) Empty() bool {
	return u.root == nil
}

// Size [Tree.Size]
// Time: O(1) under Rank, O(n) otherwise.
func (u *base[K, A]) Size() int {
	return u.count(u.root)
}

// Search [Tree.Search]
// Time: O(D); Space: O(1)
func (u *base[K, A]) Search(k K) *Node[K] {
	return u.find(u.root, k)
}

// find k in the subtree rooting at n.
func (u *base[K, A]) find(n *Node[K], k K) *Node[K] {
	for cur := n; cur != nil; {
		if c := u.cmp(k, cur.Key); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// descend walks from the root towards k, appending to st the links holding
// the visited nodes. It returns the link where the walk stopped: the one holding
// a node equal to k, or a nil link. With dup, equal keys don't stop the walk and
// lead right, so the returned link is always nil.
// Time: O(D)
func (u *base[K, A]) descend(k K, dup bool, st []**Node[K]) (**Node[K], []**Node[K]) {
	ln := &u.root
	for n := *ln; n != nil; n = *ln {
		c := u.cmp(k, n.Key)
		if c == 0 && !dup {
			break
		}
		st = append(st, ln)
		if c < 0 {
			ln = &n.l
		} else {
			ln = &n.r
		}
	}
	return ln, st
}

// grow increments the counts of the nodes held by the links in st.
func (u *base[K, A]) grow(st []**Node[K]) {
	if u.rk {
		for _, ln := range st {
			(*ln).cnt++
		}
	}
}

// shrink decrements the counts of the nodes held by the links in st.
func (u *base[K, A]) shrink(st []**Node[K]) {
	if u.rk {
		for _, ln := range st {
			(*ln).cnt--
		}
	}
}

// swapSucc exchanges the node p held by ln, which must have two children, with
// its in-order successor: the leftmost node of p's right subtree. Nodes swap
// positions, not keys, so p keeps its identity and the position bookkeeping
// stays with the positions. The links from ln down to p's new position are
// appended to st, and the link now holding p is returned; p has no left child
// there.
// Time: O(D)
func (u *base[K, A]) swapSucc(ln **Node[K], st []**Node[K]) (**Node[K], []**Node[K]) {
	p := *ln
	st = append(st, ln)
	if s := p.r; s.l == nil {
		*ln = s
		s.l, p.l = p.l, nil
		p.r, s.r = s.r, p
		swapMeta(p, s)
		return &s.r, st
	}
	sp := p.r
	for sp.l.l != nil {
		sp = sp.l
	}
	s := sp.l
	*ln = s
	s.l, p.l = p.l, nil
	s.r, p.r = p.r, s.r
	sp.l = p
	swapMeta(p, s)
	st = append(st, &s.r)
	for c := s.r; c != sp; c = c.l {
		st = append(st, &c.l)
	}
	return &sp.l, st
}

// Min [Tree.Min]
// Time: O(D); Space: O(1)
func (u *base[K, A]) Min() *Node[K] {
	cur := u.root
	if cur != nil {
		for cur.l != nil {
			cur = cur.l
		}
	}
	return cur
}

// Max [Tree.Max]
// Time: O(D); Space: O(1)
func (u *base[K, A]) Max() *Node[K] {
	cur := u.root
	if cur != nil {
		for cur.r != nil {
			cur = cur.r
		}
	}
	return cur
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *base[K, A]) Predecessor(k K) (p *Node[K]) {
	for cur := u.root; cur != nil; {
		if u.cmp(k, cur.Key) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *base[K, A]) Successor(k K) (p *Node[K]) {
	for cur := u.root; cur != nil; {
		if u.cmp(k, cur.Key) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return
}

// maxLink returns the link holding the maximum of the subtree held by ln,
// appending the links above it to st.
func maxLink[K any](ln **Node[K], st []**Node[K]) (**Node[K], []**Node[K]) {
	for (*ln).r != nil {
		st = append(st, ln)
		ln = &(*ln).r
	}
	return ln, st
}

// minLink is the mirror of maxLink.
func minLink[K any](ln **Node[K], st []**Node[K]) (**Node[K], []**Node[K]) {
	for (*ln).l != nil {
		st = append(st, ln)
		ln = &(*ln).l
	}
	return ln, st
}
