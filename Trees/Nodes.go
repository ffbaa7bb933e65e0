package Trees

// Node is an element of any tree in this package. A node is owned by at most
// one tree at a time; it's created detached by NewNode, linked in by an
// insertion and handed back detached by a removal.
// Only Key is meant to be touched by callers, and only while the node is
// detached or in a way that doesn't change its order relative to its
// neighbours.
type Node[K any] struct {
	Key  K
	l, r *Node[K]
	cnt  int    // size of the subtree rooting here. Maintained only under Rank.
	prio uint64 // Treap heap priority.
	bal  int8   // AvlTree: height(r)-height(l).
	red  bool   // RbTree color; nil children count as black.
}

// NewNode returns a detached node holding k.
func NewNode[K any](k K) *Node[K] {
	return &Node[K]{Key: k, cnt: 1}
}

// Left child, nil if there is none.
func (n *Node[K]) Left() *Node[K] {
	return n.l
}

// Right child, nil if there is none.
func (n *Node[K]) Right() *Node[K] {
	return n.r
}

// Count of nodes in the subtree rooting at n. Only meaningful for nodes of
// trees augmented by Rank; otherwise it's 1.
func (n *Node[K]) Count() int {
	if n == nil {
		return 0
	}
	return n.cnt
}

// reset detaches n, making it look freshly created apart from Key and prio.
func (n *Node[K]) reset() {
	n.l, n.r = nil, nil
	n.cnt, n.bal, n.red = 1, 0, false
}

// swapMeta exchanges the per-position bookkeeping of a and b. Used when two
// nodes exchange positions in the tree: counts, balance factors and colors
// belong to positions, not to keys.
func swapMeta[K any](a, b *Node[K]) {
	a.cnt, b.cnt = b.cnt, a.cnt
	a.bal, b.bal = b.bal, a.bal
	a.red, b.red = b.red, a.red
}

func isRed[K any](n *Node[K]) bool {
	return n != nil && n.red
}

// fix recomputes the count of n from its children.
// Time: O(1); Space: O(1)
func (u *base[K, A]) fix(n *Node[K]) {
	if u.rk {
		n.cnt = 1 + n.l.Count() + n.r.Count()
	}
}

// rotL performs a left rotation on the node held by link n. n is passed by
// reference in order to modify its content. Only the two rotated nodes get
// their counts recomputed.
// Time: O(1); Space: O(1)
func (u *base[K, A]) rotL(n **Node[K]) {
	p := *n
	q := p.r
	p.r, q.l = q.l, p
	if u.rk {
		q.cnt = p.cnt
		p.cnt = 1 + p.l.Count() + p.r.Count()
	}
	*n = q
}

// rotR performs a right rotation on the node held by link n.
// Time: O(1); Space: O(1)
func (u *base[K, A]) rotR(n **Node[K]) {
	p := *n
	q := p.l
	p.l, q.r = q.r, p
	if u.rk {
		q.cnt = p.cnt
		p.cnt = 1 + p.l.Count() + p.r.Count()
	}
	*n = q
}
