package Trees

// splitRaw partitions the subtree rooting at n by the criterion goesLeft
// without any rebalancing. A node keeps all of its descendants that land on the
// same side, so heap order (Treap) survives, but height and color conditions
// don't.
// Time: O(D)
func (u *base[K, A]) splitRaw(n *Node[K], goesLeft func(*Node[K]) bool) (l, r *Node[K]) {
	if n == nil {
		return nil, nil
	}
	if goesLeft(n) {
		n.r, r = u.splitRaw(n.r, goesLeft)
		u.fix(n)
		return n, r
	}
	l, n.l = u.splitRaw(n.l, goesLeft)
	u.fix(n)
	return l, n
}

// drain detaches every node of the subtree rooting at n, in pre-order, and
// hands each one, reset, to f.
func drain[K any](n *Node[K], f func(*Node[K])) {
	if n == nil {
		return
	}
	st := []*Node[K]{n}
	for len(st) > 0 {
		n, st = st[len(st)-1], st[:len(st)-1]
		if n.r != nil {
			st = append(st, n.r)
		}
		if n.l != nil {
			st = append(st, n.l)
		}
		n.reset()
		f(n)
	}
}

// hasKey reports whether k is present. Unlike Search it never restructures.
func (u *base[K, A]) hasKey(k K) bool {
	return u.Search(k) != nil
}
