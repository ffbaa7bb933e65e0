package Trees

// count of the nodes in the subtree rooting at n. Reads the stored count under
// Rank and walks the subtree otherwise.
func (u *base[K, A]) count(n *Node[K]) int {
	if n == nil {
		return 0
	} else if u.rk {
		return n.cnt
	}
	return 1 + u.count(n.l) + u.count(n.r)
}

// Select [Tree.Select]
// Returns nil when i is out of [0, Size()).
// Time: O(D) under Rank; Space: O(1)
func (u *base[K, A]) Select(i int) *Node[K] {
	if i < 0 {
		return nil
	}
	for cur := u.root; cur != nil; {
		if lc := u.count(cur.l); i < lc {
			cur = cur.l
		} else if i > lc {
			i -= lc + 1
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// FindPosition [Tree.FindPosition]
// With duplicated keys the leftmost node holding k is returned.
// Time: O(D) under Rank; Space: O(1)
func (u *base[K, A]) FindPosition(k K) (pos int, p *Node[K]) {
	for cur := u.root; cur != nil; {
		if c := u.cmp(k, cur.Key); c <= 0 {
			if c == 0 {
				p = cur
			}
			cur = cur.l
		} else {
			pos += u.count(cur.l) + 1
			cur = cur.r
		}
	}
	return
}

// Position [Tree.Position]
// Time: O(D) under Rank; Space: O(1)
func (u *base[K, A]) Position(k K) (int, *Node[K]) {
	if pos, p := u.FindPosition(k); p != nil {
		return pos, p
	}
	return -1, nil
}

// descendPos walks from the root to the nil link where a new node becomes the
// i-th in order, appending to st the links holding the visited nodes. i below
// 0 or above the size lands at either end.
// Time: O(D) under Rank
func (u *base[K, A]) descendPos(i int, st []**Node[K]) (**Node[K], []**Node[K]) {
	ln := &u.root
	for n := *ln; n != nil; n = *ln {
		st = append(st, ln)
		if lc := u.count(n.l); i <= lc {
			ln = &n.l
		} else {
			i -= lc + 1
			ln = &n.r
		}
	}
	return ln, st
}

// byPos returns a split criterion sending the first i in-order nodes left.
// It must see the nodes of a single root to leaf path, top down, each once.
func (u *base[K, A]) byPos(i int) func(*Node[K]) bool {
	return func(n *Node[K]) bool {
		if lc := u.count(n.l); i > lc {
			i -= lc + 1
			return true
		}
		return false
	}
}

// byKey returns a split criterion sending nodes with keys less than k left.
func (u *base[K, A]) byKey(k K) func(*Node[K]) bool {
	return func(n *Node[K]) bool {
		return u.cmp(n.Key, k) < 0
	}
}
