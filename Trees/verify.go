package Trees

// sound reports whether the in-order sequence of the tree is non-decreasing
// and, under Rank, whether every count equals one plus the counts of the
// children. Every strategy's Verify starts from it.
// Time: O(n)
func (u *base[K, A]) sound() bool {
	var prev *Node[K]
	var st []*Node[K]
	for cur := u.root; cur != nil || len(st) > 0; {
		for ; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
		cur, st = st[len(st)-1], st[:len(st)-1]
		if prev != nil && u.cmp(prev.Key, cur.Key) > 0 {
			return false
		}
		if u.rk && cur.cnt != 1+cur.l.Count()+cur.r.Count() {
			return false
		}
		prev, cur = cur, cur.r
	}
	return true
}
