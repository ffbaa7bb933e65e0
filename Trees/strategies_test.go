package Trees

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// levels lists the keys breadth first, one string per level.
func levels[T Tree[int, T]](u T) []string {
	var ls [][]string
	u.LevelOrder(func(p *Node[int], d int) bool {
		if d == len(ls) {
			ls = append(ls, nil)
		}
		ls[d] = append(ls[d], string(rune('0'+p.Key)))
		return true
	})
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = strings.Join(l, " ")
	}
	return out
}

// maxBalance is the largest |height(r)-height(l)| over the subtree rooting at
// root, measured rather than read from the stored factors.
func maxBalance(root *Node[int]) (m int) {
	var h func(n *Node[int]) int
	h = func(n *Node[int]) int {
		if n == nil {
			return 0
		}
		l, r := h(n.l), h(n.r)
		m = max(m, l-r, r-l)
		return max(l, r) + 1
	}
	h(root)
	return
}

func TestAvlTree_Shape(t *testing.T) {
	u := NewAvl[int, Rank]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		fill(t, u, k)
		require.True(t, u.Verify(), "after insert %d", k)
		require.LessOrEqual(t, maxBalance(u.root), 1, "after insert %d", k)
	}
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, keys(u))
	assert.Equal(t, []string{"5", "3 8", "1 4 7 9"}, levels(u))
	assert.Equal(t, 3, u.Height())
	assert.Equal(t, 7, u.Root().Count())

	u = NewAvl[int, Rank]()
	fill(t, u, 1, 2, 3) //RR
	assert.Equal(t, []string{"2", "1 3"}, levels(u))
	fill(t, u, 5, 4) //RL under 3
	assert.Equal(t, []string{"2", "1 4", "3 5"}, levels(u))
	u.Remove(1) //RR at 2 with a balanced right child
	assert.Equal(t, []string{"4", "2 5", "3"}, levels(u))
	assert.True(t, u.Verify())
}

func TestAvlTree_HeightBound(t *testing.T) {
	u := NewAvl[int, Plain]()
	fill(t, u, seq(0, 1<<12)...)
	assert.LessOrEqual(t, u.Height(), 14)
	assert.Equal(t, u.Height(), avlHeight(u.root))
}

func TestRbTree_RandomRemovals(t *testing.T) {
	u := NewRb[int, Rank]()
	var in []int
	for len(in) < 5000 {
		k := rg.Int()
		if u.Insert(NewNode(k)) != nil {
			in = append(in, k)
		}
	}
	require.True(t, u.Verify())
	rg.Shuffle(len(in), func(i, j int) { in[i], in[j] = in[j], in[i] })
	for _, k := range in[:2500] {
		require.NotNil(t, u.Remove(k))
		require.True(t, u.Verify())
	}
	assert.Equal(t, 2500, u.Size())
	rest := slices.Clone(in[2500:])
	slices.Sort(rest)
	assert.Equal(t, rest, keys(u))
	assert.False(t, isRed(u.root))
	assert.LessOrEqual(t, u.Height(), 2*blackHeight(u.root))
}

func TestRbTree_Join3(t *testing.T) {
	for _, sizes := range [][2]int{{0, 100}, {100, 0}, {1, 1000}, {1000, 1}, {63, 64}} {
		l, r := NewRb[int, Rank](), NewRb[int, Rank]()
		fill(t, l, seq(0, sizes[0])...)
		fill(t, r, seq(sizes[0]+1, sizes[0]+1+sizes[1])...)
		k := NewNode(sizes[0])
		bl, br := blackHeight(l.root), blackHeight(r.root)
		root, bh := l.join3(l.take(), bl, k, r.take(), br)
		u := NewRb[int, Rank]()
		u.root = root
		require.True(t, u.Verify(), "join3 %v", sizes)
		assert.Equal(t, blackHeight(root), bh)
		assert.Equal(t, seq(0, sizes[0]+sizes[1]+1), keys(u))
	}
}

func TestSplayTree_AccessedToRoot(t *testing.T) {
	u := NewSplay[int, Rank]()
	for _, k := range rg.Perm(200) {
		fill(t, u, k)
		require.Equal(t, k, u.Root().Key)
	}
	for range 100 {
		k := rg.Intn(200)
		require.NotNil(t, u.Search(k))
		require.Equal(t, k, u.Root().Key)
		require.True(t, u.Verify())
	}
	// a missing key brings a neighbour up.
	u.Remove(50)
	assert.Nil(t, u.Search(50))
	assert.Contains(t, []int{49, 51}, u.Root().Key)

	p := u.SearchOrInsert(NewNode(120))
	assert.Same(t, p, u.Root())

	// read only queries leave the root alone.
	r := u.Root()
	u.Select(3)
	u.Position(7)
	u.Min()
	u.Successor(9)
	assert.Same(t, r, u.Root())

	// sequential access on a splay tree ends up a path, then recovers.
	v := NewSplay[int, Plain]()
	fill(t, v, seq(0, 512)...)
	assert.Equal(t, 512, v.Height())
	v.Search(0)
	assert.Less(t, v.Height(), 300)
}

func TestTreap_Deterministic(t *testing.T) {
	a, b := NewTreap[int, Rank](99), NewTreap[int, Rank](99)
	ks := rg.Perm(300)
	fill(t, a, ks...)
	fill(t, b, ks...)
	assert.Equal(t, levels(a), levels(b))
	assert.True(t, heapOrdered(a.root))

	c := NewTreap[int, Rank](100)
	fill(t, c, ks...)
	assert.NotEqual(t, levels(a), levels(c))

	// sorted insertion still gives a logarithmic expected height.
	d := NewTreap[int, Plain](5)
	fill(t, d, seq(0, 1<<12)...)
	assert.Less(t, d.Height(), 60)
}

func TestSbTree_Build(t *testing.T) {
	u, err := BuildSb(natural[int], seq(0, 1000))
	require.NoError(t, err)
	assert.True(t, u.Verify())
	assert.Equal(t, 1000, u.Size())
	assert.Equal(t, 10, u.Height())
	for i := range 1000 {
		require.Equal(t, i, u.Select(i).Key)
	}

	_, err = BuildSb(natural[int], []int{1, 3, 3})
	assert.ErrorIs(t, err, ErrUnsorted)
	_, err = BuildSb(natural[int], []int{2, 1})
	assert.ErrorIs(t, err, ErrUnsorted)

	e, err := BuildSb(natural[int], nil)
	require.NoError(t, err)
	assert.True(t, e.Empty())
}

func TestSbTree_Sequential(t *testing.T) {
	u := NewSb[int]()
	fill(t, u, seq(0, 1<<12)...)
	require.True(t, u.Verify())
	assert.LessOrEqual(t, u.Height(), 17)
	for k := 0; k < 1<<12; k += 3 {
		require.NotNil(t, u.Remove(k))
	}
	require.True(t, u.Verify())
	assert.LessOrEqual(t, u.Height(), 17)
}

func TestRandTree_Shape(t *testing.T) {
	a, b := NewRand[int](11), NewRand[int](11)
	fill(t, a, seq(0, 1<<12)...)
	fill(t, b, seq(0, 1<<12)...)
	assert.Equal(t, a.Root().Key, b.Root().Key)
	assert.Equal(t, a.Height(), b.Height())
	// sorted insertion still gives a logarithmic expected height.
	assert.Less(t, a.Height(), 60)
	for k := 0; k < 1<<12; k += 2 {
		require.NotNil(t, a.Remove(k))
	}
	require.True(t, a.Verify())
	assert.Less(t, a.Height(), 60)

	l, r := NewRand[int](6), NewRand[int](7)
	fill(t, l, seq(0, 2048)...)
	fill(t, r, seq(2048, 4096)...)
	l.JoinExclusive(r)
	assert.True(t, r.Empty())
	require.True(t, l.Verify())
	assert.Equal(t, seq(0, 4096), keys(l))
	assert.Less(t, l.Height(), 60)
}

func TestRandTree_Dup(t *testing.T) {
	u := NewRand[int](4)
	fill(t, u, seq(0, 10)...)
	for range 3 {
		u.InsertDup(NewNode(5))
	}
	// positions 5 to 8 hold 5; exactly the node at 6 goes.
	p := u.Select(6)
	assert.Same(t, p, u.RemovePos(6))
	require.True(t, u.Verify())
	assert.Equal(t, 12, u.Size())
	assert.Nil(t, u.RemovePos(12))

	o := NewRand[int](5)
	fill(t, o, 3, 5, 20)
	u.JoinDup(o)
	assert.True(t, o.Empty())
	require.True(t, u.Verify())
	assert.Equal(t, []int{0, 1, 2, 3, 3, 4, 5, 5, 5, 5, 6, 7, 8, 9, 20}, keys(u))
}

func TestCustomOrder(t *testing.T) {
	u := NewRbC[string, Rank](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	for _, w := range []string{"b", "A", "c", "B"} {
		u.Insert(NewNode(w))
	}
	assert.Equal(t, []string{"A", "b", "c"}, slices.Collect(u.All()))
	assert.NotNil(t, u.Search("C"))
}
