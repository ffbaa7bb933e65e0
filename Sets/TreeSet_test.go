package Sets

import (
	"slices"
	"testing"

	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeSet_All(t *testing.T) {
	S := New[int](Trees.NewAvl[int, Trees.Rank]())
	for i := 0; i < 10; i++ {
		require.NoError(t, S.Put(i))
		require.ErrorIs(t, S.Put(i), ErrDuplicateKey)
	}
	for i := 0; i < 10; i++ {
		assert.True(t, S.Has(i))
	}
	for i := 0; i < 5; i++ {
		require.NoError(t, S.Remove(i))
		require.ErrorIs(t, S.Remove(i), ErrKeyNotFound)
	}
	for i := 0; i < 5; i++ {
		assert.False(t, S.Has(i))
	}
	assert.Equal(t, 5, S.Size())
	assert.Equal(t, []int{5, 6, 7, 8, 9}, slices.Collect(S.Keys()))
}

func TestTreeSet_Positions(t *testing.T) {
	S := New[int](Trees.NewRb[int, Trees.Rank]())
	for _, k := range []int{40, 10, 30, 20} {
		require.NoError(t, S.Put(k))
	}
	k, err := S.At(2)
	require.NoError(t, err)
	assert.Equal(t, 30, k)
	_, err = S.At(4)
	assert.ErrorIs(t, err, ErrOutOfRange)
	i, err := S.Rank(20)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	_, err = S.Rank(25)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	lo, _ := S.Min()
	hi, _ := S.Max()
	assert.Equal(t, 10, lo)
	assert.Equal(t, 40, hi)
	k, ok := S.Lower(30)
	assert.True(t, ok)
	assert.Equal(t, 20, k)
	_, ok = S.Higher(40)
	assert.False(t, ok)

	var seen []int
	S.Range(func(k int) bool {
		seen = append(seen, k)
		return k < 20
	})
	assert.Equal(t, []int{10, 20}, seen)
}

func TestTreeSet_Empty(t *testing.T) {
	S := New[string](Trees.NewSplay[string, Trees.Plain]())
	_, err := S.Min()
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = S.Max()
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = S.At(0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestTreeSet_SplitUnionConcat(t *testing.T) {
	S := New[int](Trees.NewTreap[int, Trees.Rank](7))
	for i := 0; i < 20; i += 2 {
		require.NoError(t, S.Put(i))
	}
	_, _, err := S.Split(4)
	require.ErrorIs(t, err, ErrPrecondition)
	assert.Equal(t, 10, S.Size())

	l, r, err := S.Split(5)
	require.NoError(t, err)
	assert.Zero(t, S.Size())
	assert.Equal(t, []int{0, 2, 4}, slices.Collect(l.Keys()))
	assert.Equal(t, []int{6, 8, 10, 12, 14, 16, 18}, slices.Collect(r.Keys()))

	require.ErrorIs(t, r.Concat(l), ErrPrecondition)
	require.NoError(t, l.Concat(r))
	assert.Equal(t, 10, l.Size())
	assert.Zero(t, r.Size())
	assert.True(t, l.Tree().Verify())

	o := New[int](Trees.NewTreap[int, Trees.Rank](8))
	for _, k := range []int{1, 2, 3, 4} {
		require.NoError(t, o.Put(k))
	}
	dup := l.Union(o)
	slices.Sort(dup)
	assert.Equal(t, []int{2, 4}, dup)
	assert.Equal(t, 12, l.Size())
	assert.True(t, l.Tree().Verify())

	a, b, err := l.SplitAt(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, slices.Collect(a.Keys()))
	assert.Equal(t, 9, b.Size())
	_, _, err = b.SplitAt(10)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
