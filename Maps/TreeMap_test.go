package Maps

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeMap_Basic(t *testing.T) {
	m := New[string, int]()
	for i, w := range strings.Fields("the quick brown fox jumps over lazy dogs") {
		require.NoError(t, m.Insert(w, i))
	}
	require.ErrorIs(t, m.Insert("fox", 100), ErrDuplicateKey)
	assert.Equal(t, 8, m.Len())

	v, err := m.Get("fox")
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	_, err = m.Get("cat")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	old, ok := m.Put("fox", 30)
	assert.True(t, ok)
	assert.Equal(t, 3, old)
	_, ok = m.Put("cat", 9)
	assert.False(t, ok)
	assert.True(t, m.Has("cat"))

	k, v, err := m.At(0)
	require.NoError(t, err)
	assert.Equal(t, "brown", k)
	assert.Equal(t, 2, v)
	i, err := m.IndexOf("fox")
	require.NoError(t, err)
	assert.Equal(t, 3, i) //brown cat dogs fox
	_, _, err = m.At(m.Len())
	assert.ErrorIs(t, err, ErrOutOfRange)

	v, err = m.Delete("the")
	require.NoError(t, err)
	assert.Zero(t, v)
	_, err = m.Delete("the")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	var keys []string
	for k := range m.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, strings.Fields("brown cat dogs fox jumps lazy over quick"), keys)
}

func TestTreeMap_RangeSplitMerge(t *testing.T) {
	m := NewC[int, string](func(a, b int) int { return b - a }) //descending
	for i := range 10 {
		m.Put(i, strings.Repeat("x", i))
	}
	var got []int
	m.Range(7, 3, func(k int, _ string) bool {
		got = append(got, k)
		return true
	})
	assert.Equal(t, []int{7, 6, 5, 4}, got)

	l, r := m.Split(5)
	assert.Zero(t, m.Len())
	assert.Equal(t, 4, l.Len()) //9 8 7 6
	assert.Equal(t, 6, r.Len())
	_, err := l.Get(5)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	r.Put(7, "seven")
	dup := l.Merge(r)
	assert.Equal(t, []int{7}, dup)
	assert.Equal(t, 10, l.Len())
	v, _ := l.Get(7)
	assert.Equal(t, "xxxxxxx", v)
}

func TestTreeMap_NaturalOrder(t *testing.T) {
	m := New[float64, string]()
	for _, f := range []float64{2.5, -1, 0, -7.25, 1e9, 3} {
		require.NoError(t, m.Insert(f, ""))
	}
	var ks []float64
	for k := range m.All() {
		ks = append(ks, k)
	}
	assert.Equal(t, []float64{-7.25, -1, 0, 2.5, 3, 1e9}, ks)
	i, err := m.IndexOf(2.5)
	require.NoError(t, err)
	assert.Equal(t, 3, i)
}
