package Trees

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const bSize = 1 << 15

var bKeys = rand.New(rand.NewSource(1)).Perm(bSize)

var sideEff *Node[int]

func benchInsert[T Tree[int, T]](b *testing.B, mk func() T) {
	for range b.N {
		u := mk()
		for _, k := range bKeys {
			u.Insert(NewNode(k))
		}
	}
}

func benchAll[T Tree[int, T]](b *testing.B, mk func() T) {
	for range b.N {
		u := mk()
		for _, k := range bKeys {
			u.Insert(NewNode(k))
		}
		for _, k := range bKeys {
			sideEff = u.Search(k)
		}
		for i := range bSize / 2 {
			sideEff = u.Select(i)
		}
		for _, k := range bKeys {
			u.Remove(k)
		}
	}
}

func BenchmarkBinTree_Insert(b *testing.B) { benchInsert(b, NewBin[int, Plain]) }
func BenchmarkAvlTree_Insert(b *testing.B) { benchInsert(b, NewAvl[int, Plain]) }
func BenchmarkRbTree_Insert(b *testing.B)  { benchInsert(b, NewRb[int, Plain]) }
func BenchmarkTreap_Insert(b *testing.B) {
	benchInsert(b, func() *Treap[int, Plain] { return NewTreap[int, Plain](1) })
}
func BenchmarkSplayTree_Insert(b *testing.B) { benchInsert(b, NewSplay[int, Plain]) }
func BenchmarkSbTree_Insert(b *testing.B)    { benchInsert(b, NewSb[int]) }
func BenchmarkRandTree_Insert(b *testing.B) {
	benchInsert(b, func() *RandTree[int] { return NewRand[int](1) })
}

func BenchmarkAvlTree_All(b *testing.B) { benchAll(b, NewAvl[int, Rank]) }
func BenchmarkRbTree_All(b *testing.B)  { benchAll(b, NewRb[int, Rank]) }
func BenchmarkTreap_All(b *testing.B) {
	benchAll(b, func() *Treap[int, Rank] { return NewTreap[int, Rank](1) })
}
func BenchmarkSplayTree_All(b *testing.B) { benchAll(b, NewSplay[int, Rank]) }
func BenchmarkSbTree_All(b *testing.B)    { benchAll(b, NewSb[int]) }
func BenchmarkRandTree_All(b *testing.B) {
	benchAll(b, func() *RandTree[int] { return NewRand[int](1) })
}

// the same workload on other ordered containers, for reference.

func BenchmarkGodsRedBlack_Insert(b *testing.B) {
	for range b.N {
		t := redblacktree.NewWithIntComparator()
		for _, k := range bKeys {
			t.Put(k, nil)
		}
	}
}

func BenchmarkGoogleBTree_Insert(b *testing.B) {
	for range b.N {
		t := btree.NewOrderedG[int](32)
		for _, k := range bKeys {
			t.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	for range b.N {
		t := llrb.New()
		for _, k := range bKeys {
			t.ReplaceOrInsert(llrb.Int(k))
		}
	}
}
