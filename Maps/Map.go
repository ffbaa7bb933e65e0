// Package Maps holds an ordered map built on the trees of package Trees.
package Maps

import (
	"iter"

	"github.com/g-m-twostay/go-trees/Sets"
)

// The error sentinels are shared with package Sets.
var (
	ErrDuplicateKey = Sets.ErrDuplicateKey
	ErrKeyNotFound  = Sets.ErrKeyNotFound
	ErrOutOfRange   = Sets.ErrOutOfRange
)

type Map[K, V any] interface {
	//Insert a new pair, ErrDuplicateKey if k is present.
	Insert(k K, v V) error
	//Put sets the value of k, returning the previous one if there was.
	Put(k K, v V) (V, bool)
	Get(k K) (V, error)
	Has(k K) bool
	Delete(k K) (V, error)
	Len() int
	All() iter.Seq2[K, V]
}

// OrderedMap can also address its pairs by their position in key order.
type OrderedMap[K, V any] interface {
	Map[K, V]
	At(i int) (K, V, error)
	IndexOf(k K) (int, error)
}
