// Package Sets wraps the trees of package Trees into checked ordered sets:
// conditions the trees report by nil or -1 become errors.
package Sets

import (
	"iter"

	"github.com/pkg/errors"
)

var (
	// ErrDuplicateKey is returned when adding a key that is already present.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrKeyNotFound is returned when a key is required to be present but isn't.
	ErrKeyNotFound = errors.New("key not found")
	// ErrOutOfRange is returned for positions outside [0, Size()), including
	// any position of an empty set.
	ErrOutOfRange = errors.New("position out of range")
	// ErrPrecondition is returned when the arguments of an operation don't
	// satisfy its precondition, e.g. overlapping key ranges for Concat.
	ErrPrecondition = errors.New("precondition violated")
)

type Set[E any] interface {
	Put(E) error
	Has(E) bool
	Remove(E) error
	Size() int
	Range(func(E) bool)
}

type OrderedSet[E any] interface {
	Set[E]
	//At returns the element at position i in ascending order.
	At(i int) (E, error)
	//Rank returns the position of e.
	Rank(e E) (int, error)
	Min() (E, error)
	Max() (E, error)
	//Lower returns the greatest element less than e.
	Lower(e E) (E, bool)
	//Higher returns the smallest element greater than e.
	Higher(e E) (E, bool)
	Keys() iter.Seq[E]
}
