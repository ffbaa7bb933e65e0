// Package Trees implements a family of binary search trees sharing one
// node type, one set of rotations and one search/insert/remove engine.
// The balancing discipline is picked by the concrete type (BinTree, AvlTree,
// RbTree, Treap, SplayTree, SbTree, RandTree) and the subtree count augmentation by the
// Aug type parameter (Plain or Rank).
//
// None of the trees are safe for concurrent use.
package Trees

import (
	"iter"

	"github.com/pkg/errors"
)

// ErrInvalidated is reported by an Iterator whose tree changed shape after
// the iterator was created or last reset.
var ErrInvalidated = errors.New("tree was modified during iteration")

// Tree is the surface shared by every tree in the package. T is the concrete
// tree type itself, so that Split and Join can move nodes between trees of the
// same kind.
// Methods returning a *Node return nil when there is nothing to return: a
// failed insertion of a duplicate key, a missing key, an out of range
// position. Nothing panics for these conditions.
// Methods that take a *Node take ownership of it; the node must not be linked
// in any tree at that moment.
type Tree[K, T any] interface {
	//Search for a node holding k.
	Search(k K) *Node[K]
	//Insert p unless its key is already present, in which case nil is returned.
	Insert(p *Node[K]) *Node[K]
	//InsertDup inserts p even if its key is present. Always returns p.
	InsertDup(p *Node[K]) *Node[K]
	//SearchOrInsert returns the node holding p.Key if any, otherwise inserts
	//p and returns it.
	SearchOrInsert(p *Node[K]) *Node[K]
	//Remove a node holding k and return it detached.
	Remove(k K) *Node[K]
	//InsertPos links p so that it becomes the node at in-order position i,
	//i being clamped to [0, Size()]. The key of p isn't looked at: the
	//caller must make sure it fits between its new neighbours, otherwise the
	//search order breaks. Together with Select, RemovePos and SplitPos this
	//lets a tree be used as a sequence.
	InsertPos(p *Node[K], i int)
	//RemovePos removes the node at in-order position i.
	RemovePos(i int) *Node[K]

	//Split the tree into keys less than k and keys greater than k, leaving
	//the receiver empty. If k is present nothing happens and ok is false.
	Split(k K) (l, r T, ok bool)
	//SplitDup always splits; keys equal to k go to r.
	SplitDup(k K) (l, r T)
	//SplitPos moves the first i keys to l and the rest to r.
	SplitPos(i int) (l, r T)
	//Join moves all nodes of o into the receiver and empties o. Nodes of o
	//whose key is already present in the receiver are not inserted; they are
	//returned instead.
	Join(o T) (dup []*Node[K])
	//JoinDup is Join keeping duplicated keys.
	JoinDup(o T)
	//JoinExclusive concatenates o after the receiver and empties o. Every key
	//of the receiver must be less than every key of o; this isn't checked.
	JoinExclusive(o T)

	//Select the node at in-order position i, starting from 0.
	Select(i int) *Node[K]
	//Position of k, -1 and nil if k isn't present.
	Position(k K) (int, *Node[K])
	//FindPosition returns the number of keys less than k and the node
	//holding k, nil if k isn't present.
	FindPosition(k K) (int, *Node[K])

	//Min node of the tree.
	Min() *Node[K]
	//Max node of the tree.
	Max() *Node[K]
	//Predecessor returns the node with the greatest key less than k.
	Predecessor(k K) *Node[K]
	//Successor returns the node with the smallest key greater than k.
	Successor(k K) *Node[K]

	//Size of the tree.
	Size() int
	//Empty reports whether the tree has no node.
	Empty() bool
	//Height of the tree, 0 for an empty tree.
	Height() int
	//Verify checks every invariant of the tree: the search order, the
	//balancing discipline of the strategy and, under Rank, the counts.
	Verify() bool

	//Iter returns an iterator over the nodes in ascending order.
	Iter() *Iterator[K]
	//All keys in ascending order.
	All() iter.Seq[K]
	//InOrder returns A closure function f acting like an iterator. val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted.
	InOrder() func() (K, bool)
	//LevelOrder visits the nodes breadth first together with their depth,
	//the root being at depth 0, until f returns false.
	LevelOrder(f func(n *Node[K], depth int) bool)
}

var (
	_ Tree[int, *BinTree[int, Rank]]   = (*BinTree[int, Rank])(nil)
	_ Tree[int, *AvlTree[int, Rank]]   = (*AvlTree[int, Rank])(nil)
	_ Tree[int, *RbTree[int, Plain]]   = (*RbTree[int, Plain])(nil)
	_ Tree[int, *Treap[int, Rank]]     = (*Treap[int, Rank])(nil)
	_ Tree[int, *SplayTree[int, Rank]] = (*SplayTree[int, Rank])(nil)
	_ Tree[int, *SbTree[int]]          = (*SbTree[int])(nil)
	_ Tree[int, *RandTree[int]]        = (*RandTree[int])(nil)
)
