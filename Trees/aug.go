package Trees

// Aug selects the augmentation carried by the nodes of a tree. It is a type
// parameter of every tree so that the choice is fixed at compile time.
type Aug interface {
	Plain | Rank
	counting() bool
}

// Plain trees keep no subtree counts. Positional queries still work but walk
// the tree in O(n).
type Plain struct{}

// Rank trees keep subtree counts in every node, making Select, Position and
// the other positional operations O(log n) on balanced strategies.
type Rank struct{}

func (Plain) counting() bool { return false }
func (Rank) counting() bool  { return true }
