package Trees

// Tree represents an ordered set implemented as a binary search tree without repeated values.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x should be undefined.
// Implementations aren't safe for concurrent use unless they say otherwise.
type Tree[T any] interface {
	//Add v to the Tree. Returning true if it was added, false if it was already there.
	//The error reports that the tree couldn't allocate room for v, in which case the tree
	//must be unchanged.
	Add(v T) (bool, error)
	//Remove v from the Tree. Returning true if successful, false if v wasn't there.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Empty is true if the tree has no elements.
	Empty() bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//InOrder returns A closure function f acting like an iterator. f
	//gives nodes in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the links
	//or the values violate the properties of that specific implementation.
	Corrupt() bool
}
