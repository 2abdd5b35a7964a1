package Trees

// Tree represents an ordered container implemented using linked nodes.
// Receivers that have a bool as the second return value indicate whether
// the first return value is defined. For example, calling Minimum on an
// empty tree returns (x T, false). In that case x is the zero value of T
// and shouldn't be used.
// All methods are implemented iteratively unless noted, so the depth of
// the tree never grows the call stack.
type Tree[T any] interface {
	//Insert v to the Tree. Equal values are kept, each as its own node.
	Insert(v T)
	//Remove one occurrence of v from the Tree and return the stored value.
	//The error is ErrNotFound if v isn't in the Tree.
	Remove(v T) (T, error)
	//Replace the stored value equal to v with nv in place, returning the
	//old value. The position of the node isn't changed.
	Replace(v, nv T) (T, bool)
	//Find the stored value equal to v.
	Find(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//RangeFind returns the elements x with low<=x<=high in ascending order.
	RangeFind(low, high T) []T
	//Size of the tree.
	Size() uint
	//Height of the tree. 0 for an empty tree, 1 for a single node.
	Height() uint
	//Balanced reports whether the heights of the two subtrees of every
	//node differ by at most 1.
	Balanced() bool
	//Clear the tree.
	Clear()
	//InOrder returns a closure function f acting like an iterator. f
	//gives values in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
	//PreOrder is InOrder for the pre-order traversal.
	PreOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering of the tree or the size is wrong.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}
