package Trees

import "golang.org/x/exp/constraints"

// A node in the LinkedBST. Every node is owned by exactly one slot,
// either the l or r of its parent or the root of the tree.
// The zero value is a leaf holding the zero value of T.
type node[T constraints.Ordered] struct {
	v    T
	l, r *node[T]
}

// slot returns the child slot of n where v belongs. Equal values go right.
func (n *node[T]) slot(v T) **node[T] {
	if v < n.v {
		return &n.l
	}
	return &n.r
}

// rightMost returns the slot holding the right most node of the subtree at
// *p. *p mustn't be nil.
// Time: O(D); Space: O(1)
func rightMost[T constraints.Ordered](p **node[T]) **node[T] {
	for (*p).r != nil {
		p = &(*p).r
	}
	return p
}

// leftMost returns the slot holding the left most node of the subtree at
// *p. *p mustn't be nil.
// Time: O(D); Space: O(1)
func leftMost[T constraints.Ordered](p **node[T]) **node[T] {
	for (*p).l != nil {
		p = &(*p).l
	}
	return p
}
