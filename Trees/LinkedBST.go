package Trees

import (
	"math/bits"
	"slices"

	"github.com/ansel1/merry"
	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/go-bst/Queues"
)

// LinkedBST is a binary search tree made of linked nodes. Values are
// their own keys and equal values are allowed. Insert sends a value less
// than a node to its left subtree and any other value to its right
// subtree, so equal values go right. Remove may lift a value over values
// equal to it, so the order kept by every operation is: values in the left
// subtree of a node are less or equal, values in the right subtree are
// greater or equal.
// The tree never balances itself. Inserting sorted data degrades it to a
// list of height n; call Rebalance to rebuild it to minimal height.
// D below is the height of the tree.
// The zero value is an empty tree ready to use. LinkedBST isn't safe for
// concurrent use.
type LinkedBST[T constraints.Ordered] struct {
	root *node[T]
	sz   uint
}

var _ Tree[int] = (*LinkedBST[int])(nil)

// New returns an empty LinkedBST.
func New[T constraints.Ordered]() *LinkedBST[T] {
	return &LinkedBST[T]{}
}

// From returns a LinkedBST holding the values of src, inserted in the
// order they appear in src.
// Time: O(n*D)
func From[T constraints.Ordered](src []T) *LinkedBST[T] {
	u := New[T]()
	for _, v := range src {
		u.Insert(v)
	}
	return u
}

// Build returns a LinkedBST of minimal height holding the values of sorted.
// sorted must be in ascending order. If safe==true, this function checks the
// order and panics with InvalidSliceError if it's broken. Otherwise it's up
// to the user to ensure the order, or the tree will be corrupt.
// sorted isn't modified or retained.
// Time: O(n*log n)
func Build[T constraints.Ordered](sorted []T, safe bool) *LinkedBST[T] {
	if safe {
		for i := 1; i < len(sorted); i++ {
			if sorted[i] < sorted[i-1] {
				panic(InvalidSliceError[T]{i, sorted[i-1], sorted[i]})
			}
		}
	}
	return &LinkedBST[T]{build(sorted), uint(len(sorted))}
}

// build a tree from the ascending vs by inserting the middle of every range
// before its two halves. The ranges are kept on a stack of [start,end] pairs
// so the parent of a range is always inserted before its children.
func build[T constraints.Ordered](vs []T) *node[T] {
	if len(vs) == 0 {
		return nil
	}
	var t LinkedBST[T]
	st := make([][2]int, 0, bits.Len(uint(len(vs)))+1)
	for st = append(st, [2]int{0, len(vs) - 1}); len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		mid := int(uint(top[0]+top[1]) >> 1)
		t.Insert(vs[mid])
		if mid < top[1] {
			st = append(st, [2]int{mid + 1, top[1]})
		}
		if top[0] < mid {
			st = append(st, [2]int{top[0], mid - 1})
		}
	}
	return t.root
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *LinkedBST[T]) Size() uint {
	return u.sz
}

// Empty reports whether the tree holds no value.
func (u *LinkedBST[T]) Empty() bool {
	return u.sz == 0
}

// Insert [Tree.Insert]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Insert(v T) {
	p := &u.root
	for *p != nil {
		p = (*p).slot(v)
	}
	*p = &node[T]{v: v}
	u.sz++
}

// Remove [Tree.Remove]
// The node holding v is looked up from the root while keeping the slot
// that owns it. A node with two children isn't unlinked: the maximum of its
// left subtree is lifted into it and that maximum node is unlinked instead.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Remove(v T) (T, error) {
	p := &u.root
	for *p != nil && (*p).v != v {
		p = (*p).slot(v)
	}
	cur := *p
	if cur == nil {
		return *new(T), notFound(v)
	}
	old := cur.v
	if cur.l != nil && cur.r != nil {
		m := rightMost(&cur.l)
		cur.v = (*m).v
		*m = (*m).l
	} else if cur.l == nil {
		*p = cur.r
	} else {
		*p = cur.l
	}
	u.sz--
	return old, nil
}

// Replace [Tree.Replace]
// Replace doesn't move the node, so nv must belong at the same position as
// v. Otherwise the tree becomes corrupt and lookups may miss values. Use
// StrictReplace to have the position checked.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Replace(v, nv T) (T, bool) {
	for cur := u.root; cur != nil; cur = *cur.slot(v) {
		if cur.v == v {
			old := cur.v
			cur.v = nv
			return old, true
		}
	}
	return *new(T), false
}

// StrictReplace is Replace that refuses to break the ordering. The error is
// ErrNotFound if v isn't in the tree, and ErrOrderViolation if nv doesn't
// belong at the position of v, in which case the tree is left unchanged.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) StrictReplace(v, nv T) (T, error) {
	var lo, hi *node[T] // every value at cur is >= lo.v and <= hi.v.
	cur := u.root
	for cur != nil && cur.v != v {
		if v < cur.v {
			hi, cur = cur, cur.l
		} else {
			lo, cur = cur, cur.r
		}
	}
	if cur == nil {
		return *new(T), notFound(v)
	}
	if (lo != nil && nv < lo.v) || (hi != nil && hi.v < nv) ||
		(cur.l != nil && nv < (*rightMost(&cur.l)).v) ||
		(cur.r != nil && (*leftMost(&cur.r)).v < nv) {
		return *new(T), merry.Here(ErrOrderViolation).WithValue(ItemKey, v).WithValue(ReplacementKey, nv)
	}
	old := cur.v
	cur.v = nv
	return old, nil
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Find(v T) (T, bool) {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return cur.v, true
		} else {
			cur = cur.r
		}
	}
	return *new(T), false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Has(v T) bool {
	_, has := u.Find(v)
	return has
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return (*leftMost(&u.root)).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return (*rightMost(&u.root)).v, true
}

// Successor [Tree.Successor]
// v doesn't need to be in the tree.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Successor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Predecessor [Tree.Predecessor]
// v doesn't need to be in the tree.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Predecessor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if cur.v < v {
			p = cur
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// RangeFind [Tree.RangeFind]
// Subtrees that are entirely below low are skipped, and the walk stops at
// the first value above high.
// Time: O(D+k) for k results; Space: O(D)
func (u *LinkedBST[T]) RangeFind(low, high T) []T {
	var r []T
	st := Queues.MakeLinkedStack[*node[T]]()
	for cur := u.root; ; {
		for cur != nil {
			if cur.v < low {
				cur = cur.r
			} else {
				st.Push(cur)
				cur = cur.l
			}
		}
		n, e := st.Pop()
		if e != nil || high < n.v {
			return r
		}
		r = append(r, n.v)
		cur = n.r
	}
}

// Clear the tree.
// Time: O(1)
func (u *LinkedBST[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Rebalance rebuilds the tree to minimal height. The values are collected
// in order and sorted again, which also repairs the order of a tree made
// corrupt by Replace. Equal values keep going right, so a tree with many
// equal values may stay taller than minimal. Returns u.
// Time: O(n*log n); Space: O(n)
func (u *LinkedBST[T]) Rebalance() *LinkedBST[T] {
	vs := make([]T, 0, u.sz)
	for next := u.InOrder(); ; {
		v, ok := next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	slices.Sort(vs)
	u.root = build(vs)
	return u
}
