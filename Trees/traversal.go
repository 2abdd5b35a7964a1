package Trees

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/go-bst/Queues"
)

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *LinkedBST[T]) InOrder() func() (T, bool) {
	st := Queues.MakeLinkedStack[*node[T]]()
	cur := u.root
	return func() (r T, has bool) {
		for ; cur != nil; cur = cur.l {
			st.Push(cur)
		}
		n, e := st.Pop()
		if e != nil {
			return
		}
		cur = n.r
		return n.v, true
	}
}

// PreOrder [Tree.PreOrder]
// Time: f(): O(1) at each call to the returned function. Space: O(D)
func (u *LinkedBST[T]) PreOrder() func() (T, bool) {
	st := Queues.MakeLinkedStack[*node[T]]()
	if u.root != nil {
		st.Push(u.root)
	}
	return func() (r T, has bool) {
		n, e := st.Pop()
		if e != nil {
			return
		}
		if n.r != nil {
			st.Push(n.r)
		}
		if n.l != nil {
			st.Push(n.l)
		}
		return n.v, true
	}
}

// PostOrder is InOrder for the post-order traversal.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *LinkedBST[T]) PostOrder() func() (T, bool) {
	st := Queues.MakeLinkedStack[*node[T]]()
	var last *node[T] // the node given by the previous call.
	cur := u.root
	return func() (r T, has bool) {
		for {
			for ; cur != nil; cur = cur.l {
				st.Push(cur)
			}
			if st.Empty() {
				return
			}
			if top := st.Peek(); top.r != nil && top.r != last {
				cur = top.r
			} else {
				st.Pop()
				last = top
				return top.v, true
			}
		}
	}
}

// LevelOrder is InOrder for the breadth first traversal, from the root
// down, left to right on each level.
// Time: f(): O(1) at each call to the returned function. Space: O(n)
func (u *LinkedBST[T]) LevelOrder() func() (T, bool) {
	q := Queues.MakeArrayQueue[*node[T]](16)
	if u.root != nil {
		q.Push(u.root)
	}
	return func() (r T, has bool) {
		n, e := q.Pop()
		if e != nil {
			return
		}
		if n.l != nil {
			q.Push(n.l)
		}
		if n.r != nil {
			q.Push(n.r)
		}
		return n.v, true
	}
}

// Range calls f on every value in pre-order until f returns false.
func (u *LinkedBST[T]) Range(f func(T) bool) {
	for next := u.PreOrder(); ; {
		if v, ok := next(); !ok || !f(v) {
			return
		}
	}
}

// heights computes the height of every subtree bottom up and passes the
// heights of the two subtrees of every node to accept. It stops as soon as
// accept returns false. Returns the height of the tree and whether every
// node was accepted.
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) heights(accept func(l, r uint) bool) (uint, bool) {
	type frame struct {
		n        *node[T]
		expanded bool
	}
	if u.root == nil {
		return 0, true
	}
	st := Queues.MakeLinkedStack[frame]()
	hs := make([]uint, 0, 16) // heights of the finished subtrees, left before right.
	for st.Push(frame{u.root, false}); !st.Empty(); {
		f, _ := st.Pop()
		if !f.expanded {
			st.Push(frame{f.n, true})
			if f.n.r != nil {
				st.Push(frame{f.n.r, false})
			}
			if f.n.l != nil {
				st.Push(frame{f.n.l, false})
			}
			continue
		}
		var l, r uint
		if f.n.r != nil {
			r, hs = hs[len(hs)-1], hs[:len(hs)-1]
		}
		if f.n.l != nil {
			l, hs = hs[len(hs)-1], hs[:len(hs)-1]
		}
		if !accept(l, r) {
			return 0, false
		}
		hs = append(hs, max(l, r)+1)
	}
	return hs[0], true
}

// Height [Tree.Height]
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) Height() uint {
	h, _ := u.heights(func(uint, uint) bool { return true })
	return h
}

// Balanced [Tree.Balanced]
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) Balanced() bool {
	_, b := u.heights(func(l, r uint) bool {
		return l <= r+1 && r <= l+1
	})
	return b
}

// Corrupt [Tree.Corrupt]
// Also reports a size that doesn't match the number of nodes.
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) Corrupt() bool {
	type frame struct {
		n      *node[T]
		lo, hi *node[T] // values at n must be >= lo.v and <= hi.v.
	}
	var count uint
	st := Queues.MakeLinkedStack[frame]()
	if u.root != nil {
		st.Push(frame{u.root, nil, nil})
	}
	for !st.Empty() {
		f, _ := st.Pop()
		if (f.lo != nil && f.n.v < f.lo.v) || (f.hi != nil && f.hi.v < f.n.v) {
			return true
		}
		count++
		if f.n.l != nil {
			st.Push(frame{f.n.l, f.lo, f.n})
		}
		if f.n.r != nil {
			st.Push(frame{f.n.r, f.n, f.hi})
		}
	}
	return count != u.sz
}

// String returns the tree rotated 90 degrees counterclockwise: one value per
// line, right subtrees above and left subtrees below their parent, each line
// indented by "| " once per level of depth.
func (u *LinkedBST[T]) String() string {
	type frame struct {
		n     *node[T]
		level int
	}
	var sb strings.Builder
	st := Queues.MakeLinkedStack[frame]()
	for cur, level := u.root, 0; ; {
		for ; cur != nil; cur, level = cur.r, level+1 {
			st.Push(frame{cur, level})
		}
		f, e := st.Pop()
		if e != nil {
			return sb.String()
		}
		sb.WriteString(strings.Repeat("| ", f.level))
		fmt.Fprintln(&sb, f.n.v)
		cur, level = f.n.l, f.level+1
	}
}
