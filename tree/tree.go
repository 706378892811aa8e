// Package tree implements generic rooted trees with parent links.
package tree

import (
	"fmt"
	"strings"
)

// Node is a tree node holding a value. A node with no parent is a root.
type Node[T any] struct {
	Value    T
	parent   *Node[T]
	children []*Node[T]
}

// New creates a root node holding v.
func New[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// Adopt makes each child a child of n, removing it from its former parent,
// and returns n.
func (n *Node[T]) Adopt(children ...*Node[T]) *Node[T] {
	for _, c := range children {
		if c.parent != nil {
			c.parent.Disown(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// Add creates a child of n holding v and returns the child.
func (n *Node[T]) Add(v T) *Node[T] {
	c := New(v)
	n.Adopt(c)
	return c
}

// Disown removes child from n's children, making it a root. It reports
// whether child was a child of n.
func (n *Node[T]) Disown(child *Node[T]) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Parent returns n's parent, or nil if n is a root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Children returns n's children in the order they were adopted.
func (n *Node[T]) Children() []*Node[T] {
	return append([]*Node[T](nil), n.children...)
}

func (n *Node[T]) IsRoot() bool {
	return n.parent == nil
}

func (n *Node[T]) IsLeaf() bool {
	return len(n.children) == 0
}

// Root returns the root of the tree containing n.
func (n *Node[T]) Root() *Node[T] {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Generation returns the number of ancestors of n.
func (n *Node[T]) Generation() int {
	g := 0
	for m := n.parent; m != nil; m = m.parent {
		g++
	}
	return g
}

// Leaves returns the leaf descendants of n, left to right. The result is
// empty if n is itself a leaf.
func (n *Node[T]) Leaves() []*Node[T] {
	var r []*Node[T]
	for _, c := range n.children {
		if c.IsLeaf() {
			r = append(r, c)
			continue
		}
		r = append(r, c.Leaves()...)
	}
	return r
}

// Lineage returns the nodes from the root of n's tree to n inclusive, or from
// n to the root if childFirst is true.
func (n *Node[T]) Lineage(childFirst bool) []*Node[T] {
	r := make([]*Node[T], 0, n.Generation()+1)
	for m := n; m != nil; m = m.parent {
		r = append(r, m)
	}
	if !childFirst {
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
	}
	return r
}

// Paths returns the lineage of each leaf below n, root first.
func (n *Node[T]) Paths() [][]*Node[T] {
	leaves := n.Leaves()
	r := make([][]*Node[T], len(leaves))
	for i, l := range leaves {
		r[i] = l.Lineage(false)
	}
	return r
}

// MultiLayerFilter descends one level per filter, keeping the children whose
// values pass that level's filter. It returns the nodes kept at the last
// level. If toEnd is true, only leaves are returned.
func (n *Node[T]) MultiLayerFilter(filters []func(T) bool, toEnd bool) []*Node[T] {
	cur := []*Node[T]{n}
	for _, f := range filters {
		var next []*Node[T]
		for _, m := range cur {
			for _, c := range m.children {
				if f(c.Value) {
					next = append(next, c)
				}
			}
		}
		cur = next
	}
	if !toEnd {
		return cur
	}
	r := cur[:0:0]
	for _, m := range cur {
		if m.IsLeaf() {
			r = append(r, m)
		}
	}
	return r
}

// AllLayerFilter returns the leaves below n reached only through nodes whose
// values pass keep. The leaves themselves must pass too.
func (n *Node[T]) AllLayerFilter(keep func(T) bool) []*Node[T] {
	var r []*Node[T]
	for _, c := range n.children {
		if !keep(c.Value) {
			continue
		}
		if c.IsLeaf() {
			r = append(r, c)
			continue
		}
		r = append(r, c.AllLayerFilter(keep)...)
	}
	return r
}

// WalkUp calls f on each node from the root down to n, n last.
func (n *Node[T]) WalkUp(f func(*Node[T])) {
	if n.parent != nil {
		n.parent.WalkUp(f)
	}
	f(n)
}

// WalkDown calls f on every node of the subtree at n, each node after all of
// its children, n last.
func (n *Node[T]) WalkDown(f func(*Node[T])) {
	for _, c := range n.children {
		c.WalkDown(f)
	}
	f(n)
}

// String formats n as its parent's value, its own, and its children's.
func (n *Node[T]) String() string {
	var b strings.Builder
	if n.parent == nil {
		b.WriteString("nil")
	} else {
		fmt.Fprint(&b, n.parent.Value)
	}
	fmt.Fprintf(&b, " -> %v -> [", n.Value)
	for i, c := range n.children {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, c.Value)
	}
	b.WriteByte(']')
	return b.String()
}
