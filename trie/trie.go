// Package trie implements a generic prefix tree over sequences of comparable
// elements, with exact and mismatch-tolerant lookup.
package trie

// Trie is a prefix tree. The zero value is an empty trie ready to use.
type Trie[T comparable] struct {
	root Node[T]
	n    int
}

// Node is one element of an inserted sequence.
type Node[T comparable] struct {
	value  T
	parent *Node[T]
	// order holds children in insertion order; kids indexes them.
	order []*Node[T]
	kids  map[T]*Node[T]
	end   bool
}

// Root returns the origin node, which holds no value.
func (t *Trie[T]) Root() *Node[T] {
	return &t.root
}

// Len returns the number of distinct sequences inserted.
func (t *Trie[T]) Len() int {
	return t.n
}

// Insert adds path to the trie and returns the node at its end.
func (t *Trie[T]) Insert(path []T) *Node[T] {
	n := &t.root
	for _, v := range path {
		c := n.kids[v]
		if c == nil {
			c = &Node[T]{value: v, parent: n}
			if n.kids == nil {
				n.kids = make(map[T]*Node[T])
			}
			n.kids[v] = c
			n.order = append(n.order, c)
		}
		n = c
	}
	if !n.end {
		n.end = true
		t.n++
	}
	return n
}

// Dig follows path exactly from the root. The result is nil and false if the
// path leaves the trie. The node need not end an inserted sequence.
func (t *Trie[T]) Dig(path []T) (*Node[T], bool) {
	n := &t.root
	for _, v := range path {
		n = n.kids[v]
		if n == nil {
			return nil, false
		}
	}
	return n, true
}

// Contains reports whether path was inserted.
func (t *Trie[T]) Contains(path []T) bool {
	n, ok := t.Dig(path)
	return ok && n.end
}

// DigFuzzy returns every node at the depth of path whose sequence differs from
// path in at most allowance positions. Results are in depth-first insertion
// order. With zero allowance, it finds at most the node Dig finds.
func (t *Trie[T]) DigFuzzy(path []T, allowance int) []*Node[T] {
	type cand struct {
		n    *Node[T]
		left int
	}
	if allowance < 0 {
		return nil
	}
	cur := []cand{{&t.root, allowance}}
	for _, v := range path {
		var next []cand
		for _, c := range cur {
			for _, k := range c.n.order {
				switch {
				case k.value == v:
					next = append(next, cand{k, c.left})
				case c.left > 0:
					next = append(next, cand{k, c.left - 1})
				}
			}
		}
		cur = next
	}
	r := make([]*Node[T], len(cur))
	for i, c := range cur {
		r[i] = c.n
	}
	return r
}

// Value returns the element at the node.
func (n *Node[T]) Value() T {
	return n.value
}

// Parent returns the node's parent, or nil for the root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Child returns the child holding v, or nil.
func (n *Node[T]) Child(v T) *Node[T] {
	return n.kids[v]
}

// Children returns the node's children in insertion order.
func (n *Node[T]) Children() []*Node[T] {
	return append([]*Node[T](nil), n.order...)
}

func (n *Node[T]) IsRoot() bool {
	return n.parent == nil
}

// IsEnd reports whether an inserted sequence ends at the node.
func (n *Node[T]) IsEnd() bool {
	return n.end
}

func (n *Node[T]) IsLeaf() bool {
	return len(n.order) == 0
}

// Backtrack returns the sequence from the root to the node.
func (n *Node[T]) Backtrack() []T {
	var r []T
	for m := n; !m.IsRoot(); m = m.parent {
		r = append(r, m.value)
	}
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return r
}
