package tree

// Builder assembles a tree level by level. It keeps a current parent, to
// which added nodes are attached, and remembers the last node added.
type Builder[T any] struct {
	root    *Node[T]
	parents []*Node[T]
	last    *Node[T]
}

// NewBuilder creates a builder whose root holds v.
func NewBuilder[T any](v T) *Builder[T] {
	r := New(v)
	return &Builder[T]{root: r, parents: []*Node[T]{r}, last: r}
}

func (b *Builder[T]) parent() *Node[T] {
	return b.parents[len(b.parents)-1]
}

// Add attaches a node holding v to the current parent.
func (b *Builder[T]) Add(v T) *Builder[T] {
	b.last = b.parent().Add(v)
	return b
}

// AddFlat attaches a node for each value to the current parent.
func (b *Builder[T]) AddFlat(vs ...T) *Builder[T] {
	for _, v := range vs {
		b.Add(v)
	}
	return b
}

// AddDeep attaches a chain of nodes, each the child of the one before, the
// first to the current parent. Afterward the current parent is the parent of
// the deepest node, so a following Add creates its sibling.
func (b *Builder[T]) AddDeep(vs ...T) *Builder[T] {
	if len(vs) == 0 {
		return b
	}
	for _, v := range vs {
		b.Add(v)
		b.Enter()
	}
	return b.Exit()
}

// Enter makes the last added node the current parent.
func (b *Builder[T]) Enter() *Builder[T] {
	b.parents = append(b.parents, b.last)
	return b
}

// Exit makes the previous parent current again. The root is never exited.
// The node exited becomes the last added node, so Enter returns to it.
func (b *Builder[T]) Exit() *Builder[T] {
	if len(b.parents) > 1 {
		b.last = b.parent()
		b.parents = b.parents[:len(b.parents)-1]
	}
	return b
}

// Root makes the root the current parent.
func (b *Builder[T]) Root() *Builder[T] {
	b.parents = b.parents[:1]
	b.last = b.root
	return b
}

// Build returns the root of the tree.
func (b *Builder[T]) Build() *Node[T] {
	return b.root
}
