package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values[T any](ns []*Node[T]) []T {
	r := make([]T, len(ns))
	for i, n := range ns {
		r[i] = n.Value
	}
	return r
}

// sample builds
//
//	root
//	├── a
//	│   ├── a1
//	│   └── a2
//	│       └── a2x
//	└── b
func sample() (root, a, a2x, b *Node[string]) {
	root = New("root")
	a = root.Add("a")
	a.Add("a1")
	a2x = a.Add("a2").Add("a2x")
	b = root.Add("b")
	return root, a, a2x, b
}

func TestStructure(t *testing.T) {
	root, a, a2x, b := sample()
	assert.True(t, root.IsRoot())
	assert.False(t, root.IsLeaf())
	assert.True(t, b.IsLeaf())
	assert.Same(t, root, a2x.Root())
	assert.Same(t, a, a2x.Parent().Parent())
	assert.Equal(t, []string{"a", "b"}, values(root.Children()))
	assert.Equal(t, 0, root.Generation())
	assert.Equal(t, 3, a2x.Generation())
	assert.Equal(t, "root -> a -> [a1, a2]", a.String())
	assert.Equal(t, "nil -> root -> [a, b]", root.String())
}

func TestAdoptDisown(t *testing.T) {
	root, a, a2x, b := sample()
	b.Adopt(a2x)
	assert.Same(t, b, a2x.Parent())
	assert.Equal(t, []string{"a1", "a2", "a2x"}, values(root.Leaves()))
	assert.Equal(t, []string{"a2x"}, values(b.Children()))

	assert.True(t, root.Disown(a))
	assert.True(t, a.IsRoot())
	assert.False(t, root.Disown(a))
	assert.Equal(t, []string{"b"}, values(root.Children()))
	assert.Equal(t, []string{"a1", "a2"}, values(a.Leaves()))
}

func TestLineage(t *testing.T) {
	root, _, a2x, _ := sample()
	assert.Equal(t, []string{"root", "a", "a2", "a2x"}, values(a2x.Lineage(false)))
	assert.Equal(t, []string{"a2x", "a2", "a", "root"}, values(a2x.Lineage(true)))
	assert.Equal(t, []string{"root"}, values(root.Lineage(true)))

	var paths []string
	for _, p := range root.Paths() {
		paths = append(paths, strings.Join(values(p), "/"))
	}
	assert.Equal(t, []string{"root/a/a1", "root/a/a2/a2x", "root/b"}, paths)
	assert.Empty(t, root.Children()[1].Paths())
}

func TestFilters(t *testing.T) {
	root, _, _, _ := sample()
	is := func(s string) func(string) bool { return func(v string) bool { return v == s } }
	prefix := func(p string) func(string) bool { return func(v string) bool { return strings.HasPrefix(v, p) } }

	got := root.MultiLayerFilter([]func(string) bool{is("a"), prefix("a")}, false)
	assert.Equal(t, []string{"a1", "a2"}, values(got))
	got = root.MultiLayerFilter([]func(string) bool{is("a"), prefix("a")}, true)
	assert.Equal(t, []string{"a1"}, values(got))
	got = root.MultiLayerFilter(nil, false)
	assert.Equal(t, []string{"root"}, values(got))
	assert.Empty(t, root.MultiLayerFilter([]func(string) bool{is("c")}, false))

	assert.Equal(t, []string{"a1", "a2x"}, values(root.AllLayerFilter(prefix("a"))))
	assert.Equal(t, []string{"b"}, values(root.AllLayerFilter(is("b"))))
	assert.Empty(t, root.AllLayerFilter(is("a1")))
}

func TestWalk(t *testing.T) {
	root, _, a2x, _ := sample()
	var up []string
	a2x.WalkUp(func(n *Node[string]) { up = append(up, n.Value) })
	assert.Equal(t, []string{"root", "a", "a2", "a2x"}, up)

	var down []string
	root.WalkDown(func(n *Node[string]) { down = append(down, n.Value) })
	assert.Equal(t, []string{"a1", "a2x", "a2", "a", "b", "root"}, down)
}

func TestBuilder(t *testing.T) {
	root := NewBuilder("root").
		Add("a").Enter().
		AddFlat("a1", "a2").
		Enter().Add("a2x").Exit().
		Exit().
		AddDeep("b", "c", "d").
		Add("d2").
		Root().
		Add("e").
		Build()

	require.NotNil(t, root)
	var paths []string
	for _, p := range root.Paths() {
		paths = append(paths, strings.Join(values(p), "/"))
	}
	assert.Equal(t, []string{
		"root/a/a1",
		"root/a/a2/a2x",
		"root/b/c/d",
		"root/b/c/d2",
		"root/e",
	}, paths)
}

func TestBuilderExitRoot(t *testing.T) {
	b := NewBuilder(0)
	b.Exit().Exit().Add(1)
	assert.Equal(t, []int{1}, values(b.Build().Children()))
	assert.Same(t, b.Build(), b.AddDeep().Build())
}
