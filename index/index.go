// Package index provides linear positions and their two-dimensional views.
package index

import (
	"cmp"
	"strconv"
)

// Index is a mutable linear position.
type Index interface {
	// Index returns the linear position.
	Index() int
	// SetIndex moves to a linear position.
	SetIndex(int)
}

// ID is a plain linear position.
type ID int

func (id ID) Index() int {
	return int(id)
}

func (id *ID) SetIndex(i int) {
	*id = ID(i)
}

func (id ID) String() string {
	return "index: " + strconv.Itoa(int(id))
}

// Move shifts i in place by offset and returns it.
func Move(i Index, offset int) Index {
	i.SetIndex(i.Index() + offset)
	return i
}

// Offset returns the position offset from i, leaving i unchanged.
func Offset(i Index, offset int) ID {
	return ID(i.Index() + offset)
}

// Compare orders indices by linear position.
func Compare(a, b Index) int {
	return cmp.Compare(a.Index(), b.Index())
}

// Equal reports whether a and b are at the same linear position.
func Equal(a, b Index) bool {
	return a.Index() == b.Index()
}

// Indexed pairs a value with a position.
type Indexed[T any] struct {
	Index int
	Value T
}

// Shift adds offset to the position and returns the result.
func (x *Indexed[T]) Shift(offset int) int {
	x.Index += offset
	return x.Index
}

// Reindex replaces the position with f applied to it.
func (x *Indexed[T]) Reindex(f func(int) int) int {
	x.Index = f(x.Index)
	return x.Index
}

// ReindexBy replaces the position with f applied to the value.
func (x *Indexed[T]) ReindexBy(f func(T) int) int {
	x.Index = f(x.Value)
	return x.Index
}
