package index

import "strconv"

// XY is a position on a grid of Width columns, with X and Y counted from 1.
// Its linear index counts cells row by row from 0.
type XY struct {
	X, Y  int
	Width int
}

// NewXY returns the grid position of linear index i.
func NewXY(i, width int) XY {
	return XY{X: i%width + 1, Y: i/width + 1, Width: width}
}

func (p XY) Index() int {
	return (p.Y-1)*p.Width + (p.X - 1)
}

func (p *XY) SetIndex(i int) {
	p.X = i%p.Width + 1
	p.Y = i/p.Width + 1
}

// Offset returns the position dx columns and dy rows away. X is not wrapped.
func (p XY) Offset(dx, dy int) XY {
	return XY{X: p.X + dx, Y: p.Y + dy, Width: p.Width}
}

// Move shifts p in place by dx columns and dy rows.
func (p *XY) Move(dx, dy int) *XY {
	p.X += dx
	p.Y += dy
	return p
}

func (p XY) String() string {
	return "(" + strconv.Itoa(p.X) + ", " + strconv.Itoa(p.Y) + ")"
}

var (
	_ Index = (*ID)(nil)
	_ Index = (*XY)(nil)
)
