package scicalc

import (
	"strings"
)

// Group is the flat sequence of tokens and nested groups making up one level
// of parenthesis nesting. Each nested group stands for one parenthesized
// subexpression, in place of its parentheses.
type Group struct {
	// Pos is the position of the group's open parenthesis, or 1 for the
	// top-level group.
	Pos int

	elems []elem
}

// elem is one element of a group: a nested group if sub is non-nil, otherwise
// a token.
type elem struct {
	tok Token
	sub *Group
}

// Len returns the number of elements in the group.
func (g *Group) Len() int {
	return len(g.elems)
}

// At returns the i'th element of the group. Exactly one of the results is
// meaningful: if sub is non-nil, the element is a nested group; otherwise it
// is tok.
func (g *Group) At(i int) (tok Token, sub *Group) {
	e := g.elems[i]
	return e.tok, e.sub
}

// Nest consumes a token sequence and produces the top-level group, replacing
// each balanced pair of parentheses and its contents with a nested group.
// Unmatched parentheses result in a *BracketError, and nesting deeper than the
// MaxDepth option allows results in a *DepthError.
func Nest(toks []Token, opts ...Option) (*Group, error) {
	c := newConfig(opts)
	stack := []*Group{{Pos: 1}}
	for _, tok := range toks {
		top := stack[len(stack)-1]
		switch tok.Kind {
		case TokenOpen:
			if c.maxDepth > 0 && len(stack) > c.maxDepth {
				return nil, &DepthError{Col: tok.Pos, Max: c.maxDepth}
			}
			stack = append(stack, &Group{Pos: tok.Pos})
		case TokenClose:
			if len(stack) == 1 {
				return nil, &BracketError{Col: tok.Pos, Right: tok.Text}
			}
			stack = stack[:len(stack)-1]
			up := stack[len(stack)-1]
			up.elems = append(up.elems, elem{sub: top})
		default:
			top.elems = append(top.elems, elem{tok: tok})
		}
	}
	if len(stack) > 1 {
		open := stack[len(stack)-1]
		return nil, &BracketError{Col: open.Pos, Left: "("}
	}
	return stack[0], nil
}

// String renders the group with alternating round and square brackets marking
// each level of nesting.
func (g *Group) String() string {
	var b strings.Builder
	g.fmt(&b, false)
	return b.String()
}

func (g *Group) fmt(b *strings.Builder, square bool) {
	for i, e := range g.elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		if e.sub == nil {
			b.WriteString(e.tok.Text)
			continue
		}
		var l, r byte = '(', ')'
		if square {
			l, r = '[', ']'
		}
		b.WriteByte(l)
		e.sub.fmt(b, !square)
		b.WriteByte(r)
	}
}
