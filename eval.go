package scicalc

import (
	"sort"
)

// Eval reduces the group to a single number. Nested groups are evaluated
// first, innermost outward. Then each run of unary operators is applied to the
// literal following it, the operator closest to the literal first. Finally,
// binary operators are applied from the highest precedence to the lowest, and
// left to right within one precedence.
//
// Division and modulus by zero follow floating-point semantics and are not
// errors. Errors are a *FuncError for a unary operator with no operand, an
// *OperandError for literals and binary operators that do not alternate, and a
// *GroupError for a parenthesis token in the group.
func (g *Group) Eval() (float64, error) {
	flat := make([]Token, 0, len(g.elems))
	for _, e := range g.elems {
		if e.sub != nil {
			v, err := e.sub.Eval()
			if err != nil {
				return 0, err
			}
			flat = append(flat, literal(v, e.sub.Pos))
			continue
		}
		switch e.tok.Kind {
		case TokenOpen, TokenClose:
			return 0, &GroupError{Col: e.tok.Pos, Text: e.tok.Text}
		}
		flat = append(flat, e.tok)
	}
	if len(flat) == 1 && flat[0].IsLiteral() {
		return flat[0].Value, nil
	}
	flat, err := foldUnary(flat)
	if err != nil {
		return 0, err
	}
	lits, ops, err := operands(flat, g.Pos)
	if err != nil {
		return 0, err
	}
	return foldBinary(lits, ops), nil
}

// foldUnary replaces each maximal run of unary operators and the literal
// following it with the result of applying the operators, innermost first.
func foldUnary(toks []Token) ([]Token, error) {
	r := make([]Token, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		if toks[i].Kind != TokenFunc {
			r = append(r, toks[i])
			continue
		}
		j := i + 1
		for j < len(toks) && toks[j].Kind == TokenFunc {
			j++
		}
		if j == len(toks) || !toks[j].IsLiteral() {
			return nil, &FuncError{Col: toks[i].Pos, Func: toks[i].Text}
		}
		v := toks[j].Value
		for k := j - 1; k >= i; k-- {
			v = toks[k].Func.Apply(v)
		}
		r = append(r, literal(v, toks[i].Pos))
		i = j
	}
	return r, nil
}

// operands splits an alternating sequence of literals and binary operators
// into its operands and operators. pos is the group position, used to report
// an empty group.
func operands(toks []Token, pos int) ([]float64, []*Operator, error) {
	nl, no := 0, 0
	bad := -1
	for i, tok := range toks {
		switch {
		case tok.IsLiteral():
			nl++
			if i%2 != 0 && bad < 0 {
				bad = i
			}
		case tok.Kind == TokenOp:
			no++
			if i%2 == 0 && bad < 0 {
				bad = i
			}
		default:
			if bad < 0 {
				bad = i
			}
		}
	}
	if bad < 0 && len(toks)%2 == 1 {
		lits := make([]float64, 0, nl)
		ops := make([]*Operator, 0, no)
		for i, tok := range toks {
			if i%2 == 0 {
				lits = append(lits, tok.Value)
			} else {
				ops = append(ops, tok.Op)
			}
		}
		return lits, ops, nil
	}
	col := pos
	switch {
	case bad >= 0:
		col = toks[bad].Pos
	case len(toks) > 0:
		// Alternates but ends with an operator.
		col = toks[len(toks)-1].Pos
	}
	return nil, nil, &OperandError{Col: col, Literals: nl, Operators: no}
}

// foldBinary applies operators to operands by precedence, highest first, and
// left to right within each precedence. len(lits) must be len(ops)+1.
func foldBinary(lits []float64, ops []*Operator) float64 {
	for _, prec := range levels(ops) {
		l := []float64{lits[0]}
		var o []*Operator
		for k, op := range ops {
			if op.Prec == prec {
				l[len(l)-1] = op.Apply(l[len(l)-1], lits[k+1])
				continue
			}
			l = append(l, lits[k+1])
			o = append(o, op)
		}
		lits, ops = l, o
	}
	return lits[0]
}

// levels returns the distinct precedences of ops from highest to lowest.
func levels(ops []*Operator) []int {
	var p []int
	seen := make(map[int]bool, len(ops))
	for _, op := range ops {
		if !seen[op.Prec] {
			seen[op.Prec] = true
			p = append(p, op.Prec)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(p)))
	return p
}

// Solve evaluates the expression in src. It tokenizes, nests, and evaluates,
// returning the first error from any of those stages unchanged.
func Solve(src string, opts ...Option) (float64, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}
