package scicalc

// Expr is a tokenized and nested expression, ready to evaluate. Evaluating an
// Expr does not modify it, so it may be evaluated any number of times and
// from multiple goroutines.
type Expr struct {
	g *Group
}

// Parse tokenizes src and nests its parentheses. The given options are applied
// in order.
func Parse(src string, opts ...Option) (*Expr, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	g, err := Nest(toks, opts...)
	if err != nil {
		return nil, err
	}
	return &Expr{g: g}, nil
}

// Eval evaluates the expression.
func (e *Expr) Eval() (float64, error) {
	return e.g.Eval()
}

// Group returns the top-level group of the expression.
func (e *Expr) Group() *Group {
	return e.g
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each level of nesting.
func (e *Expr) String() string {
	return e.g.String()
}
