package scicalc

import (
	"math"
)

// Func is a named real function of one argument, used as a unary operator.
type Func struct {
	// Name identifies the function in listings.
	Name string
	// Spellings are the texts the tokenizer recognizes for the function.
	Spellings []string
	// Apply computes the function.
	Apply func(float64) float64
}

// Operator is a binary operator with a fixed precedence. Higher precedence
// binds tighter.
type Operator struct {
	// Name identifies the operator in listings.
	Name string
	// Spellings are the texts the tokenizer recognizes for the operator.
	Spellings []string
	// Prec is the precedence of the operator.
	Prec int
	// Apply computes the operator with its operands in order.
	Apply func(l, r float64) float64
}

// constant is a named value.
type constant struct {
	name      string
	spellings []string
	value     float64
}

var constants = []constant{
	{"e", []string{"e"}, math.E},
	{"pi", []string{"pi", "π"}, math.Pi},
	{"inf", []string{"inf", "∞"}, math.Inf(1)},
	{"ninf", []string{"ninf"}, math.Inf(-1)},
}

var funcs = []*Func{
	{"abs", []string{"abs"}, math.Abs},
	{"sqrt", []string{"sqrt"}, math.Sqrt},
	{"log", []string{"log"}, math.Log10},
	{"ln", []string{"ln"}, math.Log},
	{"sin", []string{"sin"}, math.Sin},
	{"cos", []string{"cos"}, math.Cos},
	{"tan", []string{"tan"}, math.Tan},
	{"asin", []string{"asin", "arcsin"}, math.Asin},
	{"acos", []string{"acos", "arccos"}, math.Acos},
	{"atan", []string{"atan", "arctan"}, math.Atan},
	{"sinh", []string{"sinh"}, math.Sinh},
	{"cosh", []string{"cosh"}, math.Cosh},
	{"tanh", []string{"tanh"}, math.Tanh},
	{"asinh", []string{"asinh"}, math.Asinh},
	{"acosh", []string{"acosh"}, math.Acosh},
	{"atanh", []string{"atanh"}, math.Atanh},
}

var operators = []*Operator{
	{"add", []string{"+", "add"}, 1, func(l, r float64) float64 { return l + r }},
	{"subtract", []string{"-", "minus"}, 1, func(l, r float64) float64 { return l - r }},
	{"multiply", []string{"*", "x", "times", "×"}, 2, func(l, r float64) float64 { return l * r }},
	{"divide", []string{"/", "divide", "÷"}, 2, func(l, r float64) float64 { return l / r }},
	{"modulus", []string{"%", "mod"}, 2, math.Mod},
	{"power", []string{"^", "pow"}, 3, math.Pow},
}

// Builtin describes one entry of the tokenizer's lookup tables.
type Builtin struct {
	// Name identifies the entry.
	Name string
	// Kind is TokenConst, TokenFunc, or TokenOp.
	Kind TokenKind
	// Spellings are the recognized texts.
	Spellings []string
	// Prec is the precedence of an operator. It is zero for other kinds.
	Prec int
	// Value is the value of a constant. It is zero for other kinds.
	Value float64
}

// Builtins returns a description of every constant, function, and operator
// the tokenizer recognizes, in that order. The result is a fresh copy.
func Builtins() []Builtin {
	r := make([]Builtin, 0, len(constants)+len(funcs)+len(operators))
	for _, c := range constants {
		r = append(r, Builtin{Name: c.name, Kind: TokenConst, Spellings: append([]string(nil), c.spellings...), Value: c.value})
	}
	for _, f := range funcs {
		r = append(r, Builtin{Name: f.Name, Kind: TokenFunc, Spellings: append([]string(nil), f.Spellings...)})
	}
	for _, op := range operators {
		r = append(r, Builtin{Name: op.Name, Kind: TokenOp, Spellings: append([]string(nil), op.Spellings...), Prec: op.Prec})
	}
	return r
}
