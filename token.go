package scicalc

import (
	"strconv"
)

// Token is one lexical element of an expression. Exactly one of Value, Func,
// and Op is meaningful, chosen by Kind. Tokens are never modified once the
// tokenizer produces them.
type Token struct {
	// Kind selects which fields are meaningful.
	Kind TokenKind
	// Text is the spelling that produced the token.
	Text string
	// Pos is the 1-based rune column of the start of the token.
	Pos int
	// Value is the value of a number or constant.
	Value float64
	// Func is the function applied by a unary operator.
	Func *Func
	// Op is the binary operator.
	Op *Operator
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// IsLiteral returns whether the token is a resolved numeric value, i.e. a
// number or a named constant.
func (t Token) IsLiteral() bool {
	return t.Kind == TokenNum || t.Kind == TokenConst
}

// TokenKind identifies the lexical class of a Token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNum is a numeric literal.
	TokenNum
	// TokenConst is a named constant such as pi.
	TokenConst
	// TokenFunc is a unary operator, a named function of one argument.
	TokenFunc
	// TokenOp is a binary operator.
	TokenOp
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token
//go:generate go mod tidy

// literal creates a resolved number token at pos.
func literal(v float64, pos int) Token {
	return Token{Kind: TokenNum, Text: strconv.FormatFloat(v, 'g', -1, 64), Pos: pos, Value: v}
}
