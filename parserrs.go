package scicalc

import (
	"errors"
	"strconv"
)

// Sentinel errors for each class of failure. Every error returned by
// Tokenize, Nest, Eval, and Solve unwraps to exactly one of these.
var (
	ErrMalformedToken         = errors.New("malformed token")
	ErrUnbalancedParentheses  = errors.New("unbalanced parentheses")
	ErrMismatchedOperandCount = errors.New("mismatched operand count")
	ErrDanglingUnaryOperator  = errors.New("dangling unary operator")
	ErrMalformedGroup         = errors.New("malformed group")
	ErrNestingTooDeep         = errors.New("nesting too deep")
)

// BracketError is an error indicating a parenthesis without a partner. It
// implements InputError and unwraps to ErrUnbalancedParentheses.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is "(" if an open parenthesis was never closed.
	Left string
	// Right is ")" if a close parenthesis had no open parenthesis.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Unwrap() error {
	return ErrUnbalancedParentheses
}

// DepthError is an error indicating parentheses nested more deeply than
// allowed. It implements InputError and unwraps to ErrNestingTooDeep.
type DepthError struct {
	// Col is the position of the open parenthesis that exceeded the limit.
	Col int
	// Max is the maximum nesting depth.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "parentheses nested deeper than "+strconv.Itoa(err.Max))
}

func (err *DepthError) Pos() int {
	return err.Col
}

func (err *DepthError) Unwrap() error {
	return ErrNestingTooDeep
}

// OperandError is an error indicating a group whose literals and binary
// operators do not alternate, e.g. two numbers with no operator between them
// or an operator with a missing operand. It implements InputError and unwraps
// to ErrMismatchedOperandCount.
type OperandError struct {
	// Col is the position of the first misplaced token, or of the group if
	// the group is empty.
	Col int
	// Literals is the number of operands in the group after unary folding.
	Literals int
	// Operators is the number of binary operators in the group.
	Operators int
}

func (err *OperandError) Error() string {
	if err.Literals == 0 && err.Operators == 0 {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, strconv.Itoa(err.Literals)+" operands for "+strconv.Itoa(err.Operators)+" operators")
}

func (err *OperandError) Pos() int {
	return err.Col
}

func (err *OperandError) Unwrap() error {
	return ErrMismatchedOperandCount
}

// FuncError is an error indicating a unary operator with no operand to apply
// to. It implements InputError and unwraps to ErrDanglingUnaryOperator.
type FuncError struct {
	// Col is the position of the first function in the run.
	Col int
	// Func is the spelling of that function.
	Func string
}

func (err *FuncError) Error() string {
	return errpos(err.Col, "function "+strconv.Quote(err.Func)+" has no operand")
}

func (err *FuncError) Pos() int {
	return err.Col
}

func (err *FuncError) Unwrap() error {
	return ErrDanglingUnaryOperator
}

// GroupError indicates a parenthesis token inside a group. Nest never
// produces such groups, so this error means a Group was built some other way.
// It unwraps to ErrMalformedGroup.
type GroupError struct {
	// Col is the position of the stray token.
	Col int
	// Text is the stray token's text.
	Text string
}

func (err *GroupError) Error() string {
	return errpos(err.Col, "stray "+strconv.Quote(err.Text)+" in group")
}

func (err *GroupError) Pos() int {
	return err.Col
}

func (err *GroupError) Unwrap() error {
	return ErrMalformedGroup
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based rune column of the
	// start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*DepthError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*FuncError)(nil)
	_ InputError = (*GroupError)(nil)
)
