// Package scicalc implements a floating-point scientific calculator.
//
// Expressions are written the way you'd type them into a calculator:
// "2 + 3 * 4", "sqrt(abs(-16))", "2 pow 10", "sin pi". Whitespace separates
// tokens and is otherwise ignored. Functions such as sqrt and ln are prefix
// operators applying to the term that follows, so "sqrt 16 + 9" is 13, not 5,
// and consecutive functions compose: "sqrt abs -16" is sqrt(abs(-16)).
//
// Binary operators bind by precedence, ^ above * / % above + -, and all of
// them associate left to right, including ^. A - directly before a digit is a
// sign unless it follows a number, a constant, or a close parenthesis.
//
// All arithmetic is float64. Division by zero gives an infinity or NaN rather
// than an error.
//
// The subpackages index, trie, and tree provide independent generic
// containers.
package scicalc
