package scicalc

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexer struct {
	src string
	// off is the byte offset of the next unscanned rune.
	off int
	// col is the 1-based rune column of the next unscanned rune.
	col int
	// prev is the kind of the last token scanned.
	prev TokenKind
}

// Tokenize converts src into a sequence of tokens. Whitespace separates tokens
// and is otherwise ignored. At each position, the tokenizer tries numbers,
// constants, functions, binary operators, and parentheses, in that order,
// taking the longest spelling within the first class that matches. Text that
// matches no class results in a *LexError.
func Tokenize(src string) ([]Token, error) {
	l := lexer{src: src, col: 1}
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenNone {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// next scans the next token. At the end of the input, the result is a token
// with kind TokenNone.
func (l *lexer) next() (Token, error) {
	l.skipSpace()
	if l.off >= len(l.src) {
		return Token{}, nil
	}
	rest := l.src[l.off:]
	tok := Token{Pos: l.col}
	if n := l.scanNum(rest); n > 0 {
		tok.Kind = TokenNum
		tok.Text = rest[:n]
		v, err := strconv.ParseFloat(tok.Text, 64)
		// Overflow gives ±Inf along with ErrRange, which is the value we want.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Token{}, &LexError{Text: tok.Text, Kind: "number", Col: tok.Pos}
		}
		tok.Value = v
		return l.emit(tok), nil
	}
	best := 0
	for _, c := range constants {
		if n := longest(rest, c.spellings); n > best {
			best = n
			tok.Kind, tok.Value = TokenConst, c.value
		}
	}
	if best == 0 {
		for _, f := range funcs {
			if n := longest(rest, f.Spellings); n > best {
				best = n
				tok.Kind, tok.Func = TokenFunc, f
			}
		}
	}
	if best == 0 {
		for _, op := range operators {
			if n := longest(rest, op.Spellings); n > best {
				best = n
				tok.Kind, tok.Op = TokenOp, op
			}
		}
	}
	if best == 0 {
		switch rest[0] {
		case '(':
			best, tok.Kind = 1, TokenOpen
		case ')':
			best, tok.Kind = 1, TokenClose
		}
	}
	if best == 0 {
		return Token{}, l.error(rest)
	}
	tok.Text = rest[:best]
	return l.emit(tok), nil
}

// emit consumes the text of tok and records it as the previous token.
func (l *lexer) emit(tok Token) Token {
	l.off += len(tok.Text)
	l.col += utf8.RuneCountInString(tok.Text)
	l.prev = tok.Kind
	return tok
}

func (l *lexer) skipSpace() {
	for l.off < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[l.off:])
		if !unicode.IsSpace(r) {
			return
		}
		l.off += sz
		l.col++
	}
}

// scanNum returns the length in bytes of the numeric literal at the start of
// s, or 0 if there is none. A leading - is part of the literal only when the
// previous token cannot end an operand; otherwise it is subtraction.
func (l *lexer) scanNum(s string) int {
	i := 0
	if s[0] == '-' {
		switch l.prev {
		case TokenNum, TokenConst, TokenClose:
			return 0
		}
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return 0
	}
	if i+1 < len(s) && s[i] == '.' && isDigit(s[i+1]) {
		i += 2
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	return i
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// longest returns the length of the longest spelling that prefixes s, or 0.
func longest(s string, spellings []string) int {
	n := 0
	for _, sp := range spellings {
		if len(sp) > n && strings.HasPrefix(s, sp) {
			n = len(sp)
		}
	}
	return n
}

// error creates a LexError for the unrecognized text at the start of s. The
// text is the whole run of letters if s starts with one, otherwise the single
// rune.
func (l *lexer) error(s string) error {
	r, n := utf8.DecodeRuneInString(s)
	if unicode.IsLetter(r) {
		n = strings.IndexFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
		if n < 0 {
			n = len(s)
		}
	}
	return &LexError{Text: s[:n], Col: l.col}
}

// LexError indicates text that is not a token. It implements InputError and
// unwraps to ErrMalformedToken.
type LexError struct {
	// Text is the unrecognized text.
	Text string
	// Kind is the type of token the lexer was scanning, or the empty string if
	// no token class matched.
	Kind string
	// Col is the rune column where the text starts.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Unwrap() error {
	return ErrMalformedToken
}
