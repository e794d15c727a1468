//
// lexer.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package translator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/markkurossi/rtlc/rtl"
	"github.com/markkurossi/rtlc/translator/utils"
)

// TokenType specifies token types.
type TokenType int

// Token types.
const (
	TNumber TokenType = iota
	TIdentifier
	TWord
	TOperator
)

var tokenTypes = map[TokenType]string{
	TNumber:     "number",
	TIdentifier: "identifier",
	TWord:       "word",
	TOperator:   "operator",
}

func (t TokenType) String() string {
	name, ok := tokenTypes[t]
	if ok {
		return name
	}
	return fmt.Sprintf("{TokenType %d}", t)
}

// Token implements an input token.
type Token struct {
	Type   TokenType
	From   utils.Point
	StrVal string
	Op     rtl.Operand
}

func (t *Token) String() string {
	return t.StrVal
}

// Operand tests if the token is valid as an expression operand. Both
// the single-token and multi-token paths use this same test: a token
// is an operand when it is a pure integer literal or a pure
// alphabetic word. Mixed alphanumeric words are not operands.
func (t *Token) Operand() bool {
	return t.Type == TNumber || t.Type == TIdentifier
}

// Value returns the RTL value of an operand token.
func (t *Token) Value() rtl.Value {
	if t.Type == TNumber {
		return rtl.NewLit(t.StrVal)
	}
	return rtl.NewVar(t.StrVal)
}

// The scanner matches the longest prefix that is a digit run, a word
// character run, or a single operator character. The alternatives
// are ordered so that a leading digit run is taken before the word
// run i.e. `2a` scans as `2`, `a` but `a2` scans as `a2`.
var reToken = regexp.MustCompile(`[0-9]+|\w+|[-+*/]`)

var operators = map[string]rtl.Operand{
	"+": rtl.Add,
	"-": rtl.Sub,
	"*": rtl.Mult,
	"/": rtl.Div,
}

// Lexer implements the expression scanner. The scanner first removes
// all whitespace and then matches tokens left to right. Characters
// matching no token alternative are discarded; the discarded runes
// are recorded so that front ends can warn about them.
type Lexer struct {
	source  string
	in      string
	dropped []Dropped
}

// Dropped records an input character that the scanner discarded.
type Dropped struct {
	From utils.Point
	Rune rune
}

// NewLexer creates a new lexer for the expression.
func NewLexer(source, expr string) *Lexer {
	return &Lexer{
		source: source,
		in: strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, expr),
	}
}

// Scan scans the expression and returns its tokens.
func (l *Lexer) Scan() []*Token {
	var tokens []*Token

	pos := 0
	for _, match := range reToken.FindAllStringIndex(l.in, -1) {
		l.drop(pos, match[0])
		pos = match[1]
		tokens = append(tokens, l.token(match[0], l.in[match[0]:match[1]]))
	}
	l.drop(pos, len(l.in))

	return tokens
}

// Dropped returns the input characters the scanner discarded.
func (l *Lexer) Dropped() []Dropped {
	return l.dropped
}

func (l *Lexer) drop(from, to int) {
	for idx, r := range l.in[from:to] {
		l.dropped = append(l.dropped, Dropped{
			From: utils.Point{
				Source: l.source,
				Pos:    from + idx,
			},
			Rune: r,
		})
	}
}

func (l *Lexer) token(pos int, val string) *Token {
	token := &Token{
		From: utils.Point{
			Source: l.source,
			Pos:    pos,
		},
		StrVal: val,
	}
	op, ok := operators[val]
	if ok {
		token.Type = TOperator
		token.Op = op
		return token
	}
	token.Type = classify(val)
	return token
}

func classify(val string) TokenType {
	digits := true
	letters := true
	for _, r := range val {
		if !unicode.IsDigit(r) {
			digits = false
		}
		if !unicode.IsLetter(r) {
			letters = false
		}
	}
	if digits {
		return TNumber
	}
	if letters {
		return TIdentifier
	}
	return TWord
}
