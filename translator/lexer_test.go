//
// lexer_test.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package translator

import (
	"testing"

	"github.com/markkurossi/rtlc/rtl"
)

var lexerTests = []struct {
	expr   string
	tokens []Token
}{
	{
		expr: "6 + 9",
		tokens: []Token{
			{Type: TNumber, StrVal: "6"},
			{Type: TOperator, StrVal: "+", Op: rtl.Add},
			{Type: TNumber, StrVal: "9"},
		},
	},
	{
		expr: "a*b/c",
		tokens: []Token{
			{Type: TIdentifier, StrVal: "a"},
			{Type: TOperator, StrVal: "*", Op: rtl.Mult},
			{Type: TIdentifier, StrVal: "b"},
			{Type: TOperator, StrVal: "/", Op: rtl.Div},
			{Type: TIdentifier, StrVal: "c"},
		},
	},
	{
		// A leading digit run splits before the word run.
		expr: "2a - a2",
		tokens: []Token{
			{Type: TNumber, StrVal: "2"},
			{Type: TIdentifier, StrVal: "a"},
			{Type: TOperator, StrVal: "-", Op: rtl.Sub},
			{Type: TWord, StrVal: "a2"},
		},
	},
	{
		expr: "_tmp1 + 42",
		tokens: []Token{
			{Type: TWord, StrVal: "_tmp1"},
			{Type: TOperator, StrVal: "+", Op: rtl.Add},
			{Type: TNumber, StrVal: "42"},
		},
	},
	{
		// Unmatched characters are discarded.
		expr: "(a + b) % 3",
		tokens: []Token{
			{Type: TIdentifier, StrVal: "a"},
			{Type: TOperator, StrVal: "+", Op: rtl.Add},
			{Type: TIdentifier, StrVal: "b"},
			{Type: TNumber, StrVal: "3"},
		},
	},
	{
		expr:   "$!",
		tokens: []Token{},
	},
}

func TestLexer(t *testing.T) {
	for _, test := range lexerTests {
		lexer := NewLexer("{expr}", test.expr)
		tokens := lexer.Scan()
		if len(tokens) != len(test.tokens) {
			t.Errorf("Scan(%q): %d tokens, expected %d",
				test.expr, len(tokens), len(test.tokens))
			continue
		}
		for idx, token := range tokens {
			expected := test.tokens[idx]
			if token.Type != expected.Type ||
				token.StrVal != expected.StrVal ||
				token.Op != expected.Op {
				t.Errorf("Scan(%q)[%d]=%v{%s}, expected %v{%s}",
					test.expr, idx, token.Type, token,
					expected.Type, expected.StrVal)
			}
		}
	}
}

func TestLexerDropped(t *testing.T) {
	lexer := NewLexer("{expr}", "(a + b)")
	lexer.Scan()

	dropped := lexer.Dropped()
	if len(dropped) != 2 {
		t.Fatalf("Dropped: %d runes, expected 2", len(dropped))
	}
	if dropped[0].Rune != '(' || dropped[0].From.Pos != 0 {
		t.Errorf("dropped %q at %d, expected '(' at 0",
			dropped[0].Rune, dropped[0].From.Pos)
	}
	// Positions are offsets in the whitespace-stripped input.
	if dropped[1].Rune != ')' || dropped[1].From.Pos != 4 {
		t.Errorf("dropped %q at %d, expected ')' at 4",
			dropped[1].Rune, dropped[1].From.Pos)
	}
}

func TestTokenOperand(t *testing.T) {
	tests := []struct {
		val     string
		operand bool
	}{
		{"42", true},
		{"count", true},
		{"a1", false},
		{"_a", false},
		{"+", false},
	}
	for _, test := range tests {
		lexer := NewLexer("{expr}", test.val)
		tokens := lexer.Scan()
		if len(tokens) != 1 {
			t.Fatalf("Scan(%q): %d tokens", test.val, len(tokens))
		}
		if tokens[0].Operand() != test.operand {
			t.Errorf("Operand(%q)=%v, expected %v",
				test.val, tokens[0].Operand(), test.operand)
		}
	}
}
