//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package translator

import (
	"errors"
	"fmt"
)

// Translation errors.
var (
	ErrMissingAssignment = errors.New(
		"expression must contain exactly one assignment '='")
	ErrInvalidVariable    = errors.New("invalid variable name")
	ErrEmptyExpression    = errors.New("empty expression")
	ErrInvalidSingleToken = errors.New("invalid single token")
	ErrMissingOperand     = errors.New("missing operand after operator")
)

// TokenError reports a grammar violation at a token position. The
// position is the 0-based token index in the scanned expression.
type TokenError struct {
	Pos  int
	Want string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("expected %s at position %d", e.Want, e.Pos)
}

func errOperator(pos int) error {
	return &TokenError{
		Pos:  pos,
		Want: "operator",
	}
}

func errOperand(pos int) error {
	return &TokenError{
		Pos:  pos,
		Want: "number or variable",
	}
}
