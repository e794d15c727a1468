//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package rtl

import (
	"fmt"
	"strconv"
)

// Kind defines the value kinds.
type Kind uint8

// Value kinds.
const (
	Reg Kind = iota
	Var
	Lit
)

var kinds = map[Kind]string{
	Reg: "reg",
	Var: "var",
	Lit: "lit",
}

func (k Kind) String() string {
	name, ok := kinds[k]
	if ok {
		return name
	}
	return fmt.Sprintf("{Kind %d}", k)
}

// Value implements an RTL value. A value is a virtual register, a
// program variable, or an integer literal. Literals keep their source
// spelling so that `007` prints as `007`.
type Value struct {
	Kind Kind
	ID   int
	Name string
}

// NewVar creates a new variable value.
func NewVar(name string) Value {
	return Value{
		Kind: Var,
		Name: name,
	}
}

// NewLit creates a new literal value.
func NewLit(text string) Value {
	return Value{
		Kind: Lit,
		Name: text,
	}
}

func (v Value) String() string {
	if v.Kind == Reg {
		return fmt.Sprintf("R%d", v.ID)
	}
	return v.Name
}

// LitInt returns the literal value as an integer.
func (v Value) LitInt() (int64, error) {
	if v.Kind != Lit {
		return 0, fmt.Errorf("value %s is not a literal", v)
	}
	return strconv.ParseInt(v.Name, 10, 64)
}
