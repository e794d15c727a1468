//
// instructions.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package rtl

import (
	"fmt"
	"strings"
)

// Operand defines the RTL micro-operations.
type Operand uint8

// RTL micro-operations.
const (
	Mov Operand = iota
	Add
	Sub
	Mult
	Div
)

var operands = map[Operand]string{
	Mov:  "mov",
	Add:  "add",
	Sub:  "sub",
	Mult: "mult",
	Div:  "div",
}

var symbols = map[Operand]string{
	Add:  "+",
	Sub:  "-",
	Mult: "*",
	Div:  "/",
}

func (op Operand) String() string {
	name, ok := operands[op]
	if ok {
		return name
	}
	return fmt.Sprintf("{Operand %d}", op)
}

// Symbol returns the expression symbol of the operand. The Mov
// operand has no symbol.
func (op Operand) Symbol() string {
	return symbols[op]
}

// Binary tests if the operand takes two inputs.
func (op Operand) Binary() bool {
	return op != Mov
}

// Instr implements an RTL instruction. Instructions transfer values
// into the destination: `R1 <- 6`, `R3 <- R1 + R2`, `x <- R3`. The
// emission order of instructions defines their execution order.
type Instr struct {
	Op  Operand
	In  []Value
	Out Value
}

// NewMovInstr creates a new value transfer instruction.
func NewMovInstr(src, dst Value) Instr {
	return Instr{
		Op:  Mov,
		In:  []Value{src},
		Out: dst,
	}
}

// NewBinaryInstr creates a new binary instruction combining the
// values l and r into the destination o.
func NewBinaryInstr(op Operand, l, r, o Value) (Instr, error) {
	if !op.Binary() {
		return Instr{}, fmt.Errorf("operand %s is not binary", op)
	}
	return Instr{
		Op:  op,
		In:  []Value{l, r},
		Out: o,
	}, nil
}

func (i Instr) String() string {
	var sb strings.Builder
	sb.WriteString(i.Out.String())
	sb.WriteString(" <- ")
	if i.Op.Binary() {
		sb.WriteString(i.In[0].String())
		sb.WriteRune(' ')
		sb.WriteString(i.Op.Symbol())
		sb.WriteRune(' ')
		sb.WriteString(i.In[1].String())
	} else {
		sb.WriteString(i.In[0].String())
	}
	return sb.String()
}
