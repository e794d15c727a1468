//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package rtl

// Generator allocates virtual registers for instruction emission.
// Register numbering starts from R1 and is strictly increasing for
// the lifetime of the generator; registers are never reused or
// freed. Each translation constructs its own generator so no state
// crosses calls.
type Generator struct {
	next int
}

// NewGenerator creates a new register generator.
func NewGenerator() *Generator {
	return &Generator{
		next: 1,
	}
}

// Register allocates the next virtual register.
func (gen *Generator) Register() Value {
	v := Value{
		Kind: Reg,
		ID:   gen.next,
	}
	gen.next++
	return v
}
