//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package utils

import (
	"fmt"
)

// Locator is an interface that implements Location method for
// returning item's input data position.
type Locator interface {
	Location() Point
}

// Point specifies a position in the translator input data. The input
// is a single expression so positions are rune offsets from the
// expression start.
type Point struct {
	Source string
	Pos    int // 0-based
}

// Location implements the Locator interface.
func (p Point) Location() Point {
	return p
}

func (p Point) String() string {
	return fmt.Sprintf("%s:%d", p.Source, p.Pos)
}

// Undefined tests if the input position is undefined.
func (p Point) Undefined() bool {
	return p.Pos < 0
}
