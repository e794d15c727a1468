//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package utils

import (
	"io"
)

// Params specify translator parameters.
type Params struct {
	// Verbose enables diagnostics about discarded input characters.
	Verbose bool

	// Tabulate renders programs as tables instead of numbered
	// listings.
	Tabulate bool

	// ListingOut receives the numbered instruction listings.
	ListingOut io.WriteCloser
}

// NewParams returns new translator params object, initialized with
// the default values.
func NewParams() *Params {
	return &Params{}
}

// Close closes all open resources.
func (p *Params) Close() {
	if p.ListingOut != nil {
		p.ListingOut.Close()
		p.ListingOut = nil
	}
}
