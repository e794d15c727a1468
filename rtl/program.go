//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package rtl

import (
	"fmt"
	"io"
	"strings"

	"github.com/markkurossi/tabulate"
	"golang.org/x/crypto/sha3"
)

// Program contains the RTL instructions of one translated
// assignment, in emission order. Target is the assignment's
// left-hand-side variable name; the last instruction always assigns
// to it.
type Program struct {
	Target string
	Instrs []Instr
}

// Add appends the instruction to the program.
func (prog *Program) Add(instr Instr) {
	prog.Instrs = append(prog.Instrs, instr)
}

// Strings returns the instruction strings in emission order.
func (prog *Program) Strings() []string {
	result := make([]string, 0, len(prog.Instrs))
	for _, instr := range prog.Instrs {
		result = append(result, instr.String())
	}
	return result
}

// PrintListing prints the numbered instruction listing. The listing
// lines are 1-based: `1. R1 <- 6`.
func (prog *Program) PrintListing(w io.Writer) error {
	for idx, instr := range prog.Instrs {
		_, err := fmt.Fprintf(w, "%d. %s\n", idx+1, instr)
		if err != nil {
			return err
		}
	}
	return nil
}

// Listing returns the numbered instruction listing as a string.
func (prog *Program) Listing() string {
	var sb strings.Builder
	prog.PrintListing(&sb)
	return sb.String()
}

// Tabulate prints the program as a table.
func (prog *Program) Tabulate(w io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("#").SetAlign(tabulate.MR)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Dest").SetAlign(tabulate.ML)
	tab.Header("Src").SetAlign(tabulate.ML)

	for idx, instr := range prog.Instrs {
		row := tab.Row()
		row.Column(fmt.Sprintf("%d", idx+1))
		row.Column(instr.Op.String())
		row.Column(instr.Out.String())

		if instr.Op.Binary() {
			row.Column(fmt.Sprintf("%s %s %s",
				instr.In[0], instr.Op.Symbol(), instr.In[1]))
		} else {
			row.Column(instr.In[0].String())
		}
	}
	tab.Print(w)
}

// Fingerprint returns the SHA3-256 fingerprint of the program
// listing. The fingerprint identifies the listing content for
// artifact naming and HTTP caching.
func (prog *Program) Fingerprint() string {
	sum := sha3.Sum256([]byte(prog.Listing()))
	return fmt.Sprintf("%x", sum)
}
