//
// main.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/markkurossi/rtlc/rtl"
	"github.com/markkurossi/rtlc/translator"
	"github.com/markkurossi/rtlc/translator/utils"
)

func main() {
	fVerbose := flag.Bool("v", false, "verbose output")
	fTab := flag.Bool("t", false, "print programs as tables")
	fFp := flag.Bool("fp", false, "print listing fingerprints")
	output := flag.String("o", "", "listing output file")
	flag.Parse()

	log.SetFlags(0)

	if len(flag.Args()) == 0 {
		fmt.Printf("no expressions specified\n")
		os.Exit(1)
	}

	params := utils.NewParams()
	params.Verbose = *fVerbose
	params.Tabulate = *fTab
	defer params.Close()

	var out io.Writer = os.Stdout
	if len(*output) > 0 {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("failed to create output file '%s': %s", *output, err)
		}
		params.ListingOut = f
		out = f
	}

	t := translator.New(params, utils.NewLogger(os.Stderr))

	var progs []*rtl.Program
	for _, arg := range flag.Args() {
		if strings.HasSuffix(arg, ".rtl") {
			ps, err := t.TranslateFile(arg)
			if err != nil {
				log.Fatal(err)
			}
			progs = append(progs, ps...)
		} else {
			prog, err := t.Translate(arg)
			if err != nil {
				log.Fatalf("%s: %s", arg, err)
			}
			progs = append(progs, prog)
		}
	}

	for idx, prog := range progs {
		if idx > 0 {
			fmt.Fprintln(out)
		}
		if params.Tabulate {
			prog.Tabulate(out)
		} else if err := prog.PrintListing(out); err != nil {
			log.Fatal(err)
		}
		if *fFp {
			fmt.Fprintf(out, "# %s %s\n", prog.Target, prog.Fingerprint())
		}
	}
}
