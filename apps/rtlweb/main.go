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
	"net/http"
	"net/url"
	"os"

	"github.com/markkurossi/rtlc/translator"
	"github.com/markkurossi/rtlc/translator/utils"
	"github.com/markkurossi/text"
)

func main() {
	addr := flag.String("a", ":8080", "HTTP listen address")
	fVerbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	log.SetFlags(0)

	srv := NewServer(*fVerbose)
	log.Printf("listening at %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, srv))
}

// Server implements the translator web UI.
type Server struct {
	translator *translator.Translator
	mux        *http.ServeMux
}

// NewServer creates a new web UI server.
func NewServer(verbose bool) *Server {
	params := utils.NewParams()
	params.Verbose = verbose

	srv := &Server{
		translator: translator.New(params, utils.NewLogger(os.Stderr)),
		mux:        http.NewServeMux(),
	}
	srv.mux.HandleFunc("/", srv.index)
	srv.mux.HandleFunc("/download", srv.download)

	return srv
}

func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	srv.mux.ServeHTTP(w, r)
}

func (srv *Server) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	expr := r.FormValue("expr")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	page, err := NewPage(w)
	if err != nil {
		return
	}
	defer page.Close()

	page.H1(text.New().Plain("RTL Translator"))
	page.P(text.New().Plain(
		"Translates a single-assignment arithmetic expression into RTL " +
			"micro-operations. Operators evaluate left to right without " +
			"precedence."))
	page.Form(expr)

	if len(expr) == 0 {
		return
	}
	prog, err := srv.translator.Translate(expr)
	if err != nil {
		page.Error(text.New().Plainf("Error: %s", err))
		return
	}

	var lines []*text.Text
	for idx, instr := range prog.Instrs {
		lines = append(lines, text.New().Plainf("%d. %s", idx+1, instr))
	}
	page.Listing(lines)
	page.Link("/download?expr="+url.QueryEscape(expr),
		text.New().Plain("Download RTL instructions"))
}

func (srv *Server) download(w http.ResponseWriter, r *http.Request) {
	prog, err := srv.translator.Translate(r.FormValue("expr"))
	if err != nil {
		http.Error(w, fmt.Sprintf("Error: %s", err),
			http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="rtl_instructions_%s.txt"`,
			prog.Target))
	w.Header().Set("ETag", `"`+prog.Fingerprint()+`"`)

	io.WriteString(w, prog.Listing())
}
