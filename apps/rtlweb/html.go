//
// html.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"html"
	"io"

	"github.com/markkurossi/text"
)

const pageHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>RTL Translator</title>
<style>
body {
  font-family: sans-serif;
  margin: 2em;
}
.listing {
  font-family: monospace;
  background-color: #f4f4f4;
  padding: 1em;
}
.error {
  color: #a00000;
}
</style>
</head>
<body>
`

const pageTrailer = `</body>
</html>
`

// Page implements HTML page output.
type Page struct {
	out io.Writer
}

// NewPage creates a new HTML page writing to the argument io.Writer.
func NewPage(out io.Writer) (*Page, error) {
	_, err := io.WriteString(out, pageHeader)
	if err != nil {
		return nil, err
	}
	return &Page{
		out: out,
	}, nil
}

// Close finishes the page output.
func (p *Page) Close() error {
	_, err := io.WriteString(p.out, pageTrailer)
	return err
}

// H1 outputs a level 1 header.
func (p *Page) H1(content *text.Text) error {
	_, err := fmt.Fprintf(p.out, "<h1>%s</h1>\n", content.HTML())
	return err
}

// P outputs a paragraph.
func (p *Page) P(content *text.Text) error {
	_, err := fmt.Fprintf(p.out, "<p>%s</p>\n", content.HTML())
	return err
}

// Error outputs an error message.
func (p *Page) Error(content *text.Text) error {
	_, err := fmt.Fprintf(p.out, `<p class="error">%s</p>%s`,
		content.HTML(), "\n")
	return err
}

// Listing outputs the numbered instruction listing.
func (p *Page) Listing(lines []*text.Text) error {
	_, err := fmt.Fprintf(p.out, `<pre class="listing">%s`, "\n")
	if err != nil {
		return err
	}
	for _, line := range lines {
		_, err = fmt.Fprintln(p.out, line.HTML())
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(p.out, "</pre>\n")
	return err
}

// Form outputs the expression input form.
func (p *Page) Form(expr string) error {
	_, err := fmt.Fprintf(p.out, `<form method="post" action="/">
<input type="text" name="expr" size="40" value="%s">
<input type="submit" value="Translate">
</form>
`,
		html.EscapeString(expr))
	return err
}

// Link outputs a hyperlink.
func (p *Page) Link(href string, label *text.Text) error {
	_, err := fmt.Fprintf(p.out, `<p><a href="%s">%s</a></p>%s`,
		html.EscapeString(href), label.HTML(), "\n")
	return err
}
