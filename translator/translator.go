//
// translator.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package translator

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/markkurossi/rtlc/rtl"
	"github.com/markkurossi/rtlc/translator/utils"
)

var reVariable = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Translator translates single-assignment arithmetic expressions
// into RTL programs. The translator itself holds no per-call state;
// each translation constructs its own lexer and register generator
// so concurrent calls need no coordination.
type Translator struct {
	params *utils.Params
	logger *utils.Logger
}

// New creates a new translator with the parameters and logger.
func New(params *utils.Params, logger *utils.Logger) *Translator {
	return &Translator{
		params: params,
		logger: logger,
	}
}

// Translate translates the expression with default parameters,
// logging diagnostics to standard error.
func Translate(expr string) (*rtl.Program, error) {
	return New(utils.NewParams(), utils.NewLogger(os.Stderr)).Translate(expr)
}

// Translate translates the expression into an RTL program. Exactly
// one of the return values is non-nil.
func (t *Translator) Translate(expr string) (*rtl.Program, error) {
	return t.translate("{expr}", expr)
}

// TranslateFile translates the expressions in the argument file, one
// expression per line. Empty lines and lines starting with `#` are
// skipped.
func (t *Translator) TranslateFile(file string) ([]*rtl.Program, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var progs []*rtl.Program

	scanner := bufio.NewScanner(f)
	var line int
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 || strings.HasPrefix(text, "#") {
			continue
		}
		source := fmt.Sprintf("%s:%d", file, line)
		prog, err := t.translate(source, text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		progs = append(progs, prog)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return progs, nil
}

func (t *Translator) translate(source, expr string) (
	prog *rtl.Program, err error) {

	// The validations below catch all expected input errors. Any
	// other fault is an internal error and must not escape the
	// translate boundary.
	defer func() {
		if r := recover(); r != nil {
			prog = nil
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	parts := strings.Split(expr, "=")
	if len(parts) != 2 {
		return nil, ErrMissingAssignment
	}
	variable := strings.TrimSpace(parts[0])
	if !reVariable.MatchString(variable) {
		return nil, ErrInvalidVariable
	}

	lexer := NewLexer(source, strings.TrimSpace(parts[1]))
	tokens := lexer.Scan()

	if t.params.Verbose {
		for _, d := range lexer.Dropped() {
			t.logger.Warningf(d.From, "ignoring character %q", d.Rune)
		}
	}

	if len(tokens) == 0 {
		return nil, ErrEmptyExpression
	}

	prog = &rtl.Program{
		Target: variable,
	}
	if len(tokens) == 1 {
		if !tokens[0].Operand() {
			return nil, ErrInvalidSingleToken
		}
		prog.Add(rtl.NewMovInstr(tokens[0].Value(), rtl.NewVar(variable)))
		return prog, nil
	}

	// Validation and emission are interleaved: the token stream is
	// checked operand by operand during a single left-to-right scan.

	gen := rtl.NewGenerator()

	if !tokens[0].Operand() {
		return nil, errOperand(0)
	}
	acc := gen.Register()
	prog.Add(rtl.NewMovInstr(tokens[0].Value(), acc))

	for i := 1; i < len(tokens); i += 2 {
		if tokens[i].Type != TOperator {
			return nil, errOperator(i)
		}
		if i+1 >= len(tokens) {
			return nil, ErrMissingOperand
		}
		if !tokens[i+1].Operand() {
			return nil, errOperand(i + 1)
		}

		operand := gen.Register()
		prog.Add(rtl.NewMovInstr(tokens[i+1].Value(), operand))

		result := gen.Register()
		instr, err := rtl.NewBinaryInstr(tokens[i].Op, acc, operand, result)
		if err != nil {
			return nil, err
		}
		prog.Add(instr)

		// The result register becomes the running accumulator. All
		// operators evaluate left to right at equal priority.
		acc = result
	}

	prog.Add(rtl.NewMovInstr(acc, rtl.NewVar(variable)))

	return prog, nil
}
