// Package formula evaluates the restricted arithmetic expression language
// used by calculated variable mappings. Expressions reference resolved
// variables as {name} tokens; only digits, whitespace and + - * / ( ) .
// survive substitution, so there is no dynamic code execution surface.
package formula

import (
	"fmt"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"docuform/domain/core"
	"docuform/domain/format"
)

var variableToken = regexp.MustCompile(`\{([^{}]+)\}`)

// Evaluate resolves a formula against the variable map built so far and
// returns the numeric result as a plain decimal string. Any failure (missing
// formula, forbidden characters, parse error, NaN/Inf) degrades to an empty
// string with a warning log; calculated mappings then fall back to their
// default value.
func Evaluate(formula string, resolved map[string]string) string {
	if strings.TrimSpace(formula) == "" {
		log.Printf("[WARN] formula: empty expression")
		return ""
	}

	expr := variableToken.ReplaceAllStringFunc(formula, func(tok string) string {
		name := tok[1 : len(tok)-1]
		n, ok := format.ParseNumeric(resolved[name])
		if !ok {
			// Unresolvable or non-numeric references count as zero.
			return "0"
		}
		return strconv.FormatFloat(n, 'f', -1, 64)
	})

	result, err := evaluateExpression(expr)
	if err != nil {
		log.Printf("[WARN] formula: %v (formula=%q)", err, formula)
		return ""
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		log.Printf("[WARN] formula: non-finite result (formula=%q)", formula)
		return ""
	}
	return strconv.FormatFloat(result, 'f', -1, 64)
}

// evaluateExpression parses and evaluates a substituted expression. Exposed
// within the package for direct testing of the parser.
func evaluateExpression(expr string) (float64, error) {
	for _, r := range expr {
		if !isAllowed(r) {
			return 0, fmt.Errorf("%w: %q", core.ErrFormulaForbidden, r)
		}
	}
	p := &parser{input: expr}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return 0, fmt.Errorf("%w: trailing input at offset %d", core.ErrFormulaParse, p.pos)
	}
	return v, nil
}

func isAllowed(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == ' ' || r == '\t' || r == '\n' || r == '\r':
		return true
	case r == '+' || r == '-' || r == '*' || r == '/' || r == '(' || r == ')' || r == '.':
		return true
	}
	return false
}

// parser is a minimal recursive-descent evaluator:
//
//	expr   := term (('+'|'-') term)*
//	term   := factor (('*'|'/') factor)*
//	factor := number | '-' factor | '(' expr ')'
type parser struct {
	input string
	pos   int
}

func (p *parser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '+':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v += rhs
		case '-':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	v, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '*':
			p.pos++
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case '/':
			p.pos++
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			// Division by zero surfaces as Inf and is rejected upstream.
			v /= rhs
		default:
			return v, nil
		}
	}
}

func (p *parser) parseFactor() (float64, error) {
	p.skipSpace()
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return 0, fmt.Errorf("%w: missing closing parenthesis", core.ErrFormulaParse)
		}
		p.pos++
		return v, nil
	default:
		return p.parseNumber()
	}
}

func (p *parser) parseNumber() (float64, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if (c >= '0' && c <= '9') || c == '.' {
			p.pos++
			continue
		}
		break
	}
	if start == p.pos {
		return 0, fmt.Errorf("%w: expected number at offset %d", core.ErrFormulaParse, start)
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", core.ErrFormulaParse, p.input[start:p.pos])
	}
	return v, nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}
