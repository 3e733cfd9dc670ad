// eval.go implements the boolean expression evaluator behind #if and #elif.
package pre

import "strings"

// Grammar:
//
//	expr     := equality
//	equality := unary ( "==" unary )*
//	unary    := "!"* term
//	term     := "0" | "1" | identifier
//
// A term is a run of ASCII alphanumerics and underscores. Digit-leading
// terms must be exactly "0" or "1"; identifier terms are resolved through
// the macro table and are true iff the macro's value is exactly "1".

// evaluator is a cursor over one expression string. Evaluation has no side
// effects; line is carried only for error reporting.
type evaluator struct {
	macros *Context
	expr   string
	pos    int
	line   int
}

// evaluate parses and evaluates a full expression. Any non-whitespace left
// over after the parse is an error.
func evaluate(expr string, macros *Context, line int) (bool, error) {
	p := &evaluator{macros: macros, expr: expr, line: line}
	result, err := p.equality()
	if err != nil {
		return false, err
	}
	p.skipSpace()
	if p.pos < len(p.expr) {
		return false, &SyntaxError{Line: line, Msg: errExpectedEOL}
	}
	return result, nil
}

func (p *evaluator) skipSpace() {
	for p.pos < len(p.expr) && isSpaceByte(p.expr[p.pos]) {
		p.pos++
	}
}

// equality folds chained == strictly left to right: A == B == C evaluates
// as (A == B) == C, not a three-way comparison.
func (p *evaluator) equality() (bool, error) {
	result, err := p.unary()
	if err != nil {
		return false, err
	}
	p.skipSpace()
	for strings.HasPrefix(p.expr[p.pos:], "==") {
		p.pos += 2
		rhs, err := p.unary()
		if err != nil {
			return false, err
		}
		result = result == rhs
		p.skipSpace()
	}
	return result, nil
}

// unary applies one boolean negation per leading '!'.
func (p *evaluator) unary() (bool, error) {
	negate := false
	p.skipSpace()
	for p.pos < len(p.expr) && p.expr[p.pos] == '!' {
		p.pos++
		negate = !negate
		p.skipSpace()
	}
	value, err := p.term()
	if err != nil {
		return false, err
	}
	return negate != value, nil
}

func (p *evaluator) term() (bool, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.expr) && isWordByte(p.expr[p.pos]) {
		p.pos++
	}
	tok := p.expr[start:p.pos]
	if tok == "" {
		return false, &SyntaxError{Line: p.line, Msg: errNoTerm}
	}
	if isDigitByte(tok[0]) {
		switch tok {
		case "1":
			return true, nil
		case "0":
			return false, nil
		}
		return false, &SyntaxError{Line: p.line, Msg: errUndefinedIdent}
	}
	value, ok := p.macros.Lookup(tok)
	if !ok {
		return false, &SyntaxError{Line: p.line, Msg: errUndefinedIdent}
	}
	return value == "1", nil
}
