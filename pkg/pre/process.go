// process.go implements the conditional state machine and the entry points.
package pre

import (
	"bufio"
	"io"
	"strings"
)

// state is the liveness of the innermost open conditional block.
type state int

const (
	// stateSkip suppresses lines for the rest of the block: a sibling
	// branch already matched, or the enclosing block is not live.
	stateSkip state = iota
	// stateInactive suppresses lines, but a later #elif or #else in the
	// same block may still activate it.
	stateInactive
	// stateActive passes lines through to the output.
	stateActive
)

// frame saves the parent state at a #if, together with the directive's line
// number for reporting unterminated blocks.
type frame struct {
	saved state
	line  int
}

// processor tracks conditional nesting for one run. The stack depth equals
// the number of unterminated #if blocks.
type processor struct {
	macros *Context
	stack  []frame
	state  state
	line   int
}

func newProcessor(macros *Context) *processor {
	return &processor{macros: macros, state: stateActive}
}

// active reports whether plain lines should currently be emitted.
func (p *processor) active() bool {
	return p.state == stateActive
}

// handleDirective applies one directive to the state machine.
func (p *processor) handleDirective(dir directive) error {
	switch dir.keyword {
	case "#if":
		return p.processIf(dir)
	case "#elif":
		return p.processElif(dir)
	case "#else":
		return p.processElse(dir)
	case "#endif":
		return p.processEndif(dir)
	default:
		return &SyntaxError{Line: p.line, Msg: errUnknownDirective}
	}
}

// processIf opens a block, saving the current state. The condition is only
// evaluated when the enclosing context is active: nested blocks under a
// dead branch become Skip without looking at the expression, so a malformed
// or undefined condition inside an untaken branch is not an error.
func (p *processor) processIf(dir directive) error {
	if !dir.hasExpr {
		return &SyntaxError{Line: p.line, Msg: errIfNeedsExpr}
	}
	p.stack = append(p.stack, frame{saved: p.state, line: p.line})
	if p.state != stateActive {
		p.state = stateSkip
		return nil
	}
	ok, err := evaluate(dir.expr, p.macros, p.line)
	if err != nil {
		return err
	}
	if !ok {
		p.state = stateInactive
	}
	return nil
}

// processElif activates an Inactive block whose condition holds. Once any
// branch in the block has been taken, the remaining branches are Skip even
// if their own conditions are true: first match wins.
func (p *processor) processElif(dir directive) error {
	if !dir.hasExpr {
		return &SyntaxError{Line: p.line, Msg: errElifNeedsExpr}
	}
	if p.state != stateInactive {
		p.state = stateSkip
		return nil
	}
	ok, err := evaluate(dir.expr, p.macros, p.line)
	if err != nil {
		return err
	}
	if ok {
		p.state = stateActive
	}
	return nil
}

func (p *processor) processElse(dir directive) error {
	if dir.hasExpr {
		return &SyntaxError{Line: p.line, Msg: errElseHasExpr}
	}
	if p.state == stateInactive {
		p.state = stateActive
	} else {
		p.state = stateSkip
	}
	return nil
}

// processEndif closes the innermost block, restoring the saved parent
// state. The expression check reuses the #else message.
func (p *processor) processEndif(dir directive) error {
	if dir.hasExpr {
		return &SyntaxError{Line: p.line, Msg: errElseHasExpr}
	}
	if len(p.stack) == 0 {
		return &SyntaxError{Line: p.line, Msg: errLoneEndif}
	}
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.state = top.saved
	return nil
}

// checkBalanced returns an error if any #if block is still open, reporting
// the line of the innermost one.
func (p *processor) checkBalanced() error {
	if len(p.stack) > 0 {
		return &SyntaxError{
			Line: p.stack[len(p.stack)-1].line,
			Msg:  errUnterminatedIf,
		}
	}
	return nil
}

// Process preprocesses input line by line and writes the surviving lines to
// output. Every line is macro-substituted first; a line whose substituted,
// trimmed form starts with '#' is interpreted as a directive, any other
// line is emitted verbatim (original terminator included) when the current
// block is active. Read and write errors are returned unchanged; malformed
// directives abort the run with a *SyntaxError. Output written before the
// failing line is not rolled back.
func Process(input io.Reader, output io.Writer, ctx *Context) error {
	reader := bufio.NewReader(input)
	sub := ctx.newSubstituter()
	proc := newProcessor(ctx)

	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return readErr
		}
		if len(raw) > 0 {
			proc.line++
			text := sub.apply(raw)
			if dir, ok := classify(text); ok {
				if err := proc.handleDirective(dir); err != nil {
					return err
				}
			} else if proc.active() {
				if _, err := io.WriteString(output, text); err != nil {
					return err
				}
			}
		}
		if readErr == io.EOF {
			break
		}
	}

	return proc.checkBalanced()
}

// ProcessString preprocesses an entire in-memory string and returns the
// transformed text. It delegates to Process.
func ProcessString(input string, ctx *Context) (string, error) {
	var out strings.Builder
	if err := Process(strings.NewReader(input), &out, ctx); err != nil {
		return "", err
	}
	return out.String(), nil
}
