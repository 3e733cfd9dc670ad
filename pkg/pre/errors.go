// errors.go defines the errors reported by the preprocessor.
package pre

import "fmt"

// The syntax error messages are part of the public contract: callers may
// match on them, so they are fixed strings rather than formatted text.
const (
	errNoTerm           = "expected term, found nothing"
	errUndefinedIdent   = "undefined identifier"
	errExpectedEOL      = "expected end-of-line"
	errIfNeedsExpr      = "expected expression after `#if`"
	errElifNeedsExpr    = "expected expression after `#elif`"
	errElseHasExpr      = "unexpected expression after `#else`"
	errLoneEndif        = "unexpected `#endif` with no matching `#if`"
	errUnknownDirective = "unrecognised preprocessor directive"
	errUnterminatedIf   = "unterminated `#if` with no matching `#endif`"
)

// SyntaxError reports malformed preprocessor input. Line is the 1-based
// number of the offending line; Msg is one of the fixed messages above.
// I/O errors from the input or output collaborators are never wrapped in a
// SyntaxError, they propagate unchanged.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s on line %d", e.Msg, e.Line)
}
