// line.go classifies substituted input lines into directives and plain text.
package pre

import "strings"

// directive is the parsed form of one directive line. hasExpr distinguishes
// a missing expression from an empty one after trimming.
type directive struct {
	keyword string // "#if", "#elif", "#else", "#endif", or anything else
	expr    string
	hasExpr bool
}

// classify reports whether a substituted line is a directive and, if so,
// splits it into keyword and expression. A line is a directive iff its
// trimmed form starts with '#'. Within a directive line everything from the
// first // onward is a comment and is discarded before the split; the split
// itself is on the first run of whitespace after the keyword.
func classify(line string) (directive, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "#") {
		return directive{}, false
	}
	if i := strings.Index(trimmed, "//"); i >= 0 {
		trimmed = strings.TrimSpace(trimmed[:i])
	}
	keyword := trimmed
	rest := ""
	if i := indexSpace(trimmed); i >= 0 {
		keyword = trimmed[:i]
		rest = strings.TrimSpace(trimmed[i:])
	}
	d := directive{keyword: keyword}
	if rest != "" {
		d.expr = rest
		d.hasExpr = true
	}
	return d, true
}

func indexSpace(s string) int {
	for i := 0; i < len(s); i++ {
		if isSpaceByte(s[i]) {
			return i
		}
	}
	return -1
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z') ||
		(b >= '0' && b <= '9')
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
