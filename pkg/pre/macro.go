// Package pre implements a C-preprocessor-style line transformer. It
// substitutes whole-word occurrences of defined macros with their values and
// resolves #if/#elif/#else/#endif conditional blocks against those macros.
package pre

import (
	"regexp"
	"sort"
	"strings"
)

// Context holds the macro definitions for preprocessing.
type Context struct {
	defs map[string]string
}

// NewContext creates an empty context with no macros defined.
func NewContext() *Context {
	return &Context{defs: make(map[string]string)}
}

// Define adds a macro, overwriting any previous definition of the same name.
// It returns the context so calls can be chained:
//
//	pre.NewContext().Define("FOO", "1").Define("BAR", "0")
func (c *Context) Define(name, value string) *Context {
	c.defs[name] = value
	return c
}

// DefineAll defines every macro in the given map.
func (c *Context) DefineAll(defs map[string]string) *Context {
	for name, value := range defs {
		c.defs[name] = value
	}
	return c
}

// Lookup returns the value of a macro and whether it is defined.
func (c *Context) Lookup(name string) (string, bool) {
	value, ok := c.defs[name]
	return value, ok
}

// substituter performs whole-word macro replacement on input lines. The
// name matcher is compiled once per run, before the line loop begins; it
// reflects the set of macros defined at that moment.
type substituter struct {
	pattern *regexp.Regexp
	replace func(string) string
}

// newSubstituter compiles a word-boundary-delimited alternation over all
// defined macro names. Names are sorted so construction is deterministic.
// An empty context yields a substituter that matches nothing.
func (c *Context) newSubstituter() *substituter {
	if len(c.defs) == 0 {
		return &substituter{}
	}
	names := make([]string, 0, len(c.defs))
	for name := range c.defs {
		names = append(names, regexp.QuoteMeta(name))
	}
	sort.Strings(names)
	pattern := regexp.MustCompile(`\b(?:` + strings.Join(names, "|") + `)\b`)
	return &substituter{
		pattern: pattern,
		replace: func(name string) string {
			return c.defs[name]
		},
	}
}

// apply replaces every non-overlapping whole-word macro occurrence in line
// with its value. Replacement text is not rescanned, so expansion is a
// single pass: a macro whose value names another macro does not cascade.
func (s *substituter) apply(line string) string {
	if s.pattern == nil {
		return line
	}
	return s.pattern.ReplaceAllStringFunc(line, s.replace)
}
