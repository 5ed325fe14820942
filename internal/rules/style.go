package rules

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"shellchecker/internal/diag"
)

var (
	reFunctionKeyword = regexp.MustCompile(`^function\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`)
	reFunctionParens  = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_]*)\s*\(\s*\)`)
	reUpperAssignment = regexp.MustCompile(`^\s*([A-Z][A-Z0-9_]*)\s*=`)
)

// checkIndentation counts any leading whitespace, so a tab-indented line
// can get both findings.
func checkIndentation(c *Context) {
	for _, l := range c.Script.Lines() {
		if l.IsBlank() || l.IsComment() {
			continue
		}
		if strings.HasPrefix(l.Content, "\t") {
			c.emit(diag.StyTabIndent, l.Number)
		}
		indent := len(l.Content) - len(strings.TrimLeftFunc(l.Content, unicode.IsSpace))
		if indent > 0 && indent%2 != 0 {
			c.emit(diag.StyOddIndent, l.Number)
		}
	}
}

// LineLength is the length the line-length rule measures, in characters.
func LineLength(s string) int {
	return utf8.RuneCountInString(s)
}

func checkLineLength(c *Context) {
	limit := c.Opts.maxLineLength()
	for _, l := range c.Script.Lines() {
		if w := LineLength(l.Content); w > limit {
			c.emit(diag.StyLineTooLong, l.Number, strconv.Itoa(w), strconv.Itoa(limit))
		}
	}
}

func checkFunctionNaming(c *Context) {
	for _, l := range c.Script.Lines() {
		m := reFunctionKeyword.FindStringSubmatch(l.Content)
		if m == nil {
			m = reFunctionParens.FindStringSubmatch(l.Content)
		}
		if m == nil {
			continue
		}
		if name := m[1]; strings.IndexFunc(name, unicode.IsUpper) >= 0 {
			c.emit(diag.StyFunctionNaming, l.Number, name)
		}
	}
}

// checkVariableNaming accepts env-style names: at least three characters,
// uppercase letters and underscores only.
func checkVariableNaming(c *Context) {
	for _, l := range c.Script.Lines() {
		if l.IsComment() {
			continue
		}
		m := reUpperAssignment.FindStringSubmatch(l.Content)
		if m == nil {
			continue
		}
		name := m[1]
		envStyle := len(name) >= 3 && strings.IndexFunc(name, func(r rune) bool {
			return !unicode.IsUpper(r) && r != '_'
		}) < 0
		if !envStyle {
			c.emit(diag.StyVariableNaming, l.Number, name)
		}
	}
}
