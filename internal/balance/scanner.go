// Package balance tracks quoting and grouping delimiters across a script
// without parsing it.
//
// Bracket, brace and paren stacks persist across lines; quote state resets
// at every line. Escapes only affect quote toggling. Closers without an
// opener are reported for ']' only. All of this is approximate on purpose:
// heredocs, nested quoting and multi-line strings are not modelled.
package balance

import (
	"regexp"

	"shellchecker/internal/source"
)

var (
	reOpenVarExpansion = regexp.MustCompile(`\$\{[^}]*$`)
	reOpenCmdSubst     = regexp.MustCompile(`\$\([^)]*$`)
)

// Result holds scanner findings grouped in the order they are reported.
type Result struct {
	// Delimiters: unmatched ']' in scan order, then every still-open frame;
	// brackets, then braces, then parens, each in push order.
	Delimiters []Finding
	// Quotes: per line, single before double.
	Quotes []Finding
	// Expansions: per line, variable expansion before command substitution.
	Expansions []Finding
}

type scanner struct {
	brackets stack
	braces   stack
	parens   stack
	res      Result
}

// Scan walks the script once. Comment lines are skipped. Scan never fails;
// an empty script yields an empty Result.
func Scan(s *source.Script) *Result {
	sc := &scanner{}
	for _, l := range s.Lines() {
		if l.IsComment() {
			continue
		}
		sc.line(l)
	}
	sc.drain()
	return &sc.res
}

func (sc *scanner) line(l source.ScriptLine) {
	var (
		inSingle   bool
		inDouble   bool
		escapeNext bool
	)

	cur := NewCursor(l.Content)
	for !cur.EOF() {
		ch := cur.Bump()
		at := Frame{Line: l.Number, Col: cur.Col()}

		switch ch {
		case '[':
			sc.brackets.push(at)
		case ']':
			if !sc.brackets.pop() {
				sc.res.Delimiters = append(sc.res.Delimiters, Finding{Kind: UnmatchedBracket, Frame: at})
			}
		case '{':
			if cur.Before() != '$' {
				sc.braces.push(at)
			}
		case '}':
			sc.braces.pop()
		case '(':
			if cur.Before() != '$' {
				sc.parens.push(at)
			}
		case ')':
			sc.parens.pop()
		}

		if escapeNext {
			escapeNext = false
			continue
		}
		switch {
		case ch == '\\':
			escapeNext = true
		case ch == '\'' && !inDouble:
			inSingle = !inSingle
		case ch == '"' && !inSingle:
			inDouble = !inDouble
		}
	}

	lineAt := Frame{Line: l.Number}
	if inSingle {
		sc.res.Quotes = append(sc.res.Quotes, Finding{Kind: UnclosedSingleQuote, Frame: lineAt})
	}
	if inDouble {
		sc.res.Quotes = append(sc.res.Quotes, Finding{Kind: UnclosedDoubleQuote, Frame: lineAt})
	}

	if reOpenVarExpansion.MatchString(l.Content) {
		sc.res.Expansions = append(sc.res.Expansions, Finding{Kind: UnclosedVarExpansion, Frame: lineAt})
	}
	if reOpenCmdSubst.MatchString(l.Content) {
		sc.res.Expansions = append(sc.res.Expansions, Finding{Kind: UnclosedCmdSubst, Frame: lineAt})
	}
}

func (sc *scanner) drain() {
	for _, open := range []struct {
		kind   Kind
		frames stack
	}{
		{UnclosedBracket, sc.brackets},
		{UnclosedBrace, sc.braces},
		{UnclosedParen, sc.parens},
	} {
		for _, f := range open.frames {
			sc.res.Delimiters = append(sc.res.Delimiters, Finding{Kind: open.kind, Frame: f})
		}
	}
	sc.brackets, sc.braces, sc.parens = nil, nil, nil
}
