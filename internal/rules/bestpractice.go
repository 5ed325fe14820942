package rules

import (
	"regexp"
	"strings"

	"shellchecker/internal/diag"
)

var reVariableUse = regexp.MustCompile(`\$[A-Za-z_][A-Za-z0-9_]*`)

// checkSetOptions looks for errexit, nounset and pipefail anywhere in the
// script and reports each missing one at line 1.
func checkSetOptions(c *Context) {
	if c.Script.Len() == 0 {
		return
	}

	var setE, setU, pipefail bool
	for _, l := range c.Script.Lines() {
		if l.IsComment() {
			continue
		}
		if strings.Contains(l.Content, "set -e") || strings.Contains(l.Content, "set -o errexit") {
			setE = true
		}
		if strings.Contains(l.Content, "set -u") || strings.Contains(l.Content, "set -o nounset") {
			setU = true
		}
		if strings.Contains(l.Content, "set -o pipefail") {
			pipefail = true
		}
	}

	if !setE {
		c.emit(diag.BestMissingSetE, 1)
	}
	if !setU {
		c.emit(diag.BestMissingSetU, 1)
	}
	if !pipefail {
		c.emit(diag.BestMissingPipefail, 1)
	}
}

// checkUnquotedVariable reports at most one bare $NAME per line. Lines with
// "[[" or "$(" are skipped entirely.
func checkUnquotedVariable(c *Context) {
	for _, l := range c.Script.Lines() {
		if l.IsComment() {
			continue
		}
		if strings.Contains(l.Content, "[[") || strings.Contains(l.Content, "$(") {
			continue
		}
		for _, m := range reVariableUse.FindAllStringIndex(l.Content, -1) {
			before, after := byteAt(l.Content, m[0]-1), byteAt(l.Content, m[1])
			quoted := before == '"' || after == '"'
			braced := after == '}'
			if !quoted && !braced {
				c.emit(diag.BestUnquotedVariable, l.Number)
				break
			}
		}
	}
}

func checkCdWithoutCheck(c *Context) {
	for _, l := range c.Script.Lines() {
		if !strings.HasPrefix(l.Trimmed, "cd ") {
			continue
		}
		if strings.Contains(l.Content, "||") || strings.Contains(l.Content, "&&") {
			continue
		}
		if next, ok := c.Script.Next(l); ok &&
			(strings.HasPrefix(next.Trimmed, "||") || strings.HasPrefix(next.Trimmed, "if")) {
			continue
		}
		c.emit(diag.BestCdWithoutCheck, l.Number)
	}
}

func checkBackticks(c *Context) {
	for _, l := range c.Script.Lines() {
		if l.IsComment() {
			continue
		}
		if hasUnescapedBacktick(l.Content) {
			c.emit(diag.BestBacktickSubst, l.Number)
		}
	}
}

func hasUnescapedBacktick(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '`':
			return true
		}
	}
	return false
}

func byteAt(s string, i int) byte {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}
