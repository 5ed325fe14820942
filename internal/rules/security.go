package rules

import (
	"strings"

	"shellchecker/internal/diag"
)

func checkEval(c *Context) {
	for _, l := range c.Script.Lines() {
		if !l.IsComment() && strings.Contains(l.Content, "eval ") {
			c.emit(diag.SecEval, l.Number)
		}
	}
}

// checkCurlPipeShell also looks at comment lines.
func checkCurlPipeShell(c *Context) {
	for _, l := range c.Script.Lines() {
		s := l.Content
		download := strings.Contains(s, "curl") || strings.Contains(s, "wget")
		shell := strings.Contains(s, "sh") || strings.Contains(s, "bash")
		if download && shell && strings.Contains(s, "|") {
			c.emit(diag.SecCurlPipeShell, l.Number)
		}
	}
}

func checkDangerousRm(c *Context) {
	for _, l := range c.Script.Lines() {
		if l.IsComment() {
			continue
		}
		if strings.Contains(l.Content, "rm -rf /") || strings.Contains(l.Content, "rm -rf $") {
			c.emit(diag.SecDangerousRm, l.Number)
		}
	}
}

func checkUserInput(c *Context) {
	for _, l := range c.Script.Lines() {
		if l.IsComment() {
			continue
		}
		if containsAny(l.Content, "read ", "$1", "$@") && containsAny(l.Content, "eval", "$(", "`") {
			c.emit(diag.SecUserInputInCmd, l.Number)
		}
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
