package rules

import (
	"strings"

	"shellchecker/internal/balance"
	"shellchecker/internal/diag"
)

func checkShebang(c *Context) {
	first, ok := c.Script.First()
	if !ok {
		return
	}
	switch {
	case !strings.HasPrefix(first.Content, "#!"):
		c.emit(diag.SynMissingShebang, first.Number)
	case !strings.Contains(first.Content, "bash") && !strings.Contains(first.Content, "sh"):
		c.emit(diag.SynInvalidShebang, first.Number)
	}
}

func checkDelimiters(c *Context) { c.emitFindings(c.Scan.Delimiters) }

func checkQuotes(c *Context) { c.emitFindings(c.Scan.Quotes) }

func checkExpansions(c *Context) { c.emitFindings(c.Scan.Expansions) }

func (c *Context) emitFindings(fs []balance.Finding) {
	for _, f := range fs {
		c.emit(f.Kind.Code(), f.Line)
	}
}
