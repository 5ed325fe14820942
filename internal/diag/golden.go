package diag

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FormatShort renders issues into a stable, single-line-per-entry form:
//
//	<severity> <CODE> <path>:<line> <message>
//
// Issues keep their report order. The result has no trailing newline and
// is empty when there is nothing to render. Tests use it as golden output.
func FormatShort(path string, issues []Issue) string {
	if len(issues) == 0 {
		return ""
	}
	p := normalizePath(path)

	var b strings.Builder
	for i, is := range issues {
		fmt.Fprintf(&b, "%s %s %s:%d %s", is.Severity.Label(), is.Code.ID(), p, is.Line, sanitizeMessage(is.Message))
		if i < len(issues)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func normalizePath(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
