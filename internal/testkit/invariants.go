// Package testkit holds checks shared by tests of several packages.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"shellchecker/internal/diag"
	"shellchecker/internal/source"
)

// CheckReportInvariants verifies a report produced for s:
// 1) an empty script yields an empty report
// 2) every issue line lies within the script
// 3) severity and category agree with the code
// 4) categories never go backwards: syntax, best practice, security, style
// 5) every message is rendered (non-empty)
func CheckReportInvariants(s *source.Script, r *diag.Report) error {
	if r == nil {
		return fmt.Errorf("nil report")
	}
	if s.Len() == 0 {
		if r.Len() != 0 {
			return fmt.Errorf("empty script produced %d issues", r.Len())
		}
		return nil
	}
	lineCount, err := safecast.Conv[uint32](s.Len())
	if err != nil {
		return fmt.Errorf("line count overflow: %w", err)
	}

	prev := diag.CatSyntax
	for i, is := range r.Items() {
		if is.Line == 0 || is.Line > lineCount {
			return fmt.Errorf("issue %d (%s): line %d outside 1..%d", i, is.Code.ID(), is.Line, lineCount)
		}
		if is.Severity != is.Code.Severity() {
			return fmt.Errorf("issue %d (%s): severity %s, code says %s", i, is.Code.ID(), is.Severity, is.Code.Severity())
		}
		if is.Category != is.Code.Category() {
			return fmt.Errorf("issue %d (%s): category %s, code says %s", i, is.Code.ID(), is.Category, is.Code.Category())
		}
		if is.Category < prev {
			return fmt.Errorf("issue %d (%s): category %s after %s", i, is.Code.ID(), is.Category, prev)
		}
		prev = is.Category
		if is.Message == "" {
			return fmt.Errorf("issue %d (%s): empty message", i, is.Code.ID())
		}
	}
	return nil
}
