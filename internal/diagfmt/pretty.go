package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"shellchecker/internal/diag"
	"shellchecker/internal/i18n"
)

// HeaderRuleWidth is the width of the rule printed under a file header.
const HeaderRuleWidth = 60

// Text renders one report in human-readable form:
//
//	L<line>: [<SEVERITY>] <Category> - <message>
//	...
//
//	Summary: N error(s), M warning(s)
//
// An empty report prints only the localized "no issues" line. With
// ErrorsOnly non-error issues are hidden, but the summary still counts
// every issue.
func Text(w io.Writer, r *diag.Report, opts TextOpts) error {
	var b strings.Builder

	if r.Len() == 0 {
		b.WriteString(colorize(opts.Color, color.New(color.FgGreen), i18n.Message(opts.Locale, i18n.MsgNoIssues)))
		b.WriteByte('\n')
		_, err := io.WriteString(w, b.String())
		return err
	}

	for _, is := range r.Items() {
		if opts.ErrorsOnly && is.Severity != diag.SevError {
			continue
		}
		sev := "[" + i18n.SeverityLabel(opts.Locale, is.Severity) + "]"
		fmt.Fprintf(&b, "L%d: %s %s - %s\n",
			is.Line,
			colorize(opts.Color, severityColor(is.Severity), sev),
			i18n.CategoryLabel(opts.Locale, is.Category),
			is.Message,
		)
	}

	b.WriteByte('\n')
	b.WriteString(Summary(r, opts.Locale))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// Summary returns "Summary: N error(s), M warning(s)" for loc.
func Summary(r *diag.Report, loc i18n.Locale) string {
	return fmt.Sprintf("%s: %d %s, %d %s",
		i18n.Message(loc, i18n.MsgSummary),
		r.ErrorCount(), i18n.Message(loc, i18n.MsgErrors),
		r.WarningCount(), i18n.Message(loc, i18n.MsgWarnings),
	)
}

// Header prints the per-file banner used in text mode.
func Header(w io.Writer, path string, loc i18n.Locale) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", i18n.Message(loc, i18n.MsgChecking, path), strings.Repeat("=", HeaderRuleWidth))
	return err
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

// colorize применяет цвет только если он явно включён, независимо от color.NoColor.
func colorize(enabled bool, c *color.Color, s string) string {
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}
