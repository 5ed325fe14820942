package diagfmt

import (
	"io"
	"strings"

	"shellchecker/internal/diag"
)

// Short writes one line per issue across all files, see diag.FormatShort.
// Files that failed to load are skipped. With Max > 0 at most Max lines
// are written in total.
func Short(w io.Writer, files []FileReport, opts ShortOpts) error {
	var b strings.Builder
	budget := opts.Max
	for _, fr := range files {
		if fr.Err != nil {
			continue
		}
		if opts.Max > 0 && budget == 0 {
			break
		}
		issues := fr.issues(opts.ErrorsOnly)
		if opts.Max > 0 {
			issues = issues[:min(len(issues), budget)]
			budget -= len(issues)
		}
		out := diag.FormatShort(opts.PathMode.Display(fr.Path, opts.BaseDir), issues)
		if out == "" {
			continue
		}
		b.WriteString(out)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
