package diagfmt

import (
	"fmt"
	"strings"

	"shellchecker/internal/diag"
	"shellchecker/internal/i18n"
	"shellchecker/internal/source"
)

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto shortens long absolute paths to their base name.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	// PathModeRelative prints paths relative to BaseDir (or the working
	// directory); paths outside it stay absolute.
	PathModeRelative
	PathModeBasename
	// PathModeAsGiven prints the path exactly as the caller passed it.
	PathModeAsGiven
)

func (m PathMode) String() string {
	switch m {
	case PathModeAuto:
		return "auto"
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	}
	return "as-given"
}

// ParsePathMode reads a mode by its String name.
func ParsePathMode(value string) (PathMode, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, m := range []PathMode{PathModeAuto, PathModeAbsolute, PathModeRelative, PathModeBasename, PathModeAsGiven} {
		if m.String() == v {
			return m, nil
		}
	}
	return PathModeAsGiven, fmt.Errorf("unknown path mode %q (expected as-given|absolute|relative|basename|auto)", value)
}

// Display formats p according to the mode. baseDir is only used by
// PathModeRelative.
func (m PathMode) Display(p, baseDir string) string {
	if m == PathModeAsGiven {
		return p
	}
	f := source.File{Path: p}
	return f.FormatPath(m.String(), baseDir)
}

// FileReport is the outcome of checking one file. Err is set when the file
// could not be read; Report is nil then.
type FileReport struct {
	Path   string
	Report *diag.Report
	Err    error
}

func (fr FileReport) issues(errorsOnly bool) []diag.Issue {
	if errorsOnly {
		return fr.Report.Filter(diag.ErrorsOnly)
	}
	return fr.Report.Items()
}

// TextOpts configures the human-readable report.
type TextOpts struct {
	ErrorsOnly bool
	Locale     i18n.Locale
	Color      bool
}

// ShortOpts configures one-line-per-issue output.
type ShortOpts struct {
	ErrorsOnly bool
	PathMode   PathMode
	BaseDir    string
	Max        int // 0 - без ограничения
}

// JSONOpts configures JSON output.
type JSONOpts struct {
	ErrorsOnly bool
	PathMode   PathMode
	BaseDir    string
	Max        int // обрезка вывода по числу issues, 0 - без ограничения
}

// SarifRunMeta provides metadata for SARIF output.
type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	InformationURI string
	Locale         i18n.Locale
	ErrorsOnly     bool
	PathMode       PathMode
	BaseDir        string
}
