// Package rules runs the fixed, ordered set of script checks.
//
// Groups run in the order Syntax, Best Practice, Security, Style; detectors
// run in declaration order inside a group and walk lines in source order.
// The resulting issue order is part of the output contract.
package rules

import (
	"shellchecker/internal/balance"
	"shellchecker/internal/diag"
	"shellchecker/internal/i18n"
	"shellchecker/internal/source"
)

// DefaultMaxLineLength is the style limit used when Options leaves it unset.
const DefaultMaxLineLength = 120

// Options configures one check run.
type Options struct {
	Locale        i18n.Locale
	MaxLineLength int // <= 0 means DefaultMaxLineLength
}

func (o Options) maxLineLength() int {
	if o.MaxLineLength <= 0 {
		return DefaultMaxLineLength
	}
	return o.MaxLineLength
}

// Context is what a detector sees. It is built once per run.
type Context struct {
	Script *source.Script
	Scan   *balance.Result
	Opts   Options

	reporter diag.Reporter
}

func (c *Context) emit(code diag.Code, line uint32, args ...any) {
	c.reporter.Report(diag.New(code, line, i18n.RuleMessage(c.Opts.Locale, code, args...)))
}

// Detector is one independent check.
type Detector struct {
	Name string
	Run  func(*Context)
}

// Group is an ordered list of detectors sharing a category.
type Group struct {
	Category  diag.Category
	Detectors []Detector
}

var groups = []Group{
	{
		Category: diag.CatSyntax,
		Detectors: []Detector{
			{"shebang", checkShebang},
			{"delimiters", checkDelimiters},
			{"quotes", checkQuotes},
			{"expansions", checkExpansions},
		},
	},
	{
		Category: diag.CatBestPractice,
		Detectors: []Detector{
			{"set-options", checkSetOptions},
			{"unquoted-variable", checkUnquotedVariable},
			{"cd-without-check", checkCdWithoutCheck},
			{"backticks", checkBackticks},
		},
	},
	{
		Category: diag.CatSecurity,
		Detectors: []Detector{
			{"eval", checkEval},
			{"curl-pipe-shell", checkCurlPipeShell},
			{"dangerous-rm", checkDangerousRm},
			{"user-input", checkUserInput},
		},
	},
	{
		Category: diag.CatStyle,
		Detectors: []Detector{
			{"indentation", checkIndentation},
			{"line-length", checkLineLength},
			{"function-naming", checkFunctionNaming},
			{"variable-naming", checkVariableNaming},
		},
	},
}

// Groups returns the detector groups in run order.
// Do not modify the returned slice.
func Groups() []Group {
	return groups
}

// Run executes every detector over s and sends issues to rep.
func Run(s *source.Script, opts Options, rep diag.Reporter) {
	ctx := &Context{
		Script:   s,
		Scan:     balance.Scan(s),
		Opts:     opts,
		reporter: rep,
	}
	for _, g := range groups {
		for _, d := range g.Detectors {
			d.Run(ctx)
		}
	}
}

// Check runs every detector and collects the issues into a new Report.
func Check(s *source.Script, opts Options) *diag.Report {
	r := diag.NewReport()
	Run(s, opts, diag.ReportReporter{Dst: r})
	return r
}

// CheckText builds the line model for text and checks it.
func CheckText(text string, opts Options) *diag.Report {
	return Check(source.NewScript(text), opts)
}
