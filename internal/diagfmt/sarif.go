package diagfmt

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"shellchecker/internal/diag"
	"shellchecker/internal/i18n"
)

// Sarif форматирует отчёты в SARIF формат (v2.1.0): один run, одно правило
// на каждый встреченный код.
func Sarif(w io.Writer, files []FileReport, meta SarifRunMeta) error {
	report, err := BuildSarif(files, meta)
	if err != nil {
		return err
	}
	return report.PrettyWrite(w)
}

// BuildSarif builds the SARIF document without serialising it.
func BuildSarif(files []FileReport, meta SarifRunMeta) (*sarif.Report, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(meta.ToolName, meta.InformationURI)
	if meta.ToolVersion != "" {
		version := meta.ToolVersion
		run.Tool.Driver.SemanticVersion = &version
	}

	for _, fr := range files {
		if fr.Err != nil {
			continue
		}
		path := meta.PathMode.Display(fr.Path, meta.BaseDir)
		for _, is := range fr.issues(meta.ErrorsOnly) {
			level := sarifLevel(is.Severity)
			rule := run.AddRule(is.Code.ID()).
				WithDescription(RuleDescription(meta.Locale, is.Code)).
				WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: level})

			location := sarif.NewLocation().WithPhysicalLocation(
				sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewArtifactLocation().WithUri(path)).
					WithRegion(sarif.NewRegion().WithStartLine(int(is.Line))),
			)

			result := sarif.NewRuleResult(rule.ID).
				WithMessage(sarif.NewTextMessage(is.Message)).
				WithLevel(level).
				WithLocations([]*sarif.Location{location})
			run.AddResult(result)
		}
	}

	report.AddRun(run)
	return report, nil
}

// RuleDescription is the localized rule message with placeholders for the
// values only known per issue.
func RuleDescription(loc i18n.Locale, code diag.Code) string {
	var args []any
	switch code {
	case diag.StyLineTooLong:
		args = []any{"N", "MAX"}
	case diag.StyFunctionNaming, diag.StyVariableNaming:
		args = []any{"NAME"}
	}
	return i18n.RuleMessage(loc, code, args...)
}

func sarifLevel(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "note"
	}
}
