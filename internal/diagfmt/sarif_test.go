package diagfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"shellchecker/internal/diag"
	"shellchecker/internal/i18n"
)

func TestSarif(t *testing.T) {
	r := sampleReport()
	r.Add(diag.New(diag.SynUnclosedBracket, 7, "Unclosed bracket '['"))
	files := []FileReport{
		{Path: "scripts/a.sh", Report: r},
		{Path: "gone.sh", Err: errors.New("boom")},
	}

	var buf bytes.Buffer
	meta := SarifRunMeta{
		ToolName:       "shellchecker",
		ToolVersion:    "1.2.3",
		InformationURI: "https://example.com/shellchecker",
		Locale:         i18n.English,
		PathMode:       PathModeAsGiven,
	}
	if err := Sarif(&buf, files, meta); err != nil {
		t.Fatalf("Sarif() error: %v", err)
	}

	var doc sarif.Report
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid SARIF: %v\n%s", err, buf.String())
	}
	if len(doc.Runs) != 1 {
		t.Fatalf("expected one run, got %d", len(doc.Runs))
	}
	run := doc.Runs[0]
	if run.Tool.Driver.Name != "shellchecker" {
		t.Errorf("tool name = %q", run.Tool.Driver.Name)
	}
	if len(run.Tool.Driver.Rules) != 3 {
		t.Errorf("expected 3 distinct rules, got %d", len(run.Tool.Driver.Rules))
	}
	if len(run.Results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(run.Results))
	}

	last := run.Results[3]
	if *last.RuleID != "SYN1004" || *last.Level != "error" {
		t.Errorf("unexpected result: rule=%s level=%s", *last.RuleID, *last.Level)
	}
	loc := last.Locations[0].PhysicalLocation
	if *loc.ArtifactLocation.URI != "scripts/a.sh" || *loc.Region.StartLine != 7 {
		t.Errorf("unexpected location: %s:%d", *loc.ArtifactLocation.URI, *loc.Region.StartLine)
	}
	if *run.Results[2].Level != "note" {
		t.Errorf("info must map to note, got %s", *run.Results[2].Level)
	}
}
