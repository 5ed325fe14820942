package testkit

import (
	"strings"
	"testing"

	"shellchecker/internal/diag"
	"shellchecker/internal/source"
)

func TestCheckReportInvariants(t *testing.T) {
	script := source.NewScript("#!/bin/bash\necho $x\n")

	good := &diag.Report{}
	good.Add(diag.New(diag.BestMissingSetE, 1, "set -e"))
	good.Add(diag.New(diag.StyTabIndent, 2, "tab"))
	if err := CheckReportInvariants(script, good); err != nil {
		t.Fatalf("valid report rejected: %v", err)
	}

	tests := []struct {
		name  string
		issue diag.Issue
		want  string
	}{
		{"line zero", diag.New(diag.SecEval, 0, "eval"), "outside"},
		{"line past end", diag.New(diag.SecEval, 3, "eval"), "outside"},
		{"severity", diag.Issue{Line: 1, Severity: diag.SevInfo, Category: diag.CatSecurity, Code: diag.SecEval, Message: "eval"}, "severity"},
		{"category", diag.Issue{Line: 1, Severity: diag.SevError, Category: diag.CatStyle, Code: diag.SecEval, Message: "eval"}, "category"},
		{"empty message", diag.New(diag.SecEval, 1, ""), "empty message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &diag.Report{}
			r.Add(tt.issue)
			err := CheckReportInvariants(script, r)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("got %v, want error mentioning %q", err, tt.want)
			}
		})
	}

	backwards := &diag.Report{}
	backwards.Add(diag.New(diag.StyTabIndent, 2, "tab"))
	backwards.Add(diag.New(diag.SecEval, 2, "eval"))
	if err := CheckReportInvariants(script, backwards); err == nil {
		t.Fatal("category order not enforced")
	}

	nonEmpty := &diag.Report{}
	nonEmpty.Add(diag.New(diag.SecEval, 1, "eval"))
	if err := CheckReportInvariants(source.NewScript(""), nonEmpty); err == nil {
		t.Fatal("issues on an empty script accepted")
	}
}
