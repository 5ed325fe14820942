package diagfmt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"shellchecker/internal/diag"
)

func TestShort(t *testing.T) {
	files := []FileReport{
		{Path: "./a.sh", Report: sampleReport()},
		{Path: "b.sh", Report: diag.NewReport()},
		{Path: "c.sh", Err: errors.New("unreadable")},
	}

	var buf bytes.Buffer
	if err := Short(&buf, files, ShortOpts{ErrorsOnly: true, PathMode: PathModeAsGiven}); err != nil {
		t.Fatal(err)
	}
	want := "error SYN1004 a.sh:1 Unclosed bracket '['\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestShortMax(t *testing.T) {
	files := []FileReport{
		{Path: "a.sh", Report: sampleReport()},
		{Path: "b.sh", Report: sampleReport()},
	}
	tests := []struct {
		max  int
		want int
	}{
		{0, 6},
		{2, 2},
		{4, 4},
		{10, 6},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := Short(&buf, files, ShortOpts{Max: tt.max}); err != nil {
			t.Fatal(err)
		}
		if got := strings.Count(buf.String(), "\n"); got != tt.want {
			t.Errorf("Max=%d: got %d lines, want %d:\n%s", tt.max, got, tt.want, buf.String())
		}
	}
}
