package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"shellchecker/internal/diag"
	"shellchecker/internal/i18n"
)

func sampleReport() *diag.Report {
	r := diag.NewReport()
	r.Add(diag.New(diag.SynUnclosedBracket, 1, "Unclosed bracket '['"))
	r.Add(diag.New(diag.BestMissingSetE, 1, "Consider using 'set -e' to exit on errors"))
	r.Add(diag.New(diag.StyTabIndent, 3, "Use spaces instead of tabs for indentation"))
	return r
}

func TestTextRender(t *testing.T) {
	tests := []struct {
		name string
		r    *diag.Report
		opts TextOpts
		want string
	}{
		{
			name: "no issues",
			r:    diag.NewReport(),
			opts: TextOpts{},
			want: "✓ No issues found\n",
		},
		{
			name: "no issues ja",
			r:    diag.NewReport(),
			opts: TextOpts{Locale: i18n.Japanese},
			want: "✓ 問題は見つかりませんでした\n",
		},
		{
			name: "all issues",
			r:    sampleReport(),
			opts: TextOpts{},
			want: "L1: [ERROR] Syntax - Unclosed bracket '['\n" +
				"L1: [WARNING] Best Practice - Consider using 'set -e' to exit on errors\n" +
				"L3: [INFO] Style - Use spaces instead of tabs for indentation\n" +
				"\n" +
				"Summary: 1 error(s), 1 warning(s)\n",
		},
		{
			name: "errors only keeps full counts",
			r:    sampleReport(),
			opts: TextOpts{ErrorsOnly: true},
			want: "L1: [ERROR] Syntax - Unclosed bracket '['\n" +
				"\n" +
				"Summary: 1 error(s), 1 warning(s)\n",
		},
		{
			name: "errors only with warnings only",
			r: func() *diag.Report {
				r := diag.NewReport()
				r.Add(diag.New(diag.BestMissingSetE, 1, "Consider using 'set -e' to exit on errors"))
				r.Add(diag.New(diag.BestUnquotedVariable, 4, "Variable should be quoted to prevent word splitting"))
				r.Add(diag.New(diag.StyTabIndent, 5, "Use spaces instead of tabs for indentation"))
				return r
			}(),
			opts: TextOpts{ErrorsOnly: true},
			want: "\n" +
				"Summary: 0 error(s), 2 warning(s)\n",
		},
		{
			name: "japanese labels",
			r:    sampleReport(),
			opts: TextOpts{Locale: i18n.Japanese, ErrorsOnly: true},
			want: "L1: [エラー] 構文 - Unclosed bracket '['\n" +
				"\n" +
				"サマリ: 1 個のエラー, 1 個の警告\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Text(&buf, tt.r, tt.opts); err != nil {
				t.Fatalf("Text() error: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Fatalf("unexpected output:\nwant:\n%s\ngot:\n%s", tt.want, got)
			}
		})
	}
}

func TestTextColor(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, sampleReport(), TextOpts{Color: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI escapes, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Summary: 1 error(s), 1 warning(s)") {
		t.Fatalf("summary must stay uncolored: %q", buf.String())
	}
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := Header(&buf, "scripts/a.sh", i18n.Japanese); err != nil {
		t.Fatal(err)
	}
	want := "チェック中: scripts/a.sh\n" + strings.Repeat("=", 60) + "\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestParsePathMode(t *testing.T) {
	for _, m := range []PathMode{PathModeAuto, PathModeAbsolute, PathModeRelative, PathModeBasename, PathModeAsGiven} {
		got, err := ParsePathMode(strings.ToUpper(m.String()))
		if err != nil || got != m {
			t.Errorf("ParsePathMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParsePathMode("short"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestPathModes(t *testing.T) {
	tests := []struct {
		mode PathMode
		want string
	}{
		{PathModeAbsolute, "/home/user/project/src/run.sh"},
		{PathModeRelative, "src/run.sh"},
		{PathModeBasename, "run.sh"},
		{PathModeAsGiven, "/home/user/project/src/run.sh"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := tt.mode.Display("/home/user/project/src/run.sh", "/home/user/project"); got != tt.want {
				t.Fatalf("Display() = %q, want %q", got, tt.want)
			}
		})
	}
}
