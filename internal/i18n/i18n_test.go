package i18n

import (
	"testing"

	"shellchecker/internal/diag"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in      string
		want    Locale
		wantErr bool
	}{
		{in: "en", want: English},
		{in: "ja", want: Japanese},
		{in: "ja-JP", want: Japanese},
		{in: "ja_JP.UTF-8", want: Japanese},
		{in: "en_US.UTF-8", want: English},
		{in: " EN ", want: English},
		{in: "fr", wantErr: true},
		{in: "", wantErr: true},
		{in: "klingon!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLocale(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseLocale(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnsupportedLanguageMessage(t *testing.T) {
	_, err := ParseLocale("de")
	if err == nil || err.Error() != `unsupported language "de" (use en or ja)` {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEveryRuleHasMessages(t *testing.T) {
	for _, c := range diag.Codes() {
		if !Has(c.ID()) {
			t.Errorf("rule %s has no catalog entry", c.ID())
		}
	}
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name string
		loc  Locale
		got  string
		want string
	}{
		{"no issues en", English, Message(English, MsgNoIssues), "✓ No issues found"},
		{"no issues ja", Japanese, Message(Japanese, MsgNoIssues), "✓ 問題は見つかりませんでした"},
		{"checking ja", Japanese, Message(Japanese, MsgChecking, "a.sh"), "チェック中: a.sh"},
		{"severity ja", Japanese, SeverityLabel(Japanese, diag.SevWarning), "警告"},
		{"severity en", English, SeverityLabel(English, diag.SevInfo), "INFO"},
		{"category ja", Japanese, CategoryLabel(Japanese, diag.CatBestPractice), "ベストプラクティス"},
		{"category en", English, CategoryLabel(English, diag.CatBestPractice), "Best Practice"},
		{"line too long", English, RuleMessage(English, diag.StyLineTooLong, "121", "120"), "Line too long (121 > 120 characters)"},
		{"line too long ja", Japanese, RuleMessage(Japanese, diag.StyLineTooLong, "121", "120"), "行が長すぎます (121 > 120 文字)"},
		{"function naming", English, RuleMessage(English, diag.StyFunctionNaming, "MyFunc"), "Function name 'MyFunc' should use snake_case (lowercase with underscores)"},
		{"variable naming ja", Japanese, RuleMessage(Japanese, diag.StyVariableNaming, "A1"), "ローカル変数 'A1' は小文字とアンダースコアを使用してください"},
		{"var expansion", English, RuleMessage(English, diag.SynUnclosedVarExpansion), "Unclosed variable expansion ${...}"},
		{"cmd subst ja", Japanese, RuleMessage(Japanese, diag.SynUnclosedCmdSubst), "閉じられていないコマンド置換 $(...)"},
		{"unquoted", English, RuleMessage(English, diag.BestUnquotedVariable), `Unquoted variable usage - consider using "$variable" to prevent word splitting`},
		{"unknown id", English, Message(English, "no.such.id"), "no.such.id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestLocaleString(t *testing.T) {
	if English.String() != "en" || Japanese.String() != "ja" {
		t.Fatal("unexpected locale names")
	}
	if Japanese.Tag().String() != "ja" {
		t.Fatalf("unexpected tag %s", Japanese.Tag())
	}
}
