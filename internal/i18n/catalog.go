package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"shellchecker/internal/diag"
)

// Message ids outside the rule table.
const (
	MsgNoIssues       = "report.no-issues"
	MsgSummary        = "report.summary"
	MsgErrors         = "report.errors"
	MsgWarnings       = "report.warnings"
	MsgChecking       = "report.checking"
	MsgReadError      = "driver.read-error"
	MsgWalkError      = "driver.walk-error"
	MsgNoScripts      = "driver.no-scripts"
	MsgCodeColumn     = "rules.code"
	MsgSeverityColumn = "rules.severity"
	MsgCategoryColumn = "rules.category"
	MsgMessageColumn  = "rules.message"
)

type entry struct {
	id string
	en string
	ja string
}

var entries = []entry{
	{"severity.error", "ERROR", "エラー"},
	{"severity.warning", "WARNING", "警告"},
	{"severity.info", "INFO", "情報"},

	{MsgNoIssues, "✓ No issues found", "✓ 問題は見つかりませんでした"},
	{MsgSummary, "Summary", "サマリ"},
	{MsgErrors, "error(s)", "個のエラー"},
	{MsgWarnings, "warning(s)", "個の警告"},
	{MsgChecking, "Checking: %s", "チェック中: %s"},
	{MsgReadError, "Error reading file %s: %s", "ファイル読み込みエラー %s: %s"},
	{MsgWalkError, "Error walking directory: %s", "ディレクトリ走査エラー: %s"},
	{MsgNoScripts, "No shell scripts found in %s", "%s にシェルスクリプトが見つかりません"},
	{MsgCodeColumn, "Code", "コード"},
	{MsgSeverityColumn, "Severity", "重大度"},
	{MsgCategoryColumn, "Category", "カテゴリ"},
	{MsgMessageColumn, "Message", "メッセージ"},

	{"category.syntax", "Syntax", "構文"},
	{"category.best-practice", "Best Practice", "ベストプラクティス"},
	{"category.security", "Security", "セキュリティ"},
	{"category.style", "Style", "スタイル"},

	// Syntax
	{diag.SynMissingShebang.ID(), "Missing shebang line (#!/bin/bash or #!/bin/sh)", "シバン行がありません (#!/bin/bash または #!/bin/sh)"},
	{diag.SynInvalidShebang.ID(), "Shebang does not specify bash or sh", "シバン行でbashまたはshが指定されていません"},
	{diag.SynUnmatchedBracket.ID(), "Unmatched closing bracket ']'", "対応しない閉じ括弧 ']'"},
	{diag.SynUnclosedBracket.ID(), "Unclosed bracket '['", "閉じられていない括弧 '['"},
	{diag.SynUnclosedBrace.ID(), "Unclosed brace '{'", "閉じられていない波括弧 '{'"},
	{diag.SynUnclosedParen.ID(), "Unclosed parenthesis '('", "閉じられていない丸括弧 '('"},
	{diag.SynUnclosedSingleQuote.ID(), "Unclosed single quote", "閉じられていないシングルクォート"},
	{diag.SynUnclosedDoubleQuote.ID(), "Unclosed double quote", "閉じられていないダブルクォート"},
	// "${" starts a catalog variable, so the construct is passed as an argument
	{diag.SynUnclosedVarExpansion.ID(), "Unclosed variable expansion %s", "閉じられていない変数展開 %s"},
	{diag.SynUnclosedCmdSubst.ID(), "Unclosed command substitution %s", "閉じられていないコマンド置換 %s"},

	// Best practice
	{diag.BestMissingSetE.ID(), "Consider using 'set -e' to exit on errors", "'set -e' の使用を検討してください（エラー時に終了）"},
	{diag.BestMissingSetU.ID(), "Consider using 'set -u' to treat unset variables as errors", "'set -u' の使用を検討してください（未定義変数をエラーとして扱う）"},
	{diag.BestMissingPipefail.ID(), "Consider using 'set -o pipefail' to catch errors in pipelines", "'set -o pipefail' の使用を検討してください（パイプライン内のエラーを検出）"},
	{diag.BestUnquotedVariable.ID(), `Unquoted variable usage - consider using "$variable" to prevent word splitting`, `クォートされていない変数 - 単語分割を防ぐため "$variable" の使用を検討してください`},
	{diag.BestCdWithoutCheck.ID(), "cd command without error checking - consider using 'cd dir || exit 1'", "cdコマンドにエラーチェックがありません - 'cd dir || exit 1' の使用を検討してください"},
	{diag.BestBacktickSubst.ID(), "Use $(...) instead of backticks for command substitution", "コマンド置換にはバッククォートではなく $(...) を使用してください"},

	// Security
	{diag.SecEval.ID(), "Usage of 'eval' is dangerous - avoid dynamic code execution", "'eval' の使用は危険です - 動的なコード実行を避けてください"},
	{diag.SecCurlPipeShell.ID(), "Piping curl/wget directly to shell is dangerous - download and inspect first", "curl/wgetを直接シェルにパイプするのは危険です - まずダウンロードして検査してください"},
	{diag.SecDangerousRm.ID(), "Dangerous rm -rf usage with variable or root path - add proper validation", "変数またはルートパスでの危険な rm -rf の使用 - 適切な検証を追加してください"},
	{diag.SecUserInputInCmd.ID(), "User input used in command execution - validate and sanitize input", "ユーザー入力がコマンド実行で使用されています - 入力の検証とサニタイズを行ってください"},

	// Style
	{diag.StyTabIndent.ID(), "Use spaces instead of tabs for indentation", "インデントにはタブではなくスペースを使用してください"},
	{diag.StyOddIndent.ID(), "Inconsistent indentation - use 2 or 4 spaces", "インデントが不統一です - 2または4スペースを使用してください"},
	{diag.StyLineTooLong.ID(), "Line too long (%s > %s characters)", "行が長すぎます (%s > %s 文字)"},
	{diag.StyFunctionNaming.ID(), "Function name '%s' should use snake_case (lowercase with underscores)", "関数名 '%s' はスネークケース（小文字とアンダースコア）を使用してください"},
	{diag.StyVariableNaming.ID(), "Local variable '%s' should use lowercase with underscores", "ローカル変数 '%s' は小文字とアンダースコアを使用してください"},
}

// builtinArgs are prepended to caller arguments for messages whose text
// embeds a literal the catalog syntax would otherwise interpret.
var builtinArgs = map[string][]any{
	diag.SynUnclosedVarExpansion.ID(): {"${...}"},
	diag.SynUnclosedCmdSubst.ID():     {"$(...)"},
}

var (
	cat   catalog.Catalog
	known map[string]bool
)

func init() {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	known = make(map[string]bool, len(entries))
	for _, e := range entries {
		if err := b.SetString(language.English, e.id, e.en); err != nil {
			panic(fmt.Errorf("i18n: %s: %w", e.id, err))
		}
		if err := b.SetString(language.Japanese, e.id, e.ja); err != nil {
			panic(fmt.Errorf("i18n: %s: %w", e.id, err))
		}
		known[e.id] = true
	}
	cat = b
}

// Has reports whether id is in the catalog.
func Has(id string) bool {
	return known[id]
}

// Message resolves id for loc and formats args into it. Unknown ids are
// returned unchanged.
func Message(loc Locale, id string, args ...any) string {
	if !known[id] {
		return id
	}
	if pre, ok := builtinArgs[id]; ok {
		args = append(append(make([]any, 0, len(pre)+len(args)), pre...), args...)
	}
	p := message.NewPrinter(loc.Tag(), message.Catalog(cat))
	return p.Sprintf(id, args...)
}

// RuleMessage resolves the message of a rule code.
func RuleMessage(loc Locale, code diag.Code, args ...any) string {
	return Message(loc, code.ID(), args...)
}

// SeverityLabel returns the localized severity shown in text output.
func SeverityLabel(loc Locale, sev diag.Severity) string {
	return Message(loc, "severity."+sev.Label())
}

// CategoryLabel returns the localized category name.
func CategoryLabel(loc Locale, c diag.Category) string {
	return Message(loc, "category."+c.Slug())
}
