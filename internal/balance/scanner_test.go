package balance

import (
	"reflect"
	"testing"

	"shellchecker/internal/source"
)

func scan(text string) *Result {
	return Scan(source.NewScript(text))
}

func TestScanFindings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Finding
	}{
		{name: "empty", in: "", want: []Finding{}},
		{name: "balanced", in: "if [ -f x ]; then\n  f() { echo (a); }\nfi\n", want: []Finding{}},
		{
			name: "unclosed bracket",
			in:   "[\n",
			want: []Finding{{Kind: UnclosedBracket, Frame: Frame{Line: 1, Col: 1}}},
		},
		{
			name: "unmatched closing bracket",
			in:   "]\n",
			want: []Finding{{Kind: UnmatchedBracket, Frame: Frame{Line: 1, Col: 1}}},
		},
		{
			name: "stacks persist across lines",
			in:   "if [ -f x\n]; then\n",
			want: []Finding{},
		},
		{
			name: "unmatched closers of other kinds are ignored",
			in:   "echo })\n",
			want: []Finding{},
		},
		{
			name: "substitution openers are not pushed",
			in:   "echo ${x} $(pwd)\n",
			want: []Finding{},
		},
		{
			name: "drain order is brackets braces parens",
			in:   "( {\n[ x\n",
			want: []Finding{
				{Kind: UnclosedBracket, Frame: Frame{Line: 2, Col: 1}},
				{Kind: UnclosedBrace, Frame: Frame{Line: 1, Col: 3}},
				{Kind: UnclosedParen, Frame: Frame{Line: 1, Col: 1}},
			},
		},
		{
			name: "unmatched before unclosed",
			in:   "[ a\n] ]\n[\n",
			want: []Finding{
				{Kind: UnmatchedBracket, Frame: Frame{Line: 2, Col: 3}},
				{Kind: UnclosedBracket, Frame: Frame{Line: 3, Col: 1}},
			},
		},
		{
			name: "comment lines skipped",
			in:   "  # [ ( {\necho ok\n",
			want: []Finding{},
		},
		{
			name: "single quote",
			in:   "echo 'abc\n",
			want: []Finding{{Kind: UnclosedSingleQuote, Frame: Frame{Line: 1}}},
		},
		{
			name: "both quotes open",
			in:   `echo "a' b` + "\n" + `echo 'c" d` + "\n",
			want: []Finding{
				{Kind: UnclosedDoubleQuote, Frame: Frame{Line: 1}},
				{Kind: UnclosedSingleQuote, Frame: Frame{Line: 2}},
			},
		},
		{
			name: "escaped quote is not examined",
			in:   `echo \"hi` + "\n",
			want: []Finding{},
		},
		{
			name: "quote state resets per line",
			in:   "echo \"a\nb\"\n",
			want: []Finding{
				{Kind: UnclosedDoubleQuote, Frame: Frame{Line: 1}},
				{Kind: UnclosedDoubleQuote, Frame: Frame{Line: 2}},
			},
		},
		{
			name: "open var expansion",
			in:   "echo ${HOME\n",
			want: []Finding{{Kind: UnclosedVarExpansion, Frame: Frame{Line: 1}}},
		},
		{
			name: "open command substitution",
			in:   "x=$(ls\n",
			want: []Finding{{Kind: UnclosedCmdSubst, Frame: Frame{Line: 1}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := allFindings(scan(tt.in))
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("findings mismatch:\nwant %+v\n got %+v", tt.want, got)
			}
		})
	}
}

func TestScanGroups(t *testing.T) {
	res := scan("echo ${x 'q\n")
	// '{' after '$' is not pushed
	if len(res.Delimiters) != 0 {
		t.Fatalf("unexpected delimiters: %+v", res.Delimiters)
	}
	if len(res.Quotes) != 1 || res.Quotes[0].Kind != UnclosedSingleQuote {
		t.Fatalf("unexpected quotes: %+v", res.Quotes)
	}
	if len(res.Expansions) != 1 || res.Expansions[0].Kind != UnclosedVarExpansion {
		t.Fatalf("unexpected expansions: %+v", res.Expansions)
	}
}

func TestScanDeterministic(t *testing.T) {
	const in = "#!/bin/bash\n[ ( {\necho \"x\n]]\n"
	a, b := scan(in), scan(in)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("scan is not deterministic:\n%+v\n%+v", a, b)
	}
}

func TestKindCode(t *testing.T) {
	for k := UnmatchedBracket; k <= UnclosedCmdSubst; k++ {
		if k.Code().Category().String() != "Syntax" {
			t.Errorf("%s maps to non-syntax code %s", k, k.Code().ID())
		}
	}
	if Kind(200).Code().ID() != "E0000" {
		t.Fatal("unknown kind must map to the unknown code")
	}
}

func TestCursor(t *testing.T) {
	c := NewCursor("$(é")
	if c.Before() != 0 {
		t.Fatal("Before at start must be 0")
	}
	if r := c.Bump(); r != '$' || c.Col() != 1 {
		t.Fatalf("got %q col %d", r, c.Col())
	}
	if r := c.Bump(); r != '(' || c.Before() != '$' {
		t.Fatalf("got %q before %q", r, c.Before())
	}
	if r := c.Bump(); r != 'é' {
		t.Fatalf("got %q, want 'é'", r)
	}
	if !c.EOF() || c.Col() != 3 || c.Bump() != 0 {
		t.Fatal("cursor must stop at EOF on rune boundaries")
	}
}

func allFindings(r *Result) []Finding {
	out := make([]Finding, 0, len(r.Delimiters)+len(r.Quotes)+len(r.Expansions))
	out = append(out, r.Delimiters...)
	out = append(out, r.Quotes...)
	return append(out, r.Expansions...)
}
