package balance

import "shellchecker/internal/diag"

// Kind identifies what the scanner found.
type Kind uint8

const (
	UnmatchedBracket Kind = iota
	UnclosedBracket
	UnclosedBrace
	UnclosedParen
	UnclosedSingleQuote
	UnclosedDoubleQuote
	UnclosedVarExpansion
	UnclosedCmdSubst
)

var kindCodes = [...]diag.Code{
	UnmatchedBracket:     diag.SynUnmatchedBracket,
	UnclosedBracket:      diag.SynUnclosedBracket,
	UnclosedBrace:        diag.SynUnclosedBrace,
	UnclosedParen:        diag.SynUnclosedParen,
	UnclosedSingleQuote:  diag.SynUnclosedSingleQuote,
	UnclosedDoubleQuote:  diag.SynUnclosedDoubleQuote,
	UnclosedVarExpansion: diag.SynUnclosedVarExpansion,
	UnclosedCmdSubst:     diag.SynUnclosedCmdSubst,
}

// Code maps the kind onto its rule code.
func (k Kind) Code() diag.Code {
	if int(k) < len(kindCodes) {
		return kindCodes[k]
	}
	return diag.UnknownCode
}

func (k Kind) String() string {
	switch k {
	case UnmatchedBracket:
		return "unmatched-bracket"
	case UnclosedBracket:
		return "unclosed-bracket"
	case UnclosedBrace:
		return "unclosed-brace"
	case UnclosedParen:
		return "unclosed-paren"
	case UnclosedSingleQuote:
		return "unclosed-single-quote"
	case UnclosedDoubleQuote:
		return "unclosed-double-quote"
	case UnclosedVarExpansion:
		return "unclosed-var-expansion"
	case UnclosedCmdSubst:
		return "unclosed-cmd-subst"
	}
	return "unknown"
}

// Frame is where an opener was seen. Col is 0 for line-level findings.
type Frame struct {
	Line uint32
	Col  uint32
}

// Finding is one balance defect.
type Finding struct {
	Kind Kind
	Frame
}

// stack is a growable LIFO of open frames for one delimiter kind.
type stack []Frame

func (s *stack) push(f Frame) { *s = append(*s, f) }

func (s *stack) pop() bool {
	if len(*s) == 0 {
		return false
	}
	*s = (*s)[:len(*s)-1]
	return true
}
