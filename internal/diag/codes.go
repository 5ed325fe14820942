package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Синтаксис
	SynMissingShebang       Code = 1001
	SynInvalidShebang       Code = 1002
	SynUnmatchedBracket     Code = 1003
	SynUnclosedBracket      Code = 1004
	SynUnclosedBrace        Code = 1005
	SynUnclosedParen        Code = 1006
	SynUnclosedSingleQuote  Code = 1007
	SynUnclosedDoubleQuote  Code = 1008
	SynUnclosedVarExpansion Code = 1009
	SynUnclosedCmdSubst     Code = 1010

	// Best practice
	BestMissingSetE      Code = 2001
	BestMissingSetU      Code = 2002
	BestMissingPipefail  Code = 2003
	BestUnquotedVariable Code = 2004
	BestCdWithoutCheck   Code = 2005
	BestBacktickSubst    Code = 2006

	// Security
	SecEval           Code = 3001
	SecCurlPipeShell  Code = 3002
	SecDangerousRm    Code = 3003
	SecUserInputInCmd Code = 3004

	// Style
	StyTabIndent      Code = 4001
	StyOddIndent      Code = 4002
	StyLineTooLong    Code = 4003
	StyFunctionNaming Code = 4004
	StyVariableNaming Code = 4005
)

type codeInfo struct {
	title    string
	severity Severity
}

var codeTable = map[Code]codeInfo{
	UnknownCode:             {"Unknown rule", SevError},
	SynMissingShebang:       {"Missing shebang line", SevError},
	SynInvalidShebang:       {"Shebang does not name bash or sh", SevWarning},
	SynUnmatchedBracket:     {"Unmatched closing bracket", SevError},
	SynUnclosedBracket:      {"Unclosed bracket", SevError},
	SynUnclosedBrace:        {"Unclosed brace", SevError},
	SynUnclosedParen:        {"Unclosed parenthesis", SevError},
	SynUnclosedSingleQuote:  {"Unclosed single quote", SevError},
	SynUnclosedDoubleQuote:  {"Unclosed double quote", SevError},
	SynUnclosedVarExpansion: {"Unclosed variable expansion", SevError},
	SynUnclosedCmdSubst:     {"Unclosed command substitution", SevError},
	BestMissingSetE:         {"Script does not enable errexit", SevWarning},
	BestMissingSetU:         {"Script does not enable nounset", SevWarning},
	BestMissingPipefail:     {"Script does not enable pipefail", SevWarning},
	BestUnquotedVariable:    {"Unquoted variable expansion", SevWarning},
	BestCdWithoutCheck:      {"cd without error check", SevWarning},
	BestBacktickSubst:       {"Backtick command substitution", SevInfo},
	SecEval:                 {"Use of eval", SevError},
	SecCurlPipeShell:        {"Download piped into a shell", SevError},
	SecDangerousRm:          {"Dangerous rm -rf target", SevError},
	SecUserInputInCmd:       {"User input reaches command execution", SevWarning},
	StyTabIndent:            {"Tab indentation", SevInfo},
	StyOddIndent:            {"Inconsistent indentation", SevInfo},
	StyLineTooLong:          {"Line too long", SevInfo},
	StyFunctionNaming:       {"Function name is not snake_case", SevInfo},
	StyVariableNaming:       {"Variable name style", SevInfo},
}

// Codes returns every rule code in report order.
func Codes() []Code {
	return []Code{
		SynMissingShebang, SynInvalidShebang,
		SynUnmatchedBracket, SynUnclosedBracket, SynUnclosedBrace, SynUnclosedParen,
		SynUnclosedSingleQuote, SynUnclosedDoubleQuote,
		SynUnclosedVarExpansion, SynUnclosedCmdSubst,
		BestMissingSetE, BestMissingSetU, BestMissingPipefail,
		BestUnquotedVariable, BestCdWithoutCheck, BestBacktickSubst,
		SecEval, SecCurlPipeShell, SecDangerousRm, SecUserInputInCmd,
		StyTabIndent, StyOddIndent, StyLineTooLong, StyFunctionNaming, StyVariableNaming,
	}
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("BP%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEC%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("STY%04d", ic)
	}
	return "E0000"
}

// Category derives the rule group from the code range.
func (c Code) Category() Category {
	switch ic := int(c); {
	case ic >= 2000 && ic < 3000:
		return CatBestPractice
	case ic >= 3000 && ic < 4000:
		return CatSecurity
	case ic >= 4000 && ic < 5000:
		return CatStyle
	}
	return CatSyntax
}

// Severity is the severity every issue with this code is reported at.
func (c Code) Severity() Severity {
	info, ok := codeTable[c]
	if !ok {
		return codeTable[UnknownCode].severity
	}
	return info.severity
}

func (c Code) Title() string {
	info, ok := codeTable[c]
	if !ok {
		return codeTable[UnknownCode].title
	}
	return info.title
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
