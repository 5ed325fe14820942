package diag

// Issue is one finding. Message is already rendered for the run's locale.
type Issue struct {
	Line     uint32 // 1-based; whole-file findings use line 1
	Severity Severity
	Category Category
	Code     Code
	Message  string
}

// New builds an issue whose severity and category come from code.
func New(code Code, line uint32, msg string) Issue {
	return Issue{
		Line:     line,
		Severity: code.Severity(),
		Category: code.Category(),
		Code:     code,
		Message:  msg,
	}
}
