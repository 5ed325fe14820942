package diag

// Report is the ordered issue list of one analysis run.
type Report struct {
	items []Issue
}

func NewReport() *Report {
	return &Report{items: make([]Issue, 0, 16)}
}

// Add appends an issue. There is no deduplication.
func (r *Report) Add(is Issue) {
	r.items = append(r.items, is)
}

// AddIssue appends an issue built from its parts.
func (r *Report) AddIssue(line uint32, sev Severity, cat Category, code Code, msg string) {
	r.Add(Issue{Line: line, Severity: sev, Category: cat, Code: code, Message: msg})
}

// Len returns the number of issues.
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.items)
}

// Items returns the issues in creation order.
// Do not modify the returned slice.
func (r *Report) Items() []Issue {
	if r == nil {
		return nil
	}
	return r.items
}

// HasErrors reports whether any issue has Error severity.
func (r *Report) HasErrors() bool {
	return r.Count(SevError) > 0
}

// Count returns the number of issues with exactly sev.
func (r *Report) Count(sev Severity) int {
	n := 0
	for _, is := range r.Items() {
		if is.Severity == sev {
			n++
		}
	}
	return n
}

func (r *Report) ErrorCount() int {
	return r.Count(SevError)
}

func (r *Report) WarningCount() int {
	return r.Count(SevWarning)
}

// Filter returns the issues for which keep is true, preserving order.
func (r *Report) Filter(keep func(Issue) bool) []Issue {
	out := make([]Issue, 0, r.Len())
	for _, is := range r.Items() {
		if keep(is) {
			out = append(out, is)
		}
	}
	return out
}

// ErrorsOnly keeps Error issues.
func ErrorsOnly(is Issue) bool {
	return is.Severity == SevError
}
