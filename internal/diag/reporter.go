package diag

// Reporter: минимальный контракт получения issues от правил.
type Reporter interface {
	Report(is Issue)
}

// ReportReporter appends into Dst.
type ReportReporter struct{ Dst *Report }

func (r ReportReporter) Report(is Issue) {
	if r.Dst == nil {
		return
	}
	r.Dst.Add(is)
}
