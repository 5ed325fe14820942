package diag

// Severity defines the importance of an issue.
// Higher values are more urgent.
type Severity uint8

const (
	// SevInfo is for advisory issues.
	SevInfo Severity = iota
	// SevWarning is for warning issues.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Label returns the lowercase form used by short and machine output.
func (s Severity) Label() string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}
