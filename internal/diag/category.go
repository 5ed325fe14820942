package diag

// Category is the concern group a rule belongs to.
type Category uint8

const (
	CatSyntax Category = iota
	CatBestPractice
	CatSecurity
	CatStyle
)

func (c Category) String() string {
	switch c {
	case CatSyntax:
		return "Syntax"
	case CatBestPractice:
		return "Best Practice"
	case CatSecurity:
		return "Security"
	case CatStyle:
		return "Style"
	}
	return "Unknown"
}

// Slug is the stable machine-readable name.
func (c Category) Slug() string {
	switch c {
	case CatSyntax:
		return "syntax"
	case CatBestPractice:
		return "best-practice"
	case CatSecurity:
		return "security"
	case CatStyle:
		return "style"
	}
	return "unknown"
}
