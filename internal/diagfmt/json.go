package diagfmt

import (
	"encoding/json"
	"io"

	"shellchecker/internal/diag"
)

// IssueJSON представляет одну находку в JSON формате
type IssueJSON struct {
	Line     uint32 `json:"line"`
	Severity string `json:"severity"`
	Category string `json:"category"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// FileJSON holds the issues of one file. Errors and Warnings count every
// issue of the file, even when the list is filtered or truncated.
type FileJSON struct {
	Path     string      `json:"path"`
	Issues   []IssueJSON `json:"issues"`
	Errors   int         `json:"errors"`
	Warnings int         `json:"warnings"`
	Error    string      `json:"error,omitempty"`
}

// ReportOutput представляет корневую структуру JSON вывода
type ReportOutput struct {
	Files []FileJSON `json:"files"`
	Count int        `json:"count"`
}

// BuildOutput формирует структуру JSON-вывода без сериализации.
func BuildOutput(files []FileReport, opts JSONOpts) ReportOutput {
	out := ReportOutput{Files: make([]FileJSON, 0, len(files))}
	budget := opts.Max

	for _, fr := range files {
		fj := FileJSON{
			Path:   opts.PathMode.Display(fr.Path, opts.BaseDir),
			Issues: make([]IssueJSON, 0),
		}
		if fr.Err != nil {
			fj.Error = fr.Err.Error()
			out.Files = append(out.Files, fj)
			continue
		}

		fj.Errors = fr.Report.ErrorCount()
		fj.Warnings = fr.Report.WarningCount()
		for _, is := range fr.issues(opts.ErrorsOnly) {
			if opts.Max > 0 && budget == 0 {
				break
			}
			fj.Issues = append(fj.Issues, issueJSON(is))
			budget--
		}
		out.Count += len(fj.Issues)
		out.Files = append(out.Files, fj)
	}
	return out
}

func issueJSON(is diag.Issue) IssueJSON {
	return IssueJSON{
		Line:     is.Line,
		Severity: is.Severity.String(),
		Category: is.Category.Slug(),
		Code:     is.Code.ID(),
		Message:  is.Message,
	}
}

// JSON форматирует отчёты в JSON формат.
func JSON(w io.Writer, files []FileReport, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildOutput(files, opts))
}
