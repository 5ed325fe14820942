// Package diag defines the issue model shared by the checker phases.
//
// # Data model
//
// Issue is the central record:
//
//   - Line – 1-based line of the finding; whole-file findings use line 1.
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Category – rule group (Syntax, Best Practice, Security, Style).
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – text already rendered for the run's locale.
//
// Report keeps issues in creation order and never deduplicates. Error and
// warning counts are derived on demand; Info is counted in neither.
//
// # Emitting issues
//
// Rules use a diag.Reporter to decouple emission from storage.
// ReportReporter appends into a *Report.
//
// # Consumers
//
//   - internal/diagfmt: renders reports into text/short/json/sarif.
//   - internal/driver: collects one report per file and hands them to the CLI.
//
// Package diag performs no IO and no localisation.
package diag
