package main

import (
	"fmt"
	"io"

	"shellchecker/internal/driver"
	"shellchecker/internal/observ"
)

// printTimings writes the load/check phases summed over every file.
func printTimings(out io.Writer, results []*driver.Result) {
	if out == nil {
		return
	}
	reports := make([]observ.Report, 0, len(results))
	cached := 0
	for _, res := range results {
		if res.Cached {
			cached++
		}
		if res.Timing != nil {
			reports = append(reports, *res.Timing)
		}
	}
	if len(reports) == 0 {
		return
	}
	merged := observ.Merge(reports...)
	title := fmt.Sprintf("timings (%d files, %d cached)", len(results), cached)
	fmt.Fprint(out, merged.Summary(title))
}
