package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"tourpipe/internal/pipeline"
)

// printResult writes the end-of-run counters: a rounded table on a terminal,
// plain key=value lines when output is piped.
func printResult(out io.Writer, result *pipeline.Result) {
	rows := [][]string{
		{"rows read", strconv.Itoa(result.Rows)},
		{"rows skipped", strconv.Itoa(result.SkippedRows)},
		{"tours", strconv.Itoa(result.Tours)},
		{"professionals", strconv.Itoa(result.Professionals)},
		{"fetched", strconv.Itoa(result.Enrich.Fetched)},
		{"cached", strconv.Itoa(result.Enrich.Cached)},
		{"fetch failed", strconv.Itoa(result.Enrich.FetchFailed)},
		{"covers downloaded", strconv.Itoa(result.Enrich.Downloaded)},
		{"downloads failed", strconv.Itoa(result.Enrich.DownloadFailed)},
		{"removed", strconv.Itoa(len(result.Removed))},
	}

	if isTerminal(out) {
		fmt.Fprintln(out, renderTable(
			[]string{"Metric", "Count"},
			rows,
			[]columnAlignment{alignLeft, alignRight},
		))
	} else {
		for _, row := range rows {
			fmt.Fprintf(out, "%s=%s\n", strings.ReplaceAll(row[0], " ", "_"), row[1])
		}
	}

	if len(result.Removed) > 0 {
		fmt.Fprintf(out, "Removed ids: %s\n", strings.Join(result.Removed, ", "))
	}
	if result.ReportPath != "" {
		fmt.Fprintf(out, "Audit report: %s\n", result.ReportPath)
	}
	if result.DryRun {
		fmt.Fprintln(out, "Dry run: no snapshots were written")
	}
}
