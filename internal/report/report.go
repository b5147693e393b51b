package report

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"tourpipe/internal/dataset"
	"tourpipe/internal/enrich"
	"tourpipe/internal/fileutil"
	"tourpipe/internal/logging"
	"tourpipe/internal/merge"
)

// RemovalCandidates returns the ids that should be pruned: tours with no
// readable metadata that were also absent from the previous snapshot. Tours
// that were ever snapshotted successfully are kept even when a later
// enrichment pass regresses; a transient fetch failure must not delete
// known-good data.
func RemovalCandidates(table *merge.Table, prior []dataset.Tour) []string {
	known := make(map[string]struct{}, len(prior))
	for _, tour := range prior {
		known[tour.ID] = struct{}{}
	}

	var removed []string
	for _, tour := range table.Tours() {
		if tour.HasReadableMetadata() {
			continue
		}
		if _, ok := known[tour.ID]; ok {
			continue
		}
		removed = append(removed, tour.ID)
	}
	return removed
}

// Prune removes the given ids from the tour table and from every
// professional's tour list, keeping the two outputs consistent. The carousel
// is derived after pruning and needs no separate subtraction.
func Prune(table *merge.Table, pros *merge.ProfessionalSet, ids []string, logger *slog.Logger) {
	if len(ids) == 0 {
		return
	}
	table.Remove(ids)
	pros.RemoveTours(ids)
	logging.NewComponentLogger(logger, "report").Info("pruned unreadable tours",
		logging.Int("count", len(ids)))
}

// Build assembles the audit report for a run.
func Build(now time.Time, summary enrich.Summary, removed []string) dataset.AuditReport {
	if removed == nil {
		removed = []string{}
	}
	return dataset.AuditReport{
		Timestamp: now.UTC(),
		MetaSummary: map[string]int{
			"fetched":        summary.Fetched,
			"cached":         summary.Cached,
			"fetchFailed":    summary.FetchFailed,
			"downloaded":     summary.Downloaded,
			"downloadFailed": summary.DownloadFailed,
		},
		Missing:      summary.Missing,
		RemovedVRIDs: removed,
	}
}

// Write persists the report under dir with a sortable timestamped name and
// returns the path. Callers should only write when the report carries missing
// entries; clean runs leave no file behind.
func Write(dir string, rep dataset.AuditReport) (string, error) {
	name := fmt.Sprintf("audit-%s.json", rep.Timestamp.UTC().Format("20060102-150405"))
	path := filepath.Join(dir, name)
	if err := fileutil.WriteJSON(path, rep); err != nil {
		return "", fmt.Errorf("write audit report: %w", err)
	}
	return path, nil
}
