package report

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"tourpipe/internal/dataset"
	"tourpipe/internal/enrich"
	"tourpipe/internal/fileutil"
	"tourpipe/internal/ingest"
	"tourpipe/internal/merge"
)

func TestRemovalCandidatesPrunesOnlyNewUnreadableTours(t *testing.T) {
	prior := []dataset.Tour{{ID: "Known001", Title: "Old", Cover: "c"}}
	table := merge.NewTable(prior)
	table.Merge(merge.TourCandidate{ID: "Known001"})  // regressed fetch, still known-good
	table.Merge(merge.TourCandidate{ID: "NewBad01"})  // new, never enriched
	table.Merge(merge.TourCandidate{ID: "NewGood1", Title: "T", Cover: "c", HasEnrichment: true})

	got := RemovalCandidates(table, prior)
	if !reflect.DeepEqual(got, []string{"NewBad01"}) {
		t.Errorf("RemovalCandidates = %v", got)
	}
}

func TestRemovalCandidatesKeepsRegressedKnownTour(t *testing.T) {
	// The previous snapshot had readable metadata; this run's table does not
	// (say a corrupted seed row). Known ids are still never pruned.
	prior := []dataset.Tour{{ID: "Known001", Title: "Old", Cover: "c"}}
	table := merge.NewTable([]dataset.Tour{{ID: "Known001"}})

	if got := RemovalCandidates(table, prior); got != nil {
		t.Errorf("RemovalCandidates = %v, want none", got)
	}
}

func TestPruneCascades(t *testing.T) {
	table := merge.NewTable(nil)
	table.Merge(merge.TourCandidate{ID: "Keep0001", AuthorName: "Alex"})
	table.Merge(merge.TourCandidate{ID: "Gone0001", AuthorName: "Alex"})

	pros := merge.NewProfessionalSet()
	pros.Apply("Alex", ingest.Row{}, "Keep0001")
	pros.Apply("Alex", ingest.Row{}, "Gone0001")

	Prune(table, pros, []string{"Gone0001"}, nil)

	if table.Len() != 1 {
		t.Errorf("table length = %d", table.Len())
	}
	if _, ok := table.Get("Gone0001"); ok {
		t.Error("pruned tour still in table")
	}

	list := pros.Professionals()
	if len(list) != 1 || !reflect.DeepEqual(list[0].VRIDs, []string{"Keep0001"}) {
		t.Errorf("professionals = %+v", list)
	}
}

func TestBuildReport(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	summary := enrich.Summary{
		Fetched:     2,
		FetchFailed: 1,
		Missing:     []dataset.MissingEntry{{ID: "Bad00001", Reason: "fetch-failed"}},
	}

	rep := Build(now, summary, []string{"Bad00001"})

	if rep.Timestamp != now {
		t.Errorf("Timestamp = %v", rep.Timestamp)
	}
	if rep.MetaSummary["fetched"] != 2 || rep.MetaSummary["fetchFailed"] != 1 {
		t.Errorf("MetaSummary = %v", rep.MetaSummary)
	}
	if len(rep.Missing) != 1 || rep.RemovedVRIDs[0] != "Bad00001" {
		t.Errorf("report = %+v", rep)
	}
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	rep := Build(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), enrich.Summary{}, nil)

	path, err := Write(dir, rep)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "audit-20260314-093000.json" {
		t.Errorf("path = %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}

	var loaded dataset.AuditReport
	if err := fileutil.ReadJSON(path, &loaded); err != nil {
		t.Fatal(err)
	}
	if loaded.RemovedVRIDs == nil || len(loaded.RemovedVRIDs) != 0 {
		t.Errorf("RemovedVRIDs = %v", loaded.RemovedVRIDs)
	}
}
