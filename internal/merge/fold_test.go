package merge

import (
	"reflect"
	"testing"

	"tourpipe/internal/dataset"
	"tourpipe/internal/ingest"
)

func TestFoldRowsBuildsTourAndProfessional(t *testing.T) {
	rows := []ingest.Row{{
		OwnerName:    "Alex Chen",
		ShowcaseLink: "https://realsee.ai/Ae44XBBg",
		Category:     "Residential",
	}}

	table := NewTable(nil)
	pros := NewProfessionalSet()
	stats := FoldRows(rows, table, pros, nil)

	if stats.ToursMerged != 1 || stats.Skipped != 0 {
		t.Errorf("stats = %+v", stats)
	}

	tour, ok := table.Get("Ae44XBBg")
	if !ok {
		t.Fatal("tour missing")
	}
	if tour.Category != "Residential" || tour.ShortCategory != "residential" || tour.Author != "Alex Chen" {
		t.Errorf("tour = %+v", tour)
	}

	people := pros.Professionals()
	if len(people) != 1 {
		t.Fatalf("professionals = %d", len(people))
	}
	if people[0].Name != "Alex Chen" || people[0].Slug != "alex-chen" {
		t.Errorf("professional = %+v", people[0])
	}
	if !reflect.DeepEqual(people[0].VRIDs, []string{"Ae44XBBg"}) {
		t.Errorf("vrIds = %v", people[0].VRIDs)
	}
	if people[0].ID != 1 {
		t.Errorf("id = %d, want 1", people[0].ID)
	}
}

func TestFoldRowsFillsDownOwnerName(t *testing.T) {
	rows := []ingest.Row{
		{OwnerName: "Alex Chen", ShowcaseLink: "https://realsee.ai/Ae44XBBg"},
		{ShowcaseLink: "https://realsee.ai/KqwPdxxE"},
	}

	table := NewTable(nil)
	pros := NewProfessionalSet()
	FoldRows(rows, table, pros, nil)

	people := pros.Professionals()
	if len(people) != 1 {
		t.Fatalf("expected one professional, got %d", len(people))
	}
	if !reflect.DeepEqual(people[0].VRIDs, []string{"Ae44XBBg", "KqwPdxxE"}) {
		t.Errorf("vrIds = %v", people[0].VRIDs)
	}
}

func TestFoldRowsProfileFieldsFirstNonEmptyWins(t *testing.T) {
	rows := []ingest.Row{
		{OwnerName: "Alex Chen", Location: "Berlin"},
		{OwnerName: "Alex Chen", Location: "Munich", ShortBio: "Bio text"},
	}

	table := NewTable(nil)
	pros := NewProfessionalSet()
	FoldRows(rows, table, pros, nil)

	p := pros.Professionals()[0]
	if p.Location != "Berlin" {
		t.Errorf("Location = %q, want first non-empty", p.Location)
	}
	if p.ShortBio != "Bio text" {
		t.Errorf("ShortBio = %q", p.ShortBio)
	}
}

func TestFoldRowsSkipsStructurallyEmptyRows(t *testing.T) {
	rows := []ingest.Row{
		{Category: "Residential"}, // no name, no link
		{OwnerName: "Alex Chen", ShowcaseLink: "not a url"},
	}

	table := NewTable(nil)
	pros := NewProfessionalSet()
	stats := FoldRows(rows, table, pros, nil)

	if stats.Skipped != 2 {
		t.Errorf("skipped = %d, want 2", stats.Skipped)
	}
	if table.Len() != 0 {
		t.Errorf("no tours should be created, got %d", table.Len())
	}
	// The named row still contributes a professional despite the bad link.
	if len(pros.Professionals()) != 1 {
		t.Errorf("professionals = %d, want 1", len(pros.Professionals()))
	}
}

func TestFoldRowsCarouselFollowsSheet(t *testing.T) {
	table := NewTable([]dataset.Tour{
		{ID: "Old00001", Carousel: true},
		{ID: "Keep0001", Carousel: true},
	})
	pros := NewProfessionalSet()

	// The fresh sheet flags Keep0001 and a new tour, and has cleared the cell
	// for Old00001.
	rows := []ingest.Row{
		{OwnerName: "Alex Chen", ShowcaseLink: "https://realsee.ai/New00001", Carousel: true},
		{OwnerName: "Alex Chen", ShowcaseLink: "https://realsee.ai/Keep0001", Carousel: true},
		{OwnerName: "Alex Chen", ShowcaseLink: "https://realsee.ai/Old00001"},
	}
	FoldRows(rows, table, pros, nil)

	old, _ := table.Get("Old00001")
	if old.Carousel {
		t.Error("cleared sheet cell should un-flag a previously flagged tour")
	}
	if got := table.CarouselOrder(); !reflect.DeepEqual(got, []string{"New00001", "Keep0001"}) {
		t.Errorf("CarouselOrder = %v, want sheet row order", got)
	}
}

func TestFoldRowsDuplicateTourIDSuppressed(t *testing.T) {
	rows := []ingest.Row{
		{OwnerName: "Alex Chen", ShowcaseLink: "https://realsee.ai/Ae44XBBg"},
		{OwnerName: "Alex Chen", ShowcaseLink: "https://realsee.ai/Ae44XBBg?entry=share"},
	}

	table := NewTable(nil)
	pros := NewProfessionalSet()
	FoldRows(rows, table, pros, nil)

	if table.Len() != 1 {
		t.Errorf("tours = %d, want 1 (same id must merge, never duplicate)", table.Len())
	}
	p := pros.Professionals()[0]
	if !reflect.DeepEqual(p.VRIDs, []string{"Ae44XBBg"}) {
		t.Errorf("vrIds = %v", p.VRIDs)
	}
}
