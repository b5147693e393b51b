package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadToursMissingFileIsEmptySeed(t *testing.T) {
	tours, err := LoadTours(filepath.Join(t.TempDir(), "vrs.json"))
	if err != nil {
		t.Fatalf("LoadTours: %v", err)
	}
	if len(tours) != 0 {
		t.Errorf("expected empty seed, got %d tours", len(tours))
	}
}

func TestLoadToursMalformedIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vrs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTours(path); err == nil {
		t.Fatal("expected error for malformed snapshot")
	}
}

func TestTourRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vrs.json")
	in := []Tour{{
		ID:            "Ae44XBBg",
		URL:           "https://realsee.ai/Ae44XBBg",
		Category:      "Residential",
		ShortCategory: "residential",
		Title:         "Loft Tour",
		Cover:         "https://img.example.com/x.jpg",
		Carousel:      true,
	}}

	if err := WriteTours(path, in); err != nil {
		t.Fatalf("WriteTours: %v", err)
	}
	out, err := LoadTours(path)
	if err != nil {
		t.Fatalf("LoadTours: %v", err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestHasReadableMetadata(t *testing.T) {
	tests := []struct {
		name string
		tour Tour
		want bool
	}{
		{"title and cover", Tour{Title: "T", Cover: "c"}, true},
		{"title and asset cover", Tour{Title: "T", AssetCover: "a"}, true},
		{"title and remote cover", Tour{Title: "T", RemoteCover: "r"}, true},
		{"title only", Tour{Title: "T"}, false},
		{"cover only", Tour{Cover: "c"}, false},
		{"empty", Tour{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tour.HasReadableMetadata(); got != tt.want {
				t.Errorf("HasReadableMetadata() = %v, want %v", got, tt.want)
			}
		})
	}
}
