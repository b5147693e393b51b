package dataset

import (
	"fmt"
	"os"

	"tourpipe/internal/fileutil"
)

// LoadTours reads the tour snapshot from a previous run. A missing file is a
// first run and yields an empty seed; a file that exists but does not parse
// is a fatal setup error.
func LoadTours(path string) ([]Tour, error) {
	var tours []Tour
	if err := fileutil.ReadJSON(path, &tours); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load tour snapshot: %w", err)
	}
	return tours, nil
}

// LoadCarousel reads the carousel snapshot from a previous run, with the same
// missing-file semantics as LoadTours.
func LoadCarousel(path string) ([]CarouselEntry, error) {
	var entries []CarouselEntry
	if err := fileutil.ReadJSON(path, &entries); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load carousel snapshot: %w", err)
	}
	return entries, nil
}

// WriteTours persists the tour table as the next run's seed.
func WriteTours(path string, tours []Tour) error {
	if tours == nil {
		tours = []Tour{}
	}
	return fileutil.WriteJSON(path, tours)
}

// WriteProfessionals persists the professionals table.
func WriteProfessionals(path string, pros []Professional) error {
	if pros == nil {
		pros = []Professional{}
	}
	return fileutil.WriteJSON(path, pros)
}

// WriteTags persists a derived tag table.
func WriteTags(path string, tags []Tag) error {
	if tags == nil {
		tags = []Tag{}
	}
	return fileutil.WriteJSON(path, tags)
}

// WriteCarousel persists the carousel table.
func WriteCarousel(path string, entries []CarouselEntry) error {
	if entries == nil {
		entries = []CarouselEntry{}
	}
	return fileutil.WriteJSON(path, entries)
}
