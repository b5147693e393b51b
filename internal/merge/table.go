package merge

import (
	"strings"

	"tourpipe/internal/dataset"
)

// localAssetPrefix is the path convention for covers already synced into the
// site's asset tree. A candidate cover under this prefix doubles as an asset
// cover without waiting for the enrichment stage.
const localAssetPrefix = "/assets/"

// TourCandidate is one partial tour record produced by a source row or by the
// enrichment stage. Empty fields mean "no opinion". HasEnrichment must be set
// by candidates that actually carry fetched metadata; without it the
// enrichment-class fields are ignored so a bare structural row cannot wipe
// previously fetched values.
type TourCandidate struct {
	ID            string
	URL           string
	Category      string
	Device        string
	AuthorName    string
	Title         string
	Description   string
	Cover         string
	AssetCover    string
	RemoteCover   string
	Carousel      bool
	HasEnrichment bool
}

// Table is the keyed tour table. Iteration order is insertion order: seed
// snapshot first, then first-seen order of new ids. Carousel flags are
// tracked separately in the order they were applied, since the homepage
// rotation follows the sheet's row order rather than table order.
type Table struct {
	tours    map[string]*dataset.Tour
	order    []string
	carousel []string
}

// NewTable builds a table seeded from the previous run's snapshot. Seed
// entries with duplicate or empty ids are dropped.
func NewTable(seed []dataset.Tour) *Table {
	t := &Table{tours: make(map[string]*dataset.Tour, len(seed))}
	for _, tour := range seed {
		if tour.ID == "" {
			continue
		}
		if _, ok := t.tours[tour.ID]; ok {
			continue
		}
		copied := tour
		t.tours[tour.ID] = &copied
		t.order = append(t.order, tour.ID)
		if tour.Carousel {
			t.carousel = append(t.carousel, tour.ID)
		}
	}
	return t
}

// Merge folds a candidate into the table. Candidates without an id are
// ignored; the caller is expected to have skipped such records already.
func (t *Table) Merge(c TourCandidate) {
	if c.ID == "" {
		return
	}

	tour, ok := t.tours[c.ID]
	if !ok {
		tour = &dataset.Tour{ID: c.ID, URL: dataset.CanonicalURL(c.ID)}
		t.tours[c.ID] = tour
		t.order = append(t.order, c.ID)
	}

	// Categorization fields: last non-empty wins, later sources correct
	// earlier ones.
	setIfPresent(&tour.URL, c.URL)
	if c.Category != "" {
		tour.Category = c.Category
		tour.ShortCategory = dataset.ShortCategory(c.Category)
	}
	setIfPresent(&tour.Device, c.Device)
	setIfPresent(&tour.Author, c.AuthorName)
	if c.Carousel && !tour.Carousel {
		tour.Carousel = true
		t.carousel = append(t.carousel, c.ID)
	}

	if c.HasEnrichment {
		fillIfEmpty(&tour.Title, c.Title)
		fillIfEmpty(&tour.Description, c.Description)
		fillIfEmpty(&tour.Cover, c.Cover)
		fillIfEmpty(&tour.AssetCover, c.AssetCover)
		fillIfEmpty(&tour.RemoteCover, c.RemoteCover)
	}

	// Keep cover/assetCover consistent without a separate pass.
	if strings.HasPrefix(tour.Cover, localAssetPrefix) {
		fillIfEmpty(&tour.AssetCover, tour.Cover)
	}
}

// Get returns a copy of the tour for id.
func (t *Table) Get(id string) (dataset.Tour, bool) {
	tour, ok := t.tours[id]
	if !ok {
		return dataset.Tour{}, false
	}
	return *tour, true
}

// ResetCarousel clears every carousel flag. Called before replaying a fresh
// sheet, whose flags are authoritative: a cleared cell must un-flag a tour
// that the seed snapshot still had flagged.
func (t *Table) ResetCarousel() {
	for _, id := range t.carousel {
		if tour, ok := t.tours[id]; ok {
			tour.Carousel = false
		}
	}
	t.carousel = nil
}

// CarouselOrder returns the flagged ids in the order the flags were applied.
func (t *Table) CarouselOrder() []string {
	out := make([]string, len(t.carousel))
	copy(out, t.carousel)
	return out
}

// Remove deletes the given ids, preserving the order of the remainder.
func (t *Table) Remove(ids []string) {
	if len(ids) == 0 {
		return
	}
	doomed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		doomed[id] = struct{}{}
	}
	kept := t.order[:0]
	for _, id := range t.order {
		if _, gone := doomed[id]; gone {
			delete(t.tours, id)
			continue
		}
		kept = append(kept, id)
	}
	t.order = kept

	flagged := t.carousel[:0]
	for _, id := range t.carousel {
		if _, gone := doomed[id]; !gone {
			flagged = append(flagged, id)
		}
	}
	t.carousel = flagged
}

// Tours returns the table contents in insertion order.
func (t *Table) Tours() []dataset.Tour {
	out := make([]dataset.Tour, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, *t.tours[id])
	}
	return out
}

// Len returns the number of tours in the table.
func (t *Table) Len() int { return len(t.order) }

func setIfPresent(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func fillIfEmpty(dst *string, value string) {
	if *dst == "" && value != "" {
		*dst = value
	}
}
