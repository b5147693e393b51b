// Package dataset defines the entity tables the pipeline builds and the JSON
// snapshot files it reads and writes between runs.
package dataset

import "time"

// Tour is one immersive tour listing ("VR" record in the site data).
type Tour struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	Category      string `json:"category"`
	ShortCategory string `json:"shortCategory"`
	Device        string `json:"device"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Cover         string `json:"cover"`
	AssetCover    string `json:"assetCover"`
	RemoteCover   string `json:"remoteCover"`
	Author        string `json:"author"`
	Carousel      bool   `json:"carousel,omitempty"`
}

// HasReadableMetadata reports whether the tour can be rendered as a card:
// a title plus at least one cover reference.
func (t Tour) HasReadableMetadata() bool {
	if t.Title == "" {
		return false
	}
	return t.Cover != "" || t.AssetCover != "" || t.RemoteCover != ""
}

// CanonicalURL builds the default showcase link for an id when the source
// row carried none.
func CanonicalURL(id string) string {
	return "https://realsee.ai/" + id
}

// Professional is a creator/photographer profile aggregating tours.
// The JSON field casing mirrors the column labels of the source spreadsheet,
// which the front end consumes as-is.
type Professional struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	ShortBio        string   `json:"shortBio"`
	AboutTheCreator string   `json:"aboutTheCreator"`
	Location        string   `json:"Location"`
	Website         string   `json:"Website"`
	Email           string   `json:"email"`
	CountryTag      string   `json:"CountryTag"`
	CityTag         string   `json:"CityTag"`
	LinkedIn        string   `json:"linkedin"`
	Instagram       string   `json:"instagram"`
	Facebook        string   `json:"facebook"`
	YouTube         string   `json:"youtube"`
	Vimeo           string   `json:"vimeo"`
	VRIDs           []string `json:"vrIds"`
}

// Tag is a derived cross-reference entry, keyed "category:<slug>" or
// "device:<slug>".
type Tag struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Label string `json:"label"`
}

const (
	TagTypeCategory = "category"
	TagTypeDevice   = "device"
)

// CarouselEntry is one slot of the homepage rotation.
type CarouselEntry struct {
	VRID      string `json:"vrId"`
	Order     int    `json:"order"`
	ImagePath string `json:"imagePath,omitempty"`
}

// AuditReport summarizes a run that left entities needing manual follow-up.
// It is diagnostic output only and is never read back by the pipeline.
type AuditReport struct {
	Timestamp    time.Time      `json:"timestamp"`
	MetaSummary  map[string]int `json:"metaSummary"`
	Missing      []MissingEntry `json:"missing,omitempty"`
	RemovedVRIDs []string       `json:"removedVrIds"`
}

// MissingEntry records why one tour id has no usable metadata.
type MissingEntry struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}
