package dataset

import (
	"strings"

	"tourpipe/internal/textutil"
)

// shortCategories maps the curated category labels used in the source
// spreadsheet to the short forms the front end routes on. Labels outside the
// table fall back to plain slugification.
var shortCategories = map[string]string{
	"residential":      "residential",
	"commercial":       "commercial",
	"art & exhibition": "exhibition",
	"hospitality":      "hospitality",
	"office":           "office",
	"retail":           "retail",
	"outdoor":          "outdoor",
	"education":        "education",
	"culture":          "culture",
}

// ShortCategory returns the normalized short form for a category label, or ""
// for an empty label.
func ShortCategory(label string) string {
	slug := textutil.Slugify(label)
	if slug == "" {
		return ""
	}
	if short, ok := shortCategories[strings.ToLower(textutil.Clean(label))]; ok {
		return short
	}
	return slug
}
