package derive

import (
	"os"
	"path/filepath"

	"tourpipe/internal/dataset"
	"tourpipe/internal/fileutil"
)

// CarouselOptions controls imagePath attribution for carousel entries.
type CarouselOptions struct {
	// ImageDir holds pre-synced homepage images named <id><ext>. Emitted
	// paths are site-relative; the directory itself is only probed.
	ImageDir string
	// Extensions to probe, in order.
	Extensions []string
}

// Carousel picks the homepage rotation. Explicitly flagged tours win, in the
// order the flags appeared in the source sheet; when none are flagged the
// previous run's ordering is kept, filtered to ids still present. Order is
// reassigned as a dense 0-based sequence either way.
func Carousel(tours []dataset.Tour, flagged []string, prior []dataset.CarouselEntry, opts CarouselOptions) []dataset.CarouselEntry {
	present := make(map[string]struct{}, len(tours))
	for _, tour := range tours {
		present[tour.ID] = struct{}{}
	}

	var ids []string
	for _, id := range flagged {
		if _, ok := present[id]; ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		for _, entry := range prior {
			if _, ok := present[entry.VRID]; ok {
				ids = append(ids, entry.VRID)
			}
		}
	}

	entries := make([]dataset.CarouselEntry, 0, len(ids))
	for i, id := range ids {
		entries = append(entries, dataset.CarouselEntry{
			VRID:      id,
			Order:     i,
			ImagePath: probeImage(opts, id),
		})
	}
	return entries
}

// probeImage looks for a local homepage image for id, trying each configured
// extension against the image directory. Returns the site-relative path of
// the first hit, or "" when nothing is synced; the front end consumes the
// carousel table as-is, so the build machine's directory layout must never
// leak into it.
func probeImage(opts CarouselOptions, id string) string {
	if opts.ImageDir == "" {
		return ""
	}
	for _, ext := range opts.Extensions {
		candidate := filepath.Join(opts.ImageDir, id+ext)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return fileutil.SiteRelativeBase(opts.ImageDir) + "/" + id + ext
		}
	}
	return ""
}
