package derive

import (
	"sort"

	"tourpipe/internal/dataset"
	"tourpipe/internal/textutil"
)

// Tags derives the category and device tag tables from the tour set. Exactly
// one tag is emitted per distinct (type, slug) pair, and each table is sorted
// by tag id so reruns over an unchanged tour table are byte-identical.
func Tags(tours []dataset.Tour) (categories, devices []dataset.Tag) {
	seenCategories := make(map[string]struct{})
	seenDevices := make(map[string]struct{})

	for _, tour := range tours {
		if tour.Category != "" {
			short := tour.ShortCategory
			if short == "" {
				short = dataset.ShortCategory(tour.Category)
			}
			if _, dup := seenCategories[short]; !dup && short != "" {
				seenCategories[short] = struct{}{}
				categories = append(categories, dataset.Tag{
					ID:    dataset.TagTypeCategory + ":" + short,
					Type:  dataset.TagTypeCategory,
					Label: tour.Category,
				})
			}
		}

		if tour.Device != "" {
			slug := textutil.Slugify(tour.Device)
			if _, dup := seenDevices[slug]; !dup && slug != "" {
				seenDevices[slug] = struct{}{}
				devices = append(devices, dataset.Tag{
					ID:    dataset.TagTypeDevice + ":" + slug,
					Type:  dataset.TagTypeDevice,
					Label: tour.Device,
				})
			}
		}
	}

	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	sort.Slice(devices, func(i, j int) bool { return devices[i].ID < devices[j].ID })
	return categories, devices
}
