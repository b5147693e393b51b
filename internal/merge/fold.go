package merge

import (
	"log/slog"

	"tourpipe/internal/identity"
	"tourpipe/internal/ingest"
	"tourpipe/internal/logging"
)

// FoldStats counts what happened while folding source rows.
type FoldStats struct {
	Rows        int
	Skipped     int
	ToursMerged int
}

// FoldRows replays the spreadsheet rows in file order into the tour table and
// professional set.
//
// A blank owner cell inherits the last non-blank name seen, emulating the
// sheet's merged cells; many creators carry their name only on their first
// row. Rows with neither a resolvable name nor a derivable tour id are
// expected noise in a hand-maintained sheet and are skipped silently at debug
// level.
func FoldRows(rows []ingest.Row, table *Table, pros *ProfessionalSet, logger *slog.Logger) FoldStats {
	logger = logging.NewComponentLogger(logger, "merge")

	// The sheet is the sole authority on carousel membership, so a cleared
	// cell un-flags a tour the seed snapshot still carried.
	table.ResetCarousel()

	stats := FoldStats{Rows: len(rows)}
	lastSeenName := ""

	for i, row := range rows {
		name := row.OwnerName
		if name == "" {
			name = lastSeenName
		} else {
			lastSeenName = name
		}

		vrID := identity.ExtractID(row.ShowcaseLink)
		if name == "" && vrID == "" {
			stats.Skipped++
			logger.Debug("skipping row", logging.Int("row", i+2), logging.String("reason", "no owner name and no tour link"))
			continue
		}

		if vrID != "" {
			table.Merge(TourCandidate{
				ID:         vrID,
				URL:        row.ShowcaseLink,
				Category:   row.Category,
				Device:     row.Device,
				AuthorName: name,
				Carousel:   row.Carousel,
			})
			stats.ToursMerged++
		} else if row.ShowcaseLink != "" {
			stats.Skipped++
			logger.Debug("skipping tour link", logging.Int("row", i+2), logging.String("link", row.ShowcaseLink), logging.String("reason", "no derivable id"))
		}

		pros.Apply(name, row, vrID)
	}

	return stats
}
