package merge

import (
	"tourpipe/internal/dataset"
	"tourpipe/internal/ingest"
	"tourpipe/internal/textutil"
)

// ProfessionalSet accumulates creator profiles keyed by name. Profile fields
// are fill-only-if-empty across repeated rows; tour ids attach in first-seen
// order with duplicates suppressed.
type ProfessionalSet struct {
	byName map[string]*professional
	order  []string
}

type professional struct {
	record dataset.Professional
	seen   map[string]struct{}
}

// NewProfessionalSet returns an empty set.
func NewProfessionalSet() *ProfessionalSet {
	return &ProfessionalSet{byName: make(map[string]*professional)}
}

// Apply folds one source row for the named creator, attaching vrID when
// non-empty. The caller resolves the name first (fill-down happens in Fold).
func (s *ProfessionalSet) Apply(name string, row ingest.Row, vrID string) {
	if name == "" {
		return
	}

	p, ok := s.byName[name]
	if !ok {
		p = &professional{
			record: dataset.Professional{Name: name, Slug: textutil.Slugify(name)},
			seen:   make(map[string]struct{}),
		}
		s.byName[name] = p
		s.order = append(s.order, name)
	}

	fillIfEmpty(&p.record.ShortBio, row.ShortBio)
	fillIfEmpty(&p.record.AboutTheCreator, row.About)
	fillIfEmpty(&p.record.Location, row.Location)
	fillIfEmpty(&p.record.Website, row.Website)
	fillIfEmpty(&p.record.Email, row.Email)
	fillIfEmpty(&p.record.CountryTag, row.CountryTag)
	fillIfEmpty(&p.record.CityTag, row.CityTag)
	fillIfEmpty(&p.record.LinkedIn, row.Socials.LinkedIn)
	fillIfEmpty(&p.record.Instagram, row.Socials.Instagram)
	fillIfEmpty(&p.record.Facebook, row.Socials.Facebook)
	fillIfEmpty(&p.record.YouTube, row.Socials.YouTube)
	fillIfEmpty(&p.record.Vimeo, row.Socials.Vimeo)

	if vrID != "" {
		if _, dup := p.seen[vrID]; !dup {
			p.seen[vrID] = struct{}{}
			p.record.VRIDs = append(p.record.VRIDs, vrID)
		}
	}
}

// RemoveTours drops the given tour ids from every creator's list.
func (s *ProfessionalSet) RemoveTours(ids []string) {
	if len(ids) == 0 {
		return
	}
	doomed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		doomed[id] = struct{}{}
	}
	for _, name := range s.order {
		p := s.byName[name]
		kept := p.record.VRIDs[:0]
		for _, id := range p.record.VRIDs {
			if _, gone := doomed[id]; gone {
				delete(p.seen, id)
				continue
			}
			kept = append(kept, id)
		}
		p.record.VRIDs = kept
	}
}

// Professionals returns the final table in first-seen order with sequential
// ids assigned. Ids are positional and not stable across runs; name+slug is
// the stable join key.
func (s *ProfessionalSet) Professionals() []dataset.Professional {
	out := make([]dataset.Professional, 0, len(s.order))
	for i, name := range s.order {
		record := s.byName[name].record
		record.ID = i + 1
		if record.VRIDs == nil {
			record.VRIDs = []string{}
		}
		out = append(out, record)
	}
	return out
}
