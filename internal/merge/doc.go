// Package merge reconciles partial tour and creator records from multiple
// sources into one keyed table per entity type.
//
// The table is seeded from the previous run's snapshot, then source rows are
// folded in. Most fields follow a fill-only-if-empty policy so a sparse later
// source cannot clobber known-good data; categorization fields instead take
// the last non-empty value, because later rows tend to carry corrections.
// Merging is idempotent: folding the same candidate twice leaves the table
// unchanged.
package merge
