// Package runlog persists a per-run ledger in SQLite: when each pipeline run
// happened, its stage counters, and the per-id enrichment outcomes. The ledger
// is append-only history for the operator; the pipeline never reads it back to
// make decisions.
package runlog
