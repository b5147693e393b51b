// Package enrich fills missing tour metadata from the public tour pages.
//
// For each tour lacking a title, description, or cover the enricher fetches
// the page, reads its social-preview tags, and optionally downloads the cover
// image into the site's asset tree. Results are cached one JSON file per tour
// id so repeat runs stay off the network; a failed fetch is recorded and
// skipped, never fatal, and the next run's cache miss is the retry.
//
// Fetches for different ids run on a bounded worker pool. Results are applied
// to the table only after the pool drains, so the merge itself stays
// single-threaded.
package enrich
