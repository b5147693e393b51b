// Package ingest reads the photographer spreadsheet export into normalized
// rows.
//
// The export is a CSV with a mix of English and Chinese column labels,
// merged-cell artifacts (a creator's name appears only on their first row),
// and hand-typed values. Header matching is alias-based so label tweaks in
// the sheet do not break the build, and every cell passes through textutil
// before anything downstream sees it.
package ingest
