// Package derive rebuilds the secondary tables from the final tour table.
//
// Tags and the carousel are never hand-edited: both are pure functions of the
// merged entity set (plus, for the carousel fallback, the previous run's
// ordering), recomputed from scratch every run so they cannot drift out of
// sync with the tours they reference.
package derive
