// Package pipeline wires the processing stages into runnable sequences and
// enforces single-instance execution with a file lock so two concurrent runs
// cannot clobber the snapshot files.
package pipeline
