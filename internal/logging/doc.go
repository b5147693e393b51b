// Package logging configures slog for the pipeline.
//
// Two output formats are supported: a compact console format intended for
// interactive runs (timestamp, level, component prefix, key=value pairs) and
// plain JSON for log collection. Components obtain a child logger through
// NewComponentLogger so every record carries a stable component attribute.
package logging
