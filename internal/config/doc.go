// Package config loads and validates the pipeline configuration.
//
// Configuration comes from a TOML file (default ~/.config/tourpipe/config.toml
// or ./tourpipe.toml), with path fields overridable through TOURPIPE_*
// environment variables so CI jobs can point at different exports without a
// config file per job.
package config
