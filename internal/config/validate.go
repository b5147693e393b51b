package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks that the normalized configuration is internally consistent.
// It does not check that input files exist; the build command does that at
// run time so enrich-only and derive-only invocations work without a CSV.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Paths.DataDir) == "" {
		problems = append(problems, "paths.data_dir must be set")
	}
	if strings.TrimSpace(c.Paths.AssetDir) == "" {
		problems = append(problems, "paths.asset_dir must be set")
	}
	if strings.TrimSpace(c.Paths.CacheDir) == "" {
		problems = append(problems, "paths.cache_dir must be set")
	}
	if c.Enrich.Concurrency > 32 {
		problems = append(problems, fmt.Sprintf("enrich.concurrency %d is unreasonable; the tour host is a shared third party", c.Enrich.Concurrency))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format %q is not console or json", c.Logging.Format))
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}
