package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Environment variables overriding the corresponding path fields. These let a
// CI job or one-off rebuild point at different exports without editing the
// config file.
const (
	EnvSourceCSV = "TOURPIPE_SOURCE_CSV"
	EnvDataDir   = "TOURPIPE_DATA_DIR"
	EnvAssetDir  = "TOURPIPE_ASSET_DIR"
	EnvCacheDir  = "TOURPIPE_CACHE_DIR"
)

func (c *Config) normalize() error {
	applyEnvOverride(&c.Paths.SourceCSV, EnvSourceCSV)
	applyEnvOverride(&c.Paths.DataDir, EnvDataDir)
	applyEnvOverride(&c.Paths.AssetDir, EnvAssetDir)
	applyEnvOverride(&c.Paths.CacheDir, EnvCacheDir)

	for _, field := range []*string{
		&c.Paths.SourceCSV,
		&c.Paths.DataDir,
		&c.Paths.AssetDir,
		&c.Paths.CacheDir,
		&c.Paths.RunDB,
		&c.Carousel.ImageDir,
	} {
		trimmed := strings.TrimSpace(*field)
		if trimmed == "" {
			*field = ""
			continue
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return err
		}
		*field = expanded
	}

	if c.Paths.RunDB == "" && c.Paths.DataDir != "" {
		c.Paths.RunDB = filepath.Join(c.Paths.DataDir, "runs.db")
	}

	if c.Enrich.Concurrency <= 0 {
		c.Enrich.Concurrency = Default().Enrich.Concurrency
	}
	if c.Enrich.TimeoutSeconds <= 0 {
		c.Enrich.TimeoutSeconds = Default().Enrich.TimeoutSeconds
	}
	if strings.TrimSpace(c.Enrich.UserAgent) == "" {
		c.Enrich.UserAgent = Default().Enrich.UserAgent
	}
	if len(c.Carousel.Extensions) == 0 {
		c.Carousel.Extensions = Default().Carousel.Extensions
	}
	for i, ext := range c.Carousel.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Carousel.Extensions[i] = ext
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}

	return nil
}

func applyEnvOverride(field *string, key string) {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		*field = strings.TrimSpace(value)
	}
}
