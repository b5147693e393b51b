package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains the input, output, and working directories.
type Paths struct {
	SourceCSV string `toml:"source_csv"`
	DataDir   string `toml:"data_dir"`
	AssetDir  string `toml:"asset_dir"`
	CacheDir  string `toml:"cache_dir"`
	RunDB     string `toml:"run_db"`
}

// Enrich contains settings for the metadata fetch stage.
type Enrich struct {
	Concurrency    int    `toml:"concurrency"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	UserAgent      string `toml:"user_agent"`
	DownloadCovers bool   `toml:"download_covers"`
}

// Carousel contains settings for homepage rotation derivation.
type Carousel struct {
	ImageDir   string   `toml:"image_dir"`
	Extensions []string `toml:"extensions"`
}

// Logging contains log output settings.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values for tourpipe.
type Config struct {
	Paths    Paths    `toml:"paths"`
	Enrich   Enrich   `toml:"enrich"`
	Carousel Carousel `toml:"carousel"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/tourpipe/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded, environment overrides applied, and
// defaults filled in.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("tourpipe.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// EnsureDirectories creates the directories a pipeline run writes into.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.AssetDir, c.Paths.CacheDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// ToursPath is the tour table snapshot (read as seed, written as output).
func (c *Config) ToursPath() string { return filepath.Join(c.Paths.DataDir, "vrs.json") }

// ProfessionalsPath is the creators table output.
func (c *Config) ProfessionalsPath() string {
	return filepath.Join(c.Paths.DataDir, "photographers.json")
}

// CategoryTagsPath is the derived category tag table output.
func (c *Config) CategoryTagsPath() string {
	return filepath.Join(c.Paths.DataDir, "category-tags.json")
}

// DeviceTagsPath is the derived device tag table output.
func (c *Config) DeviceTagsPath() string {
	return filepath.Join(c.Paths.DataDir, "device-tags.json")
}

// CarouselPath is the carousel snapshot (read as fallback seed, written as
// output).
func (c *Config) CarouselPath() string {
	return filepath.Join(c.Paths.DataDir, "carousel.json")
}

// ReportDir is where timestamped audit reports land.
func (c *Config) ReportDir() string { return filepath.Join(c.Paths.DataDir, "reports") }

// LockPath is the advisory lock guarding against concurrent runs.
func (c *Config) LockPath() string { return filepath.Join(c.Paths.CacheDir, "tourpipe.lock") }

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
