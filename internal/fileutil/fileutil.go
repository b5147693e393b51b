// Package fileutil provides small filesystem helpers shared by the pipeline.
package fileutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteJSON marshals value as pretty-printed UTF-8 JSON and writes it to path,
// creating parent directories as needed. The file ends with a newline so the
// output diffs cleanly under version control.
func WriteJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadJSON unmarshals the JSON file at path into value. A missing file is
// reported via os.IsNotExist on the returned error.
func ReadJSON(path string, value any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, value); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// SiteRelativeBase derives the public URL prefix for files in dir. Asset
// directories live under the site's public/ root; everything after that
// component is the served path. Snapshot files must carry these served paths,
// never the build machine's filesystem layout.
func SiteRelativeBase(dir string) string {
	normalized := filepath.ToSlash(dir)
	marker := "/public/"
	if i := strings.Index(normalized, marker); i >= 0 {
		return "/" + strings.Trim(normalized[i+len(marker):], "/")
	}
	return "/" + filepath.Base(normalized)
}

// RemoveSiblings deletes every file in dir whose name is base with any
// extension, except the one named keep. Used to drop stale cover downloads
// when a tour's cover changes format across runs.
func RemoveSiblings(dir, base, keep string) error {
	matches, err := filepath.Glob(filepath.Join(dir, base+".*"))
	if err != nil {
		return err
	}
	for _, match := range matches {
		if filepath.Base(match) == keep {
			continue
		}
		if err := os.Remove(match); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
