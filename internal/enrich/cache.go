package enrich

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"tourpipe/internal/fileutil"
	"tourpipe/internal/logging"
)

// CacheEntry is the persisted result of one successful metadata fetch.
type CacheEntry struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Cover       string    `json:"cover"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Cache stores one JSON file per tour id. Entries never expire on their own;
// deleting the cache directory forces a full refetch on the next run.
type Cache struct {
	dir    string
	logger *slog.Logger
}

// NewCache creates a cache rooted at dir.
func NewCache(dir string, logger *slog.Logger) *Cache {
	return &Cache{dir: dir, logger: logging.NewComponentLogger(logger, "metacache")}
}

// Lookup returns the cached entry for id. A missing or unparseable file is a
// miss; a corrupt file is additionally logged since it will be refetched and
// rewritten.
func (c *Cache) Lookup(id string) (CacheEntry, bool) {
	var entry CacheEntry
	if err := fileutil.ReadJSON(c.entryPath(id), &entry); err != nil {
		if !os.IsNotExist(err) {
			c.logger.Warn("unreadable cache entry, will refetch", logging.String("id", id), logging.Error(err))
		}
		return CacheEntry{}, false
	}
	if entry.ID == "" {
		entry.ID = id
	}
	return entry, true
}

// Store persists an entry. Failing to write the cache only costs the next
// run a refetch, so callers treat errors as warnings.
func (c *Cache) Store(entry CacheEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("cache entry without id")
	}
	if entry.FetchedAt.IsZero() {
		entry.FetchedAt = time.Now().UTC()
	}
	return fileutil.WriteJSON(c.entryPath(entry.ID), entry)
}

func (c *Cache) entryPath(id string) string {
	return filepath.Join(c.dir, id+".json")
}
