package enrich

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"tourpipe/internal/fileutil"
)

// extByContentType maps image response types to the extension the asset is
// stored under.
var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"image/avif": ".avif",
}

// downloadCover fetches the cover image for id and writes it into the asset
// directory, returning the site-relative path of the stored file. The query
// string is stripped first so the host serves the unscaled original. Stale
// files for the same id under a different extension are removed, since a
// tour's cover format can change between runs.
func (e *Enricher) downloadCover(ctx context.Context, id, coverURL string) (string, error) {
	requestURL := stripQuery(coverURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return "", fmt.Errorf("build cover request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch cover: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch cover: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read cover body: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty cover response")
	}

	ext := inferExtension(resp.Header.Get("Content-Type"), requestURL)
	fileName := id + ext

	if err := os.MkdirAll(e.assetDir, 0o755); err != nil {
		return "", fmt.Errorf("create asset directory: %w", err)
	}
	if err := fileutil.RemoveSiblings(e.assetDir, id, fileName); err != nil {
		return "", fmt.Errorf("remove stale covers: %w", err)
	}
	if err := os.WriteFile(filepath.Join(e.assetDir, fileName), data, 0o644); err != nil {
		return "", fmt.Errorf("write cover: %w", err)
	}

	return e.assetBase + "/" + fileName, nil
}

func stripQuery(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		return url[:i]
	}
	return url
}

// inferExtension picks a file extension from the response content type,
// falling back to the URL's own extension, then to .jpg.
func inferExtension(contentType, url string) string {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	if ext, ok := extByContentType[contentType]; ok {
		return ext
	}

	if ext := strings.ToLower(filepath.Ext(stripQuery(url))); ext != "" {
		for _, known := range extByContentType {
			if ext == known || (ext == ".jpeg" && known == ".jpg") {
				return known
			}
		}
	}
	return ".jpg"
}
