// Package identity derives stable tour ids from showcase URLs.
//
// The id is the join key for every downstream table, so extraction must be
// deterministic: the same tour linked with or without query parameters, a
// trailing slash, or a regional subdomain yields the same id.
package identity

import (
	"regexp"
	"strings"
)

// hostPattern matches the canonical tour-hosting domains and captures the
// path segment immediately following the host.
var hostPattern = regexp.MustCompile(`(?i)https?://(?:[\w-]+\.)*realsee\.(?:ai|com)/([A-Za-z0-9_-]+)`)

// fallbackPattern takes a trailing alphanumeric run of length >= 6, for
// shortened or mirrored links that skip the canonical domain.
var fallbackPattern = regexp.MustCompile(`([A-Za-z0-9]{6,})$`)

// ExtractID returns the stable entity id for a sanitized showcase URL, or ""
// when no id can be derived. Callers must skip records without an id rather
// than fabricate one.
func ExtractID(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}

	if m := hostPattern.FindStringSubmatch(url); m != nil {
		return m[1]
	}

	url = stripDecoration(url)
	if m := fallbackPattern.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return ""
}

// stripDecoration removes the query string, fragment, and trailing slashes so
// the fallback rule sees the final path segment only.
func stripDecoration(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	return strings.TrimRight(url, "/")
}
