package textutil

import (
	"regexp"
	"strings"
)

var urlPattern = regexp.MustCompile(`https?://[^\s"'<>]+`)

// SanitizeURL extracts the first well-formed http(s) URL from noisy text.
// Trailing punctuation and unbalanced closing parentheses leaked from
// copy-pasted prose are trimmed. Bare "www." values are upgraded to https.
// mailto: values pass through unchanged so email cells survive intact.
// Returns "" when no URL can be recovered.
func SanitizeURL(value string) string {
	value = Clean(value)
	if value == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(value), "mailto:") {
		return value
	}

	match := urlPattern.FindString(value)
	if match == "" {
		if strings.HasPrefix(strings.ToLower(value), "www.") {
			token := strings.Fields(value)[0]
			return "https://" + trimTrailingJunk(token)
		}
		return ""
	}
	return trimTrailingJunk(match)
}

// trimTrailingJunk drops punctuation that commonly rides along when a URL is
// copied out of prose. A closing parenthesis is kept only when the URL itself
// contains the matching opener.
func trimTrailingJunk(u string) string {
	for len(u) > 0 {
		last := u[len(u)-1]
		switch last {
		case '.', ',', ';', ':', '!', '?', '\'', '"':
			u = u[:len(u)-1]
		case ')':
			if strings.Count(u, "(") >= strings.Count(u, ")") {
				return u
			}
			u = u[:len(u)-1]
		default:
			return u
		}
	}
	return u
}

// ExtractURLs returns every http(s) URL found in noisy free text, each
// trimmed of trailing punctuation. Used for social-media cells that hold
// several links in one cell.
func ExtractURLs(value string) []string {
	value = Clean(value)
	if value == "" {
		return nil
	}
	matches := urlPattern.FindAllString(value, -1)
	urls := make([]string, 0, len(matches))
	for _, match := range matches {
		if cleaned := trimTrailingJunk(match); cleaned != "" {
			urls = append(urls, cleaned)
		}
	}
	return urls
}

// NormalizeEmail strips a mailto: prefix, lower-cases, and trims.
func NormalizeEmail(value string) string {
	value = Clean(value)
	value = strings.TrimPrefix(strings.ToLower(value), "mailto:")
	return strings.TrimSpace(value)
}
