package ingest

import (
	"strings"

	"tourpipe/internal/textutil"
)

// Socials holds per-network profile links recovered from the free-text
// social-media cell.
type Socials struct {
	LinkedIn  string
	Instagram string
	Facebook  string
	YouTube   string
	Vimeo     string
}

// ParseSocials pulls every URL out of a social-media cell and files each one
// under its network by host. First link per network wins; unrecognized hosts
// are ignored rather than guessed at.
func ParseSocials(value string) Socials {
	var s Socials
	for _, url := range textutil.ExtractURLs(value) {
		host := strings.ToLower(hostOf(url))
		switch {
		case strings.Contains(host, "linkedin.com"):
			fillSocial(&s.LinkedIn, url)
		case strings.Contains(host, "instagram.com"):
			fillSocial(&s.Instagram, url)
		case strings.Contains(host, "facebook.com"), strings.Contains(host, "fb.com"):
			fillSocial(&s.Facebook, url)
		case strings.Contains(host, "youtube.com"), strings.Contains(host, "youtu.be"):
			fillSocial(&s.YouTube, url)
		case strings.Contains(host, "vimeo.com"):
			fillSocial(&s.Vimeo, url)
		}
	}
	return s
}

func fillSocial(slot *string, url string) {
	if *slot == "" {
		*slot = url
	}
}

func hostOf(url string) string {
	rest := url
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+3:]
	}
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
