package enrich

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"tourpipe/internal/textutil"
)

// PageMeta is the social-preview metadata extracted from a tour page.
type PageMeta struct {
	Title       string
	Description string
	Cover       string
}

// ParsePageMeta tokenizes an HTML document and extracts title, description,
// and cover image. Precedence per field: Open Graph tag, then Twitter Card
// tag, then the raw <title> element; first non-empty wins independently for
// each field.
func ParsePageMeta(r io.Reader) PageMeta {
	var og, twitter PageMeta
	var pageTitle string

	tokenizer := html.NewTokenizer(r)
	inTitle := false

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return resolveMeta(og, twitter, pageTitle)
		case html.TextToken:
			if inTitle {
				pageTitle += string(tokenizer.Text())
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := tokenizer.TagName()
			switch string(name) {
			case "title":
				inTitle = true
			case "meta":
				if hasAttr {
					applyMetaTag(tokenizer, &og, &twitter)
				}
			case "body":
				// Head is over; nothing below carries preview metadata.
				return resolveMeta(og, twitter, pageTitle)
			}
		case html.EndTagToken:
			if name, _ := tokenizer.TagName(); string(name) == "title" {
				inTitle = false
			}
		}
	}
}

func applyMetaTag(tokenizer *html.Tokenizer, og, twitter *PageMeta) {
	var key, content string
	for {
		attr, value, more := tokenizer.TagAttr()
		switch string(attr) {
		case "property", "name":
			key = strings.ToLower(string(value))
		case "content":
			content = string(value)
		}
		if !more {
			break
		}
	}
	if content == "" {
		return
	}

	switch key {
	case "og:title":
		fill(&og.Title, content)
	case "og:description":
		fill(&og.Description, content)
	case "og:image":
		fill(&og.Cover, content)
	case "twitter:title":
		fill(&twitter.Title, content)
	case "twitter:description":
		fill(&twitter.Description, content)
	case "twitter:image", "twitter:image:src":
		fill(&twitter.Cover, content)
	}
}

func resolveMeta(og, twitter PageMeta, pageTitle string) PageMeta {
	meta := PageMeta{
		Title:       firstNonEmpty(og.Title, twitter.Title, pageTitle),
		Description: firstNonEmpty(og.Description, twitter.Description),
		Cover:       firstNonEmpty(og.Cover, twitter.Cover),
	}
	meta.Title = textutil.Clean(meta.Title)
	meta.Description = textutil.Clean(meta.Description)
	meta.Cover = strings.TrimSpace(meta.Cover)
	return meta
}

func fill(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
