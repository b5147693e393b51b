package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// typographyReplacer maps punctuation NFKD leaves alone onto ASCII.
var typographyReplacer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"–", "-",
	"—", "-",
	"…", "...",
	" ", " ",
)

// asciiFolder strips combining marks after compatibility decomposition, so
// "Söderström" compares and slugifies as "Soderstrom".
var asciiFolder = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// sentinels are placeholder cell values treated as empty. 待填写 is the
// "to be filled" marker used throughout the source spreadsheets.
var sentinels = map[string]struct{}{
	"待填写":     {},
	"tbd":     {},
	"pending": {},
	"/":       {},
	"-":       {},
}

// FoldASCII normalizes typography and strips diacritics from s.
func FoldASCII(s string) string {
	s = typographyReplacer.Replace(s)
	folded, _, err := transform.String(asciiFolder, s)
	if err != nil {
		return s
	}
	return folded
}

// Clean sanitizes a raw cell value into a comparable single-line string.
// Internal whitespace runs (including newlines) collapse to one space,
// typography is folded, and sentinel placeholders become empty.
func Clean(value string) string {
	return clean(value, false)
}

// CleanMultiline behaves like Clean but preserves paragraph breaks, for long
// bio text where the line structure is intentional. Carriage returns are
// dropped and horizontal whitespace inside each line still collapses.
func CleanMultiline(value string) string {
	return clean(value, true)
}

func clean(value string, multiline bool) string {
	value = FoldASCII(value)
	value = strings.ReplaceAll(value, "\r\n", "\n")
	value = strings.ReplaceAll(value, "\r", "\n")

	var out string
	if multiline {
		lines := strings.Split(value, "\n")
		kept := make([]string, 0, len(lines))
		for _, line := range lines {
			kept = append(kept, collapseSpaces(line))
		}
		out = strings.TrimSpace(strings.Join(kept, "\n"))
		out = strings.Trim(out, "\n")
	} else {
		out = collapseSpaces(strings.ReplaceAll(value, "\n", " "))
	}

	if IsSentinel(out) {
		return ""
	}
	return out
}

// IsSentinel reports whether value is a placeholder equivalent to empty.
func IsSentinel(value string) bool {
	_, ok := sentinels[strings.ToLower(strings.TrimSpace(value))]
	return ok
}

func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
