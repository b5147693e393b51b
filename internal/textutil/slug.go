package textutil

import "strings"

// Slugify converts value into a lowercase hyphen-separated slug safe for URLs
// and tag ids. Diacritics are folded first; anything that is not a letter or
// digit becomes a separator. Returns "" for values with no usable characters.
func Slugify(value string) string {
	value = strings.ToLower(FoldASCII(value))

	var b strings.Builder
	b.Grow(len(value))
	pendingSep := false
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}
	return b.String()
}
