package entity

import "strings"

// Slugify derives a URL slug from a title: lowercase, every run of characters
// outside [a-z0-9] collapsed to a single hyphen, leading and trailing hyphens trimmed.
//
// Slugify is idempotent: Slugify(Slugify(x)) == Slugify(x).
func Slugify(title string) string {
	lower := strings.ToLower(title)

	var b strings.Builder
	b.Grow(len(lower))
	pendingHyphen := false
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteByte(c)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

func containsFold(s, lowerSubstr string) bool {
	return strings.Contains(strings.ToLower(s), lowerSubstr)
}
