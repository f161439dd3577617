package posts

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// slugFallback is used when a title has no alphanumeric content at all.
const slugFallback = "untitled"

// maxSlugAttempts bounds the collision-resolution loop. In practice the
// counter stays in the single digits; hitting the cap means the exists
// check itself is broken.
const maxSlugAttempts = 10000

var ErrSlugExhausted = errors.New("slug suffix space exhausted")

// ExistsFunc reports whether a candidate slug is already taken. Callers bind
// it to the posts collection and exclude the post being updated, so renaming
// a post back to its own title does not force a numeric suffix.
type ExistsFunc func(candidate string) (bool, error)

// NormalizeSlug derives a URL-safe slug from a free-text title: lowercase,
// strip everything but letters, digits, spaces and hyphens, then collapse
// whitespace and hyphen runs into single hyphens and trim the ends.
func NormalizeSlug(title string) string {
	var b strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(title) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			pendingHyphen = true
		}
		// Every other character is dropped without leaving a separator,
		// so "My App 2.0" becomes "my-app-20".
	}

	if b.Len() == 0 {
		return slugFallback
	}
	return b.String()
}

// GenerateUniqueSlug normalizes the title and resolves collisions by
// appending -1, -2, ... until exists reports a free candidate.
func GenerateUniqueSlug(title string, exists ExistsFunc) (string, error) {
	base := NormalizeSlug(title)
	candidate := base

	for counter := 1; ; counter++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		if counter > maxSlugAttempts {
			return "", ErrSlugExhausted
		}
		candidate = base + "-" + strconv.Itoa(counter)
	}
}
