package services

import (
	"fmt"
	"strings"
)

// Slugify derives a URL-safe identifier from a display name: lower-cased,
// non-alphanumeric runs collapsed into single hyphens, no leading or
// trailing hyphen. "Jade Garden" -> "jade-garden".
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// uniqueSlug resolves sibling collisions by numeric suffixing within the
// parent scope: downtown-branch, downtown-branch-2, downtown-branch-3, ...
func uniqueSlug(name string, exists func(slug string) (bool, error)) (string, error) {
	base := Slugify(name)
	if base == "" {
		return "", fmt.Errorf("%w: name produces an empty slug", ErrValidation)
	}
	slug := base
	for n := 2; ; n++ {
		taken, err := exists(slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
}
