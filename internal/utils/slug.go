package utils

import (
	"regexp"
	"strings"
)

var (
	// \s is ASCII-only in RE2, so Unicode separators such as NBSP are listed explicitly.
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s\p{Z}-]`)
	slugWhitespace   = regexp.MustCompile(`[\s\p{Z}]+`)
)

// GenerateSlug derives a URL-safe identifier from a post title.
// Two titles that differ only in punctuation or case produce the same slug.
func GenerateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
