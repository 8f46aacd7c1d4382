package services

import (
	"regexp"
	"strings"
)

var (
	urlPattern        = regexp.MustCompile(`http\S+`)
	nonWordPattern    = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize produces the canonical form used for similarity scoring and
// classification: lowercase, no URLs, no punctuation, single-spaced.
// Punctuation is stripped before whitespace is collapsed so that
// separators like " - " never leave a double space behind.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = nonWordPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// NormalizeForMatch is the lighter form used for skill extraction. It keeps
// punctuation so vocabulary terms like "c++" and "c#" are still matchable.
func NormalizeForMatch(text string) string {
	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
