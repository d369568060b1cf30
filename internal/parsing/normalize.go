// Package parsing provides text normalization and resume content extraction
// for the scoring engine.
package parsing

import (
	"regexp"
	"strings"
)

var (
	// leadingBulletRe strips bullet glyphs at the start of each line.
	leadingBulletRe = regexp.MustCompile(`(?m)^\s*•\s*`)
	// whitespaceRe collapses runs of whitespace to a single space.
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// NormalizeText cleans markdown and bullet artifacts out of a free-text field
// before matching: CRLF/CR become spaces, literal "**" bold markers and "•"
// glyphs are stripped, and whitespace runs collapse to a single space.
// Idempotent; an empty input yields an empty string.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	s := strings.ReplaceAll(text, "\r\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "**", "")
	s = leadingBulletRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "•", " ")
	s = whitespaceRe.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}
