package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-scorer/internal/parsing"
	"github.com/jonathan/ats-scorer/internal/types"
)

// mappedSections lists the buckets the section mapper scans, in a fixed
// order. Certificates stays out of mapping; it only feeds the education
// sub-engine.
var mappedSections = []parsing.SectionType{
	parsing.SectionSkills,
	parsing.SectionExperience,
	parsing.SectionSummary,
	parsing.SectionEducation,
	parsing.SectionProjects,
}

// keywordPattern builds the match pattern for a keyword. Keywords containing
// punctuation ("/", "-", "_") match as raw case-insensitive substrings so
// compound terms like "ci/cd" still hit; everything else matches on
// whole-word boundaries.
func keywordPattern(keyword string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(strings.ToLower(keyword))
	if strings.ContainsAny(keyword, "/-_") {
		return regexp.MustCompile(`(?i)` + quoted)
	}
	return regexp.MustCompile(`(?i)\b` + quoted + `\b`)
}

// containsKeyword reports whether text matches the keyword under the
// whole-word/substring rule.
func containsKeyword(text, keyword string) bool {
	if text == "" || keyword == "" {
		return false
	}
	return keywordPattern(keyword).MatchString(text)
}

// countKeyword counts keyword occurrences in text under the same rule.
func countKeyword(text, keyword string) int {
	if text == "" || keyword == "" {
		return 0
	}
	return len(keywordPattern(keyword).FindAllStringIndex(text, -1))
}

// SectionMapping records that a keyword occurs in a section bucket.
type SectionMapping struct {
	Keyword     types.WeightedKeyword
	Section     parsing.SectionType
	Occurrences int
}

// mapKeywordSections counts each keyword's occurrences per content bucket,
// emitting one mapping per bucket where the count is positive. Iteration
// order is fixed (keywords in input order, buckets in mappedSections order)
// so downstream capping is deterministic.
func mapKeywordSections(content parsing.ResumeContent, kws []types.WeightedKeyword) []SectionMapping {
	mappings := make([]SectionMapping, 0, len(kws))
	for _, kw := range kws {
		pattern := keywordPattern(kw.Keyword)
		for _, section := range mappedSections {
			text := content.Bucket(section)
			if text == "" {
				continue
			}
			occurrences := len(pattern.FindAllStringIndex(text, -1))
			if occurrences > 0 {
				mappings = append(mappings, SectionMapping{
					Keyword:     kw,
					Section:     section,
					Occurrences: occurrences,
				})
			}
		}
	}
	return mappings
}

// matchesWithSynonyms tests keyword presence in text, falling back to the
// policy synonym table on a direct miss.
func (e *Engine) matchesWithSynonyms(text, keyword string) bool {
	if containsKeyword(text, keyword) {
		return true
	}
	for _, synonym := range e.policy.Synonyms[strings.ToLower(keyword)] {
		if containsKeyword(text, synonym) {
			return true
		}
	}
	return false
}
