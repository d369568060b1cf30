package scoring

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/ats-scorer/internal/parsing"
	"github.com/jonathan/ats-scorer/internal/types"
)

// quantifiedPatterns detect measurable-impact phrasing in experience text.
var quantifiedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+(?:\.\d+)?%`),
	regexp.MustCompile(`(?i)\d+\+?\s*(?:years?|months?|days?)\b`),
	regexp.MustCompile(`(?i)\b(?:increased|reduced|saved|generated|improved)\s+(?:[a-z]+\s+)?by\s+\d+`),
	regexp.MustCompile(`\$\d[\d,]*`),
}

// actionTokenRe extracts candidate past/progressive verb tokens.
var actionTokenRe = regexp.MustCompile(`(?i)\b\w+(?:ed|ing)\b`)

// jobTitleScanLines bounds how deep into the job description the title
// inference looks.
const jobTitleScanLines = 10

// jobTitleMaxLen rejects prose lines masquerading as titles.
const jobTitleMaxLen = 100

// countQuantified counts quantified-achievement pattern hits across text.
func countQuantified(text string) int {
	total := 0
	for _, pattern := range quantifiedPatterns {
		total += len(pattern.FindAllStringIndex(text, -1))
	}
	return total
}

// scoreExperienceRelevance computes the Experience Relevance sub-score from
// quantified achievements, recognized action verbs, job-title overlap, and
// shared industry terms. Each category is capped independently before the
// final cap.
func (e *Engine) scoreExperienceRelevance(content parsing.ResumeContent, jobDescription string) types.SubScore {
	maxPoints := e.policy.ExperienceMax
	if content.Experience == "" {
		return types.SubScore{Score: 0, Max: maxPoints, Details: detailsNoExperience}
	}

	quantified := countQuantified(content.Experience)
	quantifiedPoints := clamp(float64(quantified)*e.policy.QuantifiedPerMatch, 0, e.policy.QuantifiedCap)

	verbCount := e.countActionVerbs(content.Experience)
	verbPoints := clamp(float64(verbCount), 0, e.policy.ActionVerbCap)

	titlePoints := 0.0
	if e.titlesOverlap(jobDescription, content) {
		titlePoints = e.policy.TitleOverlapPoints
	}

	industryPoints := 0.0
	jdLower := strings.ToLower(jobDescription)
	for _, term := range e.policy.IndustryTerms {
		if strings.Contains(jdLower, term) && strings.Contains(content.Experience, term) {
			industryPoints += e.policy.IndustryTermPoints
		}
	}
	industryPoints = clamp(industryPoints, 0, e.policy.IndustryTermCap)

	score := clamp(quantifiedPoints+verbPoints+titlePoints+industryPoints, 0, maxPoints)

	return types.SubScore{
		Score: score,
		Max:   maxPoints,
		Details: fmt.Sprintf("%d quantified achievements, %d action verbs recognized in experience",
			quantified, verbCount),
	}
}

// countActionVerbs counts distinct policy action verbs among the -ed/-ing
// tokens of the text.
func (e *Engine) countActionVerbs(text string) int {
	verbSet := make(map[string]bool, len(e.policy.ActionVerbs))
	for _, verb := range e.policy.ActionVerbs {
		verbSet[strings.ToLower(verb)] = true
	}

	found := make(map[string]bool)
	for _, token := range actionTokenRe.FindAllString(text, -1) {
		token = strings.ToLower(token)
		if verbSet[token] {
			found[token] = true
		}
	}
	return len(found)
}

// titlesOverlap tests whether the job description's inferred title shares
// more than the threshold Jaccard word-overlap with an experience section
// title.
func (e *Engine) titlesOverlap(jobDescription string, content parsing.ResumeContent) bool {
	jdTitle := inferJobTitle(jobDescription)
	if jdTitle == "" {
		return false
	}
	for _, section := range content.Sections {
		if section.Type != parsing.SectionExperience {
			continue
		}
		if jaccard(titleWords(jdTitle), titleWords(section.Title)) > e.policy.TitleOverlapThreshold {
			return true
		}
	}
	return false
}

// inferJobTitle picks the first capitalized line of reasonable length within
// the first few lines of the job description.
func inferJobTitle(jobDescription string) string {
	lines := strings.Split(jobDescription, "\n")
	if len(lines) > jobTitleScanLines {
		lines = lines[:jobTitleScanLines]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || len(line) > jobTitleMaxLen {
			continue
		}
		first := []rune(line)[0]
		if unicode.IsUpper(first) {
			return line
		}
	}
	return ""
}

func titleWords(title string) []string {
	return strings.Fields(strings.ToLower(title))
}

// jaccard computes |a ∩ b| / |a ∪ b| over word sets.
func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA := make(map[string]bool, len(a))
	for _, w := range a {
		setA[w] = true
	}
	union := make(map[string]bool, len(a)+len(b))
	for w := range setA {
		union[w] = true
	}
	intersection := 0
	seenB := make(map[string]bool, len(b))
	for _, w := range b {
		if seenB[w] {
			continue
		}
		seenB[w] = true
		union[w] = true
		if setA[w] {
			intersection++
		}
	}
	return float64(intersection) / float64(len(union))
}
