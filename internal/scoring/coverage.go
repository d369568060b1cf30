package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-scorer/internal/keywords"
	"github.com/jonathan/ats-scorer/internal/parsing"
	"github.com/jonathan/ats-scorer/internal/types"
)

// scoreKeywordCoverage computes the Keyword Coverage sub-score. The coverage
// percentage in the details string is matched/(matched+missing); the score
// itself comes from the section mapping instead, so where and how often a
// keyword appears matters more than binary presence. Summary contributions
// are capped to the first N unique keywords and a stuffing penalty applies
// above the extreme-repetition threshold.
func (e *Engine) scoreKeywordCoverage(content parsing.ResumeContent, matching, missing []types.WeightedKeyword) types.SubScore {
	maxPoints := e.policy.CoverageMax
	combined := len(matching) + len(missing)
	if combined == 0 {
		return types.SubScore{Score: 0, Max: maxPoints, Details: detailsNoKeywordData}
	}
	coveragePct := float64(len(matching)) / float64(combined) * 100

	kws := keywords.Dedupe(append(append([]types.WeightedKeyword{}, matching...), missing...))
	mappings := mapKeywordSections(content, kws)

	totalWeight := 0
	for _, kw := range kws {
		totalWeight += kw.Weight
	}

	summarySeen := make(map[string]bool)
	occurrenceTotals := make(map[string]int, len(kws))
	weightedSum := 0.0
	for _, m := range mappings {
		key := strings.ToLower(m.Keyword.Keyword)
		occurrenceTotals[key] += m.Occurrences

		if m.Section == parsing.SectionSummary {
			if !summarySeen[key] && len(summarySeen) >= e.policy.SummaryUniqueKeywords {
				continue
			}
			summarySeen[key] = true
		}

		occ := m.Occurrences
		if occ > e.policy.OccurrenceCap {
			occ = e.policy.OccurrenceCap
		}
		weightedSum += e.policy.SectionWeights[m.Section] * float64(m.Keyword.Weight) * float64(occ)
	}

	// Clamp before the stuffing penalty so inflated raw ratios cannot
	// absorb it.
	score := 0.0
	if totalWeight > 0 {
		score = clamp(weightedSum/float64(totalWeight)*maxPoints, 0, maxPoints)
	}

	// Penalize only extreme repetition of a single keyword; moderate reuse
	// across sections stays untouched.
	penalty := 0.0
	for _, total := range occurrenceTotals {
		if total > e.policy.StuffingThreshold {
			penalty += float64(total-e.policy.StuffingThreshold) * e.policy.StuffingPenaltyPerHit
		}
	}
	score -= penalty

	return types.SubScore{
		Score: clamp(score, 0, maxPoints),
		Max:   maxPoints,
		Details: fmt.Sprintf("Matched %d of %d job keywords (%.0f%% coverage)",
			len(matching), combined, coveragePct),
	}
}
