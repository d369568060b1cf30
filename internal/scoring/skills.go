package scoring

import (
	"fmt"

	"github.com/jonathan/ats-scorer/internal/types"
)

// scoreSkillsMatch computes the Skills Match sub-score: the weighted fraction
// of technical keywords found in the resume's full text, with required
// keywords counting double and a graduated bonus when the required set is
// nearly fully covered.
func (e *Engine) scoreSkillsMatch(allText string, technical []types.WeightedKeyword) types.SubScore {
	maxPoints := e.policy.SkillsMax
	if len(technical) == 0 {
		return types.SubScore{Score: 0, Max: maxPoints, Details: detailsNoTechnicalData}
	}

	var totalWeight, matchedWeight float64
	var requiredTotalWeight, requiredMatchedWeight float64
	var matchedCount, requiredCount, requiredMatchedCount int

	for _, kw := range technical {
		multiplier := 1.0
		if kw.IsRequired {
			multiplier = e.policy.RequiredMultiplier
			requiredCount++
		}
		weight := float64(kw.Weight) * multiplier
		totalWeight += weight
		if kw.IsRequired {
			requiredTotalWeight += weight
		}

		if !e.matchesWithSynonyms(allText, kw.Keyword) {
			continue
		}
		matchedWeight += weight
		matchedCount++
		if kw.IsRequired {
			requiredMatchedWeight += weight
			requiredMatchedCount++
		}
	}

	score := 0.0
	if totalWeight > 0 {
		score = matchedWeight / totalWeight * maxPoints
	}

	// Graduated bonus on weighted required-keyword coverage.
	if requiredTotalWeight > 0 {
		rate := requiredMatchedWeight / requiredTotalWeight
		switch {
		case rate >= e.policy.SkillsBonusFullRate:
			score += e.policy.SkillsBonusFull
		case rate >= e.policy.SkillsBonusPartialRate:
			score += e.policy.SkillsBonusPartial
		}
	}

	return types.SubScore{
		Score: clamp(score, 0, maxPoints),
		Max:   maxPoints,
		Details: fmt.Sprintf("%d/%d technical skills found (%d/%d required)",
			matchedCount, len(technical), requiredMatchedCount, requiredCount),
	}
}
