package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/ats-scorer/internal/parsing"
	"github.com/jonathan/ats-scorer/internal/types"
)

const (
	maxRecommendations    = 5
	maxSkillGapItems      = 5
	maxMissingItems       = 5
	quantifiedTargetCount = 3
)

// buildRecommendations produces up to five ranked improvement suggestions:
// technical-skill gaps first (sorted by weight, highest impact up front),
// then missing job keywords, then a prompt for measurable results when the
// experience section lacks quantified achievements.
func (e *Engine) buildRecommendations(content parsing.ResumeContent, technical, missing []types.WeightedKeyword) []string {
	recommendations := make([]string, 0, maxRecommendations)
	seen := make(map[string]bool)

	gaps := make([]types.WeightedKeyword, 0, len(technical))
	for _, kw := range technical {
		if !e.matchesWithSynonyms(content.AllText, kw.Keyword) {
			gaps = append(gaps, kw)
		}
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		if gaps[i].Weight != gaps[j].Weight {
			return gaps[i].Weight > gaps[j].Weight
		}
		return strings.ToLower(gaps[i].Keyword) < strings.ToLower(gaps[j].Keyword)
	})
	if len(gaps) > maxSkillGapItems {
		gaps = gaps[:maxSkillGapItems]
	}
	for _, kw := range gaps {
		seen[strings.ToLower(kw.Keyword)] = true
		recommendations = append(recommendations,
			fmt.Sprintf("Add the missing technical skill %q to your skills or experience sections", kw.Keyword))
	}

	added := 0
	for _, kw := range missing {
		if added >= maxMissingItems || len(recommendations) >= maxRecommendations {
			break
		}
		key := strings.ToLower(kw.Keyword)
		if seen[key] {
			continue
		}
		seen[key] = true
		added++
		recommendations = append(recommendations,
			fmt.Sprintf("Incorporate the job keyword %q into your resume", kw.Keyword))
	}

	if countQuantified(content.Experience) < quantifiedTargetCount && len(recommendations) < maxRecommendations {
		recommendations = append(recommendations,
			"Add measurable results (percentages, amounts, timeframes) to your experience bullets")
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}
