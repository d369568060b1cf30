// Package keywords normalizes heterogeneous extension keyword inputs into
// canonical weighted keyword lists.
package keywords

import (
	"math"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Weight defaults and bounds for normalized keywords.
const (
	DefaultWeight           = 5
	TechnicalDefaultWeight  = 8
	RequiredWeightThreshold = 8
	MinWeight               = 1
	MaxWeight               = 10
)

// importanceWeights converts an importance annotation to a weight.
var importanceWeights = map[string]int{
	"high":   10,
	"medium": 5,
	"low":    2,
}

// Normalize maps a keyword source array to canonical weighted keywords.
// Bare strings get defaultWeight; objects keep their weight when present.
// IsRequired derives from the weight threshold unless explicitly set.
func Normalize(inputs []types.KeywordInput, defaultWeight int) []types.WeightedKeyword {
	out := make([]types.WeightedKeyword, 0, len(inputs))
	for _, in := range inputs {
		keyword := strings.TrimSpace(in.Keyword)
		if keyword == "" {
			continue
		}

		weight := in.Weight
		if weight == 0 {
			weight = defaultWeight
		}
		weight = clampWeight(weight)

		out = append(out, types.WeightedKeyword{
			Keyword:    keyword,
			Weight:     weight,
			Section:    in.Section,
			IsRequired: requiredFlag(in.IsRequired, weight),
		})
	}
	return out
}

// NormalizeHighFrequency converts frequency/importance-annotated keywords.
// The derived weight is max(round(frequency/10) clamped to [1,10],
// importance weight); an explicit weight wins over both.
func NormalizeHighFrequency(inputs []types.KeywordInput) []types.WeightedKeyword {
	out := make([]types.WeightedKeyword, 0, len(inputs))
	for _, in := range inputs {
		keyword := strings.TrimSpace(in.Keyword)
		if keyword == "" {
			continue
		}

		weight := in.Weight
		if weight == 0 {
			derived := 0
			if in.Frequency != nil {
				derived = clampWeight(int(math.Round(*in.Frequency / 10)))
			}
			if imp, ok := importanceWeights[strings.ToLower(strings.TrimSpace(in.Importance))]; ok && imp > derived {
				derived = imp
			}
			if derived == 0 {
				derived = DefaultWeight
			}
			weight = derived
		}
		weight = clampWeight(weight)

		out = append(out, types.WeightedKeyword{
			Keyword:    keyword,
			Weight:     weight,
			Section:    in.Section,
			IsRequired: requiredFlag(in.IsRequired, weight),
		})
	}
	return out
}

// Dedupe removes case-insensitive duplicates, keeping the first occurrence.
func Dedupe(list []types.WeightedKeyword) []types.WeightedKeyword {
	seen := make(map[string]bool, len(list))
	out := make([]types.WeightedKeyword, 0, len(list))
	for _, kw := range list {
		key := strings.ToLower(kw.Keyword)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, kw)
	}
	return out
}

// Technical builds the deduplicated technical keyword list from extension
// data: explicit technical keywords (defaulting to the technical weight)
// merged with the high-frequency set.
func Technical(ext *types.ExtensionKeywordData) []types.WeightedKeyword {
	if ext == nil {
		return nil
	}
	merged := Normalize(ext.TechnicalKeywords, TechnicalDefaultWeight)
	merged = append(merged, NormalizeHighFrequency(ext.HighFrequencyKeywords)...)
	return Dedupe(merged)
}

// Matching returns the normalized matched-keyword list from extension data.
func Matching(ext *types.ExtensionKeywordData) []types.WeightedKeyword {
	if ext == nil {
		return nil
	}
	return Dedupe(Normalize(ext.MatchingKeywords, DefaultWeight))
}

// Missing returns the normalized missing-keyword list from extension data.
func Missing(ext *types.ExtensionKeywordData) []types.WeightedKeyword {
	if ext == nil {
		return nil
	}
	return Dedupe(Normalize(ext.MissingKeywords, DefaultWeight))
}

func clampWeight(w int) int {
	if w < MinWeight {
		return MinWeight
	}
	if w > MaxWeight {
		return MaxWeight
	}
	return w
}

func requiredFlag(explicit *bool, weight int) bool {
	if explicit != nil {
		return *explicit
	}
	return weight >= RequiredWeightThreshold
}
