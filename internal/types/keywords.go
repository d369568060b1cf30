package types

import (
	"encoding/json"
	"strings"
)

// KeywordInput is a single element of an extension keyword array. Sources are
// heterogeneous: an element may be a bare string or an object carrying a
// weight, a required flag, and frequency/importance annotations. Both forms
// decode without error.
type KeywordInput struct {
	Keyword    string   `json:"keyword"`
	Weight     int      `json:"weight,omitempty"`
	Section    string   `json:"section,omitempty"`
	IsRequired *bool    `json:"isRequired,omitempty"`
	Frequency  *float64 `json:"frequency,omitempty"`
	Importance string   `json:"importance,omitempty"`
}

// keywordInputAlias avoids recursing into UnmarshalJSON when decoding the
// object form.
type keywordInputAlias KeywordInput

// UnmarshalJSON accepts either a JSON string or a weighted-keyword object.
func (k *KeywordInput) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*k = KeywordInput{Keyword: s}
		return nil
	}

	var alias keywordInputAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*k = KeywordInput(alias)
	return nil
}

// WeightedKeyword is the canonical normalized form of a keyword: a non-empty
// term, a weight in [1,10], and a derived-or-explicit required flag.
// Immutable once produced by normalization.
type WeightedKeyword struct {
	Keyword    string `json:"keyword"`
	Weight     int    `json:"weight"`
	Section    string `json:"section,omitempty"`
	IsRequired bool   `json:"is_required"`
}

// ExtensionKeywordData is the externally supplied bag of keyword collections
// produced by the browser extension's job-description analysis step.
type ExtensionKeywordData struct {
	TechnicalKeywords     []KeywordInput `json:"technicalKeywords,omitempty"`
	MatchingKeywords      []KeywordInput `json:"matchingKeywords,omitempty"`
	MissingKeywords       []KeywordInput `json:"missingKeywords,omitempty"`
	HighFrequencyKeywords []KeywordInput `json:"highFrequencyKeywords,omitempty"`
}

// IsEmpty reports whether the bag carries no keywords at all.
func (e *ExtensionKeywordData) IsEmpty() bool {
	if e == nil {
		return true
	}
	return len(e.TechnicalKeywords) == 0 &&
		len(e.MatchingKeywords) == 0 &&
		len(e.MissingKeywords) == 0 &&
		len(e.HighFrequencyKeywords) == 0
}
