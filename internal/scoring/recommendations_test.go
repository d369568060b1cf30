package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/parsing"
	"github.com/jonathan/ats-scorer/internal/types"
)

func TestBuildRecommendations_SkillGapsFirstByWeight(t *testing.T) {
	engine := NewDefault()
	technical := []types.WeightedKeyword{
		{Keyword: "terraform", Weight: 6},
		{Keyword: "kubernetes", Weight: 9},
		{Keyword: "aws", Weight: 9},
	}

	recs := engine.buildRecommendations(parsing.ResumeContent{}, technical, nil)

	require.GreaterOrEqual(t, len(recs), 3)
	// Highest weight first; ties break alphabetically.
	assert.Contains(t, recs[0], `"aws"`)
	assert.Contains(t, recs[1], `"kubernetes"`)
	assert.Contains(t, recs[2], `"terraform"`)
}

func TestBuildRecommendations_MatchedSkillsExcluded(t *testing.T) {
	engine := NewDefault()
	content := parsing.ResumeContent{AllText: "aws practitioner"}
	technical := []types.WeightedKeyword{
		{Keyword: "aws", Weight: 9},
		{Keyword: "terraform", Weight: 6},
	}

	recs := engine.buildRecommendations(content, technical, nil)

	for _, rec := range recs {
		assert.NotContains(t, rec, `"aws"`)
	}
}

func TestBuildRecommendations_SynonymCoversGap(t *testing.T) {
	engine := NewDefault()
	content := parsing.ResumeContent{AllText: "runs k8s in production"}
	technical := []types.WeightedKeyword{{Keyword: "kubernetes", Weight: 9}}

	recs := engine.buildRecommendations(content, technical, nil)

	for _, rec := range recs {
		assert.NotContains(t, rec, `"kubernetes"`)
	}
}

func TestBuildRecommendations_MissingKeywordsAfterGaps(t *testing.T) {
	engine := NewDefault()
	technical := []types.WeightedKeyword{{Keyword: "rust", Weight: 9}}
	missing := []types.WeightedKeyword{{Keyword: "graphql", Weight: 5}}

	recs := engine.buildRecommendations(parsing.ResumeContent{}, technical, missing)

	require.GreaterOrEqual(t, len(recs), 2)
	assert.Contains(t, recs[0], `missing technical skill "rust"`)
	assert.Contains(t, recs[1], `job keyword "graphql"`)
}

func TestBuildRecommendations_NoDuplicateKeywordAcrossCategories(t *testing.T) {
	engine := NewDefault()
	technical := []types.WeightedKeyword{{Keyword: "rust", Weight: 9}}
	missing := []types.WeightedKeyword{{Keyword: "Rust", Weight: 5}}

	recs := engine.buildRecommendations(parsing.ResumeContent{}, technical, missing)

	mentions := 0
	for _, rec := range recs {
		if containsKeyword(rec, "rust") {
			mentions++
		}
	}
	assert.Equal(t, 1, mentions)
}

func TestBuildRecommendations_QuantifiedPrompt(t *testing.T) {
	engine := NewDefault()
	content := parsing.ResumeContent{Experience: "did things without numbers"}

	recs := engine.buildRecommendations(content, nil, nil)

	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "measurable results")
}

func TestBuildRecommendations_NoQuantifiedPromptWhenCovered(t *testing.T) {
	engine := NewDefault()
	content := parsing.ResumeContent{
		Experience: "grew revenue 10% then 20% then 30% across 3 years",
	}

	recs := engine.buildRecommendations(content, nil, nil)

	assert.Empty(t, recs)
}

func TestBuildRecommendations_CappedAtFive(t *testing.T) {
	engine := NewDefault()
	technical := []types.WeightedKeyword{
		{Keyword: "a1", Weight: 9}, {Keyword: "b2", Weight: 8},
		{Keyword: "c3", Weight: 7}, {Keyword: "d4", Weight: 6},
		{Keyword: "e5", Weight: 5}, {Keyword: "f6", Weight: 4},
	}
	missing := []types.WeightedKeyword{
		{Keyword: "g7", Weight: 5}, {Keyword: "h8", Weight: 5},
	}

	recs := engine.buildRecommendations(parsing.ResumeContent{}, technical, missing)

	assert.Len(t, recs, 5)
}
