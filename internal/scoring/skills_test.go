package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-scorer/internal/types"
)

func TestScoreSkillsMatch_NoTechnicalData(t *testing.T) {
	engine := NewDefault()

	result := engine.scoreSkillsMatch("some resume text", nil)

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, engine.Policy().SkillsMax, result.Max)
	assert.Equal(t, "No technical keyword data available", result.Details)
}

func TestScoreSkillsMatch_FullRequiredMatch(t *testing.T) {
	engine := NewDefault()
	technical := []types.WeightedKeyword{
		{Keyword: "aws", Weight: 8, IsRequired: true},
	}

	result := engine.scoreSkillsMatch("led migration to aws, reducing costs by 23%", technical)

	// Full match plus the full-coverage bonus clamps to the cap.
	assert.Equal(t, engine.Policy().SkillsMax, result.Score)
	assert.Equal(t, "1/1 technical skills found (1/1 required)", result.Details)
}

func TestScoreSkillsMatch_RequiredWeighsDouble(t *testing.T) {
	engine := NewDefault()
	technical := []types.WeightedKeyword{
		{Keyword: "aws", Weight: 5, IsRequired: true},
		{Keyword: "docker", Weight: 5, IsRequired: false},
	}

	// Only the required keyword matches: 10 of 15 total weight.
	result := engine.scoreSkillsMatch("aws only", technical)

	expected := 10.0/15.0*engine.Policy().SkillsMax + engine.Policy().SkillsBonusFull
	assert.InDelta(t, expected, result.Score, 0.001)
}

func TestScoreSkillsMatch_PartialBonus(t *testing.T) {
	policy := DefaultPolicy()
	engine := New(policy)
	technical := []types.WeightedKeyword{
		{Keyword: "aws", Weight: 8, IsRequired: true},
		{Keyword: "go", Weight: 2, IsRequired: true},
	}

	// Required coverage 16/20 = 80%: partial bonus tier.
	result := engine.scoreSkillsMatch("aws everywhere", technical)

	expected := 16.0/20.0*policy.SkillsMax + policy.SkillsBonusPartial
	assert.InDelta(t, expected, result.Score, 0.001)
}

func TestScoreSkillsMatch_NoBonusBelowPartialRate(t *testing.T) {
	policy := DefaultPolicy()
	engine := New(policy)
	technical := []types.WeightedKeyword{
		{Keyword: "aws", Weight: 5, IsRequired: true},
		{Keyword: "go", Weight: 5, IsRequired: true},
	}

	// Required coverage 50%: no bonus.
	result := engine.scoreSkillsMatch("aws everywhere", technical)

	expected := 10.0 / 20.0 * policy.SkillsMax
	assert.InDelta(t, expected, result.Score, 0.001)
}

func TestScoreSkillsMatch_SynonymFallback(t *testing.T) {
	engine := NewDefault()
	technical := []types.WeightedKeyword{
		{Keyword: "kubernetes", Weight: 8, IsRequired: false},
	}

	result := engine.scoreSkillsMatch("operated k8s clusters", technical)

	assert.Equal(t, engine.Policy().SkillsMax, result.Score)
	assert.Equal(t, "1/1 technical skills found (0/0 required)", result.Details)
}

func TestScoreSkillsMatch_NewRequiredMatchNeverLowersScore(t *testing.T) {
	engine := NewDefault()
	technical := []types.WeightedKeyword{
		{Keyword: "aws", Weight: 8, IsRequired: true},
		{Keyword: "docker", Weight: 5, IsRequired: false},
		{Keyword: "terraform", Weight: 7, IsRequired: true},
	}

	before := engine.scoreSkillsMatch("aws docker", technical)
	after := engine.scoreSkillsMatch("aws docker terraform", technical)

	assert.GreaterOrEqual(t, after.Score, before.Score)
	// aws and docker cover 21 of 35 effective weight; required coverage
	// 16/30 earns no bonus.
	assert.InDelta(t, 21.0/35.0*engine.Policy().SkillsMax, before.Score, 0.001)
	// Full coverage plus the full bonus clamps to the cap.
	assert.Equal(t, engine.Policy().SkillsMax, after.Score)
}

func TestScoreSkillsMatch_NothingMatches(t *testing.T) {
	engine := NewDefault()
	technical := []types.WeightedKeyword{
		{Keyword: "rust", Weight: 8, IsRequired: true},
	}

	result := engine.scoreSkillsMatch("java and spring only", technical)

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, "0/1 technical skills found (0/1 required)", result.Details)
}
