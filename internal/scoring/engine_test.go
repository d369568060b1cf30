package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/types"
)

func sampleResume() types.ResumeData {
	return types.ResumeData{
		Name:    "Jane Doe",
		Title:   "Senior Software Engineer",
		Summary: "Backend engineer focused on cloud infrastructure",
		Sections: []types.ResumeSection{
			{
				Title: "Professional Experience",
				Bullets: []types.Bullet{
					{Text: "Led migration to AWS, reducing costs by 23%"},
					{Text: "Developed Go services handling 2,000,000 requests daily"},
				},
			},
			{
				Title: "Skills",
				Bullets: []types.Bullet{
					{Text: "Go, Python, AWS, Kubernetes, Terraform"},
				},
			},
			{
				Title: "Education",
				Bullets: []types.Bullet{
					{Text: "B.S. Computer Science, State University"},
				},
			},
		},
	}
}

func sampleKeywords() *types.ExtensionKeywordData {
	return &types.ExtensionKeywordData{
		TechnicalKeywords: []types.KeywordInput{
			{Keyword: "aws", Weight: 8},
			{Keyword: "go", Weight: 7},
			{Keyword: "terraform", Weight: 6},
		},
		MatchingKeywords: []types.KeywordInput{{Keyword: "aws"}, {Keyword: "go"}},
		MissingKeywords:  []types.KeywordInput{{Keyword: "graphql"}},
	}
}

func TestScore_Bounds(t *testing.T) {
	engine := NewDefault()

	result := engine.Score(sampleResume(), "Senior Software Engineer\nCloud role using AWS and Go.", sampleKeywords())

	assert.GreaterOrEqual(t, result.TotalScore, 0)
	assert.LessOrEqual(t, result.TotalScore, 100)
	for _, sub := range []types.SubScore{
		result.Breakdown.SkillsMatch,
		result.Breakdown.ExperienceRelevance,
		result.Breakdown.KeywordCoverage,
		result.Breakdown.EducationCerts,
		result.Breakdown.FormattingCompat,
	} {
		assert.GreaterOrEqual(t, sub.Score, 0.0)
		assert.LessOrEqual(t, sub.Score, sub.Max)
	}
}

func TestScore_MaximaSumTo100(t *testing.T) {
	result := NewDefault().Score(sampleResume(), "job", sampleKeywords())

	sum := result.Breakdown.SkillsMatch.Max +
		result.Breakdown.ExperienceRelevance.Max +
		result.Breakdown.KeywordCoverage.Max +
		result.Breakdown.EducationCerts.Max +
		result.Breakdown.FormattingCompat.Max
	assert.Equal(t, 100.0, sum)
}

func TestScore_Deterministic(t *testing.T) {
	engine := NewDefault()
	jd := "Senior Software Engineer\nCloud role using AWS, Go and Terraform in a fintech setting."

	first := engine.Score(sampleResume(), jd, sampleKeywords())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, engine.Score(sampleResume(), jd, sampleKeywords()))
	}
}

func TestScore_NoInputs(t *testing.T) {
	engine := NewDefault()

	result := engine.Score(types.ResumeData{}, "", nil)

	assert.Equal(t, 0, result.TotalScore)
	assert.Equal(t, types.MatchPoor, result.MatchLevel)
	assert.Equal(t, "No technical keyword data available", result.Breakdown.SkillsMatch.Details)
	assert.Equal(t, "No job description provided", result.Breakdown.ExperienceRelevance.Details)
	assert.Equal(t, "No keyword data available", result.Breakdown.KeywordCoverage.Details)
	assert.Empty(t, result.Recommendations)
}

func TestScore_WhitespaceJobDescriptionIsEmpty(t *testing.T) {
	engine := NewDefault()

	result := engine.Score(sampleResume(), "   \n\t ", nil)

	assert.Equal(t, 0, result.TotalScore)
	assert.Equal(t, types.MatchPoor, result.MatchLevel)
}

func TestScore_KeywordsAloneActivateScoring(t *testing.T) {
	engine := NewDefault()

	result := engine.Score(sampleResume(), "", sampleKeywords())

	assert.Greater(t, result.TotalScore, 0)
}

func TestScore_RicherResumeScoresHigher(t *testing.T) {
	engine := NewDefault()
	jd := "Cloud role using AWS and Go."

	rich := engine.Score(sampleResume(), jd, sampleKeywords())
	bare := engine.Score(types.ResumeData{Name: "Jane Doe"}, jd, sampleKeywords())

	assert.Greater(t, rich.TotalScore, bare.TotalScore)
}

func TestScore_MatchLevels(t *testing.T) {
	assert.Equal(t, types.MatchPerfect, matchLevel(96))
	assert.Equal(t, types.MatchExcellent, matchLevel(95))
	assert.Equal(t, types.MatchExcellent, matchLevel(86))
	assert.Equal(t, types.MatchGood, matchLevel(85))
	assert.Equal(t, types.MatchGood, matchLevel(71))
	assert.Equal(t, types.MatchFair, matchLevel(70))
	assert.Equal(t, types.MatchFair, matchLevel(51))
	assert.Equal(t, types.MatchPoor, matchLevel(50))
	assert.Equal(t, types.MatchPoor, matchLevel(0))
}

func TestScore_HiddenBulletsDoNotCount(t *testing.T) {
	engine := NewDefault()
	hidden := false

	visible := types.ResumeData{
		Sections: []types.ResumeSection{
			{Title: "Skills", Bullets: []types.Bullet{{Text: "AWS, Go, Terraform"}}},
		},
	}
	invisible := types.ResumeData{
		Sections: []types.ResumeSection{
			{Title: "Skills", Bullets: []types.Bullet{
				{Text: "AWS, Go, Terraform", Params: &types.BulletParams{Visible: &hidden}},
			}},
		},
	}

	jd := "Cloud role"
	withSkills := engine.Score(visible, jd, sampleKeywords())
	withoutSkills := engine.Score(invisible, jd, sampleKeywords())

	assert.Greater(t, withSkills.TotalScore, withoutSkills.TotalScore)
}

func TestScore_RecommendationsCap(t *testing.T) {
	engine := NewDefault()
	ext := &types.ExtensionKeywordData{
		TechnicalKeywords: []types.KeywordInput{
			{Keyword: "rust"}, {Keyword: "scala"}, {Keyword: "haskell"},
			{Keyword: "elixir"}, {Keyword: "erlang"}, {Keyword: "clojure"},
		},
		MissingKeywords: []types.KeywordInput{
			{Keyword: "grpc"}, {Keyword: "kafka"}, {Keyword: "spark"},
		},
	}

	result := engine.Score(types.ResumeData{}, "Backend role", ext)

	require.NotEmpty(t, result.Recommendations)
	assert.LessOrEqual(t, len(result.Recommendations), 5)
}
