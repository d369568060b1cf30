package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/ats-scorer/internal/keywords"
	"github.com/jonathan/ats-scorer/internal/parsing"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Match level thresholds on the total score.
const (
	perfectThreshold   = 96
	excellentThreshold = 86
	goodThreshold      = 71
	fairThreshold      = 51
)

// Default details strings for sub-scores that received no usable input.
const (
	detailsNoTechnicalData = "No technical keyword data available"
	detailsNoExperience    = "No experience section content found"
	detailsNoKeywordData   = "No keyword data available"
	detailsNoJobData       = "No job description provided"
)

// Engine is the deterministic ATS compatibility scorer. It holds only its
// immutable policy; every Score call is an independent pure computation.
type Engine struct {
	policy Policy
}

// New creates an engine with the given policy.
func New(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// NewDefault creates an engine with the canonical weighting policy.
func NewDefault() *Engine {
	return New(DefaultPolicy())
}

// Policy returns the engine's weighting policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Score computes the full compatibility report for a resume against a job
// description and its extracted keyword data. It never returns an error:
// missing or empty inputs degrade the affected sub-scores to zero with an
// explanatory details string.
func (e *Engine) Score(resume types.ResumeData, jobDescription string, ext *types.ExtensionKeywordData) types.ScoreResult {
	content := parsing.ExtractResumeContent(resume)
	jd := strings.TrimSpace(jobDescription)

	if jd == "" && ext.IsEmpty() {
		return e.noDataResult()
	}

	technical := keywords.Technical(ext)
	matching := keywords.Matching(ext)
	missing := keywords.Missing(ext)

	breakdown := types.ScoreBreakdown{
		SkillsMatch:         e.scoreSkillsMatch(content.AllText, technical),
		ExperienceRelevance: e.scoreExperienceRelevance(content, jd),
		KeywordCoverage:     e.scoreKeywordCoverage(content, matching, missing),
		EducationCerts:      e.scoreEducationCerts(content, jd),
		FormattingCompat:    e.scoreFormatting(content),
	}

	total := breakdown.SkillsMatch.Score +
		breakdown.ExperienceRelevance.Score +
		breakdown.KeywordCoverage.Score +
		breakdown.EducationCerts.Score +
		breakdown.FormattingCompat.Score
	totalScore := int(clamp(math.Round(total), 0, 100))

	return types.ScoreResult{
		TotalScore:      totalScore,
		Breakdown:       breakdown,
		Recommendations: e.buildRecommendations(content, technical, missing),
		MatchLevel:      matchLevel(totalScore),
	}
}

// noDataResult is the short-circuit for a call with neither a job description
// nor any keyword data: every sub-score reports its no-data default.
func (e *Engine) noDataResult() types.ScoreResult {
	p := e.policy
	return types.ScoreResult{
		TotalScore: 0,
		Breakdown: types.ScoreBreakdown{
			SkillsMatch:         types.SubScore{Score: 0, Max: p.SkillsMax, Details: detailsNoTechnicalData},
			ExperienceRelevance: types.SubScore{Score: 0, Max: p.ExperienceMax, Details: detailsNoJobData},
			KeywordCoverage:     types.SubScore{Score: 0, Max: p.CoverageMax, Details: detailsNoKeywordData},
			EducationCerts:      types.SubScore{Score: 0, Max: p.EducationMax, Details: detailsNoJobData},
			FormattingCompat:    types.SubScore{Score: 0, Max: p.FormattingMax, Details: detailsNoJobData},
		},
		Recommendations: []string{},
		MatchLevel:      types.MatchPoor,
	}
}

// matchLevel derives the qualitative label from the total score.
func matchLevel(totalScore int) string {
	switch {
	case totalScore >= perfectThreshold:
		return types.MatchPerfect
	case totalScore >= excellentThreshold:
		return types.MatchExcellent
	case totalScore >= goodThreshold:
		return types.MatchGood
	case totalScore >= fairThreshold:
		return types.MatchFair
	default:
		return types.MatchPoor
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
