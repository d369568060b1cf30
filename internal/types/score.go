package types

// Match levels, derived purely from the total score.
const (
	MatchPerfect   = "Perfect match"
	MatchExcellent = "Excellent match"
	MatchGood      = "Good match"
	MatchFair      = "Fair match"
	MatchPoor      = "Poor match"
)

// SubScore is the result of one scoring sub-engine.
// Invariant: 0 <= Score <= Max.
type SubScore struct {
	Score   float64 `json:"score"`
	Max     float64 `json:"max"`
	Details string  `json:"details"`
}

// ScoreBreakdown holds the five named sub-results. Across any policy the Max
// values sum to 100.
type ScoreBreakdown struct {
	SkillsMatch         SubScore `json:"skills_match"`
	ExperienceRelevance SubScore `json:"experience_relevance"`
	KeywordCoverage     SubScore `json:"keyword_coverage"`
	EducationCerts      SubScore `json:"education_certs"`
	FormattingCompat    SubScore `json:"formatting_compat"`
}

// ScoreResult is the full output of a scoring call. It is recomputed fresh on
// every invocation; nothing persists between calls.
type ScoreResult struct {
	TotalScore      int            `json:"total_score"`
	Breakdown       ScoreBreakdown `json:"breakdown"`
	Recommendations []string       `json:"recommendations"`
	MatchLevel      string         `json:"match_level"`
}
