// Package scoring implements the deterministic ATS compatibility scoring
// engine: five weighted sub-engines over extracted resume content and
// normalized job keywords, aggregated to a 0-100 score with recommendations.
package scoring

import "github.com/jonathan/ats-scorer/internal/parsing"

// Policy bundles every tunable cap, threshold, and vocabulary the engine
// uses. It is plain data passed to New, never package-level mutable state,
// so tests can run with alternate vocabularies and the weighting scheme is
// swappable without touching matching logic.
type Policy struct {
	// Sub-engine point caps. They must sum to 100.
	SkillsMax     float64
	ExperienceMax float64
	CoverageMax   float64
	EducationMax  float64
	FormattingMax float64

	// Skills Match.
	RequiredMultiplier     float64
	SkillsBonusFullRate    float64
	SkillsBonusFull        float64
	SkillsBonusPartialRate float64
	SkillsBonusPartial     float64

	// Experience Relevance.
	QuantifiedPerMatch    float64
	QuantifiedCap         float64
	ActionVerbCap         float64
	TitleOverlapPoints    float64
	TitleOverlapThreshold float64
	IndustryTermPoints    float64
	IndustryTermCap       float64

	// Keyword Coverage.
	SectionWeights        map[parsing.SectionType]float64
	SummaryUniqueKeywords int
	OccurrenceCap         int
	StuffingThreshold     int
	StuffingPenaltyPerHit float64

	// Education & Certifications.
	SchoolEntryPoints  float64
	SchoolEntryCap     float64
	DegreeBonus        float64
	CertRelevantPoints float64
	CertPresencePoints float64

	// Formatting Compatibility.
	FormattingFullMatches   int
	FormattingPartialPoints float64

	// Vocabularies.
	Synonyms        map[string][]string
	ActionVerbs     []string
	IndustryTerms   []string
	StandardHeaders []string
	DegreeTerms     []string
	SchoolTerms     []string
	CertTerms       []string
}

// synonymGroups defines interchangeable spellings of common technologies.
// Each group expands to a symmetric lookup table in DefaultPolicy.
var synonymGroups = [][]string{
	{"react", "react.js", "reactjs"},
	{"node", "node.js", "nodejs"},
	{"javascript", "js"},
	{"typescript", "ts"},
	{"python", "py"},
	{"kubernetes", "k8s"},
	{"postgresql", "postgres"},
}

// DefaultPolicy returns the canonical weighting policy: 35/30/20/10/5 point
// caps, the only assignment of the tuned revisions whose caps sum to 100.
func DefaultPolicy() Policy {
	synonyms := make(map[string][]string, len(synonymGroups)*3)
	for _, group := range synonymGroups {
		for _, term := range group {
			for _, other := range group {
				if other != term {
					synonyms[term] = append(synonyms[term], other)
				}
			}
		}
	}

	return Policy{
		SkillsMax:     35,
		ExperienceMax: 30,
		CoverageMax:   20,
		EducationMax:  10,
		FormattingMax: 5,

		RequiredMultiplier:     2,
		SkillsBonusFullRate:    0.90,
		SkillsBonusFull:        5,
		SkillsBonusPartialRate: 0.75,
		SkillsBonusPartial:     2,

		QuantifiedPerMatch:    2,
		QuantifiedCap:         10,
		ActionVerbCap:         8,
		TitleOverlapPoints:    7,
		TitleOverlapThreshold: 0.5,
		IndustryTermPoints:    1,
		IndustryTermCap:       5,

		SectionWeights: map[parsing.SectionType]float64{
			parsing.SectionSkills:     1.0,
			parsing.SectionExperience: 0.9,
			parsing.SectionSummary:    0.6,
			parsing.SectionEducation:  0.4,
			parsing.SectionProjects:   0.4,
		},
		SummaryUniqueKeywords: 10,
		OccurrenceCap:         4,
		StuffingThreshold:     20,
		StuffingPenaltyPerHit: 0.5,

		SchoolEntryPoints:  3,
		SchoolEntryCap:     6,
		DegreeBonus:        2,
		CertRelevantPoints: 4,
		CertPresencePoints: 2,

		FormattingFullMatches:   3,
		FormattingPartialPoints: 2,

		Synonyms: synonyms,
		ActionVerbs: []string{
			"achieved", "architected", "automated", "collaborated", "coordinated",
			"created", "delivered", "deployed", "designed", "developed",
			"directed", "engineered", "established", "executed", "generated",
			"implemented", "improved", "increased", "launched", "led",
			"maintained", "managed", "mentored", "migrated", "optimized",
			"organized", "reduced", "spearheaded", "streamlined", "transformed",
		},
		IndustryTerms: []string{
			"agile", "scrum", "devops", "cloud", "saas", "fintech",
			"healthcare", "e-commerce", "retail", "manufacturing",
			"consulting", "banking",
		},
		StandardHeaders: []string{
			"work experience", "professional experience", "experience",
			"employment history", "summary", "professional summary",
			"profile", "objective", "education", "academic background",
			"skills", "technical skills", "core competencies",
			"certifications", "certificates", "licenses", "projects",
		},
		DegreeTerms: []string{
			"bachelor", "master", "phd", "doctorate", "mba",
			"b.s.", "m.s.", "bsc", "msc", "degree", "diploma",
		},
		SchoolTerms: []string{
			"university", "college", "institute", "school", "academy",
		},
		CertTerms: []string{
			"aws", "azure", "gcp", "pmp", "scrum", "agile",
			"certified", "certificate",
		},
	}
}
