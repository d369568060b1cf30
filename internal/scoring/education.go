package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-scorer/internal/parsing"
	"github.com/jonathan/ats-scorer/internal/types"
)

// substantialEntryLen marks an education bullet as a distinct entry even
// without an institution keyword.
const substantialEntryLen = 20

// scoreEducationCerts computes the Education & Certifications sub-score by
// counting distinct school entries, awarding fixed points per entry plus a
// degree-keyword bonus, then adding certification points when the
// certificates bucket carries job-relevant terms.
func (e *Engine) scoreEducationCerts(content parsing.ResumeContent, jobDescription string) types.SubScore {
	maxPoints := e.policy.EducationMax
	jdLower := strings.ToLower(jobDescription)

	entries := 0
	for _, section := range content.Sections {
		if section.Type != parsing.SectionEducation {
			continue
		}
		for _, bullet := range section.Bullets {
			if containsAny(bullet, e.policy.SchoolTerms) || len(bullet) > substantialEntryLen {
				entries++
			}
		}
	}
	schoolPoints := clamp(float64(entries)*e.policy.SchoolEntryPoints, 0, e.policy.SchoolEntryCap)

	degreePoints := 0.0
	hasDegree := containsAny(content.Education, e.policy.DegreeTerms)
	if hasDegree {
		degreePoints = e.policy.DegreeBonus
	}

	certPoints := e.scoreCertifications(content.Certificates, jdLower)

	score := clamp(schoolPoints+degreePoints+certPoints, 0, maxPoints)

	var details string
	switch {
	case entries == 0 && certPoints == 0:
		details = "No education or certification content found"
	case hasDegree:
		details = fmt.Sprintf("%d education entries with degree credentials", entries)
	default:
		details = fmt.Sprintf("%d education entries found", entries)
	}
	if certPoints > 0 {
		details += "; certifications present"
	}

	return types.SubScore{Score: score, Max: maxPoints, Details: details}
}

// scoreCertifications awards full points for job-relevant certification
// terms, a smaller credit for merely having a certificates section when the
// job does not ask for one, and nothing when the job requires certifications
// the resume cannot show.
func (e *Engine) scoreCertifications(certText, jdLower string) float64 {
	if certText == "" {
		return 0
	}
	for _, term := range e.policy.CertTerms {
		if strings.Contains(certText, term) && strings.Contains(jdLower, term) {
			return e.policy.CertRelevantPoints
		}
	}
	jdWantsCerts := strings.Contains(jdLower, "certif")
	if !jdWantsCerts {
		return e.policy.CertPresencePoints
	}
	return 0
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
