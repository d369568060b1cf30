package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-scorer/internal/parsing"
	"github.com/jonathan/ats-scorer/internal/types"
)

// scoreFormatting computes the ATS Formatting Compatibility sub-score by
// counting how many standard section-header phrases appear as substrings of
// the resume's actual section titles.
func (e *Engine) scoreFormatting(content parsing.ResumeContent) types.SubScore {
	maxPoints := e.policy.FormattingMax

	matched := 0
	for _, header := range e.policy.StandardHeaders {
		for _, section := range content.Sections {
			if strings.Contains(strings.ToLower(section.Title), header) {
				matched++
				break
			}
		}
	}

	var score float64
	var details string
	switch {
	case matched >= e.policy.FormattingFullMatches:
		score = maxPoints
		details = fmt.Sprintf("%d standard section headers recognized; layout is ATS-friendly", matched)
	case matched >= 1:
		score = e.policy.FormattingPartialPoints
		details = fmt.Sprintf("Only %d standard section headers recognized; consider conventional section names", matched)
	default:
		score = 0
		details = "No standard section headers recognized; ATS parsers may skip content"
	}

	return types.SubScore{Score: clamp(score, 0, maxPoints), Max: maxPoints, Details: details}
}
