package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-scorer/internal/types"
)

func TestPrintScoreReport(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintScoreReport(&types.ScoreResult{
		TotalScore: 72,
		MatchLevel: types.MatchGood,
		Breakdown: types.ScoreBreakdown{
			SkillsMatch: types.SubScore{Score: 30, Max: 35, Details: "4/5 technical skills found (2/2 required)"},
		},
		Recommendations: []string{"Incorporate the job keyword \"kafka\" into your resume"},
	})

	out := buf.String()
	assert.Contains(t, out, "ATS COMPATIBILITY SCORE")
	assert.Contains(t, out, "72/100")
	assert.Contains(t, out, types.MatchGood)
	assert.Contains(t, out, "RECOMMENDATIONS")
	assert.Contains(t, out, "kafka")
}

func TestPrintScoreReport_NilResult(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreReport(nil)

	assert.Empty(t, buf.String())
}

func TestPrintRecommendations_EmptySkipsBox(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).printRecommendations(nil)

	assert.Empty(t, buf.String())
}
