// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreReport outputs a human-readable summary of a scoring result.
func (p *Printer) PrintScoreReport(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total Score:  %d/100\n", result.TotalScore))
	sb.WriteString(fmt.Sprintf("Match Level:  %s\n", result.MatchLevel))
	sb.WriteString("\n")

	subScores := []struct {
		name string
		sub  types.SubScore
	}{
		{"Skills Match", result.Breakdown.SkillsMatch},
		{"Experience Relevance", result.Breakdown.ExperienceRelevance},
		{"Keyword Coverage", result.Breakdown.KeywordCoverage},
		{"Education & Certs", result.Breakdown.EducationCerts},
		{"ATS Formatting", result.Breakdown.FormattingCompat},
	}
	for _, s := range subScores {
		sb.WriteString(fmt.Sprintf("%-21s %5.1f / %-3.0f\n", s.name, s.sub.Score, s.sub.Max))
		sb.WriteString(fmt.Sprintf("  %s\n", s.sub.Details))
	}

	p.printBox("ATS COMPATIBILITY SCORE", strings.TrimSuffix(sb.String(), "\n"))
	p.printRecommendations(result.Recommendations)
}

// printRecommendations outputs the ranked improvement suggestions.
func (p *Printer) printRecommendations(recommendations []string) {
	if len(recommendations) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(recommendations), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, recommendations[i]))
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}
