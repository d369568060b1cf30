package parsing

import (
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// SectionType identifies the semantic bucket a resume section belongs to.
type SectionType string

// Section buckets recognized by the extractor.
const (
	SectionSummary      SectionType = "summary"
	SectionExperience   SectionType = "experience"
	SectionEducation    SectionType = "education"
	SectionSkills       SectionType = "skills"
	SectionProjects     SectionType = "projects"
	SectionCertificates SectionType = "certificates"
	SectionOther        SectionType = "other"
)

// sectionTypeRules lists title substrings in priority order; the first rule
// whose pattern matches wins. Titles matching no rule fall back to
// SectionOther and stay out of every bucket.
var sectionTypeRules = []struct {
	patterns    []string
	sectionType SectionType
}{
	{[]string{"experience", "work", "employment"}, SectionExperience},
	{[]string{"education", "academic"}, SectionEducation},
	{[]string{"skill"}, SectionSkills},
	{[]string{"project"}, SectionProjects},
	{[]string{"certif"}, SectionCertificates},
	{[]string{"summary", "profile"}, SectionSummary},
}

// InferSectionType maps a section title to its bucket using case-insensitive
// literal substring tests. A title like "Tech Stack" lands in SectionOther:
// the rule is deliberately literal, not a classifier.
func InferSectionType(title string) SectionType {
	titleLower := strings.ToLower(title)
	for _, rule := range sectionTypeRules {
		for _, pattern := range rule.patterns {
			if strings.Contains(titleLower, pattern) {
				return rule.sectionType
			}
		}
	}
	return SectionOther
}

// SectionContent is one original resume section after normalization.
type SectionContent struct {
	Title   string
	Content string
	Type    SectionType
	Bullets []string
}

// ResumeContent holds the lowercase text blobs extracted from a resume,
// bucketed by section type, plus the flattened AllText blob and the ordered
// per-section list.
type ResumeContent struct {
	Summary      string
	Experience   string
	Education    string
	Skills       string
	Projects     string
	Certificates string
	AllText      string
	Sections     []SectionContent
}

// Bucket returns the blob for a mappable section type.
func (c ResumeContent) Bucket(t SectionType) string {
	switch t {
	case SectionSummary:
		return c.Summary
	case SectionExperience:
		return c.Experience
	case SectionEducation:
		return c.Education
	case SectionSkills:
		return c.Skills
	case SectionProjects:
		return c.Projects
	case SectionCertificates:
		return c.Certificates
	default:
		return ""
	}
}

// ExtractResumeContent walks the resume's sections and buckets all visible
// bullet text by inferred section type. Sections typed SectionOther appear in
// the ordered Sections list but contribute to no bucket and not to AllText.
func ExtractResumeContent(resume types.ResumeData) ResumeContent {
	buckets := make(map[SectionType][]string)

	if summary := strings.ToLower(NormalizeText(resume.Summary)); summary != "" {
		buckets[SectionSummary] = append(buckets[SectionSummary], summary)
	}

	sections := make([]SectionContent, 0, len(resume.Sections))
	for _, section := range resume.Sections {
		sectionType := InferSectionType(section.Title)

		bullets := make([]string, 0, len(section.Bullets))
		for _, bullet := range section.Bullets {
			if !bullet.IsVisible() {
				continue
			}
			text := strings.ToLower(NormalizeText(bullet.Text))
			if text != "" {
				bullets = append(bullets, text)
			}
		}
		content := strings.Join(bullets, " ")

		sections = append(sections, SectionContent{
			Title:   section.Title,
			Content: content,
			Type:    sectionType,
			Bullets: bullets,
		})

		if sectionType != SectionOther && content != "" {
			buckets[sectionType] = append(buckets[sectionType], content)
		}
	}

	result := ResumeContent{
		Summary:      strings.Join(buckets[SectionSummary], " "),
		Experience:   strings.Join(buckets[SectionExperience], " "),
		Education:    strings.Join(buckets[SectionEducation], " "),
		Skills:       strings.Join(buckets[SectionSkills], " "),
		Projects:     strings.Join(buckets[SectionProjects], " "),
		Certificates: strings.Join(buckets[SectionCertificates], " "),
		Sections:     sections,
	}

	allParts := []string{
		strings.ToLower(NormalizeText(resume.Name)),
		strings.ToLower(NormalizeText(resume.Title)),
		result.Summary,
		result.Experience,
		result.Education,
		result.Skills,
		result.Projects,
		result.Certificates,
	}
	result.AllText = strings.TrimSpace(whitespaceRe.ReplaceAllString(strings.Join(allParts, " "), " "))

	return result
}
