// Package resume parses resume text into summary, highlights, and experience structures.
package resume

import "strings"

// Section names produced by SplitSections.
const (
	SectionSummary    = "summary"
	SectionHighlights = "highlights"
	SectionExperience = "experience"
)

// experienceHeaders are the exact (trimmed, uppercased) lines that open the
// experience section.
var experienceHeaders = map[string]bool{
	"PROFESSIONAL IMPACT":     true,
	"EXPERIENCE":              true,
	"PROFESSIONAL EXPERIENCE": true,
	"WORK EXPERIENCE":         true,
}

// SplitSections splits resume text into summary, highlights, and experience
// blocks. Everything before the first recognized header belongs to the
// summary. Header lines are consumed, and a later header of a previous
// section moves collection back to that section.
func SplitSections(resumeText string) map[string]string {
	sectionLines := map[string][]string{
		SectionSummary:    {},
		SectionHighlights: {},
		SectionExperience: {},
	}
	current := SectionSummary

	for _, line := range strings.Split(resumeText, "\n") {
		upper := strings.ToUpper(strings.TrimSpace(line))

		if strings.Contains(upper, "CAREER HIGHLIGHTS") {
			current = SectionHighlights
			continue
		}
		if experienceHeaders[upper] {
			current = SectionExperience
			continue
		}
		sectionLines[current] = append(sectionLines[current], line)
	}

	sections := make(map[string]string, len(sectionLines))
	for name, lines := range sectionLines {
		sections[name] = strings.TrimSpace(strings.Join(lines, "\n"))
	}
	return sections
}
