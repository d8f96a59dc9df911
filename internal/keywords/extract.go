package keywords

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// contextRadius is how many characters of surrounding text are captured
	// on each side of a matched term.
	contextRadius = 50
	// importanceLookback is how far back from a match the extractor looks
	// for softening phrases like "preferred".
	importanceLookback = 100
)

// experienceYearsPattern matches requirements like "5+ years experience",
// "10 years of experience", or "3 year experience". The digits are captured.
var experienceYearsPattern = regexp.MustCompile(`(\d+)\+?\s*years?\s+(?:of\s+)?experience`)

// Extract scans a job description for recognized industry terms and
// years-of-experience requirements. Each unique term yields one keyword with
// its category, importance, and a snippet of surrounding context. Industry
// terms come first in alphabetical order, then experience requirements.
func Extract(jdText string) []types.Keyword {
	jdLower := strings.ToLower(jdText)
	keywords := make([]types.Keyword, 0)

	for _, term := range termScanOrder {
		idx := strings.Index(jdLower, term)
		if idx < 0 {
			continue
		}
		keywords = append(keywords, types.Keyword{
			Term:          term,
			Category:      Categorize(term),
			Importance:    importanceAt(jdLower, idx),
			SourceContext: contextAt(jdText, idx, len(term)),
		})
	}

	return append(keywords, extractExperienceYears(jdLower)...)
}

// importanceAt decides whether the term at idx is a hard requirement. Terms
// preceded by a softening phrase within the lookback window are secondary.
func importanceAt(jdLower string, idx int) string {
	start := idx - importanceLookback
	if start < 0 {
		start = 0
	}
	preceding := jdLower[start:idx]
	if strings.Contains(preceding, "preferred") || strings.Contains(preceding, "nice to have") {
		return types.ImportanceSecondary
	}
	return types.ImportancePrimary
}

// contextAt captures the original-case text around a match, trimmed.
func contextAt(jdText string, idx, termLen int) string {
	start := idx - contextRadius
	if start < 0 {
		start = 0
	}
	end := idx + termLen + contextRadius
	if end > len(jdText) {
		end = len(jdText)
	}
	return strings.TrimSpace(jdText[start:end])
}

// extractExperienceYears finds years-of-experience requirements. One keyword
// is produced per distinct year count, always primary.
func extractExperienceYears(jdLower string) []types.Keyword {
	var keywords []types.Keyword
	seen := make(map[string]bool)
	for _, match := range experienceYearsPattern.FindAllStringSubmatch(jdLower, -1) {
		years := match[1]
		if seen[years] {
			continue
		}
		seen[years] = true
		keywords = append(keywords, types.Keyword{
			Term:          years + "+ years experience",
			Category:      types.CategoryQualification,
			Importance:    types.ImportancePrimary,
			SourceContext: fmt.Sprintf("Requires %s+ years of experience", years),
		})
	}
	return keywords
}
