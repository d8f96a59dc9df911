// Package gaps cross-references extracted keywords against the candidate's resume and bullet corpus.
package gaps

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// maxMatchLocations caps how many matching lines a gap records.
	maxMatchLocations = 3
	// maxLocationLen caps the length of each recorded line.
	maxLocationLen = 100
)

// FindExplicitMatches returns every line of text containing the keyword as a
// case-insensitive substring. Lines are trimmed and truncated for reporting.
func FindExplicitMatches(keyword, text string) []string {
	matches := []string{}
	keywordLower := strings.ToLower(keyword)
	if !strings.Contains(strings.ToLower(text), keywordLower) {
		return matches
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(strings.ToLower(line), keywordLower) {
			matches = append(matches, truncateRunes(strings.TrimSpace(line), maxLocationLen))
		}
	}
	return matches
}

// Analyze determines which keywords are covered by the resume or corpus.
// The keyword is matched against both documents combined, and each gap keeps
// at most three example locations.
func Analyze(keywords []types.Keyword, resumeText, corpusText string) []types.GapAnalysis {
	combined := resumeText + "\n" + corpusText
	gaps := make([]types.GapAnalysis, 0, len(keywords))

	for _, kw := range keywords {
		matches := FindExplicitMatches(kw.Term, combined)
		status := types.StatusMissing
		if len(matches) > 0 {
			status = types.StatusExplicit
		}
		if len(matches) > maxMatchLocations {
			matches = matches[:maxMatchLocations]
		}
		gaps = append(gaps, types.GapAnalysis{
			Keyword:        kw.Term,
			Category:       kw.Category,
			Importance:     kw.Importance,
			Status:         status,
			MatchLocations: matches,
		})
	}

	return gaps
}

// Sort orders gaps for presentation: missing before explicit, primary before
// secondary. The sort is stable, so ties keep extraction order.
func Sort(gaps []types.GapAnalysis) {
	sort.SliceStable(gaps, func(i, j int) bool {
		if statusRank(gaps[i].Status) != statusRank(gaps[j].Status) {
			return statusRank(gaps[i].Status) < statusRank(gaps[j].Status)
		}
		return importanceRank(gaps[i].Importance) < importanceRank(gaps[j].Importance)
	})
}

func statusRank(status string) int {
	switch status {
	case types.StatusMissing:
		return 0
	case types.StatusExplicit:
		return 1
	default:
		return 2
	}
}

func importanceRank(importance string) int {
	switch importance {
	case types.ImportancePrimary:
		return 0
	case types.ImportanceSecondary:
		return 1
	default:
		return 2
	}
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
