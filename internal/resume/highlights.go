package resume

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-tailor/internal/metrics"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Bullets shorter than this after marker stripping are treated as noise.
const minBulletLen = 20

var (
	// bulletMarkerPattern strips leading bullet markers and the whitespace
	// around them.
	bulletMarkerPattern = regexp.MustCompile(`^[•\-\t\s]+`)
	// labelPattern captures a leading "Label: " or "Label – " prefix.
	// Hyphens are allowed inside labels ("Cross-Functional Leadership:").
	labelPattern = regexp.MustCompile(`^(.+?(?::|–)\s)`)
)

// isBulletLine reports whether a trimmed line starts a bullet item.
func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "\t•")
}

// ParseHighlights parses the career-highlights block into labeled records.
// IDs number accepted highlights from zero in document order.
func ParseHighlights(highlightsText string) []types.CareerHighlight {
	highlights := []types.CareerHighlight{}
	count := 0

	for _, line := range strings.Split(highlightsText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !isBulletLine(line) {
			continue
		}

		fullText := strings.TrimSpace(bulletMarkerPattern.ReplaceAllString(line, ""))
		if utf8.RuneCountInString(fullText) < minBulletLen {
			continue
		}

		label, text := splitLabel(fullText)
		highlights = append(highlights, types.CareerHighlight{
			ID:        fmt.Sprintf("highlight_%d", count),
			Label:     label,
			Text:      text,
			FullText:  fullText,
			CharCount: utf8.RuneCountInString(fullText),
			Metrics:   metrics.Extract(fullText),
		})
		count++
	}

	return highlights
}

// splitLabel splits a leading label from a highlight. Text without a label
// prefix is returned whole with an empty label.
func splitLabel(fullText string) (label, text string) {
	loc := labelPattern.FindStringIndex(fullText)
	if loc == nil {
		return "", fullText
	}
	return strings.TrimSpace(fullText[:loc[1]]), strings.TrimSpace(fullText[loc[1]:])
}
