package resume

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// Lines shorter than this with no separator characters are treated as a
	// name line and skipped.
	minContentLineLen = 30
	// First lines at or above this length without a pipe are not taglines.
	taglineMaxLen = 120
	// When no tagline is found, the first line is cut to this length.
	taglineFallbackLen = 100
)

// contactNumberPattern matches lines that are purely phone-number characters.
var contactNumberPattern = regexp.MustCompile(`^[\d\-\.\(\)\s]+$`)

// ParseSummary extracts the tagline and body from the summary block. Name
// and contact lines are skipped. The first remaining line is the tagline
// when it carries a pipe separator or stays under the tagline length;
// otherwise the line is truncated into a tagline and the body keeps every
// content line.
func ParseSummary(summaryText string) types.ResumeSummary {
	var contentLines []string
	for _, line := range strings.Split(summaryText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isContactLine(line) || isNameLine(line) {
			continue
		}
		contentLines = append(contentLines, line)
	}

	if len(contentLines) == 0 {
		return types.NewResumeSummary("", "")
	}

	first := contentLines[0]
	if strings.Contains(first, "|") || utf8.RuneCountInString(first) < taglineMaxLen {
		return types.NewResumeSummary(first, strings.Join(contentLines[1:], " "))
	}
	return types.NewResumeSummary(truncateRunes(first, taglineFallbackLen), strings.Join(contentLines, " "))
}

func isContactLine(line string) bool {
	return strings.Contains(line, "@") ||
		strings.Contains(strings.ToLower(line), "linkedin") ||
		contactNumberPattern.MatchString(line)
}

func isNameLine(line string) bool {
	if utf8.RuneCountInString(line) >= minContentLineLen {
		return false
	}
	return !strings.ContainsAny(line, "|–-•:")
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
