// Package validation checks proposed resume edits against anti-hallucination rules.
package validation

import "fmt"

// Section types understood by the validator. Edits without a section type
// are validated as bullets.
const (
	SectionBullet         = "bullet"
	SectionSummaryTagline = "summary_tagline"
	SectionSummaryBody    = "summary_body"
	SectionHighlight      = "highlight"
)

// CharWindow is an inclusive character range for a section type.
type CharWindow struct {
	Min int
	Max int
}

// Character windows per section type. Bullets have three bands: one-line,
// an awkward middle band that wraps badly, and two-line.
var (
	TaglineWindow   = CharWindow{Min: 60, Max: 100}
	BodyWindow      = CharWindow{Min: 300, Max: 500}
	HighlightWindow = CharWindow{Min: 150, Max: 250}

	BulletOneLine = CharWindow{Min: 80, Max: 116}
	BulletAwkward = CharWindow{Min: 117, Max: 174}
	BulletTwoLine = CharWindow{Min: 175, Max: 235}
)

// CheckCharLimits checks a character count against the window for the given
// section type. It returns the warnings raised and whether the count is a
// hard failure. Counts under the minimum warn without failing.
func CheckCharLimits(sectionType string, charCount int) ([]string, bool) {
	switch sectionType {
	case SectionSummaryTagline:
		return checkWindow("Tagline", TaglineWindow, charCount)
	case SectionSummaryBody:
		return checkWindow("Summary body", BodyWindow, charCount)
	case SectionHighlight:
		return checkWindow("Highlight", HighlightWindow, charCount)
	default:
		return checkBulletBands(charCount)
	}
}

func checkWindow(name string, window CharWindow, charCount int) ([]string, bool) {
	switch {
	case charCount > window.Max:
		return []string{fmt.Sprintf("CHAR_EXCEEDED: %s %d chars exceeds max (%d)", name, charCount, window.Max)}, true
	case charCount < window.Min:
		return []string{fmt.Sprintf("CHAR_SHORT: %s %d chars below minimum (%d)", name, charCount, window.Min)}, false
	default:
		return nil, false
	}
}

// checkBulletBands applies the three bullet bands. A count in the awkward
// band warns without failing; only counts past the two-line max fail.
func checkBulletBands(charCount int) ([]string, bool) {
	switch {
	case charCount >= BulletAwkward.Min && charCount <= BulletAwkward.Max:
		warning := fmt.Sprintf("CHAR_AWKWARD: %d chars is in awkward range (%d-%d). Adjust to one-line or two-line.",
			charCount, BulletAwkward.Min, BulletAwkward.Max)
		return []string{warning}, false
	case charCount > BulletTwoLine.Max:
		return []string{fmt.Sprintf("CHAR_EXCEEDED: %d chars exceeds max (%d)", charCount, BulletTwoLine.Max)}, true
	case charCount < BulletOneLine.Min:
		return []string{fmt.Sprintf("CHAR_SHORT: %d chars below minimum (%d)", charCount, BulletOneLine.Min)}, false
	default:
		return nil, false
	}
}
