package validation

import (
	"unicode/utf8"

	"github.com/jonathan/resume-tailor/internal/corpus"
	"github.com/jonathan/resume-tailor/internal/types"
)

// ValidateEdit runs every rule over a proposed edit and returns the warnings
// raised plus the overall pass verdict. Rules run in a fixed order (character
// limits, vocabulary, metrics preservation, proper nouns) and are independent,
// so one edit can accumulate several warnings. Character shortfalls and
// proper-noun flags warn without failing; everything else fails the edit.
func ValidateEdit(original, proposed string, vocab corpus.Vocabulary, sectionType string) ([]string, bool) {
	warnings := []string{}
	passed := true

	charWarnings, exceeded := CheckCharLimits(sectionType, utf8.RuneCountInString(proposed))
	warnings = append(warnings, charWarnings...)
	if exceeded {
		passed = false
	}

	if warning, risky := CheckVocabulary(original, proposed, vocab); risky {
		warnings = append(warnings, warning)
		passed = false
	}

	if warning, lost := CheckMetricsPreserved(original, proposed); lost {
		warnings = append(warnings, warning)
		passed = false
	}

	warnings = append(warnings, CheckProperNouns(original, proposed, vocab)...)

	return warnings, passed
}

// ValidateEdits validates a batch of proposed edits against the corpus
// vocabulary. Rule violations land in the results; only a structurally
// invalid edit returns an error.
func ValidateEdits(edits []types.ProposedEdit, vocab corpus.Vocabulary) ([]types.ValidationResult, error) {
	results := make([]types.ValidationResult, 0, len(edits))
	for i := range edits {
		edit := &edits[i]
		if err := edit.Validate(); err != nil {
			return nil, &EditError{Index: i, Cause: err}
		}

		sectionType := edit.SectionType
		if sectionType == "" {
			sectionType = SectionBullet
		}

		warnings, passed := ValidateEdit(edit.Original, edit.Proposed, vocab, sectionType)
		results = append(results, types.ValidationResult{
			BulletID:     edit.EffectiveID(),
			Original:     edit.Original,
			Proposed:     edit.Proposed,
			KeywordAdded: edit.KeywordAdded,
			CharCount:    utf8.RuneCountInString(edit.Proposed),
			Warnings:     warnings,
			Passed:       passed,
		})
	}
	return results, nil
}

// Summarize aggregates validation results into headline counts.
func Summarize(results []types.ValidationResult) types.ValidationCounts {
	counts := types.ValidationCounts{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			counts.Passed++
		} else {
			counts.Failed++
		}
		counts.Warnings += len(r.Warnings)
	}
	return counts
}
