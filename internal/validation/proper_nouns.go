package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-tailor/internal/corpus"
)

// properNounPattern matches capitalized words and runs of them, such as
// "Stripe" or "Google Cloud Platform".
var properNounPattern = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)

// CheckProperNouns flags capitalized sequences new to the proposed text
// whose lowercase form (plain or hyphen-joined) is absent from the corpus
// vocabulary. These warnings are advisory and never fail the edit: casing
// differences are common enough that a human should decide.
func CheckProperNouns(original, proposed string, vocab corpus.Vocabulary) []string {
	originalCaps := capitalizedSequences(original)

	var newCaps []string
	for seq := range capitalizedSequences(proposed) {
		if !originalCaps[seq] {
			newCaps = append(newCaps, seq)
		}
	}
	sort.Strings(newCaps)

	var warnings []string
	for _, seq := range newCaps {
		lower := strings.ToLower(seq)
		if vocab.Contains(lower) || vocab.Contains(strings.ReplaceAll(lower, " ", "-")) {
			continue
		}
		warnings = append(warnings, fmt.Sprintf("NEW_PROPER_NOUN: '%s' - verify this exists in your experience", seq))
	}
	return warnings
}

func capitalizedSequences(text string) map[string]bool {
	sequences := make(map[string]bool)
	for _, match := range properNounPattern.FindAllString(text, -1) {
		sequences[match] = true
	}
	return sequences
}
