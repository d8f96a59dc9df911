package validation

import (
	"fmt"
	"sort"

	"github.com/jonathan/resume-tailor/internal/corpus"
)

// CheckVocabulary flags words the proposed text introduces that appear
// nowhere in the bullet corpus. Words already in the original, stopwords,
// bare numbers, and tokens of one or two characters are ignored. Offending
// words are reported once each, alphabetically.
func CheckVocabulary(original, proposed string, vocab corpus.Vocabulary) (string, bool) {
	originalWords := make(map[string]bool)
	for _, word := range corpus.Words(original) {
		originalWords[word] = true
	}

	flagged := make(map[string]bool)
	for _, word := range corpus.Words(proposed) {
		if originalWords[word] || corpus.IsStopword(word) {
			continue
		}
		if isNumeric(word) || len(word) <= 2 {
			continue
		}
		if !vocab.Contains(word) {
			flagged[word] = true
		}
	}
	if len(flagged) == 0 {
		return "", false
	}

	words := make([]string, 0, len(flagged))
	for word := range flagged {
		words = append(words, word)
	}
	sort.Strings(words)
	return fmt.Sprintf("HALLUCINATION_RISK: Words not in corpus: %v", words), true
}

// isNumeric reports whether word consists entirely of ASCII digits.
func isNumeric(word string) bool {
	for _, r := range word {
		if r < '0' || r > '9' {
			return false
		}
	}
	return word != ""
}
