// Package corpus builds the vocabulary of approved words from the candidate's bullet corpus.
package corpus

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/ingestion"
)

// wordPattern tokenizes text into word characters, keeping hyphenated terms
// such as "go-to-market" together.
var wordPattern = regexp.MustCompile(`\b[\w-]+\b`)

// Vocabulary is the set of lowercased words appearing anywhere in the bullet
// corpus. It is built once per run and read-only afterwards.
type Vocabulary map[string]struct{}

// Load reads a corpus document from disk and builds its vocabulary.
func Load(path string) (Vocabulary, error) {
	text, err := ingestion.ReadDocument(path)
	if err != nil {
		return nil, err
	}
	return FromText(text), nil
}

// FromText builds a vocabulary from raw corpus text.
func FromText(text string) Vocabulary {
	vocab := make(Vocabulary)
	for _, word := range Words(text) {
		vocab[word] = struct{}{}
	}
	return vocab
}

// Words tokenizes text into lowercased word tokens.
func Words(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// Contains reports whether word is in the vocabulary. Lookup is
// case-insensitive.
func (v Vocabulary) Contains(word string) bool {
	_, ok := v[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct words in the vocabulary.
func (v Vocabulary) Len() int {
	return len(v)
}
