package corpus

// stopwords are common English words and generic resume verbs that never
// count as hallucinated vocabulary.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {},
	"of": {}, "with": {}, "by": {}, "from": {}, "as": {}, "is": {}, "was": {}, "are": {}, "were": {}, "been": {},
	"be": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {}, "will": {}, "would": {},
	"could": {}, "should": {}, "may": {}, "might": {}, "must": {}, "that": {}, "which": {}, "who": {},
	"this": {}, "these": {}, "those": {}, "it": {}, "its": {}, "i": {}, "my": {}, "our": {}, "we": {}, "they": {},
	"their": {}, "your": {}, "up": {}, "out": {}, "into": {}, "over": {}, "under": {}, "through": {},
	"during": {}, "before": {}, "after": {}, "above": {}, "below": {}, "between": {}, "among": {},
	"while": {}, "when": {}, "where": {}, "how": {}, "what": {}, "why": {}, "all": {}, "each": {}, "every": {},
	"both": {}, "few": {}, "more": {}, "most": {}, "other": {}, "some": {}, "such": {}, "no": {}, "not": {},
	"only": {}, "same": {}, "so": {}, "than": {}, "too": {}, "very": {}, "just": {}, "also": {}, "now": {},
	"new": {}, "first": {}, "last": {}, "long": {}, "great": {}, "little": {}, "own": {}, "well": {},
	"back": {}, "way": {}, "even": {}, "still": {}, "here": {}, "there": {}, "then": {}, "can": {}, "any": {},
	"about": {}, "across": {}, "within": {}, "including": {}, "led": {}, "leading": {}, "using": {},
}

// IsStopword reports whether the lowercased word is excluded from
// hallucination checks.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}
