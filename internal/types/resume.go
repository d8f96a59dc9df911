package types

import "unicode/utf8"

// ResumeSummary holds the tagline and body extracted from the summary section
type ResumeSummary struct {
	Tagline          string `json:"tagline"`
	TaglineCharCount int    `json:"tagline_char_count"`
	Body             string `json:"body"`
	BodyCharCount    int    `json:"body_char_count"`
}

// NewResumeSummary builds a summary with character counts derived from the text.
// Counts are in runes so multi-byte characters count once.
func NewResumeSummary(tagline, body string) ResumeSummary {
	return ResumeSummary{
		Tagline:          tagline,
		TaglineCharCount: utf8.RuneCountInString(tagline),
		Body:             body,
		BodyCharCount:    utf8.RuneCountInString(body),
	}
}

// CareerHighlight represents a single bullet from the career highlights section
type CareerHighlight struct {
	ID        string   `json:"id"`
	Label     string   `json:"label"`
	Text      string   `json:"text"`
	FullText  string   `json:"full_text"`
	CharCount int      `json:"char_count"`
	Metrics   []string `json:"metrics"`
}

// Bullet represents a single achievement bullet from the experience section
type Bullet struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	CharCount int      `json:"char_count"`
	Company   string   `json:"company"`
	Metrics   []string `json:"metrics"`
}

// ParsedResume is the structured decomposition of a resume document
type ParsedResume struct {
	Summary           ResumeSummary
	Highlights        []CareerHighlight
	ExperienceBullets []Bullet
	RawText           string
}
