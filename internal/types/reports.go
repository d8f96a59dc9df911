package types

// ReportMeta carries provenance for an emitted report: the run identifier,
// generation timestamp, and digests of the input documents.
type ReportMeta struct {
	RunID       string        `json:"run_id"`
	GeneratedAt string        `json:"generated_at"`
	Inputs      []InputDigest `json:"inputs"`
}

// InputDigest identifies one ingested input document
type InputDigest struct {
	Path      string `json:"path"`
	Format    string `json:"format"`
	CharCount int    `json:"char_count"`
	SHA256    string `json:"sha256"`
}

// SummarySection is the summary portion of a preprocess report
type SummarySection struct {
	Tagline          string            `json:"tagline"`
	TaglineCharCount int               `json:"tagline_char_count"`
	Body             string            `json:"body"`
	BodyCharCount    int               `json:"body_char_count"`
	KeywordsCoverage map[string]string `json:"keywords_coverage"`
}

// HighlightsSection is the career-highlights portion of a preprocess report
type HighlightsSection struct {
	Items            []CareerHighlight `json:"items"`
	KeywordsCoverage map[string]string `json:"keywords_coverage"`
}

// ExperienceSection is the experience portion of a preprocess report
type ExperienceSection struct {
	Bullets          []Bullet          `json:"bullets"`
	KeywordsCoverage map[string]string `json:"keywords_coverage"`
}

// ReportSections groups the per-section parsing results and coverage maps
type ReportSections struct {
	Summary    SummarySection    `json:"summary"`
	Highlights HighlightsSection `json:"highlights"`
	Experience ExperienceSection `json:"experience"`
}

// PreprocessCounts aggregates headline numbers for a preprocess run
type PreprocessCounts struct {
	TotalKeywords          int `json:"total_keywords"`
	ExplicitMatches        int `json:"explicit_matches"`
	Missing                int `json:"missing"`
	MissingPrimary         int `json:"missing_primary"`
	MissingSecondary       int `json:"missing_secondary"`
	TotalHighlights        int `json:"total_highlights"`
	TotalExperienceBullets int `json:"total_experience_bullets"`
}

// PreprocessReport is the JSON document written by the preprocess command
type PreprocessReport struct {
	Meta       ReportMeta       `json:"meta"`
	JDFile     string           `json:"jd_file"`
	ResumeFile string           `json:"resume_file"`
	Keywords   []Keyword        `json:"keywords"`
	Sections   ReportSections   `json:"sections"`
	Gaps       []GapAnalysis    `json:"gaps"`
	Summary    PreprocessCounts `json:"summary"`
}

// ValidationCounts aggregates headline numbers for a validation run
type ValidationCounts struct {
	Total    int `json:"total"`
	Passed   int `json:"passed"`
	Failed   int `json:"failed"`
	Warnings int `json:"warnings"`
}

// ValidationReport is the JSON document written by the validate command
type ValidationReport struct {
	Meta    ReportMeta         `json:"meta"`
	Results []ValidationResult `json:"results"`
	Summary ValidationCounts   `json:"summary"`
}
