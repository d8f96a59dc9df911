// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Keyword categories assigned during extraction.
const (
	CategoryStrategy      = "strategy"
	CategoryAIML          = "ai_ml"
	CategoryOutcome       = "outcome"
	CategoryMethodology   = "methodology"
	CategoryLeadership    = "leadership"
	CategoryDomain        = "domain"
	CategoryQualification = "qualification"
	CategorySkill         = "skill"
)

// Keyword importance levels. Primary keywords are hard requirements;
// secondary keywords appear near softening phrases such as "preferred".
const (
	ImportancePrimary   = "primary"
	ImportanceSecondary = "secondary"
)

// Keyword represents a single term extracted from a job description
type Keyword struct {
	Term          string `json:"term"`
	Category      string `json:"category"`
	Importance    string `json:"importance"`
	SourceContext string `json:"source_context"`
}
