package types

import (
	"github.com/go-playground/validator/v10"
)

// UnknownBulletID is reported when an edit carries no usable identifier.
const UnknownBulletID = "unknown"

// ProposedEdit represents one entry of a proposed-edits input file
type ProposedEdit struct {
	ID           string `json:"id,omitempty"`
	BulletID     string `json:"bullet_id,omitempty"`
	Original     string `json:"original" validate:"required"`
	Proposed     string `json:"proposed" validate:"required"`
	SectionType  string `json:"section_type,omitempty"`
	KeywordAdded string `json:"keyword_added,omitempty"`
}

// Validate checks that the required fields are present
func (e *ProposedEdit) Validate() error {
	validate := validator.New()
	return validate.Struct(e)
}

// EffectiveID returns the identifier reported for this edit: id when set,
// then bullet_id, then "unknown".
func (e *ProposedEdit) EffectiveID() string {
	if e.ID != "" {
		return e.ID
	}
	if e.BulletID != "" {
		return e.BulletID
	}
	return UnknownBulletID
}

// ValidationResult records the outcome of validating one proposed edit
type ValidationResult struct {
	BulletID     string   `json:"bullet_id"`
	Original     string   `json:"original"`
	Proposed     string   `json:"proposed"`
	KeywordAdded string   `json:"keyword_added"`
	CharCount    int      `json:"char_count"`
	Warnings     []string `json:"warnings"`
	Passed       bool     `json:"passed"`
}
