package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/corpus"
	"github.com/jonathan/resume-tailor/internal/types"
)

func TestValidateEdit_PassesCleanEdit(t *testing.T) {
	vocab := corpus.FromText("delivered analytics worldwide for customers")
	original := "Grew revenue 40% by launching analytics products for enterprise customers"
	proposed := original + " worldwide"

	warnings, passed := ValidateEdit(original, proposed, vocab, SectionBullet)

	assert.NotNil(t, warnings)
	assert.Empty(t, warnings)
	assert.True(t, passed)
}

func TestValidateEdit_WarningsFollowRuleOrder(t *testing.T) {
	vocab := corpus.FromText("built dashboards")
	original := "Grew revenue 40% with dashboards"
	proposed := "Grew blockchain dashboards with Stripe"

	warnings, passed := ValidateEdit(original, proposed, vocab, SectionBullet)

	require.Len(t, warnings, 4)
	assert.Equal(t, "CHAR_SHORT: 38 chars below minimum (80)", warnings[0])
	assert.Equal(t, "HALLUCINATION_RISK: Words not in corpus: [blockchain stripe]", warnings[1])
	assert.Equal(t, "METRICS_LOST: [40%]", warnings[2])
	assert.Equal(t, "NEW_PROPER_NOUN: 'Stripe' - verify this exists in your experience", warnings[3])
	assert.False(t, passed)
}

func TestValidateEdit_CharShortDoesNotFail(t *testing.T) {
	vocab := corpus.FromText("shipped quickly")
	original := "Shipped analytics dashboards"
	proposed := "Shipped analytics dashboards quickly"

	warnings, passed := ValidateEdit(original, proposed, vocab, SectionBullet)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "CHAR_SHORT")
	assert.True(t, passed)
}

func TestValidateEdit_ProperNounDoesNotFail(t *testing.T) {
	vocab := corpus.FromText("released today")
	original := "Delivered payment integrations with stripe for merchant analytics dashboards"
	proposed := "Delivered payment integrations with Stripe for merchant analytics dashboards today"

	warnings, passed := ValidateEdit(original, proposed, vocab, SectionBullet)

	require.Len(t, warnings, 1)
	assert.Equal(t, "NEW_PROPER_NOUN: 'Stripe' - verify this exists in your experience", warnings[0])
	assert.True(t, passed)
}

func TestValidateEdit_HallucinationFails(t *testing.T) {
	vocab := corpus.FromText("owned roadmap planning for platform teams across three product lines")
	original := "Owned roadmap planning for platform teams handling enterprise workloads daily"
	proposed := original + " using blockchain"

	warnings, passed := ValidateEdit(original, proposed, vocab, SectionBullet)

	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "HALLUCINATION_RISK")
	assert.Contains(t, warnings[0], "blockchain")
	assert.False(t, passed)
}

func TestValidateEdits_DefaultsSectionTypeToBullet(t *testing.T) {
	vocab := corpus.FromText("enterprise customers analytics")
	edits := []types.ProposedEdit{{
		BulletID: "exp_1",
		Original: "Led analytics work",
		Proposed: "Led analytics work for enterprise customers",
	}}

	results, err := ValidateEdits(edits, vocab)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "exp_1", results[0].BulletID)
	assert.Equal(t, 43, results[0].CharCount)
	require.Len(t, results[0].Warnings, 1)
	assert.Equal(t, "CHAR_SHORT: 43 chars below minimum (80)", results[0].Warnings[0])
	assert.True(t, results[0].Passed)
}

func TestValidateEdits_HonorsSectionType(t *testing.T) {
	vocab := corpus.FromText("anything")
	text := strings.Repeat("a", 101)
	edits := []types.ProposedEdit{{
		ID:          "edit_1",
		Original:    text,
		Proposed:    text,
		SectionType: SectionSummaryTagline,
	}}

	results, err := ValidateEdits(edits, vocab)

	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Warnings, 1)
	assert.Equal(t, "CHAR_EXCEEDED: Tagline 101 chars exceeds max (100)", results[0].Warnings[0])
	assert.False(t, results[0].Passed)
}

func TestValidateEdits_IDFallbackChain(t *testing.T) {
	vocab := corpus.FromText("words")
	edits := []types.ProposedEdit{
		{ID: "e1", BulletID: "b1", Original: "a", Proposed: "a"},
		{BulletID: "b2", Original: "a", Proposed: "a"},
		{Original: "a", Proposed: "a"},
	}

	results, err := ValidateEdits(edits, vocab)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "e1", results[0].BulletID)
	assert.Equal(t, "b2", results[1].BulletID)
	assert.Equal(t, "unknown", results[2].BulletID)
}

func TestValidateEdits_RejectsMissingRequiredFields(t *testing.T) {
	vocab := corpus.FromText("words")
	edits := []types.ProposedEdit{
		{Original: "a", Proposed: "a"},
		{Original: "a"},
	}

	results, err := ValidateEdits(edits, vocab)

	assert.Nil(t, results)
	require.Error(t, err)
	var editErr *EditError
	require.ErrorAs(t, err, &editErr)
	assert.Equal(t, 1, editErr.Index)
	assert.Contains(t, err.Error(), "edit 1")
}

func TestSummarize(t *testing.T) {
	results := []types.ValidationResult{
		{Passed: true, Warnings: []string{}},
		{Passed: true, Warnings: []string{"CHAR_SHORT: 43 chars below minimum (80)"}},
		{Passed: false, Warnings: []string{"METRICS_LOST: [40%]", "CHAR_EXCEEDED: 240 chars exceeds max (235)"}},
	}

	counts := Summarize(results)

	assert.Equal(t, 3, counts.Total)
	assert.Equal(t, 2, counts.Passed)
	assert.Equal(t, 1, counts.Failed)
	assert.Equal(t, 3, counts.Warnings)
}

func TestSummarize_Empty(t *testing.T) {
	counts := Summarize(nil)

	assert.Equal(t, types.ValidationCounts{}, counts)
}
