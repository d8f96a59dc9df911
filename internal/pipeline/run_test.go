package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

const pipelineJD = "Seeking a product strategy lead. Preferred background: SaaS. 5+ years of experience required."

const pipelineResume = "Jordan Smith\n" +
	"jordan@example.com | 555-1234\n" +
	"\n" +
	"Product leader with a decade of SaaS platform work building analytics products.\n" +
	"\n" +
	"CAREER HIGHLIGHTS\n" +
	"• Scaling Teams: Grew product org from 4 to 20 people across three offices while keeping attrition low.\n" +
	"• Launched analytics suite adopted by 40% of enterprise accounts within two quarters of release.\n" +
	"\n" +
	"EXPERIENCE\n" +
	"Acme Corp\t2019 - 2023\n" +
	"• Led product strategy for the analytics platform serving enterprise customers.\n" +
	"• Grew revenue 40% by repositioning the core subscription tiers.\n"

const pipelineCorpus = "Built saas analytics workflows with enterprise customers."

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunPreprocess_WritesReport(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "out", "preprocess.json")

	opts := PreprocessOptions{
		JDPath:     writeInput(t, dir, "jd.txt", pipelineJD),
		ResumePath: writeInput(t, dir, "resume.txt", pipelineResume),
		CorpusPath: writeInput(t, dir, "corpus.txt", pipelineCorpus),
		OutputPath: outputPath,
	}

	require.NoError(t, RunPreprocess(opts))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var report types.PreprocessReport
	require.NoError(t, json.Unmarshal(data, &report))

	// Keywords: two industry terms in scan order, then the years requirement.
	require.Len(t, report.Keywords, 3)
	assert.Equal(t, "product strategy", report.Keywords[0].Term)
	assert.Equal(t, types.CategoryStrategy, report.Keywords[0].Category)
	assert.Equal(t, types.ImportancePrimary, report.Keywords[0].Importance)
	assert.Equal(t, "saas", report.Keywords[1].Term)
	assert.Equal(t, types.CategoryDomain, report.Keywords[1].Category)
	assert.Equal(t, types.ImportanceSecondary, report.Keywords[1].Importance)
	assert.Equal(t, "5+ years experience", report.Keywords[2].Term)
	assert.Equal(t, types.CategoryQualification, report.Keywords[2].Category)

	// Gaps are sorted missing-first.
	require.Len(t, report.Gaps, 3)
	assert.Equal(t, "5+ years experience", report.Gaps[0].Keyword)
	assert.Equal(t, types.StatusMissing, report.Gaps[0].Status)
	assert.Equal(t, "product strategy", report.Gaps[1].Keyword)
	assert.Equal(t, types.StatusExplicit, report.Gaps[1].Status)
	assert.Equal(t, "saas", report.Gaps[2].Keyword)
	assert.Equal(t, types.StatusExplicit, report.Gaps[2].Status)

	// Sections reflect the parsed resume.
	assert.Equal(t, "Product leader with a decade of SaaS platform work building analytics products.", report.Sections.Summary.Tagline)
	assert.Empty(t, report.Sections.Summary.Body)
	require.Len(t, report.Sections.Highlights.Items, 2)
	assert.Equal(t, "Scaling Teams:", report.Sections.Highlights.Items[0].Label)
	require.Len(t, report.Sections.Experience.Bullets, 2)
	assert.Equal(t, "acme_corp_0", report.Sections.Experience.Bullets[0].ID)
	assert.Equal(t, "Acme Corp", report.Sections.Experience.Bullets[0].Company)

	// Per-section coverage.
	assert.Equal(t, "found", report.Sections.Summary.KeywordsCoverage["saas"])
	assert.Equal(t, "missing", report.Sections.Summary.KeywordsCoverage["product strategy"])
	assert.Equal(t, "found", report.Sections.Experience.KeywordsCoverage["product strategy"])

	// Headline counts.
	assert.Equal(t, 3, report.Summary.TotalKeywords)
	assert.Equal(t, 2, report.Summary.ExplicitMatches)
	assert.Equal(t, 1, report.Summary.Missing)
	assert.Equal(t, 1, report.Summary.MissingPrimary)
	assert.Equal(t, 0, report.Summary.MissingSecondary)
	assert.Equal(t, 2, report.Summary.TotalHighlights)
	assert.Equal(t, 2, report.Summary.TotalExperienceBullets)

	// Provenance.
	_, err = uuid.Parse(report.Meta.RunID)
	assert.NoError(t, err)
	assert.NotEmpty(t, report.Meta.GeneratedAt)
	require.Len(t, report.Meta.Inputs, 3)
	assert.Equal(t, opts.JDPath, report.Meta.Inputs[0].Path)
	assert.Equal(t, "text", report.Meta.Inputs[0].Format)
	assert.Len(t, report.Meta.Inputs[0].SHA256, 64)
}

func TestRunPreprocess_MissingInput(t *testing.T) {
	dir := t.TempDir()

	opts := PreprocessOptions{
		JDPath:     filepath.Join(dir, "missing.txt"),
		ResumePath: writeInput(t, dir, "resume.txt", pipelineResume),
		CorpusPath: writeInput(t, dir, "corpus.txt", pipelineCorpus),
		OutputPath: filepath.Join(dir, "out.json"),
	}

	err := RunPreprocess(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading job description failed")
}

func TestRunValidation_WritesReport(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "out", "validation.json")

	editsJSON := `[
		{
			"id": "edit_1",
			"bullet_id": "acme_corp_0",
			"original": "Led product strategy for the analytics platform serving enterprise customers.",
			"proposed": "Led product strategy for the SaaS analytics platform serving enterprise customers.",
			"keyword_added": "saas"
		},
		{
			"bullet_id": "acme_corp_1",
			"original": "Grew revenue 40% by repositioning the core subscription tiers.",
			"proposed": "Grew revenue by repositioning the core blockchain tiers."
		}
	]`

	opts := ValidateOptions{
		EditsPath:  writeInput(t, dir, "edits.json", editsJSON),
		CorpusPath: writeInput(t, dir, "corpus.txt", pipelineCorpus),
		OutputPath: outputPath,
	}

	require.NoError(t, RunValidation(opts))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var report types.ValidationReport
	require.NoError(t, json.Unmarshal(data, &report))

	require.Len(t, report.Results, 2)

	// id wins over bullet_id when both are present.
	assert.Equal(t, "edit_1", report.Results[0].BulletID)
	assert.True(t, report.Results[0].Passed)
	assert.Empty(t, report.Results[0].Warnings)
	assert.Equal(t, 82, report.Results[0].CharCount)
	assert.Equal(t, "saas", report.Results[0].KeywordAdded)

	assert.Equal(t, "acme_corp_1", report.Results[1].BulletID)
	assert.False(t, report.Results[1].Passed)
	assert.Contains(t, report.Results[1].Warnings, "METRICS_LOST: [40%]")
	assert.Contains(t, report.Results[1].Warnings, "HALLUCINATION_RISK: Words not in corpus: [blockchain]")

	assert.Equal(t, 2, report.Summary.Total)
	assert.Equal(t, 1, report.Summary.Passed)
	assert.Equal(t, 1, report.Summary.Failed)
	assert.Equal(t, 3, report.Summary.Warnings)

	require.Len(t, report.Meta.Inputs, 1)
	assert.Equal(t, opts.CorpusPath, report.Meta.Inputs[0].Path)
}

func TestRunValidation_BadEditsFile(t *testing.T) {
	dir := t.TempDir()

	opts := ValidateOptions{
		EditsPath:  writeInput(t, dir, "edits.json", `[{"original": "only one side"}]`),
		CorpusPath: writeInput(t, dir, "corpus.txt", pipelineCorpus),
		OutputPath: filepath.Join(dir, "out.json"),
	}

	err := RunValidation(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading edits failed")
}
