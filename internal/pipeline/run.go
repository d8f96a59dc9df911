// Package pipeline provides the high-level orchestration for the preprocess and validate commands.
package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-tailor/internal/corpus"
	"github.com/jonathan/resume-tailor/internal/gaps"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/keywords"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/resume"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/jonathan/resume-tailor/internal/validation"
)

const bannerWidth = 60

// PreprocessOptions holds configuration for a preprocess run
type PreprocessOptions struct {
	JDPath     string
	ResumePath string
	CorpusPath string
	OutputPath string
	Verbose    bool
}

// ValidateOptions holds configuration for a validate run
type ValidateOptions struct {
	EditsPath  string
	CorpusPath string
	OutputPath string
	Verbose    bool
}

// RunPreprocess extracts keywords from the job description, parses the resume
// into sections, analyzes keyword gaps against the resume and corpus, and
// writes the combined report to opts.OutputPath.
func RunPreprocess(opts PreprocessOptions) error {
	printer := observability.NewPrinter(os.Stdout)
	runID := uuid.New().String()

	fmt.Printf("Step 1/4: Reading input documents...\n")
	jdText, jdMeta, err := ingestion.ReadDocumentWithMetadata(opts.JDPath)
	if err != nil {
		return fmt.Errorf("reading job description failed: %w", err)
	}
	resumeText, resumeMeta, err := ingestion.ReadDocumentWithMetadata(opts.ResumePath)
	if err != nil {
		return fmt.Errorf("reading resume failed: %w", err)
	}
	corpusText, corpusMeta, err := ingestion.ReadDocumentWithMetadata(opts.CorpusPath)
	if err != nil {
		return fmt.Errorf("reading corpus failed: %w", err)
	}
	if opts.Verbose {
		fmt.Printf("[VERBOSE] Job description: %d chars (%s)\n", jdMeta.CharCount, jdMeta.Format)
		fmt.Printf("[VERBOSE] Resume: %d chars (%s)\n", resumeMeta.CharCount, resumeMeta.Format)
		fmt.Printf("[VERBOSE] Corpus: %d chars (%s)\n", corpusMeta.CharCount, corpusMeta.Format)
	}

	fmt.Printf("Step 2/4: Extracting keywords from job description...\n")
	extracted := keywords.Extract(jdText)
	if opts.Verbose {
		printer.PrintKeywords(extracted)
	}

	fmt.Printf("Step 3/4: Parsing resume sections...\n")
	parsed := resume.Parse(resumeText)
	if opts.Verbose {
		printer.PrintResumeSections(&parsed)
	}

	fmt.Printf("Step 4/4: Analyzing keyword gaps...\n")
	analyses := gaps.Analyze(extracted, resumeText, corpusText)
	gaps.Sort(analyses)
	if opts.Verbose {
		printer.PrintGapSummary(analyses)
	}

	report := buildPreprocessReport(opts, runID, extracted, parsed, analyses,
		[]ingestion.Metadata{*jdMeta, *resumeMeta, *corpusMeta})

	if err := writeReport(opts.OutputPath, report, schemas.PreprocessReportSchema); err != nil {
		return fmt.Errorf("writing report failed: %w", err)
	}

	printPreprocessSummary(opts.OutputPath, &report)
	return nil
}

// RunValidation checks proposed edits against the experience corpus and
// writes the per-edit results to opts.OutputPath.
func RunValidation(opts ValidateOptions) error {
	printer := observability.NewPrinter(os.Stdout)
	runID := uuid.New().String()

	fmt.Printf("Step 1/3: Loading proposed edits...\n")
	edits, err := validation.LoadEdits(opts.EditsPath)
	if err != nil {
		return fmt.Errorf("loading edits failed: %w", err)
	}
	if opts.Verbose {
		fmt.Printf("[VERBOSE] Loaded %d proposed edits\n", len(edits))
	}

	fmt.Printf("Step 2/3: Loading experience corpus...\n")
	corpusText, corpusMeta, err := ingestion.ReadDocumentWithMetadata(opts.CorpusPath)
	if err != nil {
		return fmt.Errorf("reading corpus failed: %w", err)
	}
	vocab := corpus.FromText(corpusText)
	if opts.Verbose {
		fmt.Printf("[VERBOSE] Corpus vocabulary: %d distinct words\n", vocab.Len())
	}

	fmt.Printf("Step 3/3: Validating edits...\n")
	results, err := validation.ValidateEdits(edits, vocab)
	if err != nil {
		return fmt.Errorf("validating edits failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintValidationResults(results)
	}

	report := types.ValidationReport{
		Meta: types.ReportMeta{
			RunID:       runID,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			Inputs:      inputDigests([]ingestion.Metadata{*corpusMeta}),
		},
		Results: results,
		Summary: validation.Summarize(results),
	}

	if err := writeReport(opts.OutputPath, report, schemas.ValidationReportSchema); err != nil {
		return fmt.Errorf("writing report failed: %w", err)
	}

	printValidationSummary(opts.OutputPath, &report)
	return nil
}

func buildPreprocessReport(opts PreprocessOptions, runID string, extracted []types.Keyword, parsed types.ParsedResume, analyses []types.GapAnalysis, inputs []ingestion.Metadata) types.PreprocessReport {
	summaryText := parsed.Summary.Tagline + " " + parsed.Summary.Body

	highlightTexts := make([]string, 0, len(parsed.Highlights))
	for _, h := range parsed.Highlights {
		highlightTexts = append(highlightTexts, h.FullText)
	}
	highlightsText := strings.Join(highlightTexts, " ")

	bulletTexts := make([]string, 0, len(parsed.ExperienceBullets))
	for _, b := range parsed.ExperienceBullets {
		bulletTexts = append(bulletTexts, b.Text)
	}
	experienceText := strings.Join(bulletTexts, " ")

	return types.PreprocessReport{
		Meta: types.ReportMeta{
			RunID:       runID,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			Inputs:      inputDigests(inputs),
		},
		JDFile:     opts.JDPath,
		ResumeFile: opts.ResumePath,
		Keywords:   extracted,
		Sections: types.ReportSections{
			Summary: types.SummarySection{
				Tagline:          parsed.Summary.Tagline,
				TaglineCharCount: parsed.Summary.TaglineCharCount,
				Body:             parsed.Summary.Body,
				BodyCharCount:    parsed.Summary.BodyCharCount,
				KeywordsCoverage: gaps.Coverage(extracted, summaryText),
			},
			Highlights: types.HighlightsSection{
				Items:            parsed.Highlights,
				KeywordsCoverage: gaps.Coverage(extracted, highlightsText),
			},
			Experience: types.ExperienceSection{
				Bullets:          parsed.ExperienceBullets,
				KeywordsCoverage: gaps.Coverage(extracted, experienceText),
			},
		},
		Gaps:    analyses,
		Summary: countGaps(extracted, parsed, analyses),
	}
}

func countGaps(extracted []types.Keyword, parsed types.ParsedResume, analyses []types.GapAnalysis) types.PreprocessCounts {
	counts := types.PreprocessCounts{
		TotalKeywords:          len(extracted),
		TotalHighlights:        len(parsed.Highlights),
		TotalExperienceBullets: len(parsed.ExperienceBullets),
	}
	for _, gap := range analyses {
		switch gap.Status {
		case types.StatusExplicit:
			counts.ExplicitMatches++
		case types.StatusMissing:
			counts.Missing++
			if gap.Importance == types.ImportancePrimary {
				counts.MissingPrimary++
			} else {
				counts.MissingSecondary++
			}
		}
	}
	return counts
}

func inputDigests(metas []ingestion.Metadata) []types.InputDigest {
	digests := make([]types.InputDigest, 0, len(metas))
	for _, m := range metas {
		digests = append(digests, types.InputDigest{
			Path:      m.Path,
			Format:    m.Format,
			CharCount: m.CharCount,
			SHA256:    m.SHA256,
		})
	}
	return digests
}

// writeReport marshals the report to path, creating parent directories as
// needed, and checks it against the named schema. A schema mismatch is
// reported on stderr but does not fail the run: the report is already on
// disk for inspection.
func writeReport(path string, report any, schemaName string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := schemas.Validate(schemaName, data); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: written report does not match %s: %v\n", schemaName, err)
	}
	return nil
}

func printPreprocessSummary(outputPath string, report *types.PreprocessReport) {
	banner := strings.Repeat("=", bannerWidth)

	fmt.Printf("\n%s\n", banner)
	fmt.Printf("GAP ANALYSIS COMPLETE\n")
	fmt.Printf("%s\n", banner)
	fmt.Printf("Keywords found: %d\n", report.Summary.TotalKeywords)
	fmt.Printf("  - Explicit in resume: %d\n", report.Summary.ExplicitMatches)
	fmt.Printf("  - Missing: %d (%d primary)\n", report.Summary.Missing, report.Summary.MissingPrimary)
	fmt.Printf("\nRESUME SECTIONS:\n")
	fmt.Printf("  Summary tagline: %d chars\n", report.Sections.Summary.TaglineCharCount)
	fmt.Printf("  Summary body: %d chars\n", report.Sections.Summary.BodyCharCount)
	fmt.Printf("  Career highlights: %d items\n", report.Summary.TotalHighlights)
	fmt.Printf("  Experience bullets: %d items\n", report.Summary.TotalExperienceBullets)
	fmt.Printf("\nOutput written to: %s\n", outputPath)
	fmt.Printf("%s\n\n", banner)

	fmt.Printf("MISSING KEYWORDS (prioritized):\n")
	for _, gap := range report.Gaps {
		if gap.Status == types.StatusMissing {
			fmt.Printf("  [%s] %s (%s)\n", strings.ToUpper(gap.Importance), gap.Keyword, gap.Category)
		}
	}
}

func printValidationSummary(outputPath string, report *types.ValidationReport) {
	banner := strings.Repeat("=", bannerWidth)

	fmt.Printf("\n%s\n", banner)
	fmt.Printf("VALIDATION COMPLETE\n")
	fmt.Printf("%s\n", banner)
	fmt.Printf("Total edits: %d\n", report.Summary.Total)
	fmt.Printf("  - Passed: %d\n", report.Summary.Passed)
	fmt.Printf("  - Failed: %d\n", report.Summary.Failed)
	fmt.Printf("  - Total warnings: %d\n", report.Summary.Warnings)
	fmt.Printf("\nOutput written to: %s\n", outputPath)
	fmt.Printf("%s\n\n", banner)

	for _, r := range report.Results {
		if r.Passed {
			continue
		}
		fmt.Printf("\nFAILED: %s\n", r.BulletID)
		for _, w := range r.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}
