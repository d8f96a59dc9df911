// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintKeywords outputs the keywords extracted from the job description.
func (p *Printer) PrintKeywords(keywords []types.Keyword) {
	if len(keywords) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total keywords: %d\n\n", len(keywords)))

	count := min(len(keywords), maxItemsToShow)
	for i := 0; i < count; i++ {
		kw := keywords[i]
		sb.WriteString(fmt.Sprintf("• %s (%s, %s)\n", kw.Term, kw.Category, kw.Importance))
	}

	if len(keywords) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more keywords", len(keywords)-maxItemsToShow))
	}

	p.printBox("EXTRACTED KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResumeSections outputs a summary of the parsed resume structure.
func (p *Printer) PrintResumeSections(parsed *types.ParsedResume) {
	if parsed == nil {
		return
	}

	var sb strings.Builder

	tagline := parsed.Summary.Tagline
	if len(tagline) > 45 {
		tagline = tagline[:42] + "..."
	}
	sb.WriteString(fmt.Sprintf("Tagline:  %s\n", tagline))
	sb.WriteString(fmt.Sprintf("Body:     %d chars\n", parsed.Summary.BodyCharCount))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Highlights:         %d\n", len(parsed.Highlights)))
	sb.WriteString(fmt.Sprintf("Experience bullets: %d\n", len(parsed.ExperienceBullets)))

	if len(parsed.ExperienceBullets) > 0 {
		sb.WriteString("\n")
		count := min(len(parsed.ExperienceBullets), 3)
		for i := 0; i < count; i++ {
			bullet := parsed.ExperienceBullets[i]
			text := bullet.Text
			if len(text) > 40 {
				text = text[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("• [%s] %s\n", bullet.ID, text))
		}
		if len(parsed.ExperienceBullets) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(parsed.ExperienceBullets)-3))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapSummary outputs the missing keywords found by gap analysis.
func (p *Printer) PrintGapSummary(gaps []types.GapAnalysis) {
	if len(gaps) == 0 {
		return
	}

	explicit := 0
	var missing []types.GapAnalysis
	for _, gap := range gaps {
		if gap.Status == types.StatusExplicit {
			explicit++
		} else {
			missing = append(missing, gap)
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Explicit: %d   Missing: %d\n", explicit, len(missing)))

	if len(missing) > 0 {
		sb.WriteString("\nMissing keywords:\n")
		count := min(len(missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			gap := missing[i]
			marker := " "
			if gap.Importance == types.ImportancePrimary {
				marker = "!"
			}
			sb.WriteString(fmt.Sprintf("%s • %s (%s)\n", marker, gap.Keyword, gap.Category))
		}
		if len(missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(missing)-maxItemsToShow))
		}
	}

	p.printBox("GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationResults outputs failed edits with their first warning.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationResults(results []types.ValidationResult) {
	failed := 0
	for _, r := range results {
		if !r.Passed {
			failed++
		}
	}

	if failed == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL EDITS PASSED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d failed edits:\n\n", failed))

	shown := 0
	for _, r := range results {
		if r.Passed {
			continue
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", r.BulletID))
		if len(r.Warnings) > 0 {
			warning := r.Warnings[0]
			if len(warning) > 45 {
				warning = warning[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %s\n", warning))
		}
		shown++
		if shown < failed {
			sb.WriteString("\n")
		}
	}

	p.printBox("VALIDATION FAILURES", strings.TrimSuffix(sb.String(), "\n"))
}
