package gaps

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Coverage statuses reported per keyword per section.
const (
	CoverageFound   = "found"
	CoverageMissing = "missing"
)

// Coverage reports, for each keyword, whether it appears in the section text
// as a case-insensitive substring.
func Coverage(keywords []types.Keyword, sectionText string) map[string]string {
	textLower := strings.ToLower(sectionText)
	coverage := make(map[string]string, len(keywords))
	for _, kw := range keywords {
		if strings.Contains(textLower, strings.ToLower(kw.Term)) {
			coverage[kw.Term] = CoverageFound
		} else {
			coverage[kw.Term] = CoverageMissing
		}
	}
	return coverage
}
