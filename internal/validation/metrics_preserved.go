package validation

import (
	"fmt"
	"sort"

	"github.com/jonathan/resume-tailor/internal/metrics"
)

// CheckMetricsPreserved flags metrics present in the original text but
// absent from the proposed replacement. Edits must not silently drop
// quantified achievements. Lost metrics are reported alphabetically.
func CheckMetricsPreserved(original, proposed string) (string, bool) {
	originalMetrics := metrics.Set(original)
	proposedMetrics := metrics.Set(proposed)

	var lost []string
	for m := range originalMetrics {
		if _, ok := proposedMetrics[m]; !ok {
			lost = append(lost, m)
		}
	}
	if len(lost) == 0 {
		return "", false
	}

	sort.Strings(lost)
	return fmt.Sprintf("METRICS_LOST: %v", lost), true
}
