// Package metrics extracts quantified achievements from bullet text.
package metrics

import "regexp"

// pattern matches the quantified forms that count as metrics: currency
// amounts ($2.5M), percentages (40%), multipliers (3x), and open-ended
// counts (10+).
var pattern = regexp.MustCompile(`\$[\d.,]+[MBK]?|\d+%|\d+x|\d+\+`)

// Extract returns every metric in text in order of appearance. A metric that
// appears twice is returned twice.
func Extract(text string) []string {
	found := pattern.FindAllString(text, -1)
	if found == nil {
		return []string{}
	}
	return found
}

// Set returns the distinct metrics in text.
func Set(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, m := range pattern.FindAllString(text, -1) {
		set[m] = struct{}{}
	}
	return set
}
