package resume

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-tailor/internal/metrics"
	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	maxCompanyLen   = 30
	maxCompanyIDLen = 20
	defaultCompany  = "unknown"
)

var (
	// companyHeaderPattern detects company header lines by their date range
	// (2020-2023, 2019 – 21) or a standalone "Present".
	companyHeaderPattern = regexp.MustCompile(`(19|20)\d{2}\s*[-–]\s*(19|20)?\d{2}|Present`)
	// companySplitPattern separates the company name from the date text:
	// a tab or a run of two-plus spaces.
	companySplitPattern = regexp.MustCompile(`\t|\s{2,}`)
	// companyIDPattern collapses everything outside [a-zA-Z0-9] for ids.
	companyIDPattern = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// ParseExperience parses the experience block into bullets attributed to the
// most recent company header. Header detection runs before bullet detection,
// so a dated line is a header even when it starts with a bullet marker.
// Bullets before any header belong to the "unknown" company. The id counter
// spans companies and counts accepted bullets only.
func ParseExperience(experienceText string) []types.Bullet {
	bullets := []types.Bullet{}
	company := defaultCompany
	count := 0

	for _, line := range strings.Split(experienceText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if companyHeaderPattern.MatchString(line) {
			parts := companySplitPattern.Split(line, -1)
			company = truncateRunes(strings.TrimSpace(parts[0]), maxCompanyLen)
			continue
		}

		if !isBulletLine(line) {
			continue
		}
		text := strings.TrimSpace(bulletMarkerPattern.ReplaceAllString(line, ""))
		if utf8.RuneCountInString(text) < minBulletLen {
			continue
		}

		bullets = append(bullets, types.Bullet{
			ID:        fmt.Sprintf("%s_%d", companyID(company), count),
			Text:      text,
			CharCount: utf8.RuneCountInString(text),
			Company:   company,
			Metrics:   metrics.Extract(text),
		})
		count++
	}

	return bullets
}

// companyID sanitizes a company name for use in bullet ids.
func companyID(company string) string {
	return truncateRunes(companyIDPattern.ReplaceAllString(strings.ToLower(company), "_"), maxCompanyIDLen)
}
