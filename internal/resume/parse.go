package resume

import "github.com/jonathan/resume-tailor/internal/types"

// Parse decomposes raw resume text into its structured sections.
func Parse(resumeText string) types.ParsedResume {
	sections := SplitSections(resumeText)
	return types.ParsedResume{
		Summary:           ParseSummary(sections[SectionSummary]),
		Highlights:        ParseHighlights(sections[SectionHighlights]),
		ExperienceBullets: ParseExperience(sections[SectionExperience]),
		RawText:           resumeText,
	}
}

// AllBullets flattens a parsed resume into a single bullet list. Highlights
// are converted to bullets under the "highlights" company marker, followed
// by the experience bullets.
func AllBullets(parsed types.ParsedResume) []types.Bullet {
	all := make([]types.Bullet, 0, len(parsed.Highlights)+len(parsed.ExperienceBullets))
	for _, h := range parsed.Highlights {
		all = append(all, types.Bullet{
			ID:        h.ID,
			Text:      h.FullText,
			CharCount: h.CharCount,
			Company:   "highlights",
			Metrics:   h.Metrics,
		})
	}
	return append(all, parsed.ExperienceBullets...)
}
