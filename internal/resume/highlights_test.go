package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHighlights_ColonLabel(t *testing.T) {
	highlights := ParseHighlights("• Scaling Teams: Grew org from 5 to 50 engineers in 18 months")

	require.Len(t, highlights, 1)
	h := highlights[0]
	assert.Equal(t, "highlight_0", h.ID)
	assert.Equal(t, "Scaling Teams:", h.Label)
	assert.Equal(t, "Grew org from 5 to 50 engineers in 18 months", h.Text)
	assert.Equal(t, "Scaling Teams: Grew org from 5 to 50 engineers in 18 months", h.FullText)
	assert.Equal(t, len([]rune(h.FullText)), h.CharCount)
}

func TestParseHighlights_EnDashLabel(t *testing.T) {
	highlights := ParseHighlights("• Platform Vision – Set multi-year technical strategy adopted company-wide")

	require.Len(t, highlights, 1)
	assert.Equal(t, "Platform Vision –", highlights[0].Label)
	assert.Equal(t, "Set multi-year technical strategy adopted company-wide", highlights[0].Text)
}

func TestParseHighlights_NoLabel(t *testing.T) {
	highlights := ParseHighlights("• Launched AI-powered recommendations driving $2M revenue")

	require.Len(t, highlights, 1)
	assert.Empty(t, highlights[0].Label)
	assert.Equal(t, "Launched AI-powered recommendations driving $2M revenue", highlights[0].Text)
	assert.Equal(t, []string{"$2M"}, highlights[0].Metrics)
}

func TestParseHighlights_HyphenBulletMarker(t *testing.T) {
	highlights := ParseHighlights("- Delivered the replatforming effort two quarters early")

	require.Len(t, highlights, 1)
	assert.Equal(t, "Delivered the replatforming effort two quarters early", highlights[0].FullText)
}

func TestParseHighlights_SkipsNonBulletAndShortLines(t *testing.T) {
	highlightsText := `Intro line that is not a bullet
• short one
• Retention Wins: Cut churn 30% across two product lines
`

	highlights := ParseHighlights(highlightsText)

	// The skipped short bullet does not consume an id.
	require.Len(t, highlights, 1)
	assert.Equal(t, "highlight_0", highlights[0].ID)
	assert.Equal(t, []string{"30%"}, highlights[0].Metrics)
}

func TestParseHighlights_SequentialIDs(t *testing.T) {
	highlightsText := `• First highlight with plenty of text to count
• Second highlight with plenty of text to count
• Third highlight with plenty of text to count`

	highlights := ParseHighlights(highlightsText)

	require.Len(t, highlights, 3)
	assert.Equal(t, "highlight_0", highlights[0].ID)
	assert.Equal(t, "highlight_1", highlights[1].ID)
	assert.Equal(t, "highlight_2", highlights[2].ID)
}

func TestParseHighlights_EmptyInput(t *testing.T) {
	highlights := ParseHighlights("")

	assert.NotNil(t, highlights)
	assert.Empty(t, highlights)
}
