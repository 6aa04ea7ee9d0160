package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"adcraft/internal/core/domain"
)

func posterCreative() *domain.Creative {
	return &domain.Creative{
		Background: domain.Background{
			Type:        domain.BackgroundGradient,
			Color:       "#ffe4f1",
			Description: "Soft pastel gradient from blush pink to lavender",
		},
		LayoutGrid: domain.LayoutTwoCol,
		TextBlocks: []domain.TextBlock{
			{Type: domain.TextHeadline, Text: "Spring Refresh"},
			{Type: domain.TextSubhead, Text: "Pastel picks for the season"},
		},
		BrandColors: []string{"#ff5e8a", "#ffe4f1"},
		Slogan:      "Bloom every day",
		DecorativeElements: []domain.DecorativeElement{
			{Shape: domain.ShapeCircle, Color: "#ffd1dc"},
		},
	}
}

func TestBackgroundPrompt(t *testing.T) {
	p := BackgroundPrompt(posterCreative())

	assert.Contains(t, p, "A smooth gradient background: Soft pastel gradient from blush pink to lavender.")
	assert.Contains(t, p, "Dominant color #ffe4f1.")
	assert.Contains(t, p, "room for a 2-col text layout")
	assert.Contains(t, p, "circle shapes in #ffd1dc")
	assert.Contains(t, p, "No text, no lettering")
	// copy never reaches the background render
	assert.NotContains(t, p, "Spring Refresh")
}

func TestBackgroundPromptTypePhrasing(t *testing.T) {
	c := posterCreative()
	for typ, want := range map[domain.BackgroundType]string{
		domain.BackgroundPhoto:    "A photographic background:",
		domain.BackgroundSolid:    "A clean solid-color background:",
		domain.BackgroundTextured: "A textured background surface:",
	} {
		c.Background.Type = typ
		assert.Contains(t, BackgroundPrompt(c), want)
	}
}

func TestBackgroundPromptFreeLayoutOmitsHint(t *testing.T) {
	c := posterCreative()
	c.LayoutGrid = domain.LayoutFree
	assert.NotContains(t, BackgroundPrompt(c), "text layout")
}

func TestPosterPrompt(t *testing.T) {
	p := PosterPrompt(posterCreative())

	assert.Contains(t, p, "An advertising poster. Scene: Soft pastel gradient from blush pink to lavender.")
	assert.Contains(t, p, `The poster's message is "Spring Refresh" with supporting line "Pastel picks for the season"`)
	assert.Contains(t, p, "convey this visually rather than with rendered text")
	assert.Contains(t, p, `Brand slogan for tone: "Bloom every day".`)
	assert.Contains(t, p, "Brand palette: #ff5e8a, #ffe4f1.")
	assert.Contains(t, p, posterSuffix)
}

func TestPosterPromptWithoutCopy(t *testing.T) {
	c := &domain.Creative{
		Background: domain.Background{Description: "Deep navy night sky over city rooftops."},
	}
	p := PosterPrompt(c)

	assert.Contains(t, p, "Scene: Deep navy night sky over city rooftops.")
	assert.NotContains(t, p, "message is")
	// the description already ends with a period, so none is appended
	assert.NotContains(t, p, "rooftops..")
}
