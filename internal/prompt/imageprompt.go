package prompt

import (
	"fmt"
	"strings"

	"adcraft/internal/core/domain"
)

// Quality suffixes appended to every render request. The background
// variant insists on an empty canvas so text can be composited later.
const (
	backgroundSuffix = "High resolution, professional advertising photography quality. No text, no lettering, no logos, no people holding signs."
	posterSuffix     = "High resolution, professional advertising poster composition."
)

// BackgroundPrompt derives the prompt for a background-only render from a
// parsed creative: the validated background description with type-specific
// phrasing and layout hints.
func BackgroundPrompt(c *domain.Creative) string {
	var b strings.Builder
	switch c.Background.Type {
	case domain.BackgroundPhoto:
		b.WriteString("A photographic background: ")
	case domain.BackgroundGradient:
		b.WriteString("A smooth gradient background: ")
	case domain.BackgroundTextured:
		b.WriteString("A textured background surface: ")
	default:
		b.WriteString("A clean solid-color background: ")
	}
	b.WriteString(strings.TrimSpace(c.Background.Description))
	if !strings.HasSuffix(b.String(), ".") {
		b.WriteString(".")
	}

	if c.Background.Color != "" {
		fmt.Fprintf(&b, " Dominant color %s.", c.Background.Color)
	}
	if c.LayoutGrid != domain.LayoutFree {
		fmt.Fprintf(&b, " Composition leaves room for a %s text layout.", c.LayoutGrid)
	}
	if len(c.DecorativeElements) > 0 {
		b.WriteString(" Subtle decorative accents: ")
		b.WriteString(decorativeHints(c.DecorativeElements))
		b.WriteString(".")
	}
	b.WriteString(" ")
	b.WriteString(backgroundSuffix)
	return b.String()
}

// PosterPrompt derives the prompt for a full-poster render: background
// plus copy given as context, color and decorative hints, and slogan. The
// quoted text is context for composition, not lettering to be drawn.
func PosterPrompt(c *domain.Creative) string {
	var b strings.Builder
	b.WriteString("An advertising poster. Scene: ")
	b.WriteString(strings.TrimSpace(c.Background.Description))
	if !strings.HasSuffix(b.String(), ".") {
		b.WriteString(".")
	}

	if h := c.Headline(); h != nil && h.Text != "" {
		fmt.Fprintf(&b, " The poster's message is %q", h.Text)
		if s := c.Subhead(); s != nil && s.Text != "" {
			fmt.Fprintf(&b, " with supporting line %q", s.Text)
		}
		b.WriteString("; convey this visually rather than with rendered text.")
	}
	if c.Slogan != "" {
		fmt.Fprintf(&b, " Brand slogan for tone: %q.", c.Slogan)
	}
	if len(c.BrandColors) > 0 {
		fmt.Fprintf(&b, " Brand palette: %s.", strings.Join(c.BrandColors, ", "))
	}
	if len(c.DecorativeElements) > 0 {
		b.WriteString(" Decorative accents: ")
		b.WriteString(decorativeHints(c.DecorativeElements))
		b.WriteString(".")
	}
	b.WriteString(" ")
	b.WriteString(posterSuffix)
	return b.String()
}

func decorativeHints(els []domain.DecorativeElement) string {
	hints := make([]string, 0, len(els))
	for _, el := range els {
		hints = append(hints, fmt.Sprintf("%s shapes in %s", el.Shape, el.Color))
	}
	return strings.Join(hints, ", ")
}
