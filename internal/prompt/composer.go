// Package prompt builds the requests sent to the external generators: the
// system/user message pair for text generation and the focused prompts for
// image generation. Everything here is pure string assembly; no network
// calls are made.
package prompt

import (
	"fmt"
	"strings"

	"adcraft/internal/core/domain"
)

// systemContract enumerates the exact output schema the generator must
// follow. It is the other half of the parser's format tolerance: the
// parser survives deviations from this contract, but the contract keeps
// deviations rare.
const systemContract = `You are an advertising creative director. Produce one advertising creative for the campaign brief.

Respond with plain text in exactly this format, one field per line:

Title: <headline text>
Subtitle: <supporting line>
Font: <font family>
Font Weight: <100-900, default 400>
Text Color: <hex color, e.g. #1a1a2e>
Alignment: <left|center|right>
Case Style: <normal|upper|title>
Placement: <homepage|email|app|social|display>
Dimensions: <width>x<height>
Format: <static|gif|video|html5>
Layout: <free|2-col|3-col|golden-ratio>
Background Type: <photo|solid|gradient|textured>
Background Color: <hex color>
Background Description: <the scene to render>
CTA: <button text>
CTA URL: <target link>
CTA Style: <solid|outline|ghost>
CTA Background Color: <hex color>
CTA Text Color: <hex color>
Brand Logo: <logo alt text>
Brand Colors: <comma-separated hex colors>
Slogan: <optional slogan>
Legal Disclaimer: <optional disclaimer>
Decorative Elements: <comma-separated "shape #color" pairs, or "none">

Rules:
- Every enum field must use one of its listed values; when unsure, use the first.
- All colors are hex values with a leading '#'.
- The Background Description must be purely visual and objective: concrete objects, colors, lighting and composition only. No mood adjectives, no emotions, no text or lettering in the scene.
- Do not add commentary before or after the fields.`

const modifyContract = `You are an advertising creative director revising an existing creative. Apply the requested change and return the complete revised creative in the same field-per-line format as the input, preserving every field you were not asked to change. Do not add commentary.`

// MaxExemplars bounds how many retrieved creatives are embedded in the
// user message as few-shot context.
const MaxExemplars = 5

// Compose builds the system/user message pair for a generation call,
// embedding up to MaxExemplars retrieved creatives as compact summaries to
// bias style without overfitting exact wording.
func Compose(campaignText string, exemplars []domain.Creative) (system, user string) {
	var b strings.Builder
	b.WriteString("Campaign brief: ")
	b.WriteString(strings.TrimSpace(campaignText))
	b.WriteString("\n")

	if len(exemplars) > MaxExemplars {
		exemplars = exemplars[:MaxExemplars]
	}
	if len(exemplars) > 0 {
		b.WriteString("\nFor stylistic inspiration, here are summaries of past creatives that performed well on similar campaigns. Take cues from their tone and structure, but write original copy:\n")
		for i, ex := range exemplars {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, Summarize(&ex)))
		}
	}
	b.WriteString("\nProduce the creative now.")
	return systemContract, b.String()
}

// ComposeModification builds the message pair for revising previously
// generated raw text.
func ComposeModification(rawText, instruction string) (system, user string) {
	var b strings.Builder
	b.WriteString("Current creative:\n")
	b.WriteString(strings.TrimSpace(rawText))
	b.WriteString("\n\nRequested change: ")
	b.WriteString(strings.TrimSpace(instruction))
	return modifyContract, b.String()
}

// Summarize renders one creative as a single-line exemplar summary:
// headline, subhead, background, layout and CTA only.
func Summarize(c *domain.Creative) string {
	parts := make([]string, 0, 5)
	if h := c.Headline(); h != nil && h.Text != "" {
		parts = append(parts, fmt.Sprintf("headline %q", h.Text))
	}
	if s := c.Subhead(); s != nil && s.Text != "" {
		parts = append(parts, fmt.Sprintf("subtitle %q", s.Text))
	}
	if c.Background.Description != "" {
		parts = append(parts, fmt.Sprintf("%s background: %s", c.Background.Type, c.Background.Description))
	}
	parts = append(parts, fmt.Sprintf("%s layout", c.LayoutGrid))
	if len(c.CTAButtons) > 0 && c.CTAButtons[0].Text != "" {
		parts = append(parts, fmt.Sprintf("CTA %q", c.CTAButtons[0].Text))
	}
	return strings.Join(parts, "; ")
}
