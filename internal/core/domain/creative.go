package domain

import "time"

// Creative is the structured advertising unit produced by the generation
// pipeline. All enum-typed fields hold values from their closed sets; the
// parser normalises anything else to the documented default before a
// Creative is constructed.
type Creative struct {
	ID         string     `json:"id"`
	CampaignID string     `json:"campaign_id"`
	Placement  Placement  `json:"placement"`
	Dimensions Dimensions `json:"dimensions"`
	Format     Format     `json:"format"`
	LayoutGrid LayoutGrid `json:"layout_grid"`
	Background Background `json:"background"`

	// TextBlocks is ordered; a successfully parsed creative always carries
	// a headline entry first, possibly with empty text.
	TextBlocks []TextBlock `json:"text_blocks"`
	CTAButtons []CTAButton `json:"cta_buttons"`

	BrandLogo          BrandLogo           `json:"brand_logo"`
	BrandColors        []string            `json:"brand_colors"`
	Slogan             string              `json:"slogan,omitempty"`
	LegalDisclaimer    string              `json:"legal_disclaimer,omitempty"`
	DecorativeElements []DecorativeElement `json:"decorative_elements"`

	// Imagery starts empty and is populated only by the image-generation
	// stage, never by the parser.
	Imagery []Image `json:"imagery"`

	// RawText preserves the generator output the creative was parsed from.
	// Audit field only.
	RawText string `json:"raw_text,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Dimensions is the creative canvas size in pixels.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Background describes the creative backdrop. Description is the only
// field required downstream: it seeds background image generation.
type Background struct {
	Type        BackgroundType `json:"type"`
	Color       string         `json:"color"`
	Description string         `json:"description"`
}

// TextBlock is a single piece of copy on the canvas.
type TextBlock struct {
	Type      TextBlockType `json:"type"`
	Text      string        `json:"text"`
	Font      string        `json:"font"`
	Weight    int           `json:"weight"`
	Color     string        `json:"color"`
	Alignment Alignment     `json:"alignment"`
	CaseStyle CaseStyle     `json:"case_style"`
}

// CTAButton is a call-to-action element.
type CTAButton struct {
	Text      string   `json:"text"`
	URL       string   `json:"url"`
	Style     CTAStyle `json:"style"`
	BgColor   string   `json:"bg_color"`
	TextColor string   `json:"text_color"`
}

// BrandLogo carries only the textual stand-in for the logo; actual logo
// assets live outside the pipeline.
type BrandLogo struct {
	AltText string `json:"alt_text"`
}

// DecorativeElement is a non-textual accent placed on the canvas.
type DecorativeElement struct {
	Shape Shape  `json:"shape"`
	Color string `json:"color"`
}

// ImageType distinguishes the two renders produced per creative.
type ImageType string

const (
	ImageBackground ImageType = "background"
	ImagePoster     ImageType = "poster"
)

// Image is one generated asset attached to a creative.
type Image struct {
	Type         ImageType `json:"type"`
	URL          string    `json:"url"`
	AltText      string    `json:"alt_text"`
	GeneratedAt  time.Time `json:"generated_at"`
	Model        string    `json:"model"`
	SourcePrompt string    `json:"source_prompt"`
}

// Headline returns the first headline text block, or nil when the creative
// has no text blocks at all.
func (c *Creative) Headline() *TextBlock {
	for i := range c.TextBlocks {
		if c.TextBlocks[i].Type == TextHeadline {
			return &c.TextBlocks[i]
		}
	}
	return nil
}

// Subhead returns the first subhead text block, or nil.
func (c *Creative) Subhead() *TextBlock {
	for i := range c.TextBlocks {
		if c.TextBlocks[i].Type == TextSubhead {
			return &c.TextBlocks[i]
		}
	}
	return nil
}
