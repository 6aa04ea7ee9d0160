package domain

import "strings"

// Enum fields arriving from generated text are normalised against their
// closed sets; anything unrecognised becomes the documented default. An
// invalid value never propagates into a stored Creative.

// Placement identifies where the creative will run.
type Placement string

const (
	PlacementHomepage Placement = "homepage"
	PlacementEmail    Placement = "email"
	PlacementApp      Placement = "app"
	PlacementSocial   Placement = "social"
	PlacementDisplay  Placement = "display"
)

// NormalizePlacement maps free text to a Placement, defaulting to social.
func NormalizePlacement(s string) Placement {
	switch Placement(canon(s)) {
	case PlacementHomepage, PlacementEmail, PlacementApp, PlacementSocial, PlacementDisplay:
		return Placement(canon(s))
	}
	return PlacementSocial
}

// Format is the delivery format of the creative.
type Format string

const (
	FormatStatic Format = "static"
	FormatGIF    Format = "gif"
	FormatVideo  Format = "video"
	FormatHTML5  Format = "html5"
)

// NormalizeFormat maps free text to a Format, defaulting to static.
func NormalizeFormat(s string) Format {
	switch Format(canon(s)) {
	case FormatStatic, FormatGIF, FormatVideo, FormatHTML5:
		return Format(canon(s))
	}
	return FormatStatic
}

// LayoutGrid is the composition grid the creative is laid out on.
type LayoutGrid string

const (
	LayoutFree        LayoutGrid = "free"
	LayoutTwoCol      LayoutGrid = "2-col"
	LayoutThreeCol    LayoutGrid = "3-col"
	LayoutGoldenRatio LayoutGrid = "golden-ratio"
)

// NormalizeLayoutGrid maps free text to a LayoutGrid, defaulting to free.
func NormalizeLayoutGrid(s string) LayoutGrid {
	switch LayoutGrid(canon(s)) {
	case LayoutFree, LayoutTwoCol, LayoutThreeCol, LayoutGoldenRatio:
		return LayoutGrid(canon(s))
	}
	return LayoutFree
}

// BackgroundType classifies the backdrop treatment.
type BackgroundType string

const (
	BackgroundPhoto    BackgroundType = "photo"
	BackgroundSolid    BackgroundType = "solid"
	BackgroundGradient BackgroundType = "gradient"
	BackgroundTextured BackgroundType = "textured"
)

// NormalizeBackgroundType maps free text to a BackgroundType, defaulting
// to solid. "photographic" and "image" are accepted aliases for photo.
func NormalizeBackgroundType(s string) BackgroundType {
	switch canon(s) {
	case "photo", "photographic", "image":
		return BackgroundPhoto
	case "solid", "color":
		return BackgroundSolid
	case "gradient":
		return BackgroundGradient
	case "textured", "texture":
		return BackgroundTextured
	}
	return BackgroundSolid
}

// TextBlockType distinguishes headline from supporting copy.
type TextBlockType string

const (
	TextHeadline TextBlockType = "headline"
	TextSubhead  TextBlockType = "subhead"
)

// CTAStyle is the visual treatment of a call-to-action button.
type CTAStyle string

const (
	CTASolid   CTAStyle = "solid"
	CTAOutline CTAStyle = "outline"
	CTAGhost   CTAStyle = "ghost"
)

// NormalizeCTAStyle maps free text to a CTAStyle, defaulting to solid.
func NormalizeCTAStyle(s string) CTAStyle {
	switch CTAStyle(canon(s)) {
	case CTASolid, CTAOutline, CTAGhost:
		return CTAStyle(canon(s))
	}
	return CTASolid
}

// Alignment positions a text block horizontally.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// NormalizeAlignment maps free text to an Alignment, defaulting to center.
func NormalizeAlignment(s string) Alignment {
	switch Alignment(canon(s)) {
	case AlignLeft, AlignCenter, AlignRight:
		return Alignment(canon(s))
	}
	return AlignCenter
}

// CaseStyle is the letter casing applied to a text block.
type CaseStyle string

const (
	CaseNormal CaseStyle = "normal"
	CaseUpper  CaseStyle = "upper"
	CaseTitle  CaseStyle = "title"
)

// NormalizeCaseStyle maps free text to a CaseStyle, defaulting to normal.
func NormalizeCaseStyle(s string) CaseStyle {
	switch canon(s) {
	case "normal", "none":
		return CaseNormal
	case "upper", "uppercase", "caps", "all-caps":
		return CaseUpper
	case "title", "titlecase", "title-case":
		return CaseTitle
	}
	return CaseNormal
}

// Shape classifies a decorative element.
type Shape string

const (
	ShapeCircle    Shape = "circle"
	ShapeSquare    Shape = "square"
	ShapeLine      Shape = "line"
	ShapeWave      Shape = "wave"
	ShapeGeometric Shape = "geometric"
)

// NormalizeShape maps free text to a Shape, defaulting to geometric.
func NormalizeShape(s string) Shape {
	switch Shape(canon(s)) {
	case ShapeCircle, ShapeSquare, ShapeLine, ShapeWave, ShapeGeometric:
		return Shape(canon(s))
	}
	return ShapeGeometric
}

func canon(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
