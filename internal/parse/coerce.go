package parse

import (
	"regexp"
	"strconv"
	"strings"

	"adcraft/internal/core/domain"
)

// Defaults applied when a field is missing or fails coercion. These mirror
// the values the generator is instructed to use, so a creative parsed from
// sparse text still renders sensibly.
const (
	defaultWidth  = 1080
	defaultHeight = 1920
	defaultWeight = 400

	defaultFont         = "sans-serif"
	defaultTextColor    = "#000000"
	defaultBgColor      = "#ffffff"
	defaultCTABgColor   = "#007bff"
	defaultCTATextColor = "#ffffff"
	defaultShapeColor   = "#cccccc"
)

var (
	dimensionsRe = regexp.MustCompile(`(\d{2,5})\s*[xX×]\s*(\d{2,5})`)
	hexRe        = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	colorSplitRe = regexp.MustCompile(`[,;\s]+`)
)

// parseDimensions coerces a "WxH" string into pixel dimensions, falling
// back to 1080x1920 when the string does not contain two integers.
func parseDimensions(s string) domain.Dimensions {
	m := dimensionsRe.FindStringSubmatch(s)
	if m == nil {
		return domain.Dimensions{Width: defaultWidth, Height: defaultHeight}
	}
	w, err1 := strconv.Atoi(m[1])
	h, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return domain.Dimensions{Width: defaultWidth, Height: defaultHeight}
	}
	return domain.Dimensions{Width: w, Height: h}
}

// parseWeight coerces a font weight. Numeric values are taken as-is when
// in the valid 100-900 range; the common keywords map to their CSS
// equivalents; everything else falls back to 400.
func parseWeight(s string) int {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 100 && n <= 900 {
			return n
		}
		return defaultWeight
	}
	switch s {
	case "light", "thin":
		return 300
	case "normal", "regular":
		return defaultWeight
	case "medium":
		return 500
	case "semibold", "semi-bold":
		return 600
	case "bold":
		return 700
	case "black", "heavy":
		return 900
	}
	return defaultWeight
}

// normalizeHex validates a hex color, tolerating a missing leading '#'.
// Invalid colors become def.
func normalizeHex(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if !hexRe.MatchString(s) {
		return def
	}
	return strings.ToLower(s)
}

// parseColorList extracts every valid hex color from a comma or space
// separated list, preserving order and discarding the rest.
func parseColorList(s string) []string {
	var out []string
	for _, tok := range colorSplitRe.Split(s, -1) {
		if tok == "" {
			continue
		}
		if c := normalizeHex(tok, ""); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// parseDecorativeList parses entries like "circle #ff0000, wave #00aaff".
// Each comma-separated entry is a shape name optionally followed by a
// color.
func parseDecorativeList(s string) []domain.DecorativeElement {
	var out []domain.DecorativeElement
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" || strings.EqualFold(entry, "none") {
			continue
		}
		fields := strings.Fields(entry)
		el := domain.DecorativeElement{
			Shape: domain.NormalizeShape(fields[0]),
			Color: defaultShapeColor,
		}
		for _, f := range fields[1:] {
			f = strings.Trim(f, "()")
			if c := normalizeHex(f, ""); c != "" {
				el.Color = c
				break
			}
		}
		out = append(out, el)
	}
	return out
}
