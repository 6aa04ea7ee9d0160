// Package parse converts the semi-structured text block authored by the
// generator into a typed creative record. The upstream output format has
// drifted across revisions, so extraction is driven by ordered lists of
// candidate patterns per field rather than by a single grammar: flat
// "Label: value" lines, "Section" headers followed by "field: value"
// sub-lines, and generic key capture are all accepted, and the first
// pattern that matches wins.
package parse

import (
	"fmt"
	"strings"

	"adcraft/internal/core/domain"
)

// MissingFieldError reports that a field required downstream could not be
// located under any supported pattern. Tried lists the patterns attempted,
// so prompt drift can be debugged from the error alone.
type MissingFieldError struct {
	Field string
	Tried []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q not found in generated text; tried patterns: %s",
		e.Field, strings.Join(e.Tried, ", "))
}

// sectionWindow bounds how many lines after a section header are scanned
// for that section's fields when no blank line, top-level field or other
// header closes it first.
const sectionWindow = 12

// sectionAliases maps every accepted surface form of a section header to
// its canonical name. Headers may appear with or without a trailing colon.
var sectionAliases = map[string]string{
	"background":          "background",
	"title":               "title",
	"headline":            "title",
	"subtitle":            "subtitle",
	"subhead":             "subtitle",
	"subheading":          "subtitle",
	"cta":                 "cta",
	"cta button":          "cta",
	"call to action":      "cta",
	"call-to-action":      "cta",
	"layout":              "layout",
	"canvas":              "canvas",
	"brand":               "brand",
	"branding":            "brand",
	"brand colors":        "brand",
	"logo":                "logo",
	"brand logo":          "logo",
	"decorative elements": "decorative",
	"decorations":         "decorative",
	"text blocks":         "text",
}

// preambleLabels are leading free-text markers the generator sometimes
// emits before the structured block ("APPROACH" in older revisions).
var preambleLabels = []string{"approach", "output", "response", "result", "creative spec"}

// flatOnlyKeys are field labels that only occur at the top level. A field
// line carrying one of these keys ends the enclosing section window the
// same way a new header does, covering output that drops the blank line
// between the last section and the trailing flat fields.
var flatOnlyKeys = map[string]bool{
	"placement":              true,
	"format":                 true,
	"brand logo":             true,
	"brand colors":           true,
	"slogan":                 true,
	"tagline":                true,
	"legal disclaimer":       true,
	"disclaimer":             true,
	"decorative elements":    true,
	"background description": true,
}

type span struct{ start, end int }

// document is the normalized view of the raw text: cleaned lines, section
// line windows, and a flat first-wins key capture of every "key: value"
// line regardless of section.
type document struct {
	lines    []string
	sections map[string]span
	flat     map[string]string
}

// Parse converts raw generator output into a Creative. Optional fields
// missing from the text get documented defaults; only an unrecoverable
// background description is an error. Parsing is pure: the same input
// always yields the same output.
func Parse(raw string) (*domain.Creative, error) {
	doc := scan(raw)

	bg, tried, ok := doc.backgroundDescription()
	if !ok {
		return nil, &MissingFieldError{Field: "background.description", Tried: tried}
	}

	c := &domain.Creative{
		Placement:  domain.NormalizePlacement(doc.flatAny("placement")),
		Dimensions: parseDimensions(doc.fieldAny([]string{"canvas", "layout"}, "dimensions", "size")),
		Format:     domain.NormalizeFormat(doc.flatAny("format")),
		LayoutGrid: domain.NormalizeLayoutGrid(doc.fieldAny([]string{"layout", "canvas"}, "layout grid", "layout", "grid")),
		Background: domain.Background{
			Type:        domain.NormalizeBackgroundType(doc.fieldAny([]string{"background"}, "background type", "type")),
			Color:       normalizeHex(doc.fieldAny([]string{"background"}, "background color", "color"), defaultBgColor),
			Description: bg,
		},
		RawText: raw,
	}

	c.TextBlocks = append(c.TextBlocks, doc.textBlock(domain.TextHeadline, "title"))
	if sub := doc.textBlock(domain.TextSubhead, "subtitle"); sub.Text != "" {
		c.TextBlocks = append(c.TextBlocks, sub)
	}

	if cta, ok := doc.ctaButton(); ok {
		c.CTAButtons = append(c.CTAButtons, cta)
	}

	c.BrandLogo = domain.BrandLogo{AltText: doc.fieldAny([]string{"logo", "brand"}, "brand logo", "logo", "alt text")}
	c.BrandColors = parseColorList(doc.fieldAny([]string{"brand"}, "brand colors", "colors"))
	c.Slogan = doc.flatAny("slogan", "tagline")
	c.LegalDisclaimer = doc.flatAny("legal disclaimer", "disclaimer", "legal")
	c.DecorativeElements = parseDecorativeList(doc.fieldAny([]string{"decorative"}, "decorative elements", "shapes", "elements"))

	return c, nil
}

// scan normalizes the raw text into a document: trims and de-bullets
// lines, drops markdown fences and any leading preamble, then records
// section windows and flat key captures. Blank lines are kept: a blank
// line terminates the open section window.
func scan(raw string) *document {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		lines = append(lines, cleanLine(line))
	}
	lines = stripPreamble(lines)

	doc := &document{
		lines:    lines,
		sections: make(map[string]span),
		flat:     make(map[string]string),
	}
	claimed := make([]bool, len(lines))
	for i, line := range lines {
		name, ok := sectionHeader(line)
		if !ok {
			continue
		}
		claimed[i] = true
		end := i + 1 + sectionWindow
		if end > len(lines) {
			end = len(lines)
		}
		for j := i + 1; j < end; j++ {
			if sectionBoundary(lines[j]) {
				end = j
				break
			}
		}
		for j := i + 1; j < end; j++ {
			claimed[j] = true
		}
		if _, seen := doc.sections[name]; !seen {
			doc.sections[name] = span{start: i + 1, end: end}
		}
	}
	// Flat captures only consider lines outside every section window, so a
	// section's fields cannot masquerade as top-level ones.
	for i, line := range lines {
		if claimed[i] {
			continue
		}
		if key, value, ok := fieldLine(line); ok {
			if _, seen := doc.flat[key]; !seen {
				doc.flat[key] = value
			}
		}
	}
	return doc
}

// sectionBoundary reports whether a line closes the open section window: a
// blank line, another section header, or a field that only occurs at the
// top level.
func sectionBoundary(line string) bool {
	if line == "" {
		return true
	}
	if _, ok := sectionHeader(line); ok {
		return true
	}
	if key, _, ok := fieldLine(line); ok && flatOnlyKeys[key] {
		return true
	}
	return false
}

// cleanLine trims whitespace, list bullets and markdown emphasis, and
// drops code fences entirely.
func cleanLine(line string) string {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "```") {
		return ""
	}
	for _, b := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, b) {
			line = strings.TrimSpace(line[len(b):])
			break
		}
	}
	line = strings.ReplaceAll(line, "**", "")
	if strings.HasPrefix(line, "#") && !hexRe.MatchString(line) {
		line = strings.TrimLeft(line, "#")
	}
	return strings.TrimSpace(line)
}

// stripPreamble drops everything before the first recognizable structured
// line when the text opens with a known preamble label. Without a
// recognized label the text is taken as-is.
func stripPreamble(lines []string) []string {
	first := -1
	for i, line := range lines {
		if line != "" {
			first = i
			break
		}
	}
	if first < 0 {
		return lines
	}
	lower := strings.ToLower(lines[first])
	matched := false
	for _, label := range preambleLabels {
		if strings.HasPrefix(lower, label) {
			matched = true
			break
		}
	}
	if !matched {
		return lines
	}
	for i := first + 1; i < len(lines); i++ {
		if _, ok := sectionHeader(lines[i]); ok {
			return lines[i:]
		}
		if _, _, ok := fieldLine(lines[i]); ok {
			return lines[i:]
		}
	}
	return lines
}

// sectionHeader reports whether a line opens a section. A header is a
// known section name, optionally with a trailing colon, carrying no value
// of its own.
func sectionHeader(line string) (string, bool) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(line), ":")
	name, ok := sectionAliases[strings.ToLower(trimmed)]
	if !ok {
		return "", false
	}
	// "Background: #fff" is a field line, not a header
	if idx := strings.Index(line, ":"); idx >= 0 && strings.TrimSpace(line[idx+1:]) != "" {
		return "", false
	}
	return name, true
}

// fieldLine splits "key: value" capturing any non-empty key and value.
func fieldLine(line string) (key, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}
	key = strings.ToLower(strings.TrimSpace(line[:idx]))
	value = strings.Trim(strings.TrimSpace(line[idx+1:]), `"`)
	if key == "" || value == "" {
		return "", "", false
	}
	return key, value, true
}

// sectionField scans only the open window of one section for the first of
// the given keys. Lines belonging to another section are never consumed:
// windows stop at the next header even when the upstream text drops its
// trailing colon.
func (d *document) sectionField(section string, keys ...string) (string, bool) {
	sp, ok := d.sections[section]
	if !ok {
		return "", false
	}
	for i := sp.start; i < sp.end; i++ {
		key, value, ok := fieldLine(d.lines[i])
		if !ok {
			continue
		}
		for _, want := range keys {
			if key == want {
				return value, true
			}
		}
	}
	return "", false
}

// flatAny returns the first flat capture among keys, or "".
func (d *document) flatAny(keys ...string) string {
	for _, k := range keys {
		if v, ok := d.flat[k]; ok {
			return v
		}
	}
	return ""
}

// fieldAny tries each listed section's window first, then the flat
// captures, for the given keys in order. Section scopes win so a
// same-named key in a later section cannot shadow them.
func (d *document) fieldAny(sections []string, keys ...string) string {
	for _, s := range sections {
		if v, ok := d.sectionField(s, keys...); ok {
			return v
		}
	}
	return d.flatAny(keys...)
}

// backgroundDescription resolves the one field required downstream,
// trying each historical surface form in order. It returns the patterns
// tried so a failure names the expected formats.
func (d *document) backgroundDescription() (string, []string, bool) {
	tried := []string{
		`"Background Description: <text>"`,
		`"Background" section with "description: <text>"`,
		`"Background: <text>"`,
	}
	if v := d.flatAny("background description"); v != "" {
		return v, tried, true
	}
	if v, ok := d.sectionField("background", "description"); ok {
		return v, tried, true
	}
	// A flat "Background: ..." line only counts when its value is prose,
	// not a color or a type keyword.
	if v, ok := d.flat["background"]; ok {
		if normalizeHex(v, "") == "" && !isBackgroundKeyword(v) {
			return v, tried, true
		}
	}
	return "", tried, false
}

func isBackgroundKeyword(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "photo", "photographic", "image", "solid", "gradient", "textured", "texture", "color":
		return true
	}
	return false
}

// textBlock assembles a headline or subhead from its section and the flat
// captures. The headline entry is always produced, possibly with empty
// text.
func (d *document) textBlock(typ domain.TextBlockType, section string) domain.TextBlock {
	var text string
	switch typ {
	case domain.TextHeadline:
		text = d.flatAny("title", "headline")
	case domain.TextSubhead:
		text = d.flatAny("subtitle", "subhead", "subheading")
	}
	if text == "" {
		if v, ok := d.sectionField(section, "text"); ok {
			text = v
		}
	}

	scoped := func(keys ...string) string {
		if v, ok := d.sectionField(section, keys...); ok {
			return v
		}
		if typ == domain.TextHeadline {
			return d.flatAny(keys...)
		}
		return ""
	}

	font := scoped("font", "font family")
	if font == "" {
		font = defaultFont
	}
	return domain.TextBlock{
		Type:      typ,
		Text:      text,
		Font:      font,
		Weight:    parseWeight(scoped("font weight", "weight")),
		Color:     normalizeHex(scoped("text color", "color"), defaultTextColor),
		Alignment: domain.NormalizeAlignment(scoped("alignment", "text alignment")),
		CaseStyle: domain.NormalizeCaseStyle(scoped("case style", "case")),
	}
}

// ctaButton assembles the call-to-action when any of its surface forms is
// present.
func (d *document) ctaButton() (domain.CTAButton, bool) {
	text := d.flatAny("cta", "cta text", "call to action")
	if text == "" {
		if v, ok := d.sectionField("cta", "text"); ok {
			text = v
		}
	}
	if text == "" {
		return domain.CTAButton{}, false
	}
	scoped := func(keys ...string) string {
		if v, ok := d.sectionField("cta", keys...); ok {
			return v
		}
		return d.flatAny(keys...)
	}
	return domain.CTAButton{
		Text:      text,
		URL:       scoped("cta url", "url", "link"),
		Style:     domain.NormalizeCTAStyle(scoped("cta style", "style")),
		BgColor:   normalizeHex(scoped("cta background color", "background color", "bg color"), defaultCTABgColor),
		TextColor: normalizeHex(scoped("cta text color", "text color"), defaultCTATextColor),
	}, true
}
