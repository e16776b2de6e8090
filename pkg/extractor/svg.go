package extractor

import (
	"regexp"
	"strings"

	"github.com/kataras/color-extractor/pkg/converter"
)

var svgColorAttr = regexp.MustCompile(`(?i)(?:^|[\s"'])(fill|stroke|stop-color|flood-color|lighting-color|color)\s*=\s*(?:"([^"]*)"|'([^']*)')`)

var svgHexValue = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)

// svgNamedColors is the small keyword set accepted in SVG paint attributes.
var svgNamedColors = map[string]bool{
	"black": true, "white": true, "red": true, "green": true, "blue": true,
	"yellow": true, "orange": true, "purple": true, "pink": true, "brown": true,
	"gray": true, "grey": true, "cyan": true, "magenta": true, "lime": true,
	"navy": true, "teal": true, "silver": true, "maroon": true, "olive": true,
	"transparent": true,
}

// isSVGPaintValue reports whether an attribute value is a paint worth
// reporting: hex, a known keyword, or one starting with rgb, hsl, url( or
// inherit.
func isSVGPaintValue(v string) bool {
	lower := strings.ToLower(v)
	switch {
	case svgHexValue.MatchString(v):
		return true
	case svgNamedColors[lower]:
		return true
	}
	for _, prefix := range []string{"rgb", "hsl", "url(", "inherit"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// ExtractSVG extracts colors from SVG documents: paint attributes (fill,
// stroke, stop-color, flood-color, lighting-color, color), style attributes,
// <style> blocks and literals in element text. XML comments are skipped and
// each value is reported once per line.
func ExtractSVG(content string) []converter.Color {
	tokenAccepts := []predicate{inStyleAttribute, inStyleBlock, inElementText}

	var state markupState
	return scanLines(content, func(_ int, line string) []match {
		s := state.advance(line, true)

		var found []match
		for _, m := range svgAttributeMatches(line) {
			s.index = m.start
			if inCommentSpan(s) {
				continue
			}
			found = append(found, m)
		}

		for _, m := range tokenMatches(line) {
			s.index = m.start
			if inCommentSpan(s) || !anyOf(s, tokenAccepts...) {
				continue
			}
			m.context = svgTokenContext(s)
			found = append(found, m)
		}

		sortMatches(found)
		return dedupeByLine(found)
	})
}

func svgAttributeMatches(line string) []match {
	var matches []match
	for _, loc := range svgColorAttr.FindAllStringSubmatchIndex(line, -1) {
		start, end := loc[4], loc[5]
		if start == -1 {
			start, end = loc[6], loc[7]
		}
		value := strings.TrimSpace(line[start:end])
		if value == "" || !isSVGPaintValue(value) {
			continue
		}

		format := converter.DetectFormat(value)
		if format == converter.FormatUnknown && converter.IsNamedColor(value) {
			format = converter.FormatNamed
		}

		matches = append(matches, match{
			value:   value,
			start:   start + strings.Index(line[start:end], value),
			format:  format,
			context: strings.ToLower(line[loc[2]:loc[3]]),
		})
	}
	return matches
}

func svgTokenContext(s *lineState) string {
	switch {
	case inStyleAttribute(s):
		return contextName(s.line, s.index, "style-attribute")
	case inStyleBlock(s):
		return contextName(s.line, s.index, "style-block")
	default:
		return "text"
	}
}
