package extractor

import (
	"regexp"

	"github.com/kataras/color-extractor/pkg/converter"
)

var (
	// stylusProperty matches a color-taking property at the start of a line,
	// with or without the colon Stylus makes optional.
	stylusProperty = regexp.MustCompile(`(?i)^\s*((?:[a-z-]*-)?(?:color|background|border|outline|fill|stroke|shadow)[a-z-]*)(?:\s*:\s*|\s+)`)
	stylusVariable = regexp.MustCompile(`^\s*(\$?[A-Za-z_][\w-]*)\s*[:=]\s*$`)
	stylusColorFn  = regexp.MustCompile(`(?i)\b(lighten|darken|saturate|desaturate|spin|mix|tint|shade|invert|complement|grayscale|rgba|fade-in|fade-out|fadein|fadeout|transparentify|blend)\(([^()]*)$`)
)

func inStylusProperty(s *lineState) bool {
	loc := stylusProperty.FindStringIndex(s.line)
	return loc != nil && s.index >= loc[1]
}

func inStylusAssignment(s *lineState) bool {
	return stylusVariable.MatchString(s.before())
}

func inStylusColorFunction(s *lineState) bool {
	return stylusColorFn.MatchString(s.before())
}

// ExtractStylus extracts colors from Stylus sources. Besides the CSS token
// rules it accepts named colors used as property values, as the value of a
// variable assignment, or as an argument of a color function like lighten().
func ExtractStylus(content string) []converter.Color {
	rejects := []predicate{inBlockComment, inLineComment}
	namedContexts := []predicate{inStylusProperty, inStylusAssignment, inStylusColorFunction}

	blockOpen := false
	return scanLines(content, func(_ int, line string) []match {
		s := &lineState{line: line, blockCommentOpen: blockOpen}
		blockOpen = insideBlockComment(line, len(line), blockOpen)

		var found []match
		for _, m := range tokenMatches(line) {
			s.index = m.start
			if anyOf(s, rejects...) {
				continue
			}
			m.context = stylusContext(s)
			found = append(found, m)
		}

		for _, m := range namedMatches(line) {
			s.index = m.start
			if anyOf(s, rejects...) || !anyOf(s, namedContexts...) {
				continue
			}
			m.context = stylusContext(s)
			found = append(found, m)
		}

		sortMatches(found)
		return found
	})
}

func stylusContext(s *lineState) string {
	if m := stylusColorFn.FindStringSubmatch(s.before()); m != nil {
		return m[1]
	}
	if m := stylusVariable.FindStringSubmatch(s.before()); m != nil {
		return m[1]
	}
	if m := stylusProperty.FindStringSubmatch(s.line); m != nil {
		return m[1]
	}
	return contextName(s.line, s.index, "")
}
