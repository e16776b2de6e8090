package extractor

import (
	"github.com/kataras/color-extractor/pkg/converter"
)

// ExtractHTML extracts colors from HTML. A literal counts only inside a
// style="..." attribute, inside a <style> block, or after a CSS color
// property keyword on the same line; href, src, id and data-* values and
// plain text are ignored, as is everything inside <!-- -->.
func ExtractHTML(content string) []converter.Color {
	accepts := []predicate{inStyleAttribute, inStyleBlock, afterStyleKeyword}

	var state markupState
	return scanLines(content, func(_ int, line string) []match {
		s := state.advance(line, false)

		var found []match
		for _, m := range tokenMatches(line) {
			s.index = m.start
			if inCommentSpan(s) || !anyOf(s, accepts...) {
				continue
			}
			m.context = htmlContext(s)
			found = append(found, m)
		}
		return found
	})
}

func htmlContext(s *lineState) string {
	fallback := "inline"
	switch {
	case inStyleAttribute(s):
		fallback = "style-attribute"
	case inStyleBlock(s):
		fallback = "style-block"
	}
	return contextName(s.line, s.index, fallback)
}
