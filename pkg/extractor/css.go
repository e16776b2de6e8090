package extractor

import (
	"github.com/kataras/color-extractor/pkg/converter"
)

// ExtractCSS extracts hex, rgb(a) and hsl(a) literals from plain CSS,
// skipping anything inside /* ... */ comments.
func ExtractCSS(content string) []converter.Color {
	return extractStylesheet(content, false)
}

// ExtractSCSS is ExtractCSS that also honors // line comments.
func ExtractSCSS(content string) []converter.Color {
	return extractStylesheet(content, true)
}

// ExtractLESS is ExtractCSS that also honors // line comments.
func ExtractLESS(content string) []converter.Color {
	return extractStylesheet(content, true)
}

func extractStylesheet(content string, lineComments bool) []converter.Color {
	rejects := []predicate{inBlockComment}
	if lineComments {
		rejects = append(rejects, inLineComment)
	}

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
			m.context = contextName(line, m.start, "")
			found = append(found, m)
		}
		return found
	})
}
