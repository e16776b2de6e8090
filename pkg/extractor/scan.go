package extractor

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/kataras/color-extractor/pkg/converter"
)

const (
	hexToken = `#(?:[0-9a-fA-F]{8}|[0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`
	rgbToken = `rgba?\(\s*\d{1,3}%?\s*,\s*\d{1,3}%?\s*,\s*\d{1,3}%?\s*(?:,\s*\d*\.?\d+%?\s*)?\)`
	hslToken = `hsla?\(\s*\d{1,3}(?:\.\d+)?(?:deg)?\s*,\s*\d{1,3}(?:\.\d+)?%\s*,\s*\d{1,3}(?:\.\d+)?%\s*(?:,\s*\d*\.?\d+%?\s*)?\)`
)

// Compiled regexps carry no scan position, so sharing them between
// concurrent Extract calls is safe.
var (
	colorToken     = regexp.MustCompile(`(?i)` + hexToken + `|` + rgbToken + `|` + hslToken)
	fullColorToken = regexp.MustCompile(`(?i)^(?:` + hexToken + `|` + rgbToken + `|` + hslToken + `)$`)
	namedToken     = regexp.MustCompile(`(?i)\b(?:` + strings.Join(converter.NamedColors(), "|") + `)\b`)

	// declarationName captures the property, key or variable whose value
	// the text up to the match belongs to.
	declarationName = regexp.MustCompile(`([$@]?[A-Za-z_][\w-]*)\s*:\s*[^;{}:]*$`)
)

// match is a candidate literal on a single line.
type match struct {
	value   string
	start   int // byte offset in the line
	format  converter.Format
	context string
}

// tokenMatches returns every hex/rgb/hsl token on the line.
func tokenMatches(line string) []match {
	locs := colorToken.FindAllStringIndex(line, -1)
	matches := make([]match, 0, len(locs))
	for _, loc := range locs {
		value := line[loc[0]:loc[1]]
		matches = append(matches, match{
			value:  value,
			start:  loc[0],
			format: converter.DetectFormat(value),
		})
	}
	return matches
}

// namedMatches returns named-color keywords that stand alone as a word,
// skipping parts of identifiers such as ".red-button" or "$blue".
func namedMatches(line string) []match {
	var matches []match
	for _, loc := range namedToken.FindAllStringIndex(line, -1) {
		if loc[0] > 0 && strings.ContainsRune("-.#$@_", rune(line[loc[0]-1])) {
			continue
		}
		if loc[1] < len(line) && strings.ContainsRune("-_", rune(line[loc[1]])) {
			continue
		}
		matches = append(matches, match{
			value:  line[loc[0]:loc[1]],
			start:  loc[0],
			format: converter.FormatNamed,
		})
	}
	return matches
}

// splitLines splits content into lines, dropping a trailing carriage return.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// scanLines runs scan over every line. A panic while scanning a line drops
// that line's results and the scan continues with the next line.
func scanLines(content string, scan func(lineNo int, line string) []match) []converter.Color {
	var colors []converter.Color
	for i, line := range splitLines(content) {
		lineNo := i + 1
		found := safeScan(scan, lineNo, line)
		sort.SliceStable(found, func(a, b int) bool { return found[a].start < found[b].start })
		for _, m := range found {
			colors = append(colors, converter.Color{
				Value:  m.value,
				Format: m.format,
				Position: &converter.Position{
					Line:   lineNo,
					Column: utf8.RuneCountInString(line[:m.start]) + 1,
				},
				Context: m.context,
			})
		}
	}
	if colors == nil {
		colors = []converter.Color{}
	}
	return colors
}

func safeScan(scan func(int, string) []match, lineNo int, line string) (found []match) {
	defer func() {
		if r := recover(); r != nil {
			found = nil
		}
	}()
	return scan(lineNo, line)
}

// dedupeByLine keeps the first occurrence of each value per line. Input is
// expected in position order, so the output stays in position order.
func dedupeByLine(matches []match) []match {
	seen := make(map[string]bool, len(matches))
	out := matches[:0]
	for _, m := range matches {
		if seen[m.value] {
			continue
		}
		seen[m.value] = true
		out = append(out, m)
	}
	return out
}

func sortMatches(matches []match) {
	sort.SliceStable(matches, func(a, b int) bool { return matches[a].start < matches[b].start })
}

// contextName returns the declaration name the matched value belongs to, or
// fallback when none is found.
func contextName(line string, idx int, fallback string) string {
	if m := declarationName.FindStringSubmatch(line[:idx]); m != nil {
		return m[1]
	}
	return fallback
}
