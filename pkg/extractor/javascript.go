package extractor

import (
	"regexp"
	"strings"

	"github.com/kataras/color-extractor/pkg/converter"
)

var (
	cssInJSMarker = regexp.MustCompile("(?:\\bcss`|\\bstyled\\.|\\bstyled\\(|\\bcreateStyles\\b|\\bmakeStyles\\b|\\bemotion\\b|\\bkeyframes`|\\bcreateGlobalStyle`)")
	colorVariable = regexp.MustCompile(`(?i)\b(?:const|let|var)\s+([\w$]*colou?r[\w$]*)\s*=`)
	colorsKey     = regexp.MustCompile(`(?i)\bcolou?rs\s*:`)
	themeAccess   = regexp.MustCompile(`\btheme\.`)
	colorObject   = regexp.MustCompile(`(?i)\b(?:colou?rs|palette|theme)\s*[:=]\s*\{`)
	quotedString  = regexp.MustCompile("'([^'\\n]*)'|\"([^\"\\n]*)\"|`([^`\\n]*)`")
)

// jsState carries comment, template literal and object nesting across lines.
type jsState struct {
	blockOpen   bool
	cssInJS     bool
	objectDepth int
}

func (j *jsState) advance(line string) *lineState {
	s := &lineState{
		line:             line,
		blockCommentOpen: j.blockOpen,
		cssInJS:          j.cssInJS || cssInJSMarker.MatchString(line),
		colorObject:      j.objectDepth > 0,
	}

	j.blockOpen = insideBlockComment(line, len(line), j.blockOpen)

	ticks := strings.Count(line, "`")
	if j.cssInJS {
		if ticks%2 == 1 {
			j.cssInJS = false
		}
	} else if cssInJSMarker.MatchString(line) && ticks%2 == 1 {
		j.cssInJS = true
	}

	if j.objectDepth > 0 {
		j.objectDepth += strings.Count(line, "{") - strings.Count(line, "}")
		if j.objectDepth < 0 {
			j.objectDepth = 0
		}
	} else if loc := colorObject.FindStringIndex(line); loc != nil {
		rest := line[loc[0]:]
		j.objectDepth = max(strings.Count(rest, "{")-strings.Count(rest, "}"), 0)
	}

	return s
}

func inCSSInJS(s *lineState) bool {
	return s.cssInJS
}

func inColorObject(s *lineState) bool {
	if s.colorObject {
		return true
	}
	loc := colorObject.FindStringIndex(s.line)
	return loc != nil && loc[1] <= s.index
}

func afterColorVariable(s *lineState) bool {
	return colorVariable.MatchString(s.before())
}

func afterColorsKey(s *lineState) bool {
	return colorsKey.MatchString(s.before())
}

func onThemeLine(s *lineState) bool {
	return themeAccess.MatchString(s.line)
}

// ExtractJavaScript extracts colors from JavaScript and TypeScript. A literal
// must appear in a style context: after a CSS color property, inside
// CSS-in-JS (css``, styled.*, makeStyles, ...), or under a color-named
// variable, key or theme object. Comments are skipped. Values found by both
// the raw-token pass and the quoted-string pass are reported once per line.
func ExtractJavaScript(content string) []converter.Color {
	rejects := []predicate{inBlockComment, inLineComment}
	accepts := []predicate{
		afterStyleKeyword,
		inCSSInJS,
		afterColorVariable,
		afterColorsKey,
		onThemeLine,
		inColorObject,
	}

	var state jsState
	return scanLines(content, func(_ int, line string) []match {
		s := state.advance(line)

		candidates := tokenMatches(line)
		candidates = append(candidates, quotedColorMatches(line)...)
		sortMatches(candidates)

		var found []match
		for _, m := range candidates {
			s.index = m.start
			if anyOf(s, rejects...) || !anyOf(s, accepts...) {
				continue
			}
			m.context = jsContext(s)
			found = append(found, m)
		}
		return dedupeByLine(found)
	})
}

// ExtractTypeScript extracts colors from TypeScript; the rules match
// ExtractJavaScript.
func ExtractTypeScript(content string) []converter.Color {
	return ExtractJavaScript(content)
}

// quotedColorMatches returns string literals whose whole content is a color,
// including quoted named colors such as 'red'.
func quotedColorMatches(line string) []match {
	var matches []match
	for _, loc := range quotedString.FindAllStringSubmatchIndex(line, -1) {
		for g := 1; g <= 3; g++ {
			start, end := loc[2*g], loc[2*g+1]
			if start == -1 {
				continue
			}
			raw := line[start:end]
			value := strings.TrimSpace(raw)
			if value == "" {
				break
			}
			offset := start + strings.Index(raw, value)

			var format converter.Format
			switch {
			case fullColorToken.MatchString(value):
				format = converter.DetectFormat(value)
			case converter.IsNamedColor(value):
				format = converter.FormatNamed
			default:
				continue
			}
			matches = append(matches, match{value: value, start: offset, format: format})
		}
	}
	return matches
}

func jsContext(s *lineState) string {
	if m := colorVariable.FindStringSubmatch(s.before()); m != nil {
		return m[1]
	}
	fallback := ""
	if s.cssInJS {
		fallback = "css-in-js"
	}
	return contextName(s.line, s.index, fallback)
}
