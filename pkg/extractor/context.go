package extractor

import (
	"regexp"
	"strings"
)

// lineState is the evidence available when judging one match: the line, the
// match offset and whatever state the extractor carried in from earlier lines.
type lineState struct {
	line  string
	index int

	blockCommentOpen bool // a /* ... */ comment was open at line start
	commentSpans     []span
	styleBlockSpans  []span
	styleAttrSpans   []span
	tagSpans         []span
	cssInJS          bool // inside a CSS-in-JS template literal
	colorObject      bool // inside a colors/theme/palette object literal
}

func (s *lineState) before() string {
	return s.line[:s.index]
}

// predicate is one independent piece of context evidence.
type predicate func(s *lineState) bool

// anyOf evaluates predicates in order and stops at the first that holds.
func anyOf(s *lineState, preds ...predicate) bool {
	for _, p := range preds {
		if p(s) {
			return true
		}
	}
	return false
}

// span is a half-open byte range [start, end) within a line.
type span struct {
	start, end int
}

func inSpans(spans []span, idx int) bool {
	for _, sp := range spans {
		if idx >= sp.start && idx < sp.end {
			return true
		}
	}
	return false
}

// regionSpans returns the parts of line enclosed by open/close markers.
// openAtStart reports whether a region was still open from a previous line;
// the second result reports whether one is still open at the end of line.
func regionSpans(line string, open, close *regexp.Regexp, openAtStart bool) ([]span, bool) {
	var spans []span
	inside := openAtStart
	start, pos := 0, 0

	for pos <= len(line) {
		if inside {
			loc := close.FindStringIndex(line[pos:])
			if loc == nil {
				spans = append(spans, span{start, len(line)})
				return spans, true
			}
			spans = append(spans, span{start, pos + loc[0]})
			pos += loc[1]
			inside = false
			continue
		}

		loc := open.FindStringIndex(line[pos:])
		if loc == nil {
			return spans, false
		}
		start = pos + loc[1]
		pos = start
		inside = true
	}
	return spans, inside
}

// insideBlockComment compares the last "/*" and the last "*/" before idx.
func insideBlockComment(line string, idx int, openAtStart bool) bool {
	before := line[:idx]
	open := strings.LastIndex(before, "/*")
	closing := strings.LastIndex(before, "*/")
	if open == -1 && closing == -1 {
		return openAtStart
	}
	return open > closing
}

// afterLineComment reports whether a "//" comment starts before idx. A "//"
// that belongs to a URL does not count: a scheme ("https://"), an open
// url(...) argument or a quoted string ("//cdn.example.com/x.png").
func afterLineComment(line string, idx int) bool {
	before := line[:idx]
	offset := 0
	for {
		i := strings.Index(before[offset:], "//")
		if i == -1 {
			return false
		}
		at := offset + i
		if !partOfURL(before, at) {
			return true
		}
		offset = at + 2
	}
}

var openURL = regexp.MustCompile(`(?i)\burl\([^)]*$`)

func partOfURL(line string, at int) bool {
	if at > 0 && line[at-1] == ':' {
		return true
	}
	head := line[:at]
	return insideQuotes(head) || openURL.MatchString(head)
}

// insideQuotes reports whether a quoted string is still open at the end of s.
func insideQuotes(s string) bool {
	var quote byte
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case quote != 0 && c == '\\':
			i++
		case quote != 0 && c == quote:
			quote = 0
		case quote == 0 && (c == '"' || c == '\'' || c == '`'):
			quote = c
		}
	}
	return quote != 0
}

var (
	propertyName = regexp.MustCompile(`(?:^|[^\w$-])(-?[A-Za-z][\w-]*)\s*:`)
	vendorPrefix = regexp.MustCompile(`(?i)^-(?:webkit|moz|ms|o)-`)
)

// colorPropertyWords are the words that may follow background, border,
// fill or stroke in a color-bearing property name.
var colorPropertyWords = map[string]bool{
	"top": true, "right": true, "bottom": true, "left": true,
	"block": true, "inline": true, "start": true, "end": true,
	"image": true,
}

// isColorProperty reports whether a CSS or camelCase property name carries a
// color. Any name with a "color" word qualifies ("border-top-color",
// "textColor"), as do the background, border, fill and stroke shorthands
// with their side variants and the box and text shadows.
func isColorProperty(name string) bool {
	words := propertyWords(vendorPrefix.ReplaceAllString(name, ""))
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if w == "color" || w == "colour" {
			return true
		}
	}

	switch words[0] {
	case "background", "border", "fill", "stroke":
		for _, w := range words[1:] {
			if !colorPropertyWords[w] {
				return false
			}
		}
		return true
	case "box", "text":
		return len(words) == 2 && words[1] == "shadow"
	}
	return false
}

// propertyWords splits a kebab-case or camelCase name into lowercase words.
func propertyWords(name string) []string {
	var (
		words []string
		word  strings.Builder
	)
	flush := func() {
		if word.Len() > 0 {
			words = append(words, strings.ToLower(word.String()))
			word.Reset()
		}
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '-' || c == '_' {
			flush()
			continue
		}
		if c >= 'A' && c <= 'Z' && i > 0 && name[i-1] >= 'a' && name[i-1] <= 'z' {
			flush()
		}
		word.WriteByte(c)
	}
	flush()
	return words
}

// afterStyleKeyword reports whether the last property before the match is a
// color property ("color:", "background-color:", "borderColor:") with no ";"
// in between. URL schemes are not properties.
func afterStyleKeyword(s *lineState) bool {
	before := s.before()
	name, end := "", -1
	for _, loc := range propertyName.FindAllStringSubmatchIndex(before, -1) {
		if strings.HasPrefix(before[loc[1]:], "//") {
			continue
		}
		name, end = before[loc[2]:loc[3]], loc[1]
	}
	return end != -1 && isColorProperty(name) && !strings.Contains(before[end:], ";")
}

func inBlockComment(s *lineState) bool {
	return insideBlockComment(s.line, s.index, s.blockCommentOpen)
}

func inLineComment(s *lineState) bool {
	return afterLineComment(s.line, s.index)
}

func inCommentSpan(s *lineState) bool {
	return inSpans(s.commentSpans, s.index)
}

func inStyleBlock(s *lineState) bool {
	return inSpans(s.styleBlockSpans, s.index)
}

func inStyleAttribute(s *lineState) bool {
	return inSpans(s.styleAttrSpans, s.index)
}

func inElementText(s *lineState) bool {
	return !inSpans(s.tagSpans, s.index)
}

var (
	styleAttr      = regexp.MustCompile(`(?i)\bstyle\s*=\s*(?:"([^"]*)"|'([^']*)')`)
	styleOpenTag   = regexp.MustCompile(`(?i)<style\b[^>]*>`)
	styleCloseTag  = regexp.MustCompile(`(?i)</style\s*>`)
	xmlCommentOpen = regexp.MustCompile(`<!--`)
	xmlCommentEnd  = regexp.MustCompile(`-->`)
	tagOpen        = regexp.MustCompile(`<`)
	tagClose       = regexp.MustCompile(`>`)
)

// styleAttrSpans returns the value ranges of style="..." attributes.
func styleAttrSpans(line string) []span {
	var spans []span
	for _, m := range styleAttr.FindAllStringSubmatchIndex(line, -1) {
		switch {
		case m[2] != -1:
			spans = append(spans, span{m[2], m[3]})
		case m[4] != -1:
			spans = append(spans, span{m[4], m[5]})
		}
	}
	return spans
}

// markupState tracks comment and <style> regions across lines of HTML/SVG.
type markupState struct {
	commentOpen bool
	styleOpen   bool
	tagOpen     bool
}

// advance computes the spans for line and carries region state forward.
func (m *markupState) advance(line string, withTags bool) *lineState {
	s := &lineState{line: line}
	s.commentSpans, m.commentOpen = regionSpans(line, xmlCommentOpen, xmlCommentEnd, m.commentOpen)
	s.styleBlockSpans, m.styleOpen = regionSpans(line, styleOpenTag, styleCloseTag, m.styleOpen)
	s.styleAttrSpans = styleAttrSpans(line)
	if withTags {
		s.tagSpans, m.tagOpen = regionSpans(line, tagOpen, tagClose, m.tagOpen)
	}
	return s
}
