package converter

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	hexPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbPattern = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*(\d*\.?\d+)\s*)?\)$`)
	hslPattern = regexp.MustCompile(`^hsla?\(\s*(\d{1,3})(?:deg)?\s*,\s*(\d{1,3})%\s*,\s*(\d{1,3})%\s*(?:,\s*(\d*\.?\d+)\s*)?\)$`)
)

// DetectFormat classifies a literal by its leading notation. It is total:
// every input maps to exactly one of hex, rgb, rgba, hsl, hsla or unknown.
func DetectFormat(value string) Format {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case strings.HasPrefix(v, "#"):
		return FormatHex
	case strings.HasPrefix(v, "rgba("):
		return FormatRGBA
	case strings.HasPrefix(v, "rgb("):
		return FormatRGB
	case strings.HasPrefix(v, "hsla("):
		return FormatHSLA
	case strings.HasPrefix(v, "hsl("):
		return FormatHSL
	default:
		return FormatUnknown
	}
}

// ParseColor parses a hex, rgb(a), hsl(a) or named color into canonical RGB.
// It reports false for anything it cannot read.
func ParseColor(text string) (RGB, bool) {
	v := strings.ToLower(strings.TrimSpace(text))
	if v == "" {
		return RGB{}, false
	}

	switch DetectFormat(v) {
	case FormatHex:
		return parseHex(v)
	case FormatRGB, FormatRGBA:
		return parseRGB(v)
	case FormatHSL, FormatHSLA:
		return parseHSL(v)
	default:
		return lookupNamed(v)
	}
}

func parseHex(v string) (RGB, bool) {
	m := hexPattern.FindStringSubmatch(v)
	if m == nil {
		return RGB{}, false
	}
	digits := m[1]

	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}

	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, false
	}

	if len(digits) == 8 {
		return RGB{
			R: uint8(n >> 24),
			G: uint8(n >> 16),
			B: uint8(n >> 8),
			A: alpha(float64(uint8(n)) / 255),
		}, true
	}

	return RGB{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
	}, true
}

func parseRGB(v string) (RGB, bool) {
	m := rgbPattern.FindStringSubmatch(v)
	if m == nil {
		return RGB{}, false
	}

	c := RGB{
		R: channel(m[1]),
		G: channel(m[2]),
		B: channel(m[3]),
	}
	if m[4] != "" {
		a, ok := parseAlpha(m[4])
		if !ok {
			return RGB{}, false
		}
		c.A = alpha(a)
	}
	return c, true
}

func parseHSL(v string) (RGB, bool) {
	m := hslPattern.FindStringSubmatch(v)
	if m == nil {
		return RGB{}, false
	}

	h, _ := strconv.Atoi(m[1])
	s, _ := strconv.Atoi(m[2])
	l, _ := strconv.Atoi(m[3])

	hsl := HSL{
		H: h % 360,
		S: min(s, 100),
		L: min(l, 100),
	}
	if m[4] != "" {
		a, ok := parseAlpha(m[4])
		if !ok {
			return RGB{}, false
		}
		hsl.A = alpha(a)
	}
	return HSLToRGB(hsl), true
}

// channel reads a 0-255 integer channel, clamping larger values.
func channel(s string) uint8 {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	if n > 255 {
		n = 255
	}
	return uint8(n)
}

func parseAlpha(s string) (float64, bool) {
	a, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if a > 1 {
		a = 1
	}
	return a, true
}
