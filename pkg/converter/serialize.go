package converter

import (
	"fmt"
	"math"
	"strconv"
)

// RGBToHex serializes c as #rrggbb. An alpha suffix is appended only when
// alpha is present and below 1. With short set, #aabbcc collapses to #abc
// when every channel repeats its nibble and no alpha suffix is needed.
func RGBToHex(c RGB, short bool) string {
	withAlpha := c.A != nil && *c.A < 1

	if short && !withAlpha && c.R%17 == 0 && c.G%17 == 0 && c.B%17 == 0 {
		return fmt.Sprintf("#%x%x%x", c.R/17, c.G/17, c.B/17)
	}

	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	if withAlpha {
		hex += fmt.Sprintf("%02x", uint8(math.Round(clampUnit(*c.A)*255)))
	}
	return hex
}

// RGBToRGBString serializes c as rgb(r, g, b), or rgba(r, g, b, a) when the
// input carries alpha.
func RGBToRGBString(c RGB) string {
	if c.A != nil {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatAlpha(*c.A))
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBToHSLString serializes c as hsl(h, s%, l%), or hsla(...) when the input
// carries alpha.
func RGBToHSLString(c RGB) string {
	hsl := RGBToHSL(c)
	if hsl.A != nil {
		return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", hsl.H, hsl.S, hsl.L, formatAlpha(*hsl.A))
	}
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hsl.H, hsl.S, hsl.L)
}

// RGBToOKLCHString serializes the approximate OKLCH mapping of c.
func RGBToOKLCHString(c RGB) string {
	o := RGBToOKLCH(c)
	l := strconv.FormatFloat(o.L, 'f', 2, 64)
	ch := strconv.FormatFloat(o.C, 'f', 3, 64)
	h := strconv.FormatFloat(o.H, 'f', 0, 64)
	if o.A != nil {
		return fmt.Sprintf("oklch(%s %s %s / %s)", l, ch, h, formatAlpha(*o.A))
	}
	return fmt.Sprintf("oklch(%s %s %s)", l, ch, h)
}

// formatAlpha prints alpha with at most two decimals and no trailing zeros.
func formatAlpha(a float64) string {
	return strconv.FormatFloat(math.Round(clampUnit(a)*100)/100, 'f', -1, 64)
}
