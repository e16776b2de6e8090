package converter

import "math"

// WCAG 2.x contrast thresholds.
const (
	ContrastAAA      = 7.0
	ContrastAA       = 4.5
	ContrastAALarge  = 3.0
	contrastNoResult = 1.0
)

// ContrastRatio returns the WCAG contrast ratio between two colors, from 1
// to 21. If either side cannot be parsed it returns exactly 1.
func ContrastRatio(a, b string) float64 {
	ca, ok := ParseColor(a)
	if !ok {
		return contrastNoResult
	}
	cb, ok := ParseColor(b)
	if !ok {
		return contrastNoResult
	}
	return ContrastRatioRGB(ca, cb)
}

// ContrastRatioRGB is ContrastRatio over already-parsed colors.
func ContrastRatioRGB(a, b RGB) float64 {
	return ContrastRatioLuminance(RelativeLuminance(a), RelativeLuminance(b))
}

// ContrastRatioLuminance is ContrastRatio over two relative luminances.
func ContrastRatioLuminance(la, lb float64) float64 {
	lightest := math.Max(la, lb)
	darkest := math.Min(la, lb)
	return (lightest + 0.05) / (darkest + 0.05)
}

// RelativeLuminance computes the WCAG relative luminance of c.
func RelativeLuminance(c RGB) float64 {
	return 0.2126*srgbToLinear(c.R) + 0.7152*srgbToLinear(c.G) + 0.0722*srgbToLinear(c.B)
}

// WCAGLevel names the highest WCAG level a contrast ratio satisfies.
func WCAGLevel(ratio float64) string {
	switch {
	case ratio >= ContrastAAA:
		return "AAA"
	case ratio >= ContrastAA:
		return "AA"
	case ratio >= ContrastAALarge:
		return "AA Large"
	default:
		return "Fail"
	}
}

func srgbToLinear(v uint8) float64 {
	c := float64(v) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}
