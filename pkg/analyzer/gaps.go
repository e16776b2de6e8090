package analyzer

import (
	"fmt"
	"math"
	"sort"

	"github.com/kataras/color-extractor/pkg/converter"
)

const (
	hueGapThreshold = 60
	darkCoverage    = 20
	lightCoverage   = 80
)

// FindGaps reports hue ranges wider than 60 degrees that no color covers and,
// when nothing is darker than 20% or lighter than 80% lightness, a lightness
// gap. Hue gaps are measured between adjacent sorted hues and do not wrap
// around 360. Each hue gap suggests a saturated color at its midpoint.
func FindGaps(colors []converter.Color) []Gap {
	gaps := []Gap{}

	parsed := parsedEntries(uniqueEntries(colors))
	if len(parsed) == 0 {
		return gaps
	}

	hues := make([]int, 0, len(parsed))
	hasDark, hasLight := false, false
	for _, e := range parsed {
		hues = append(hues, e.hsl.H)
		hasDark = hasDark || e.hsl.L < darkCoverage
		hasLight = hasLight || e.hsl.L > lightCoverage
	}
	sort.Ints(hues)

	for i := 1; i < len(hues); i++ {
		start, end := hues[i-1], hues[i]
		if end-start <= hueGapThreshold {
			continue
		}
		mid := float64(start+end) / 2
		suggestion := converter.RGBToHex(converter.HSLToRGB(converter.HSL{
			H: int(math.Round(mid)) % 360,
			S: 70,
			L: 50,
		}), false)

		gaps = append(gaps, Gap{
			Type:        GapHue,
			Start:       float64(start),
			End:         float64(end),
			Midpoint:    mid,
			Suggestions: []string{suggestion},
			Description: fmt.Sprintf("no hues between %d° and %d°", start, end),
		})
	}

	if !hasDark && !hasLight {
		gaps = append(gaps, Gap{
			Type:        GapLightness,
			Start:       darkCoverage,
			End:         lightCoverage,
			Midpoint:    (darkCoverage + lightCoverage) / 2,
			Suggestions: []string{"#000000", "#ffffff"},
			Description: "no dark or light colors",
		})
	}

	return gaps
}
