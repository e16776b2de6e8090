package analyzer

import (
	"math"

	"github.com/kataras/color-extractor/pkg/converter"
)

// DetectHarmony classifies the parseable hues of colors. Every occurrence
// counts, so a value used twice is two colors.
//
// A hue range under 30 degrees is monochromatic. Exactly two colors about
// 180 degrees apart (within 30) are complementary. Anything else, including
// the triadic, tetradic and split-complementary schemes, is reported as none.
func DetectHarmony(colors []converter.Color) Harmony {
	none := Harmony{Type: HarmonyNone, Colors: []string{}}
	if len(colors) < 2 {
		return none
	}

	parsed := parsedEntries(uniqueEntries(colors))
	occurrences := 0
	for _, e := range parsed {
		occurrences += e.count
	}
	if occurrences < 2 {
		return none
	}

	values := make([]string, 0, len(parsed))
	minHue, maxHue := 360, -1
	for _, e := range parsed {
		values = append(values, e.value)
		minHue = min(minHue, e.hsl.H)
		maxHue = max(maxHue, e.hsl.H)
	}

	if maxHue-minHue < 30 {
		return Harmony{
			Type:        HarmonyMonochromatic,
			Confidence:  0.8,
			Colors:      values,
			Description: "all colors share one hue family",
		}
	}

	if occurrences == 2 && len(parsed) == 2 {
		diff := math.Abs(float64(parsed[0].hsl.H - parsed[1].hsl.H))
		if math.Abs(diff-180) < 30 {
			return Harmony{
				Type:        HarmonyComplementary,
				Confidence:  0.9,
				Colors:      values,
				Description: "two colors on opposite sides of the color wheel",
			}
		}
	}

	return Harmony{
		Type:        HarmonyNone,
		Confidence:  0.3,
		Colors:      values,
		Description: "no recognized color scheme",
	}
}
