package analyzer

import (
	"strings"

	"github.com/kataras/color-extractor/pkg/converter"
)

var (
	blueish  = []string{"blue", "#00f", "#0000ff", "navy"}
	whiteish = []string{"white", "#fff", "#ffffff"}
)

// DetectPatterns guesses at gradients and light/blue themes. The guesses are
// deliberately coarse: any three distinct colors form a "potential sequence".
func DetectPatterns(colors []converter.Color) []Pattern {
	patterns := []Pattern{}
	entries := uniqueEntries(colors)

	if len(entries) >= 3 {
		patterns = append(patterns, Pattern{
			Type:        PatternGradient,
			Colors:      []string{entries[0].value, entries[1].value, entries[2].value},
			Confidence:  0.7,
			Description: "potential color sequence",
		})
	}

	blue, white := firstContaining(entries, blueish), firstContaining(entries, whiteish)
	if blue != "" && white != "" {
		patterns = append(patterns, Pattern{
			Type:        PatternTheme,
			Colors:      []string{blue, white},
			Confidence:  0.6,
			Description: "blue and white theme",
		})
	}

	if p, ok := detectBrand(entries); ok {
		patterns = append(patterns, p)
	}

	return patterns
}

// detectBrand never reports a brand pattern. There is no brand heuristic yet.
func detectBrand([]*entry) (Pattern, bool) {
	return Pattern{}, false
}

func firstContaining(entries []*entry, needles []string) string {
	for _, e := range entries {
		for _, n := range needles {
			if strings.Contains(e.value, n) {
				return e.value
			}
		}
	}
	return ""
}
