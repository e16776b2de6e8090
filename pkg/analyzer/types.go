// Package analyzer derives palette-level information from extracted colors:
// statistics, anomalies, patterns, hue clusters, gaps, harmony, temperature,
// mood and usage.
//
// Every function is stateless. It reads a []converter.Color snapshot and
// returns freshly allocated results that hold copies of the values they
// mention, never references into the input. Degenerate input (nil, empty,
// nothing parseable) produces zero values instead of errors.
package analyzer

import (
	"github.com/kataras/color-extractor/pkg/converter"
)

// FormatCount is the number of colors written in one notation.
type FormatCount struct {
	Format     converter.Format `json:"format" yaml:"format"`
	Count      int              `json:"count" yaml:"count"`
	Percentage float64          `json:"percentage" yaml:"percentage"`
}

// ValueCount is the number of occurrences of one normalized color value.
type ValueCount struct {
	Value      string  `json:"value" yaml:"value"`
	Count      int     `json:"count" yaml:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// Statistics summarizes a color list. The averages are nil when no color
// could be parsed.
type Statistics struct {
	Total             int           `json:"total" yaml:"total"`
	Unique            int           `json:"unique" yaml:"unique"`
	ByFormat          []FormatCount `json:"byFormat" yaml:"byFormat"`
	MostCommon        []ValueCount  `json:"mostCommon" yaml:"mostCommon"`
	AverageHue        *float64      `json:"averageHue,omitempty" yaml:"averageHue,omitempty"`
	AverageSaturation *float64      `json:"averageSaturation,omitempty" yaml:"averageSaturation,omitempty"`
	AverageLightness  *float64      `json:"averageLightness,omitempty" yaml:"averageLightness,omitempty"`
}

// AnomalyType classifies an Anomaly.
type AnomalyType string

const (
	AnomalyDuplicate     AnomalyType = "duplicate"
	AnomalyInvalid       AnomalyType = "invalid"
	AnomalyAccessibility AnomalyType = "accessibility"
)

// Severity ranks an Anomaly.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Anomaly is a suspicious value in a palette.
type Anomaly struct {
	Type     AnomalyType `json:"type" yaml:"type"`
	Severity Severity    `json:"severity" yaml:"severity"`
	Value    string      `json:"value" yaml:"value"`
	Count    int         `json:"count,omitempty" yaml:"count,omitempty"`
	Message  string      `json:"message" yaml:"message"`
}

// PatternType classifies a Pattern.
type PatternType string

const (
	PatternGradient PatternType = "gradient"
	PatternTheme    PatternType = "theme"
	PatternBrand    PatternType = "brand"
)

// Pattern is a low-precision guess about how a group of colors is used.
type Pattern struct {
	Type        PatternType `json:"type" yaml:"type"`
	Colors      []string    `json:"colors" yaml:"colors"`
	Confidence  float64     `json:"confidence" yaml:"confidence"`
	Description string      `json:"description" yaml:"description"`
}

// Cluster groups colors of one hue band. Centroid is the first member found,
// not a computed mean.
type Cluster struct {
	Name     string   `json:"name" yaml:"name"`
	HueMin   int      `json:"hueMin" yaml:"hueMin"`
	HueMax   int      `json:"hueMax" yaml:"hueMax"`
	Centroid string   `json:"centroid" yaml:"centroid"`
	Colors   []string `json:"colors" yaml:"colors"`
	Variance float64  `json:"variance" yaml:"variance"`
}

// GapType classifies a Gap.
type GapType string

const (
	GapHue       GapType = "hue"
	GapLightness GapType = "lightness"
)

// Gap is a region of color space the palette does not cover.
type Gap struct {
	Type        GapType  `json:"type" yaml:"type"`
	Start       float64  `json:"start" yaml:"start"`
	End         float64  `json:"end" yaml:"end"`
	Midpoint    float64  `json:"midpoint" yaml:"midpoint"`
	Suggestions []string `json:"suggestions" yaml:"suggestions"`
	Description string   `json:"description" yaml:"description"`
}

// HarmonyType names a color scheme.
type HarmonyType string

const (
	HarmonyNone               HarmonyType = "none"
	HarmonyMonochromatic      HarmonyType = "monochromatic"
	HarmonyComplementary      HarmonyType = "complementary"
	HarmonyTriadic            HarmonyType = "triadic"
	HarmonyTetradic           HarmonyType = "tetradic"
	HarmonySplitComplementary HarmonyType = "split-complementary"
)

// Harmony is the detected scheme of a palette.
type Harmony struct {
	Type        HarmonyType `json:"type" yaml:"type"`
	Confidence  float64     `json:"confidence" yaml:"confidence"`
	Colors      []string    `json:"colors" yaml:"colors"`
	Description string      `json:"description" yaml:"description"`
}

// Temperature is the overall warmth of a palette.
type Temperature string

const (
	TemperatureWarm    Temperature = "warm"
	TemperatureCool    Temperature = "cool"
	TemperatureNeutral Temperature = "neutral"
)

// Mood is a one-word description of a palette's lightness and saturation.
type Mood string

const (
	MoodDark    Mood = "dark"
	MoodLight   Mood = "light"
	MoodVibrant Mood = "vibrant"
	MoodPastel  Mood = "pastel"
	MoodMuted   Mood = "muted"
)

// Usage reports how often a normalized value occurs and under which
// properties, attributes or variables.
type Usage struct {
	Value     string   `json:"value" yaml:"value"`
	Frequency int      `json:"frequency" yaml:"frequency"`
	Contexts  []string `json:"contexts" yaml:"contexts"`
}

// Role groups values whose context names a palette role such as "primary"
// or "background".
type Role struct {
	Name   string   `json:"name" yaml:"name"`
	Colors []string `json:"colors" yaml:"colors"`
}

// ContrastPair is the WCAG contrast between two palette colors.
type ContrastPair struct {
	Foreground string  `json:"foreground" yaml:"foreground"`
	Background string  `json:"background" yaml:"background"`
	Ratio      float64 `json:"ratio" yaml:"ratio"`
	Level      string  `json:"level" yaml:"level"`
}

// PaletteAnalysis bundles every analysis of one color list.
type PaletteAnalysis struct {
	Statistics    Statistics     `json:"statistics" yaml:"statistics"`
	Anomalies     []Anomaly      `json:"anomalies" yaml:"anomalies"`
	Patterns      []Pattern      `json:"patterns" yaml:"patterns"`
	Clusters      []Cluster      `json:"clusters" yaml:"clusters"`
	Gaps          []Gap          `json:"gaps" yaml:"gaps"`
	Harmony       Harmony        `json:"harmony" yaml:"harmony"`
	Temperature   Temperature    `json:"temperature" yaml:"temperature"`
	Mood          Mood           `json:"mood" yaml:"mood"`
	Usage         []Usage        `json:"usage" yaml:"usage"`
	Roles         []Role         `json:"roles" yaml:"roles"`
	ContrastPairs []ContrastPair `json:"contrastPairs" yaml:"contrastPairs"`
}
