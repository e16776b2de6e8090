// Package converter parses textual color literals into canonical RGB and
// serializes them back as hex, rgb(a), hsl(a) or an approximate OKLCH form.
// It also defines the Color value model shared by the extractor and analyzer.
package converter

// Format identifies the textual notation a color literal was written in.
// The set is closed; FormatUnknown is terminal and never reclassified.
type Format string

const (
	FormatHex     Format = "hex"
	FormatRGB     Format = "rgb"
	FormatRGBA    Format = "rgba"
	FormatHSL     Format = "hsl"
	FormatHSLA    Format = "hsla"
	FormatNamed   Format = "named"
	FormatUnknown Format = "unknown"
)

// Position is a 1-based line/column location inside a document.
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// Color is a single color literal found in a document. Value is kept verbatim,
// exactly as it appeared in the source, so it can be written back unchanged.
type Color struct {
	Value    string    `json:"value" yaml:"value"`
	Format   Format    `json:"format" yaml:"format"`
	Position *Position `json:"position,omitempty" yaml:"position,omitempty"`
	Context  string    `json:"context,omitempty" yaml:"context,omitempty"`
}

// RGB is the canonical pivot representation every conversion routes through.
// A is nil when the source literal carried no alpha component.
type RGB struct {
	R uint8    `json:"r" yaml:"r"`
	G uint8    `json:"g" yaml:"g"`
	B uint8    `json:"b" yaml:"b"`
	A *float64 `json:"a,omitempty" yaml:"a,omitempty"`
}

// HSL holds hue in degrees [0,360) and saturation/lightness in percent [0,100].
type HSL struct {
	H int      `json:"h" yaml:"h"`
	S int      `json:"s" yaml:"s"`
	L int      `json:"l" yaml:"l"`
	A *float64 `json:"a,omitempty" yaml:"a,omitempty"`
}

// OKLCH is a lossy convenience mapping derived from HSL. It is not a
// perceptual OKLCH transform.
type OKLCH struct {
	L float64  `json:"l" yaml:"l"`
	C float64  `json:"c" yaml:"c"`
	H float64  `json:"h" yaml:"h"`
	A *float64 `json:"a,omitempty" yaml:"a,omitempty"`
}

// Target is an output notation for ConvertColor.
type Target string

const (
	TargetHex   Target = "hex"
	TargetRGB   Target = "rgb"
	TargetHSL   Target = "hsl"
	TargetOKLCH Target = "oklch"
)

// Targets lists every supported conversion target.
var Targets = []Target{TargetHex, TargetRGB, TargetHSL, TargetOKLCH}

func alpha(a float64) *float64 {
	return &a
}

func copyAlpha(a *float64) *float64 {
	if a == nil {
		return nil
	}
	return alpha(*a)
}
