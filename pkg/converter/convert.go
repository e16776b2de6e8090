package converter

import (
	"fmt"
	"strings"
)

// ConvertOptions controls ConvertColor output.
type ConvertOptions struct {
	Target    Target // defaults to TargetHex
	ShortHex  bool   // collapse #aabbcc to #abc where possible
	DropAlpha bool   // discard the alpha component before serializing
}

// ConversionResult is the tagged outcome of ConvertColor. On failure
// Converted equals Original and Error describes the problem.
type ConversionResult struct {
	Original  string `json:"original" yaml:"original"`
	Converted string `json:"converted" yaml:"converted"`
	Format    Target `json:"format" yaml:"format"`
	Success   bool   `json:"success" yaml:"success"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ParseTarget resolves a target name such as "hex" or "OKLCH".
func ParseTarget(s string) (Target, error) {
	t := Target(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Targets {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unsupported target format %q (must be hex, rgb, hsl, or oklch)", s)
}

// ConvertColor converts value into the requested notation. It never panics;
// callers branch on Success.
func ConvertColor(value string, opts ConvertOptions) ConversionResult {
	target := opts.Target
	if target == "" {
		target = TargetHex
	}

	result := ConversionResult{
		Original:  value,
		Converted: value,
		Format:    target,
	}

	c, ok := ParseColor(value)
	if !ok {
		result.Error = fmt.Sprintf("unable to parse color %q", value)
		return result
	}
	if opts.DropAlpha {
		c.A = nil
	}

	switch target {
	case TargetHex:
		result.Converted = RGBToHex(c, opts.ShortHex)
	case TargetRGB:
		result.Converted = RGBToRGBString(c)
	case TargetHSL:
		result.Converted = RGBToHSLString(c)
	case TargetOKLCH:
		result.Converted = RGBToOKLCHString(c)
	default:
		result.Error = fmt.Sprintf("unsupported target format %q", target)
		return result
	}

	result.Success = true
	return result
}
