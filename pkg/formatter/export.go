package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatCSS      = "css"
	FormatSCSS     = "scss"
	FormatLESS     = "less"
)

// Export renders r in the given format. Variable formats (css, scss, less)
// contain only the palette; json and yaml contain the whole report.
func Export(r *Report, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatMarkdown, "md":
		return []byte(ToMarkdown(r)), nil
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML, "yml":
		data, err := yaml.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return data, nil
	case FormatCSS:
		return []byte(":root {\n" + toCSS(paletteVariables(r)) + "}\n"), nil
	case FormatSCSS:
		return []byte(toPreprocessor(paletteVariables(r), "$")), nil
	case FormatLESS:
		return []byte(toPreprocessor(paletteVariables(r), "@")), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

func toCSS(vars []variable) string {
	var sb strings.Builder
	for _, v := range vars {
		sb.WriteString(fmt.Sprintf("  --%s: %s;\n", v.name, v.value))
	}
	return sb.String()
}

func toPreprocessor(vars []variable, sigil string) string {
	var sb strings.Builder
	for _, v := range vars {
		sb.WriteString(fmt.Sprintf("%s%s: %s;\n", sigil, v.name, v.value))
	}
	return sb.String()
}
