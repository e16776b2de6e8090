// Package formatter renders scan results as a markdown report and exports
// palettes as CSS, SCSS or LESS variables, JSON or YAML.
package formatter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kataras/color-extractor/pkg/analyzer"
	"github.com/kataras/color-extractor/pkg/converter"
	"github.com/kataras/color-extractor/pkg/extractor"
)

// Report is the input of ToMarkdown and Export.
type Report struct {
	ID        string                   `json:"id,omitempty" yaml:"id,omitempty"` // identifies the scan that produced the report
	Title     string                   `json:"title" yaml:"title"`
	Documents []DocumentReport         `json:"documents,omitempty" yaml:"documents,omitempty"`
	Colors    []converter.Color        `json:"colors" yaml:"colors"`
	Analysis  analyzer.PaletteAnalysis `json:"analysis" yaml:"analysis"`
	Skipped   []string                 `json:"skipped,omitempty" yaml:"skipped,omitempty"`

	// Target and ShortHex select how palette values are written in
	// variable exports. The zero Target is hex.
	Target   converter.Target `json:"-" yaml:"-"`
	ShortHex bool             `json:"-" yaml:"-"`
}

// DocumentReport is the per-file part of a Report.
type DocumentReport struct {
	Path     string             `json:"path" yaml:"path"`
	FileType extractor.FileType `json:"fileType" yaml:"fileType"`
	Colors   []converter.Color  `json:"colors" yaml:"colors"`
}

// variable is one exported palette entry.
type variable struct {
	name  string
	value string
}

// paletteVariables names every distinct value of the report after the first
// context it was used under, most frequent first. Names that collide get a
// numeric suffix.
func paletteVariables(r *Report) []variable {
	used := make(map[string]int)
	vars := make([]variable, 0, len(r.Analysis.Usage))

	for _, u := range r.Analysis.Usage {
		base := ""
		if len(u.Contexts) > 0 && u.Contexts[0] != "unknown" {
			base = toKebabCase(u.Contexts[0])
		}
		if base == "" {
			base = "color"
		} else if !strings.Contains(base, "color") {
			base = "color-" + base
		}

		name := base
		if n, exists := used[base]; exists {
			name = fmt.Sprintf("%s-%d", base, n+1)
			used[base] = n + 1
		} else {
			used[base] = 1
		}

		vars = append(vars, variable{name: name, value: r.renderValue(u.Value)})
	}
	return vars
}

// renderValue converts value to the report target, keeping it unchanged when
// it cannot be parsed.
func (r *Report) renderValue(value string) string {
	return converter.ConvertColor(value, converter.ConvertOptions{
		Target:   r.Target,
		ShortHex: r.ShortHex,
	}).Converted
}

// toKebabCase converts a string to kebab-case (lowercase with hyphens), for
// use in variable names. "$primaryColor" becomes "primary-color".
func toKebabCase(s string) string {
	var result strings.Builder
	prevLower := false
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			if prevLower {
				result.WriteByte('-')
			}
			result.WriteRune(r + ('a' - 'A'))
			prevLower = false
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			result.WriteRune(r)
			prevLower = true
		case r == ' ' || r == '_' || r == '-':
			result.WriteByte('-')
			prevLower = false
		}
	}
	return strings.Trim(collapseHyphens(result.String()), "-")
}

func collapseHyphens(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return s
}

// Save writes data to path, creating the parent directory when needed.
func Save(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %q: %w", path, err)
	}
	return nil
}
