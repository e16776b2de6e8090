package formatter

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kataras/color-extractor/pkg/analyzer"
)

// ToMarkdown renders a report as a markdown document: a summary, format
// and value tables, clusters, gaps, patterns, anomalies, usage, roles,
// contrast pairs and a CSS custom property block ready to paste into a
// stylesheet.
func ToMarkdown(r *Report) string {
	// A Caser keeps state; one per call.
	title := cases.Title(language.English)
	a := r.Analysis

	var sb strings.Builder

	heading := "Color Palette Report"
	if r.Title != "" {
		heading += " - " + r.Title
	}
	sb.WriteString(fmt.Sprintf("# %s\n\n", heading))

	// Summary
	sb.WriteString("## Summary\n\n")
	if len(r.Documents) > 0 {
		sb.WriteString(fmt.Sprintf("- **Files**: %d\n", len(r.Documents)))
	}
	sb.WriteString(fmt.Sprintf("- **Total Colors**: %d\n", a.Statistics.Total))
	sb.WriteString(fmt.Sprintf("- **Unique Colors**: %d\n", a.Statistics.Unique))
	sb.WriteString(fmt.Sprintf("- **Harmony**: %s (confidence %.1f)\n", title.String(string(a.Harmony.Type)), a.Harmony.Confidence))
	sb.WriteString(fmt.Sprintf("- **Temperature**: %s\n", title.String(string(a.Temperature))))
	sb.WriteString(fmt.Sprintf("- **Mood**: %s\n", title.String(string(a.Mood))))
	if h := a.Statistics.AverageHue; h != nil {
		sb.WriteString(fmt.Sprintf("- **Average HSL**: %.0f°, %.0f%%, %.0f%%\n", *h, *a.Statistics.AverageSaturation, *a.Statistics.AverageLightness))
	}
	sb.WriteString("\n")

	if a.Statistics.Total == 0 {
		sb.WriteString("No colors found.\n")
		writeSkipped(&sb, r.Skipped)
		return sb.String()
	}

	// Formats
	sb.WriteString("## Formats\n\n")
	sb.WriteString("| Format | Count | Share |\n")
	sb.WriteString("|--------|-------|-------|\n")
	for _, f := range a.Statistics.ByFormat {
		sb.WriteString(fmt.Sprintf("| %s | %d | %.2f%% |\n", strings.ToUpper(string(f.Format)), f.Count, f.Percentage))
	}
	sb.WriteString("\n")

	// Most common
	sb.WriteString("## Most Common Colors\n\n")
	sb.WriteString("| Color | Count | Share |\n")
	sb.WriteString("|-------|-------|-------|\n")
	for _, v := range a.Statistics.MostCommon {
		sb.WriteString(fmt.Sprintf("| `%s` | %d | %.2f%% |\n", v.Value, v.Count, v.Percentage))
	}
	sb.WriteString("\n")

	// Clusters
	if len(a.Clusters) > 0 {
		sb.WriteString("## Hue Clusters\n\n")
		for _, c := range a.Clusters {
			sb.WriteString(fmt.Sprintf("### %s (%d°–%d°)\n\n", c.Name, c.HueMin, c.HueMax))
			sb.WriteString(fmt.Sprintf("- **Centroid**: `%s`\n", c.Centroid))
			sb.WriteString(fmt.Sprintf("- **Colors**: %s\n", codeList(c.Colors)))
			if len(c.Colors) > 1 {
				sb.WriteString(fmt.Sprintf("- **Hue Variance**: %.2f\n", c.Variance))
			}
			sb.WriteString("\n")
		}
	}

	// Gaps
	if len(a.Gaps) > 0 {
		sb.WriteString("## Gaps\n\n")
		for _, g := range a.Gaps {
			sb.WriteString(fmt.Sprintf("- **%s**: %s, try %s\n", title.String(string(g.Type)), g.Description, codeList(g.Suggestions)))
		}
		sb.WriteString("\n")
	}

	// Patterns
	if len(a.Patterns) > 0 {
		sb.WriteString("## Patterns\n\n")
		for _, p := range a.Patterns {
			sb.WriteString(fmt.Sprintf("- **%s** (%.0f%%): %s, %s\n", title.String(string(p.Type)), p.Confidence*100, p.Description, codeList(p.Colors)))
		}
		sb.WriteString("\n")
	}

	// Anomalies
	if len(a.Anomalies) > 0 {
		sb.WriteString("## Anomalies\n\n")
		sb.WriteString("| Severity | Type | Color | Details |\n")
		sb.WriteString("|----------|------|-------|---------|\n")
		for _, an := range a.Anomalies {
			sb.WriteString(fmt.Sprintf("| %s | %s | `%s` | %s |\n", title.String(string(an.Severity)), title.String(string(an.Type)), an.Value, an.Message))
		}
		sb.WriteString("\n")
	}

	// Usage
	sb.WriteString("## Usage\n\n")
	sb.WriteString("| Color | Uses | Contexts |\n")
	sb.WriteString("|-------|------|----------|\n")
	for _, u := range a.Usage {
		sb.WriteString(fmt.Sprintf("| `%s` | %d | %s |\n", u.Value, u.Frequency, strings.Join(u.Contexts, ", ")))
	}
	sb.WriteString("\n")

	// Roles
	if len(a.Roles) > 0 {
		sb.WriteString("## Roles\n\n")
		for _, role := range a.Roles {
			sb.WriteString(fmt.Sprintf("- **%s**: %s\n", title.String(role.Name), codeList(role.Colors)))
		}
		sb.WriteString("\n")
	}

	// Contrast
	if len(a.ContrastPairs) > 0 {
		writeContrast(&sb, a.ContrastPairs)
	}

	// Files
	if len(r.Documents) > 0 {
		sb.WriteString("## Files\n\n")
		sb.WriteString("| File | Type | Colors |\n")
		sb.WriteString("|------|------|--------|\n")
		for _, d := range r.Documents {
			sb.WriteString(fmt.Sprintf("| `%s` | %s | %d |\n", d.Path, strings.ToUpper(string(d.FileType)), len(d.Colors)))
		}
		sb.WriteString("\n")
	}

	// Custom properties
	sb.WriteString("## CSS Custom Properties\n\n")
	sb.WriteString("```css\n")
	sb.WriteString(toCSS(paletteVariables(r)))
	sb.WriteString("```\n\n")

	writeSkipped(&sb, r.Skipped)

	return sb.String()
}

func writeContrast(sb *strings.Builder, pairs []analyzer.ContrastPair) {
	sb.WriteString("## Contrast\n\n")
	sb.WriteString("| Foreground | Background | Ratio | WCAG |\n")
	sb.WriteString("|------------|------------|-------|------|\n")
	for _, p := range pairs {
		sb.WriteString(fmt.Sprintf("| `%s` | `%s` | %.2f:1 | %s |\n", p.Foreground, p.Background, p.Ratio, p.Level))
	}
	sb.WriteString("\n")
}

func writeSkipped(sb *strings.Builder, skipped []string) {
	if len(skipped) == 0 {
		return
	}
	sb.WriteString("## Skipped Files\n\n")
	for _, s := range skipped {
		sb.WriteString(fmt.Sprintf("- %s\n", s))
	}
	sb.WriteString("\n")
}

func codeList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "`" + v + "`"
	}
	return strings.Join(quoted, ", ")
}
