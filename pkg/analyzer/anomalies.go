package analyzer

import (
	"fmt"
	"regexp"

	"github.com/kataras/color-extractor/pkg/converter"
)

const (
	duplicateThreshold     = 5
	highDuplicateThreshold = 10
	darkThreshold          = 10
	lightThreshold         = 90
)

// validValue is the conservative notation set a value must match to not be
// reported as invalid. Named colors are not part of it.
var validValue = []*regexp.Regexp{
	regexp.MustCompile(`^#(?:[0-9a-f]{3}|[0-9a-f]{6}|[0-9a-f]{8})$`),
	regexp.MustCompile(`^rgb\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*\)$`),
	regexp.MustCompile(`^rgba\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d*\.?\d+\s*\)$`),
	regexp.MustCompile(`^hsl\(\s*\d{1,3}\s*,\s*\d{1,3}%\s*,\s*\d{1,3}%\s*\)$`),
	regexp.MustCompile(`^hsla\(\s*\d{1,3}\s*,\s*\d{1,3}%\s*,\s*\d{1,3}%\s*,\s*\d*\.?\d+\s*\)$`),
}

func isValidValue(v string) bool {
	for _, re := range validValue {
		if re.MatchString(v) {
			return true
		}
	}
	return false
}

// DetectAnomalies reports overused values, values outside the conservative
// hex/rgb/rgba/hsl/hsla notation set, and values too dark or too light to
// be readable on a matching background. Anomalies follow the first-seen
// order of their values.
func DetectAnomalies(colors []converter.Color) []Anomaly {
	anomalies := []Anomaly{}

	for _, e := range uniqueEntries(colors) {
		if e.count > duplicateThreshold {
			severity := SeverityMedium
			if e.count > highDuplicateThreshold {
				severity = SeverityHigh
			}
			anomalies = append(anomalies, Anomaly{
				Type:     AnomalyDuplicate,
				Severity: severity,
				Value:    e.value,
				Count:    e.count,
				Message:  fmt.Sprintf("%s is used %d times, consider a shared variable", e.value, e.count),
			})
		}

		if !isValidValue(e.value) {
			anomalies = append(anomalies, Anomaly{
				Type:     AnomalyInvalid,
				Severity: SeverityMedium,
				Value:    e.value,
				Message:  fmt.Sprintf("%s is not a hex, rgb(a) or hsl(a) value", e.value),
			})
		}

		if !e.parsed {
			continue
		}
		if e.hsl.L < darkThreshold {
			anomalies = append(anomalies, Anomaly{
				Type:     AnomalyAccessibility,
				Severity: SeverityLow,
				Value:    e.value,
				Message:  fmt.Sprintf("%s is very dark (lightness %d%%)", e.value, e.hsl.L),
			})
		}
		if e.hsl.L > lightThreshold {
			anomalies = append(anomalies, Anomaly{
				Type:     AnomalyAccessibility,
				Severity: SeverityLow,
				Value:    e.value,
				Message:  fmt.Sprintf("%s is very light (lightness %d%%)", e.value, e.hsl.L),
			})
		}
	}

	return anomalies
}
