package analyzer

import (
	"math"
	"sort"
	"strings"

	"github.com/kataras/color-extractor/pkg/converter"
)

// MostCommonLimit is the number of values reported in Statistics.MostCommon.
const MostCommonLimit = 10

// normalize is the key colors are compared and counted by.
func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// entry is one distinct normalized value with everything the analyses need
// about its occurrences.
type entry struct {
	value    string
	count    int
	contexts []string
	hsl      converter.HSL
	parsed   bool
}

// uniqueEntries groups colors by normalized value in first-seen order.
func uniqueEntries(colors []converter.Color) []*entry {
	index := make(map[string]*entry, len(colors))
	var entries []*entry
	for _, c := range colors {
		key := normalize(c.Value)
		e, ok := index[key]
		if !ok {
			e = &entry{value: key}
			if rgb, ok := converter.ParseColor(key); ok {
				e.hsl = converter.RGBToHSL(rgb)
				e.parsed = true
			}
			index[key] = e
			entries = append(entries, e)
		}
		e.count++
		if c.Context != "" && !contains(e.contexts, c.Context) {
			e.contexts = append(e.contexts, c.Context)
		}
	}
	return entries
}

// parsedEntries keeps the entries whose value parses as a color.
func parsedEntries(entries []*entry) []*entry {
	var out []*entry
	for _, e := range entries {
		if e.parsed {
			out = append(out, e)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func percentage(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(n) / float64(total) * 100)
}

// CalculateStatistics counts formats and values and averages the HSL
// components. Averages are taken per occurrence over the colors that parse;
// unparseable colors are left out of the denominator.
func CalculateStatistics(colors []converter.Color) Statistics {
	total := len(colors)
	stats := Statistics{
		Total:      total,
		ByFormat:   []FormatCount{},
		MostCommon: []ValueCount{},
	}
	if total == 0 {
		return stats
	}

	var formatOrder []converter.Format
	formatCounts := make(map[converter.Format]int)
	for _, c := range colors {
		if _, ok := formatCounts[c.Format]; !ok {
			formatOrder = append(formatOrder, c.Format)
		}
		formatCounts[c.Format]++
	}
	for _, f := range formatOrder {
		stats.ByFormat = append(stats.ByFormat, FormatCount{
			Format:     f,
			Count:      formatCounts[f],
			Percentage: percentage(formatCounts[f], total),
		})
	}
	sort.SliceStable(stats.ByFormat, func(i, j int) bool {
		return stats.ByFormat[i].Count > stats.ByFormat[j].Count
	})

	entries := uniqueEntries(colors)
	stats.Unique = len(entries)

	byCount := make([]*entry, len(entries))
	copy(byCount, entries)
	sort.SliceStable(byCount, func(i, j int) bool { return byCount[i].count > byCount[j].count })
	for i, e := range byCount {
		if i == MostCommonLimit {
			break
		}
		stats.MostCommon = append(stats.MostCommon, ValueCount{
			Value:      e.value,
			Count:      e.count,
			Percentage: percentage(e.count, total),
		})
	}

	var sumH, sumS, sumL float64
	parsed := 0
	for _, e := range entries {
		if !e.parsed {
			continue
		}
		n := float64(e.count)
		sumH += float64(e.hsl.H) * n
		sumS += float64(e.hsl.S) * n
		sumL += float64(e.hsl.L) * n
		parsed += e.count
	}
	if parsed > 0 {
		n := float64(parsed)
		h, s, l := round2(sumH/n), round2(sumS/n), round2(sumL/n)
		stats.AverageHue, stats.AverageSaturation, stats.AverageLightness = &h, &s, &l
	}

	return stats
}
