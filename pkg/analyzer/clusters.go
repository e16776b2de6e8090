package analyzer

import (
	"github.com/kataras/color-extractor/pkg/converter"
)

// hueBand is a fixed half-open hue range [min, max).
type hueBand struct {
	name     string
	min, max int
}

var hueBands = []hueBand{
	{"Red", 0, 30},
	{"Orange", 30, 60},
	{"Yellow", 60, 120},
	{"Green", 120, 180},
	{"Cyan", 180, 240},
	{"Blue", 240, 300},
	{"Magenta", 300, 360},
}

// bandOf returns the index of the band containing hue, which must be in
// [0, 360).
func bandOf(hue int) int {
	for i, b := range hueBands {
		if hue >= b.min && hue < b.max {
			return i
		}
	}
	return len(hueBands) - 1
}

// ClusterColors groups the distinct values of colors by hue and never returns
// more than maxClusters clusters.
//
// When there are no more distinct values than maxClusters every parseable
// value is its own cluster. Otherwise the parseable values are bucketed into
// seven fixed hue bands and the first maxClusters non-empty bands, in band
// order, are returned. A band's variance is the population variance of the
// hues of all its occurrences. Values that do not parse are never clustered.
func ClusterColors(colors []converter.Color, maxClusters int) []Cluster {
	clusters := []Cluster{}
	if maxClusters <= 0 {
		return clusters
	}

	entries := uniqueEntries(colors)
	if len(entries) <= maxClusters {
		for _, e := range parsedEntries(entries) {
			b := hueBands[bandOf(e.hsl.H)]
			clusters = append(clusters, Cluster{
				Name:     b.name,
				HueMin:   b.min,
				HueMax:   b.max,
				Centroid: e.value,
				Colors:   []string{e.value},
			})
		}
		return clusters
	}

	members := make([][]*entry, len(hueBands))
	for _, e := range parsedEntries(entries) {
		i := bandOf(e.hsl.H)
		members[i] = append(members[i], e)
	}

	for i, band := range members {
		if len(band) == 0 {
			continue
		}
		if len(clusters) == maxClusters {
			break
		}

		values := make([]string, 0, len(band))
		hues := make([]float64, 0, len(band))
		for _, e := range band {
			values = append(values, e.value)
			for n := 0; n < e.count; n++ {
				hues = append(hues, float64(e.hsl.H))
			}
		}
		clusters = append(clusters, Cluster{
			Name:     hueBands[i].name,
			HueMin:   hueBands[i].min,
			HueMax:   hueBands[i].max,
			Centroid: values[0],
			Colors:   values,
			Variance: round2(variance(hues)),
		})
	}
	return clusters
}

// variance is the population variance of values.
func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values))
}
