package analyzer

import (
	"container/heap"
	"sort"
	"strings"

	"github.com/kataras/color-extractor/pkg/converter"
)

// DefaultContrastPairs is the number of contrast pairs AnalyzePalette keeps.
const DefaultContrastPairs = 10

// AnalyzePalette runs every analysis over colors.
func AnalyzePalette(colors []converter.Color, maxClusters int) PaletteAnalysis {
	stats := CalculateStatistics(colors)
	return PaletteAnalysis{
		Statistics:    stats,
		Anomalies:     DetectAnomalies(colors),
		Patterns:      DetectPatterns(colors),
		Clusters:      ClusterColors(colors, maxClusters),
		Gaps:          FindGaps(colors),
		Harmony:       DetectHarmony(colors),
		Temperature:   DetectTemperature(colors),
		Mood:          DetectMood(stats),
		Usage:         AnalyzeUsage(colors),
		Roles:         Roles(colors),
		ContrastPairs: ContrastPairs(colors, DefaultContrastPairs),
	}
}

// DetectTemperature compares the parseable colors falling in the warm hues
// [0, 60) and [300, 360) against those in the cool hues [180, 300), counting
// every occurrence. One side wins when it has more than 1.5 times the other.
func DetectTemperature(colors []converter.Color) Temperature {
	var warm, cool float64
	for _, e := range parsedEntries(uniqueEntries(colors)) {
		switch h := e.hsl.H; {
		case h < 60 || h >= 300:
			warm += float64(e.count)
		case h >= 180 && h < 300:
			cool += float64(e.count)
		}
	}

	switch {
	case warm > cool*1.5:
		return TemperatureWarm
	case cool > warm*1.5:
		return TemperatureCool
	default:
		return TemperatureNeutral
	}
}

// DetectMood describes a palette from its average lightness and saturation.
// Statistics without averages are muted.
func DetectMood(stats Statistics) Mood {
	if stats.AverageLightness == nil || stats.AverageSaturation == nil {
		return MoodMuted
	}
	l, s := *stats.AverageLightness, *stats.AverageSaturation

	switch {
	case l < 30:
		return MoodDark
	case l > 80:
		return MoodLight
	case s > 70 && l > 50:
		return MoodVibrant
	case s > 40 && l > 70:
		return MoodPastel
	default:
		return MoodMuted
	}
}

// AnalyzeUsage reports every distinct value with its frequency and the
// contexts it appeared under, most frequent first. Values seen without any
// context get the single context "unknown".
func AnalyzeUsage(colors []converter.Color) []Usage {
	entries := uniqueEntries(colors)
	usage := make([]Usage, 0, len(entries))
	for _, e := range entries {
		contexts := append([]string(nil), e.contexts...)
		if len(contexts) == 0 {
			contexts = []string{"unknown"}
		}
		usage = append(usage, Usage{Value: e.value, Frequency: e.count, Contexts: contexts})
	}
	sort.SliceStable(usage, func(i, j int) bool { return usage[i].Frequency > usage[j].Frequency })
	return usage
}

// roleKeywords maps a palette role to the context keywords that select it.
// Roles are tried in order and a context gets the first role that matches.
var roleKeywords = []struct {
	role     string
	keywords []string
}{
	{"primary", []string{"primary"}},
	{"secondary", []string{"secondary"}},
	{"background", []string{"background", "bg"}},
	{"text", []string{"text"}},
	{"status", []string{"success", "error", "warning", "info", "danger"}},
	{"border", []string{"border"}},
}

func roleOf(context string) string {
	name := strings.ToLower(context)
	for _, rk := range roleKeywords {
		for _, k := range rk.keywords {
			if strings.Contains(name, k) {
				return rk.role
			}
		}
	}
	return ""
}

// Roles groups distinct values into palette roles by the names of the
// properties or variables they were assigned to, e.g. "$primary-color" or
// "background-color". Only roles with at least one value are returned.
func Roles(colors []converter.Color) []Role {
	byRole := make(map[string][]string)
	for _, e := range uniqueEntries(colors) {
		for _, ctx := range e.contexts {
			role := roleOf(ctx)
			if role == "" || contains(byRole[role], e.value) {
				continue
			}
			byRole[role] = append(byRole[role], e.value)
		}
	}

	roles := []Role{}
	for _, rk := range roleKeywords {
		if values, ok := byRole[rk.role]; ok {
			roles = append(roles, Role{Name: rk.role, Colors: values})
		}
	}
	return roles
}

// ContrastPairs computes the WCAG contrast of every pair of distinct
// parseable values, highest ratio first, ties in input order. A positive
// limit keeps only the best limit pairs; the full pair list is never built.
func ContrastPairs(colors []converter.Color, limit int) []ContrastPair {
	type lumColor struct {
		value string
		lum   float64
	}

	var parsed []lumColor
	for _, e := range parsedEntries(uniqueEntries(colors)) {
		rgb, _ := converter.ParseColor(e.value)
		parsed = append(parsed, lumColor{e.value, converter.RelativeLuminance(rgb)})
	}

	kept := &pairHeap{}
	seq := 0
	for i := 0; i < len(parsed); i++ {
		for j := i + 1; j < len(parsed); j++ {
			p := rankedPair{
				pair: ContrastPair{
					Foreground: parsed[i].value,
					Background: parsed[j].value,
					Ratio:      round2(converter.ContrastRatioLuminance(parsed[i].lum, parsed[j].lum)),
				},
				seq: seq,
			}
			seq++

			switch {
			case limit <= 0 || kept.Len() < limit:
				heap.Push(kept, p)
			case weaker((*kept)[0], p):
				(*kept)[0] = p
				heap.Fix(kept, 0)
			}
		}
	}

	ranked := []rankedPair(*kept)
	sort.Slice(ranked, func(a, b int) bool { return weaker(ranked[b], ranked[a]) })

	pairs := make([]ContrastPair, 0, len(ranked))
	for _, r := range ranked {
		r.pair.Level = converter.WCAGLevel(r.pair.Ratio)
		pairs = append(pairs, r.pair)
	}
	return pairs
}

// rankedPair is a contrast pair with its position in generation order.
type rankedPair struct {
	pair ContrastPair
	seq  int
}

// weaker reports whether a ranks below b: a lower ratio, or the same ratio
// generated later.
func weaker(a, b rankedPair) bool {
	if a.pair.Ratio != b.pair.Ratio {
		return a.pair.Ratio < b.pair.Ratio
	}
	return a.seq > b.seq
}

// pairHeap is a container/heap with the weakest kept pair at the root.
type pairHeap []rankedPair

func (h pairHeap) Len() int           { return len(h) }
func (h pairHeap) Less(i, j int) bool { return weaker(h[i], h[j]) }
func (h pairHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *pairHeap) Push(x any) { *h = append(*h, x.(rankedPair)) }

func (h *pairHeap) Pop() any {
	old := *h
	last := old[len(old)-1]
	*h = old[:len(old)-1]
	return last
}
