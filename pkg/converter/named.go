package converter

import (
	"sort"
	"strings"
)

// namedColors is the fixed keyword table used for parsing and validity checks.
var namedColors = map[string]RGB{
	"black":   {R: 0, G: 0, B: 0},
	"white":   {R: 255, G: 255, B: 255},
	"red":     {R: 255, G: 0, B: 0},
	"lime":    {R: 0, G: 255, B: 0},
	"green":   {R: 0, G: 128, B: 0},
	"blue":    {R: 0, G: 0, B: 255},
	"yellow":  {R: 255, G: 255, B: 0},
	"cyan":    {R: 0, G: 255, B: 255},
	"aqua":    {R: 0, G: 255, B: 255},
	"magenta": {R: 255, G: 0, B: 255},
	"fuchsia": {R: 255, G: 0, B: 255},
	"silver":  {R: 192, G: 192, B: 192},
	"gray":    {R: 128, G: 128, B: 128},
	"grey":    {R: 128, G: 128, B: 128},
	"maroon":  {R: 128, G: 0, B: 0},
	"olive":   {R: 128, G: 128, B: 0},
	"purple":  {R: 128, G: 0, B: 128},
	"teal":    {R: 0, G: 128, B: 128},
	"navy":    {R: 0, G: 0, B: 128},
	"orange":  {R: 255, G: 165, B: 0},
	"pink":    {R: 255, G: 192, B: 203},
	"brown":   {R: 165, G: 42, B: 42},
	"gold":    {R: 255, G: 215, B: 0},
	"indigo":  {R: 75, G: 0, B: 130},
	"violet":  {R: 238, G: 130, B: 238},
	"coral":   {R: 255, G: 127, B: 80},
	"salmon":  {R: 250, G: 128, B: 114},
	"khaki":   {R: 240, G: 230, B: 140},
	"crimson": {R: 220, G: 20, B: 60},
	"tomato":  {R: 255, G: 99, B: 71},
	// transparent is black at zero alpha.
	"transparent": {R: 0, G: 0, B: 0, A: alpha(0)},
}

// IsNamedColor reports whether name is a keyword in the named-color table.
// The lookup is case-insensitive.
func IsNamedColor(name string) bool {
	_, ok := namedColors[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// NamedColors returns the keywords of the named-color table, sorted.
func NamedColors() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupNamed(name string) (RGB, bool) {
	c, ok := namedColors[name]
	if !ok {
		return RGB{}, false
	}
	c.A = copyAlpha(c.A)
	return c, true
}
