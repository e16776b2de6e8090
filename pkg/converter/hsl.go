package converter

import "math"

// HSLToRGB converts HSL to canonical RGB using the chroma/sextant method.
// Alpha is carried over unchanged.
func HSLToRGB(c HSL) RGB {
	h := math.Mod(float64(c.H), 360)
	if h < 0 {
		h += 360
	}
	h /= 360
	s := clampUnit(float64(c.S) / 100)
	l := clampUnit(float64(c.L) / 100)

	if s == 0 {
		v := to255(l)
		return RGB{R: v, G: v, B: v, A: copyAlpha(c.A)}
	}

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch sextant := h * 6; {
	case sextant < 1:
		r, g, b = chroma, x, 0
	case sextant < 2:
		r, g, b = x, chroma, 0
	case sextant < 3:
		r, g, b = 0, chroma, x
	case sextant < 4:
		r, g, b = 0, x, chroma
	case sextant < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{
		R: to255(r + m),
		G: to255(g + m),
		B: to255(b + m),
		A: copyAlpha(c.A),
	}
}

// RGBToHSL converts canonical RGB to HSL with integer components.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l := (hi + lo) / 2

	if hi == lo {
		return HSL{H: 0, S: 0, L: int(math.Round(l * 100)), A: copyAlpha(c.A)}
	}

	diff := hi - lo
	var s float64
	if l > 0.5 {
		s = diff / (2 - hi - lo)
	} else {
		s = diff / (hi + lo)
	}

	var h float64
	switch hi {
	case r:
		h = (g - b) / diff
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/diff + 2
	default:
		h = (r-g)/diff + 4
	}

	hue := int(math.Round(h*60)) % 360
	if hue < 0 {
		hue += 360
	}

	return HSL{
		H: hue,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
		A: copyAlpha(c.A),
	}
}

// RGBToOKLCH returns the approximate OKLCH mapping L=l/100, C=(s/100)*0.4, H=h.
func RGBToOKLCH(c RGB) OKLCH {
	hsl := RGBToHSL(c)
	return OKLCH{
		L: float64(hsl.L) / 100,
		C: float64(hsl.S) / 100 * 0.4,
		H: float64(hsl.H),
		A: copyAlpha(c.A),
	}
}

func to255(v float64) uint8 {
	return uint8(math.Round(clampUnit(v) * 255))
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
