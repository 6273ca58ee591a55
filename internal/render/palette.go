package render

import (
	"image/color"
	"math"
)

// defaultPalette is the classic three-species look: red hunts green
// hunts blue hunts red.
var defaultPalette = []color.RGBA{
	{R: 255, G: 51, B: 51, A: 255},
	{R: 51, G: 255, B: 51, A: 255},
	{R: 51, G: 51, B: 255, A: 255},
}

// Palette returns one color per species. Three species get the classic
// red/green/blue set; any other count falls back to evenly spaced hues.
func Palette(numSpecies int) []color.RGBA {
	if numSpecies == len(defaultPalette) {
		return append([]color.RGBA(nil), defaultPalette...)
	}
	p := make([]color.RGBA, numSpecies)
	for i := range p {
		h := float64(i) / float64(numSpecies) * 360
		r, g, b := hsvToRGB(h, 1, 1)
		p[i] = color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 255}
	}
	return p
}

func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
