package core

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Saturation and lightness shared by every generated course color.
const (
	courseSaturation = 0.65
	courseLightness  = 0.55
)

// NeutralColor is used when there is nothing to average.
const NeutralColor = "#808080"

// HueColor returns the hex color for a hue in degrees.
func HueColor(hue float64) string {
	return colorful.Hsl(NormalizeHue(hue), courseSaturation, courseLightness).Clamped().Hex()
}

// NormalizeHue maps any hue onto [0, 360).
func NormalizeHue(hue float64) float64 {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// HueDistance returns the circular distance between two hues, in [0, 180].
func HueDistance(a, b float64) float64 {
	d := math.Abs(NormalizeHue(a) - NormalizeHue(b))
	return math.Min(d, 360-d)
}

// AverageColor returns the perceptual average of the given hex colors,
// blended in CIE-L*a*b* space. Unparseable colors are ignored.
func AverageColor(hexes ...string) string {
	var avg colorful.Color
	n := 0
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			continue
		}
		n++
		if n == 1 {
			avg = c
			continue
		}
		// Running mean: the new color gets weight 1/n.
		avg = avg.BlendLab(c, 1/float64(n))
	}
	if n == 0 {
		return NeutralColor
	}
	return avg.Clamped().Hex()
}
