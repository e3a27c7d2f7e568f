// Package hue mixes and converts hues expressed in degrees.
package hue

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Mix returns the circular mean of the given hues in degrees, normalized to
// [0, 360). Hue wraps at 360, so Mix(10, 350) is 0 rather than 180.
//
// The second result is false when hues is empty; the mean is undefined then.
// Inputs whose vectors cancel out (for example 0, 90, 180 and 270) produce an
// arbitrary but valid hue.
func Mix(hues []float64) (float64, bool) {
	if len(hues) == 0 {
		return 0, false
	}
	var sumSin, sumCos float64
	for _, h := range hues {
		rad := h * math.Pi / 180
		sumSin += math.Sin(rad)
		sumCos += math.Cos(rad)
	}
	avg := math.Atan2(sumSin, sumCos) * 180 / math.Pi
	return Normalize(avg), true
}

// Normalize wraps h into [0, 360).
func Normalize(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// Distance returns the angular distance between two hues, in [0, 180].
func Distance(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Color returns the full-saturation, full-value color for hue h.
func Color(h float64) colorful.Color {
	return colorful.Hsv(Normalize(h), 1, 1)
}

// Of extracts the hue of c in degrees.
func Of(c colorful.Color) float64 {
	h, _, _ := c.Hsv()
	return Normalize(h)
}
