// Package core provides fundamental numeric and color helpers shared by the
// engine and the platform layers. It has no dependency on the engine itself.
package core

import "math"

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
// NaN is mapped to min.
func ClampF(val, min, max float64) float64 {
	if math.IsNaN(val) || val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Round rounds to the nearest integer with halves rounded up (2.5 -> 3, -2.5 -> -2).
// Infinities and NaN are returned unchanged.
func Round(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	return math.Floor(x + 0.5)
}
