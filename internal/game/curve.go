package game

import "math"

// ExponentialPercentage eases from start (at x = 1) towards end as x grows,
// with decay rate k: end + (start-end) * e^(-k(x-1)).
func ExponentialPercentage(x, k, start, end float64) float64 {
	return ease(math.Exp(-k*(x-1)), start, end)
}

// GeometricSeries eases from start (at step 0) towards end by ratio per step:
// end + (start-end) * ratio^step.
func GeometricSeries(step, ratio, start, end float64) float64 {
	return ease(math.Pow(ratio, step), start, end)
}

// ease interpolates with a factor of 1 at start and 0 at end.
// Combinations that would produce NaN (0*Inf) collapse to end.
func ease(factor, start, end float64) float64 {
	if math.IsNaN(factor) {
		return end
	}
	v := end + (start-end)*factor
	if math.IsNaN(v) {
		return end
	}
	return v
}
