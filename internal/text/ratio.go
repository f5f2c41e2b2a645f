package text

import "math"

// Ratio divides n by d, using 1 as the denominator when d is zero.
func Ratio(n, d int) float64 {
	if d == 0 {
		d = 1
	}
	return float64(n) / float64(d)
}

// Clamp01 limits x to [0, 1]. NaN becomes 0.
func Clamp01(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return math.Max(0, math.Min(1, x))
}
