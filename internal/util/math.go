package util

import "math"

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Clamp01 bounds a value to the [0, 1] range used by audio features.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// WithinTolerance reports whether actual is within tolerance of target,
// boundary inclusive.
func WithinTolerance(actual, target, tolerance float64) bool {
	return math.Abs(actual-target) <= tolerance
}
