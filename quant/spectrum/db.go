//go:build !fastmath

package spectrum

import "math"

// ampTodB converts a linear magnitude to decibels: 20 * log10(value).
// Returns -Inf for zero.
func ampTodB(value float64) float64 {
	if value == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(value)
}
