//go:build fastmath

package spectrum

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// ln10 is the natural logarithm of 10, used for log base conversion.
const ln10 = 2.30258509299404568401799145468436421

// ampTodB converts a linear magnitude to decibels using fast log
// approximation: 20 * ln(value) / ln(10). Returns -Inf for zero.
func ampTodB(value float64) float64 {
	if value == 0 {
		return math.Inf(-1)
	}

	return 20 * approx.FastLog(value) / ln10
}
