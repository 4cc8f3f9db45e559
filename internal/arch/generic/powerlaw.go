package generic

import "math"

// PowerLaw computes dst[i] = |src[i]|^(3/4) for i in [0, maxNZ] one element
// at a time, accumulating the sum of magnitudes and the maximum mapped value.
// Elements past maxNZ are not read and not written.
func PowerLaw(dst, src []float32, maxNZ int) (sum, max float32) {
	for i := 0; i <= maxNZ; i++ {
		v := Abs(src[i])
		sum += v
		p := Pow34(v)
		if p > max {
			max = p
		}
		dst[i] = p
	}

	return sum, max
}

// Abs clears the sign bit, matching IEEE-754 fabs (including -0 and NaN
// payloads).
func Abs(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

// Pow34 computes x^(3/4) as sqrt(x*sqrt(x)). The decomposition is cheaper
// than a general power function and its rounding behavior is what downstream
// scale-factor selection is tuned to; do not replace it with math.Pow.
func Pow34(x float32) float32 {
	r := float32(math.Sqrt(float64(x)))
	return float32(math.Sqrt(float64(x * r)))
}
