// Package testutil provides deterministic test signals and tolerance
// helpers shared by the transform test suites.
package testutil

import (
	"math"
	"math/rand"
)

// Noise generates uniform white noise in [-amplitude, amplitude] with a
// fixed seed for reproducibility.
func Noise(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float32 {
	out := make([]float32, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// CasTone generates cas(2*pi*bin*j/length) = cos + sin at a single
// Hartley bin.
func CasTone(length, bin int) []float32 {
	out := make([]float32, length)
	for j := range out {
		w := 2 * math.Pi * float64(bin) * float64(j) / float64(length)
		out[j] = float32(math.Cos(w) + math.Sin(w))
	}
	return out
}
