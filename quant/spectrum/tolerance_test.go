//go:build !fastmath

package spectrum_test

// dbTolerance bounds the dB error accepted on exactly representable
// magnitudes. The precise log path is good to float64 rounding.
const dbTolerance = 1e-5
