//go:build fastmath

package spectrum_test

// dbTolerance bounds the dB error accepted on exactly representable
// magnitudes. approx.FastLog trades roughly 1e-4 dB of accuracy for speed.
const dbTolerance = 1e-3
