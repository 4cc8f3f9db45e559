// Package powerlaw maps spectral coefficient magnitudes to their 3/4 power,
// the companding step that linearizes quantization step sizes in perceptual
// audio encoders.
//
// [Transform] processes one granule (up to [MaxGranule] coefficients) and
// additionally returns the sum of input magnitudes and the maximum mapped
// value, the statistics scale-factor selection is driven by. The kernel is
// selected once per process from the registered backends (lane-batched by
// default, scalar fallback).
package powerlaw
