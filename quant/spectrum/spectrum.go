// Package spectrum derives Fourier magnitude and power spectra from
// Hartley-domain buffers.
//
// A real signal's Fourier bins follow from Hartley pairs: for a buffer of
// length N, Re(X[k]) = (H[k] + H[N-k])/2 and Im(X[k]) = (H[N-k] - H[k])/2,
// so the one-sided spectrum has N/2+1 bins. The element-wise magnitude and
// power passes use SIMD-dispatched vector math.
package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratch holds pooled real/imaginary buffers for Hartley-to-complex
// unpacking. The pair grows together, so checking one capacity suffices.
type scratch struct {
	re, im []float64
}

var scratchPool = sync.Pool{
	New: func() any { return new(scratch) },
}

func (s *scratch) resize(bins int) {
	if cap(s.re) < bins {
		s.re = make([]float64, bins)
		s.im = make([]float64, bins)
		return
	}
	s.re = s.re[:bins]
	s.im = s.im[:bins]
}

// unpack splits a Hartley buffer into real and imaginary Fourier parts for
// bins 0..N/2.
func unpack(re, im []float64, fz []float32) {
	n := len(fz)
	half := n / 2

	re[0] = float64(fz[0])
	im[0] = 0
	re[half] = float64(fz[half])
	im[half] = 0

	for k := 1; k < half; k++ {
		hk := float64(fz[k])
		hnk := float64(fz[n-k])
		re[k] = (hk + hnk) / 2
		im[k] = (hnk - hk) / 2
	}
}

// Magnitude returns |X[k]| for the one-sided spectrum (N/2+1 bins) of a
// Hartley buffer. len(fz) must be even; an empty buffer yields nil.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(fz []float32) []float64 {
	if len(fz) == 0 {
		return nil
	}
	if len(fz)%2 != 0 {
		panic("spectrum: buffer length must be even")
	}

	bins := len(fz)/2 + 1
	out := make([]float64, bins)
	s := scratchPool.Get().(*scratch)
	s.resize(bins)

	unpack(s.re, s.im, fz)
	vecmath.Magnitude(out, s.re, s.im)
	scratchPool.Put(s)

	return out
}

// Power returns |X[k]|^2 for the one-sided spectrum (N/2+1 bins) of a
// Hartley buffer. len(fz) must be even; an empty buffer yields nil.
func Power(fz []float32) []float64 {
	if len(fz) == 0 {
		return nil
	}
	if len(fz)%2 != 0 {
		panic("spectrum: buffer length must be even")
	}

	bins := len(fz)/2 + 1
	out := make([]float64, bins)
	s := scratchPool.Get().(*scratch)
	s.resize(bins)

	unpack(s.re, s.im, fz)
	vecmath.Power(out, s.re, s.im)
	scratchPool.Put(s)

	return out
}

// MagnitudeDB returns the one-sided magnitude spectrum in decibels,
// 20*log10(|X[k]|). Zero bins map to -Inf.
func MagnitudeDB(fz []float32) []float64 {
	out := Magnitude(fz)
	for i, v := range out {
		out[i] = ampTodB(v)
	}

	return out
}
