// Package hartley provides a real-valued in-place Fast Hartley Transform.
//
// The Hartley transform is the real analog of the Fourier transform,
// H[k] = sum x[j]*cas(2*pi*j*k/N) with cas = cos + sin, computed here by
// radix-4 butterfly stages without complex arithmetic. It is self-inverse up
// to a factor of the transform length, which makes it convenient inside
// encoder loops that need both directions.
//
// [Transform] is the in-place float32 kernel; its rotation table supports
// block lengths 16, 64, 256 and 1024. [Reference] computes the same
// transform through an FFT plan for arbitrary power-of-two sizes and serves
// as the accuracy baseline.
package hartley
