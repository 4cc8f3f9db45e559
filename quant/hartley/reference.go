package hartley

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Reference computes the Hartley transform by direct evaluation through a
// complex FFT plan: H[k] = Re(X[k]) - Im(X[k]).
//
// Unlike the in-place kernel it is not capped by the rotation seed table, so
// it also serves block lengths the kernel cannot, and it avoids the kernel's
// multiplicative rotation recurrence entirely. A Reference is not safe for
// concurrent use; it reuses internal scratch across calls.
type Reference struct {
	size int
	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128
}

// NewReference creates a reference transform for the given block size, which
// must be a power of two >= 8.
func NewReference(size int) (*Reference, error) {
	if size < 8 || size&(size-1) != 0 {
		return nil, ErrBlockSize
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("hartley: failed to create FFT plan: %w", err)
	}

	return &Reference{
		size: size,
		plan: plan,
		in:   make([]complex128, size),
		out:  make([]complex128, size),
	}, nil
}

// Size returns the block size this reference transforms.
func (r *Reference) Size() int {
	return r.size
}

// Transform writes the unnormalized Hartley transform of src into dst. Both
// slices must have length Size(). dst and src may be the same slice.
func (r *Reference) Transform(dst, src []float64) error {
	if len(dst) != r.size || len(src) != r.size {
		return ErrLength
	}

	for i, v := range src {
		r.in[i] = complex(v, 0)
	}

	if err := r.plan.Forward(r.out, r.in); err != nil {
		return fmt.Errorf("hartley: forward FFT failed: %w", err)
	}

	for i, c := range r.out {
		dst[i] = real(c) - imag(c)
	}

	return nil
}
