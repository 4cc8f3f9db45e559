package generic

import "math/bits"

// costab holds (cos, sin) pairs for the per-stage rotation step angles
// pi/8, pi/32, pi/128 and pi/512. One entry is consumed per radix-4 stage,
// so four entries cap the block length at 1024.
var costab = [4][2]float64{
	{9.238795325112867e-01, 3.826834323650898e-01},
	{9.951847266721969e-01, 9.801714032956060e-02},
	{9.996988186962042e-01, 2.454122852291229e-02},
	{9.999811752826011e-01, 6.135884649154475e-03},
}

const sqrt2 = float32(1.41421356237309504880168872420969808)

// rotation advances a (cos, sin) pair by a fixed step angle using the
// two-term multiplicative recurrence instead of fresh trigonometric
// evaluation. State stays in float64 so accumulated drift over a stage is
// bounded by float64 rounding, well below the float32 butterfly noise; the
// butterflies consume float32 snapshots.
type rotation struct {
	c, s   float64
	dc, ds float64
}

func newRotation(step [2]float64) rotation {
	return rotation{c: step[0], s: step[1], dc: step[0], ds: step[1]}
}

func (r *rotation) coeffs() (c1, s1 float32) {
	return float32(r.c), float32(r.s)
}

func (r *rotation) advance() {
	c := r.c
	r.c = c*r.dc - r.s*r.ds
	r.s = c*r.ds + r.s*r.dc
}

// Hartley transforms fz, a real buffer of length 2*n, to its Hartley-domain
// representation in place. The buffer length must be a power of four between
// 16 and 1024; the front-end validates this.
//
// The transform runs in three passes: an in-place bit-reversal permutation,
// length-4 butterflies over the now-contiguous quads, and the radix-4 stage
// loop with table-seeded rotations.
func Hartley(fz []float32, n int) {
	n <<= 1

	reorder(fz, n)
	baseButterflies(fz, n)
	stageLoop(fz, n)
}

// reorder permutes fz into bit-reversed index order via in-place swaps.
func reorder(fz []float32, n int) {
	shift := 33 - uint(bits.Len32(uint32(n)))
	for i := 0; i < n; i++ {
		j := int(bits.Reverse32(uint32(i)) >> shift)
		if j > i {
			fz[i], fz[j] = fz[j], fz[i]
		}
	}
}

// baseButterflies replaces each contiguous quad with its 4-point Hartley
// transform. After full bit reversal the middle pair of every quad arrives
// swapped relative to the stride-n/4 decimated subsequence, so the quad is
// consumed in the order 0, 2, 1, 3.
func baseButterflies(fz []float32, n int) {
	for p := 0; p < n; p += 4 {
		a, b := fz[p], fz[p+2]
		c, d := fz[p+1], fz[p+3]
		s0, s1 := a+b, c+d
		d0, d1 := a-b, c-d
		fz[p] = s0 + s1
		fz[p+1] = s0 - s1
		fz[p+2] = d0 + d1
		fz[p+3] = d0 - d1
	}
}

// stageLoop merges Hartley blocks of length k1 into blocks of length 4*k1
// per stage until one block spans the whole buffer.
//
// Within each group the first sub-index pair needs no rotation (the gi half
// uses the fixed sqrt(2) factor, the pi/4 special case); the remaining
// sub-indices rotate by (c1, s1) and its double angle (c2, s2) derived via
// c2 = 1 - 2*s1^2, s2 = 2*s1*c1. The rotation order across i is sequential
// and must not be reordered.
func stageLoop(fz []float32, n int) {
	tri := 0

	k4 := 4
	for k4 < n {
		kx := k4 >> 1
		k1 := k4
		k2 := k4 << 1
		k3 := k2 + k1
		k4 = k2 << 1

		for fi, gi := 0, kx; fi < n; fi, gi = fi+k4, gi+k4 {
			f1 := fz[fi] - fz[fi+k1]
			f0 := fz[fi] + fz[fi+k1]
			f3 := fz[fi+k2] - fz[fi+k3]
			f2 := fz[fi+k2] + fz[fi+k3]
			fz[fi+k2] = f0 - f2
			fz[fi] = f0 + f2
			fz[fi+k3] = f1 - f3
			fz[fi+k1] = f1 + f3

			f1 = fz[gi] - fz[gi+k1]
			f0 = fz[gi] + fz[gi+k1]
			f3 = sqrt2 * fz[gi+k3]
			f2 = sqrt2 * fz[gi+k2]
			fz[gi+k2] = f0 - f2
			fz[gi] = f0 + f2
			fz[gi+k3] = f1 - f3
			fz[gi+k1] = f1 + f3
		}

		rot := newRotation(costab[tri])
		for i := 1; i < kx; i++ {
			c1, s1 := rot.coeffs()
			s12 := s1 + s1
			c2 := 1 - s12*s1
			s2 := s12 * c1

			for fi, gi := i, k1-i; fi < n; fi, gi = fi+k4, gi+k4 {
				b := s2*fz[fi+k1] - c2*fz[gi+k1]
				a := c2*fz[fi+k1] + s2*fz[gi+k1]
				f1 := fz[fi] - a
				f0 := fz[fi] + a
				g1 := fz[gi] - b
				g0 := fz[gi] + b

				b = s2*fz[fi+k3] - c2*fz[gi+k3]
				a = c2*fz[fi+k3] + s2*fz[gi+k3]
				f3 := fz[fi+k2] - a
				f2 := fz[fi+k2] + a
				g3 := fz[gi+k2] - b
				g2 := fz[gi+k2] + b

				b = s1*f2 - c1*g3
				a = c1*f2 + s1*g3
				fz[fi+k2] = f0 - a
				fz[fi] = f0 + a
				fz[gi+k3] = g1 - b
				fz[gi+k1] = g1 + b

				b = c1*g2 - s1*f3
				a = s1*g2 + c1*f3
				fz[gi+k2] = g0 - a
				fz[gi] = g0 + a
				fz[fi+k3] = f1 - b
				fz[fi+k1] = f1 + b
			}

			rot.advance()
		}

		tri++
	}
}
