package lane8

import "math"

// laneWidth is the number of elements processed per batch step.
const laneWidth = 8

type lane [laneWidth]float32

// PowerLaw computes dst[i] = |src[i]|^(3/4) for i in [0, maxNZ] in batches
// of eight, accumulating a per-lane sum of magnitudes and a per-lane running
// max of the mapped values. The trailing partial batch runs through the same
// lane arithmetic zero-padded: a zero pad contributes nothing to the sum and
// maps to zero, which cannot exceed a nonnegative running max.
//
// Per-element results are identical to the scalar kernel; only the reduction
// order of the sum differs (per-lane accumulation, then an in-order
// horizontal pass).
func PowerLaw(dst, src []float32, maxNZ int) (sum, max float32) {
	upper := maxNZ + 1
	upper8 := upper &^ (laneWidth - 1)

	var vsum, vmax lane

	for i := 0; i < upper8; i += laneWidth {
		var v lane
		copy(v[:], src[i:i+laneWidth])

		for l := range v {
			v[l] = abs(v[l])
		}
		for l := range v {
			vsum[l] += v[l]
		}
		for l := range v {
			v[l] = pow34(v[l])
		}
		for l := range v {
			if v[l] > vmax[l] {
				vmax[l] = v[l]
			}
		}

		copy(dst[i:i+laneWidth], v[:])
	}

	if rest := upper - upper8; rest > 0 {
		var v lane
		copy(v[:rest], src[upper8:upper])

		for l := range v {
			v[l] = abs(v[l])
		}
		for l := range v {
			vsum[l] += v[l]
		}
		for l := range v {
			v[l] = pow34(v[l])
		}
		for l := range v {
			if v[l] > vmax[l] {
				vmax[l] = v[l]
			}
		}

		copy(dst[upper8:upper], v[:rest])
	}

	for l := range vsum {
		sum += vsum[l]
	}
	max = reduceMax(vmax)

	return sum, max
}

// reduceMax folds the lane maxima pairwise.
func reduceMax(v lane) float32 {
	m0, m1, m2, m3 := v[0], v[1], v[2], v[3]
	if v[4] > m0 {
		m0 = v[4]
	}
	if v[5] > m1 {
		m1 = v[5]
	}
	if v[6] > m2 {
		m2 = v[6]
	}
	if v[7] > m3 {
		m3 = v[7]
	}
	if m1 > m0 {
		m0 = m1
	}
	if m3 > m2 {
		m2 = m3
	}
	if m2 > m0 {
		m0 = m2
	}

	return m0
}

func abs(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

func pow34(x float32) float32 {
	r := float32(math.Sqrt(float64(x)))
	return float32(math.Sqrt(float64(x * r)))
}
