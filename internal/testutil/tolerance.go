package testutil

import (
	"math"
	"testing"
)

// RequireNearlyEqual fails t if got and want differ in length or if any
// element pair exceeds eps (absolute tolerance). want is kept in float64
// so direct-evaluation references retain full precision.
func RequireNearlyEqual(t *testing.T, got []float32, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireBitsEqual fails t if the two slices differ in length or in the
// bit pattern of any element.
func RequireBitsEqual(t *testing.T, got, want []float32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Float32bits(got[i]) != math.Float32bits(want[i]) {
			t.Fatalf("index %d: got %v, want %v (bit patterns differ)", i, got[i], want[i])
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between got and a
// float64 reference. Panics if the slices differ in length.
func MaxAbsDiff(got []float32, want []float64) float64 {
	if len(got) != len(want) {
		panic("testutil: length mismatch")
	}
	maxDiff := 0.0
	for i := range got {
		d := math.Abs(float64(got[i]) - want[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}
