package testutil

import (
	"math"
	"testing"
)

func TestNoise_DeterministicAndBounded(t *testing.T) {
	a := Noise(42, 0.5, 128)
	b := Noise(42, 0.5, 128)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d differs across runs: %v vs %v", i, a[i], b[i])
		}
		if a[i] < -0.5 || a[i] > 0.5 {
			t.Fatalf("index %d out of range: %v", i, a[i])
		}
	}
}

func TestImpulse(t *testing.T) {
	x := Impulse(8, 3)
	for i, v := range x {
		want := float32(0)
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("index %d: got %v, want %v", i, v, want)
		}
	}
	for _, v := range Impulse(4, -1) {
		if v != 0 {
			t.Fatal("out-of-range position must leave the signal zero")
		}
	}
}

func TestCasTone_BinZeroIsDC(t *testing.T) {
	for _, v := range CasTone(16, 0) {
		if math.Abs(float64(v)-1) > 1e-7 {
			t.Fatalf("cas tone at bin 0 must be constant 1, got %v", v)
		}
	}
}

func TestMaxAbsDiff(t *testing.T) {
	got := []float32{1, 2, 3}
	want := []float64{1, 2.5, 3}
	if d := MaxAbsDiff(got, want); math.Abs(d-0.5) > 1e-12 {
		t.Fatalf("MaxAbsDiff = %v, want 0.5", d)
	}
}
