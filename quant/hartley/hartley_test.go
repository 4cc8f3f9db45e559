package hartley

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-quant/internal/testutil"
)

var blockSizes = []int{16, 64, 256, 1024}

// dhtDirect evaluates the unnormalized Hartley transform by the defining
// cas-kernel sum in float64.
func dhtDirect(x []float32) []float64 {
	n := len(x)
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		var acc float64
		for j := 0; j < n; j++ {
			w := 2 * math.Pi * float64(j) * float64(k) / float64(n)
			acc += float64(x[j]) * (math.Cos(w) + math.Sin(w))
		}
		out[k] = acc
	}
	return out
}

func TestTransform_ImpulseFlat(t *testing.T) {
	for _, size := range blockSizes {
		fz := testutil.Impulse(size, 0)

		Transform(fz, size/2)

		for k, v := range fz {
			if math.Abs(float64(v)-1) > 1e-6 {
				t.Fatalf("size=%d bin %d = %g, want 1", size, k, v)
			}
		}
	}
}

func TestTransform_MatchesDirect(t *testing.T) {
	for _, size := range blockSizes {
		x := testutil.Noise(int64(size), 1, size)
		fz := append([]float32(nil), x...)

		Transform(fz, size/2)

		want := dhtDirect(x)
		if d := testutil.MaxAbsDiff(fz, want); d > 2e-7*float64(size) {
			t.Fatalf("size=%d: max deviation %g from direct evaluation", size, d)
		}
	}
}

func TestTransform_SelfInverse(t *testing.T) {
	for _, size := range blockSizes {
		x := testutil.Noise(int64(size)+1, 1, size)
		fz := append([]float32(nil), x...)

		Transform(fz, size/2)
		Transform(fz, size/2)

		scale := float32(size)
		for i := range fz {
			if d := math.Abs(float64(fz[i]/scale - x[i])); d > 1e-5 {
				t.Fatalf("size=%d element %d = %g, want %g", size, i, fz[i]/scale, x[i])
			}
		}
	}
}

// TestTransform_SingleTone exploits cas-kernel orthogonality: transforming
// cas(2*pi*f*j/N) concentrates all energy in bin f.
func TestTransform_SingleTone(t *testing.T) {
	const size = 64
	const bin = 3

	fz := testutil.CasTone(size, bin)

	Transform(fz, size/2)

	for k, v := range fz {
		want := 0.0
		if k == bin {
			want = size
		}
		if math.Abs(float64(v)-want) > 1e-4*size {
			t.Errorf("bin %d = %g, want %g", k, v, want)
		}
	}
}

func TestTransform_Determinism(t *testing.T) {
	x := testutil.Noise(5, 1, 1024)

	a := append([]float32(nil), x...)
	b := append([]float32(nil), x...)
	Transform(a, len(a)/2)
	Transform(b, len(b)/2)

	testutil.RequireBitsEqual(t, a, b)
}

func TestSupportedBlockSize(t *testing.T) {
	for _, size := range blockSizes {
		if !SupportedBlockSize(size) {
			t.Errorf("SupportedBlockSize(%d) = false", size)
		}
	}
	for _, size := range []int{0, 8, 32, 128, 512, 2048, 100} {
		if SupportedBlockSize(size) {
			t.Errorf("SupportedBlockSize(%d) = true", size)
		}
	}
}

func TestTransform_BadInputPanics(t *testing.T) {
	tests := []struct {
		name string
		fz   []float32
		n    int
	}{
		{"length-mismatch", make([]float32, 16), 16},
		{"unsupported-size", make([]float32, 32), 16},
		{"too-small", make([]float32, 8), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()

			Transform(tt.fz, tt.n)
		})
	}
}
