package powerlaw

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-quant/internal/arch/generic"
	"github.com/cwbudde/algo-quant/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestDispatch_BackendsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, e := range registry.Global.ListEntries() {
		names[e.Name] = true
	}

	if !names["generic"] {
		t.Error("generic backend not registered")
	}
	if !names["lane8"] {
		t.Error("lane8 backend not registered")
	}
}

func TestDispatch_PrefersLaneBatched(t *testing.T) {
	entry := registry.Global.LookupPowerLaw(cpu.DetectFeatures())
	if entry == nil {
		t.Fatal("LookupPowerLaw returned nil")
	}
	if entry.Name != "lane8" {
		t.Fatalf("expected lane8 backend, got %q", entry.Name)
	}
}

// TestDispatch_AgreesWithScalar checks the dispatched kernel against the
// scalar reference: element-for-element identical, max identical (order
// independent), sum within reduction-order tolerance.
func TestDispatch_AgreesWithScalar(t *testing.T) {
	for maxNZ := 0; maxNZ < 80; maxNZ++ {
		src := makeCoeffs(maxNZ+1, 4, int64(maxNZ))

		got := make([]float32, len(src))
		want := make([]float32, len(src))

		gotSum, gotMax := Transform(got, src, maxNZ)
		wantSum, wantMax := generic.PowerLaw(want, src, maxNZ)

		for i := range got {
			if math.Float32bits(got[i]) != math.Float32bits(want[i]) {
				t.Fatalf("maxNZ=%d element %d: got %g, want %g", maxNZ, i, got[i], want[i])
			}
		}
		if gotMax != wantMax {
			t.Fatalf("maxNZ=%d max: got %g, want %g", maxNZ, gotMax, wantMax)
		}
		if d := relDiff(float64(gotSum), float64(wantSum)); d > 1e-4 {
			t.Fatalf("maxNZ=%d sum: got %g, want %g (rel %g)", maxNZ, gotSum, wantSum, d)
		}
	}
}
