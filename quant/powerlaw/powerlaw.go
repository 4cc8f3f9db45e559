package powerlaw

import (
	"sync"

	"github.com/cwbudde/algo-quant/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"

	_ "github.com/cwbudde/algo-quant/internal/arch/generic" // register scalar backend
	_ "github.com/cwbudde/algo-quant/internal/arch/lane8"   // register lane-batched backend
)

// MaxGranule is the number of spectral coefficients in one granule, the
// largest block Transform is invoked on by an encoder.
const MaxGranule = 576

var (
	transformImpl registry.PowerLawFn
	transformOnce sync.Once
)

// Transform writes dst[i] = |src[i]|^(3/4) for every i in [0, maxNZ] and
// returns the sum of |src[i]| and the maximum of dst[i] over that range.
// x^(3/4) is evaluated as sqrt(x*sqrt(x)).
//
// maxNZ is the index of the highest coefficient to process (typically the
// highest nonzero one) and must satisfy 0 <= maxNZ < len(src). Elements of
// dst past maxNZ are left untouched. dst and src must not overlap unless
// they are the same slice.
//
// Transform is pure and reentrant; concurrent calls on disjoint buffers are
// safe. After the first call dispatch is a direct function pointer call.
func Transform(dst, src []float32, maxNZ int) (sum, max float32) {
	transformOnce.Do(initTransformKernel)

	if maxNZ < 0 || maxNZ >= len(src) || maxNZ >= len(dst) {
		panic("powerlaw: maxNZ out of range")
	}

	return transformImpl(dst, src, maxNZ)
}

func initTransformKernel() {
	entry := registry.Global.LookupPowerLaw(cpu.DetectFeatures())
	if entry == nil {
		panic("powerlaw: no kernel registered (missing generic fallback?)")
	}

	transformImpl = entry.PowerLaw
}
