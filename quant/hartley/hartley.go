package hartley

import (
	"sync"

	"github.com/cwbudde/algo-quant/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"

	_ "github.com/cwbudde/algo-quant/internal/arch/generic" // register scalar backend
	_ "github.com/cwbudde/algo-quant/internal/arch/lane8"   // register lane-batched backend
)

// Block length bounds of the in-place kernel. The lower bound is the
// smallest radix-4 block; the upper bound is set by the size of the rotation
// seed table.
const (
	MinBlockSize = 16
	MaxBlockSize = 1024
)

var (
	transformImpl registry.HartleyFn
	transformOnce sync.Once
)

// SupportedBlockSize reports whether Transform accepts a buffer of the given
// length. Supported lengths are the powers of four from MinBlockSize through
// MaxBlockSize.
func SupportedBlockSize(size int) bool {
	switch size {
	case 16, 64, 256, 1024:
		return true
	}

	return false
}

// Transform computes the Hartley transform of fz in place. n is the logical
// half-size: len(fz) must equal 2*n exactly, and 2*n must be a supported
// block size (see SupportedBlockSize).
//
// The transform is unnormalized; applying it twice reproduces the input
// scaled by 2*n. It allocates nothing and is safe to invoke concurrently on
// disjoint buffers.
func Transform(fz []float32, n int) {
	transformOnce.Do(initTransformKernel)

	if len(fz) != 2*n {
		panic("hartley: buffer length must equal 2*n")
	}
	if !SupportedBlockSize(2 * n) {
		panic("hartley: unsupported block size")
	}

	transformImpl(fz, n)
}

func initTransformKernel() {
	entry := registry.Global.LookupHartley(cpu.DetectFeatures())
	if entry == nil {
		panic("hartley: no kernel registered (missing generic fallback?)")
	}

	transformImpl = entry.Hartley
}
