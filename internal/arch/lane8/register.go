// Package lane8 provides the 8-wide lane-batched power-law kernel.
//
// The kernel is portable Go arranged so the element-wise lane loops compile
// to straight-line data-parallel code. The Hartley kernel is not provided
// here: its rotation recurrence is sequential across sub-indices, so lookups
// for it fall through to the generic backend.
package lane8

import (
	"github.com/cwbudde/algo-quant/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "lane8",
		SIMDLevel: cpu.SIMDNone,
		Priority:  5,
		PowerLaw:  PowerLaw,
	})
}
