// Package generic provides the scalar reference kernels.
//
// These are the baseline implementations every other backend must agree with
// element-for-element. They are always registered and always compatible.
package generic

import (
	"github.com/cwbudde/algo-quant/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		PowerLaw:  PowerLaw,
		Hartley:   Hartley,
	})
}
