// Package generic registers the pure Go fallback entry.
package generic

import (
	"github.com/cwbudde/algo-arrayfunc/internal/cpu"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels/registry"
)

// init registers the scalar entry. It is selected when no SIMD level is
// available, when ForceGeneric is set, and is the path nosimd maps to.
//
// Priority: 0 (lowest)
func init() {
	registry.Global.Register(registry.Entry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
	})
}
