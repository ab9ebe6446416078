//go:build arm64 && !purego

package arm64

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-arrayfunc/internal/cpu"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels/registry"
)

// init registers the NEON entry. NEON is 128 bits wide.
//
// Priority: 15
func init() {
	registry.Global.Register(registry.Entry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		Width:     cpu.SIMDNEON.Width(),
		Float64: registry.Float64Ops{
			AddBlockInPlace: vecmath.AddBlockInPlace,
			MulBlock:        vecmath.MulBlock,
			ScaleBlock:      vecmath.ScaleBlock,
		},
	})
}
