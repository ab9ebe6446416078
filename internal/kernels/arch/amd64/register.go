//go:build amd64 && !purego

package amd64

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-arrayfunc/internal/cpu"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels/registry"
)

var float64Ops = registry.Float64Ops{
	AddBlockInPlace: vecmath.AddBlockInPlace,
	MulBlock:        vecmath.MulBlock,
	ScaleBlock:      vecmath.ScaleBlock,
}

func init() {
	for _, level := range []struct {
		name     string
		level    cpu.SIMDLevel
		priority int
	}{
		{"sse2", cpu.SIMDSSE2, 10},
		{"avx", cpu.SIMDAVX, 15},
		{"avx2", cpu.SIMDAVX2, 20},
		{"avx512", cpu.SIMDAVX512, 30},
	} {
		registry.Global.Register(registry.Entry{
			Name:      level.name,
			SIMDLevel: level.level,
			Priority:  level.priority,
			Width:     level.level.Width(),
			Float64:   float64Ops,
		})
	}
}
