package ops

import (
	"github.com/cwbudde/algo-arrayfunc/array"
	"github.com/cwbudde/algo-arrayfunc/internal/cpu"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels/registry"
)

// Implementation describes a kernel implementation variant.
type Implementation struct {
	Name     string
	Level    string
	Priority int
	Width    int // vector width in bytes, 0 for scalar
}

func implementationOf(e registry.Entry) Implementation {
	return Implementation{
		Name:     e.Name,
		Level:    e.SIMDLevel.String(),
		Priority: e.Priority,
		Width:    e.Width,
	}
}

// Active returns the implementation selected for this CPU.
func Active() Implementation {
	return implementationOf(*kernels.Active())
}

// Implementations lists every registered variant and whether this CPU
// supports it.
func Implementations() (impls []Implementation, supported []bool) {
	features := cpu.DetectFeatures()
	for _, e := range registry.Global.ListEntries() {
		impls = append(impls, implementationOf(e))
		supported = append(supported, cpu.Supports(features, e.SIMDLevel))
	}
	return impls, supported
}

// Lanes returns the number of elements of dt processed per block, 1 when
// the scalar path is used.
func Lanes(dt array.DataType, noSIMD bool) int {
	return kernels.Select(dt.Size(), noSIMD).Lanes
}

// LookupImplementation returns the registered implementation called name
// and whether this CPU supports it.
func LookupImplementation(name string) (impl Implementation, supported, ok bool) {
	e := registry.Global.Find(name)
	if e == nil {
		return Implementation{}, false, false
	}
	return implementationOf(*e), cpu.Supports(cpu.DetectFeatures(), e.SIMDLevel), true
}

// Lanes returns the number of dt elements the implementation processes per
// block, 1 for the scalar implementation.
func (impl Implementation) Lanes(dt array.DataType) int {
	e := registry.Entry{Width: impl.Width}
	return e.Lanes(dt.Size())
}
