package kernels

import (
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-arrayfunc/internal/cpu"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels/registry"
)

// Path is the resolved kernel choice for one call.
type Path struct {
	// Name is the registry entry name.
	Name string

	// Lanes is the number of elements per block. 1 selects the scalar loops.
	Lanes int

	// Float64 holds the optional float64 block kernels.
	Float64 registry.Float64Ops
}

// Vector reports whether the lane-blocked loops are used.
func (p Path) Vector() bool { return p.Lanes > 1 }

// Scalar is the element-at-a-time path.
var Scalar = Path{Name: "generic", Lanes: 1}

var (
	active   atomic.Pointer[registry.Entry]
	hookMu   sync.RWMutex
	onSelect func(*registry.Entry)
)

// OnSelect installs a callback invoked whenever a registry entry is
// selected. It is used for logging.
func OnSelect(fn func(*registry.Entry)) {
	hookMu.Lock()
	onSelect = fn
	hookMu.Unlock()
}

// Active returns the registry entry selected for the current CPU features.
// The lookup is cached until Refresh.
func Active() *registry.Entry {
	if e := active.Load(); e != nil {
		return e
	}

	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernels: no implementation registered")
	}
	if active.CompareAndSwap(nil, entry) {
		hookMu.RLock()
		fn := onSelect
		hookMu.RUnlock()
		if fn != nil {
			fn(entry)
		}
	}
	return active.Load()
}

// Refresh drops the cached entry so the next call looks it up again.
// Tests call it after cpu.SetForcedFeatures.
func Refresh() {
	active.Store(nil)
}

// Select returns the path for elements of elemSize bytes.
func Select(elemSize int, noSIMD bool) Path {
	if noSIMD {
		return Scalar
	}
	e := Active()
	if !e.Vectorized() {
		return Path{Name: e.Name, Lanes: 1}
	}
	return Path{Name: e.Name, Lanes: e.Lanes(elemSize), Float64: e.Float64}
}

// WithLanes returns the lane-blocked path with an explicit lane count and no
// float64 block kernels. Tests use it to cover every block width on any
// machine.
func WithLanes(lanes int) Path {
	if lanes < 1 {
		lanes = 1
	}
	return Path{Name: "lanes", Lanes: lanes}
}
