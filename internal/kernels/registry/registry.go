// Package registry holds the kernel implementation entries for every SIMD
// level the array operations can run at.
//
// Architecture packages register their entries from init(). At runtime the
// kernels package asks Lookup for the highest-priority entry the CPU
// supports and derives the lane count for each element type from its Width.
package registry

import (
	"slices"
	"sync"

	"github.com/cwbudde/algo-arrayfunc/internal/cpu"
)

// Float64Ops are optional float64 block kernels provided by a SIMD library.
// A nil field means the lane-blocked Go kernel is used instead.
// Every kernel must be exact per element (no fused operations) so results
// stay bit-identical to the scalar path.
type Float64Ops struct {
	// AddBlockInPlace performs dst[i] += src[i].
	AddBlockInPlace func(dst, src []float64)

	// MulBlock performs dst[i] = a[i] * b[i].
	MulBlock func(dst, a, b []float64)

	// ScaleBlock performs dst[i] = src[i] * scalar.
	ScaleBlock func(dst, src []float64, scalar float64)
}

// Entry describes one implementation variant.
type Entry struct {
	// Name is a human-readable identifier ("generic", "avx2", "neon").
	Name string

	// SIMDLevel is the instruction set the entry requires.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries; higher wins. Suggested values:
	//   - generic: 0
	//   - SSE2: 10
	//   - AVX/NEON: 15
	//   - AVX2: 20
	//   - AVX-512: 30
	Priority int

	// Width is the vector width in bytes. Zero selects the scalar kernels.
	Width int

	// Float64 holds the optional float64 block kernels.
	Float64 Float64Ops
}

// Lanes returns how many elements of elemSize bytes fit one vector.
// It returns 1 for scalar entries.
func (e *Entry) Lanes(elemSize int) int {
	if e == nil || e.Width == 0 || elemSize <= 0 || elemSize > e.Width {
		return 1
	}
	return e.Width / elemSize
}

// Vectorized reports whether the entry runs the lane-blocked kernels.
func (e *Entry) Vectorized() bool {
	return e != nil && e.Width > 0
}

// OpRegistry keeps entries ordered by descending priority. Entries of equal
// priority stay in registration order.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []Entry
}

// Global is the registry used by the kernels package.
var Global = &OpRegistry{}

// Register adds an entry. Architecture packages call it from init.
func (r *OpRegistry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	at := slices.IndexFunc(r.entries, func(e Entry) bool { return e.Priority < entry.Priority })
	if at < 0 {
		at = len(r.entries)
	}
	r.entries = slices.Insert(r.entries, at, entry)
}

// Lookup returns the best entry the features can run, or nil when none
// qualifies (no generic entry registered).
func (r *OpRegistry) Lookup(features cpu.Features) *Entry {
	return r.first(func(e *Entry) bool { return cpu.Supports(features, e.SIMDLevel) })
}

// Find returns the entry registered under name, or nil.
func (r *OpRegistry) Find(name string) *Entry {
	return r.first(func(e *Entry) bool { return e.Name == name })
}

func (r *OpRegistry) first(match func(*Entry) bool) *Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if match(&r.entries[i]) {
			return &r.entries[i]
		}
	}
	return nil
}

// ListEntries returns the entries in priority order.
func (r *OpRegistry) ListEntries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.entries)
}
