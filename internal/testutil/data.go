package testutil

import (
	"math"
	"math/rand"
	"unsafe"

	"github.com/cwbudde/algo-arrayfunc/array"
)

// Sizes straddles every lane width from 16-byte to 64-byte vectors for all
// element sizes.
var Sizes = []int{0, 1, 2, 3, 4, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 65, 100, 127, 128, 129, 257}

// Limits returns the smallest and largest finite values of T.
func Limits[T array.Element]() (lo, hi T) {
	var z T
	bits := uint(unsafe.Sizeof(z)) * 8
	switch any(z).(type) {
	case float32:
		f := float64(math.MaxFloat32)
		return T(-f), T(f)
	case float64:
		f := math.MaxFloat64
		return T(-f), T(f)
	}
	if IsSigned[T]() {
		hi = T(int64(1)<<(bits-1) - 1)
		return -hi - 1, hi
	}
	return 0, T(uint64(1)<<bits - 1)
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T array.Element]() bool {
	return array.TypeOf[T]().IsFloat()
}

// Arith returns n values start, start+step, ... computed in int64 and
// converted to T, so integer runs wrap like native arithmetic.
func Arith[T array.Element](start, step int64, n int) []T {
	out := make([]T, n)
	v := start
	for i := range out {
		out[i] = T(v)
		v += step
	}
	return out
}

// OddDescending returns the odd run 1, 3, ..., 11 followed by the run
// 8, 5, 2, ... descending by three down to -85 (0, 255, ... wrapped for
// unsigned types), repeated to length n.
func OddDescending[T array.Element](n int) []T {
	pattern := append(Arith[int64](1, 2, 6), Arith[int64](8, -3, 32)...)
	out := make([]T, n)
	for i := range out {
		v := pattern[i%len(pattern)]
		if !IsSigned[T]() && v < 0 {
			v = -v
		}
		out[i] = T(v)
	}
	return out
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T array.Element]() bool {
	var z T
	return z-1 < 0
}

// Boundary returns the extreme values of T and the values next to zero.
func Boundary[T array.Element]() []T {
	lo, hi := Limits[T]()
	one := T(1)
	if IsFloat[T]() {
		smallest := math.SmallestNonzeroFloat32
		tiny := T(smallest)
		return []T{lo, -one, -tiny, T(math.Copysign(0, -1)), 0, tiny, one, hi}
	}
	if IsSigned[T]() {
		return []T{lo, lo + one, -one, 0, one, hi - one, hi}
	}
	return []T{0, one, one + one, hi - one, hi}
}

// Tile repeats pattern to length n.
func Tile[T any](pattern []T, n int) []T {
	out := make([]T, n)
	if len(pattern) == 0 {
		return out
	}
	for i := range out {
		out[i] = pattern[i%len(pattern)]
	}
	return out
}

// Rotate returns x rotated left by k positions.
func Rotate[T any](x []T, k int) []T {
	out := make([]T, len(x))
	if len(x) == 0 {
		return out
	}
	k %= len(x)
	if k < 0 {
		k += len(x)
	}
	copy(out, x[k:])
	copy(out[len(x)-k:], x[:k])
	return out
}

// Random returns n reproducible values. Integers cover the full range of T,
// floats are uniform in [-scale, scale).
func Random[T array.Element](seed int64, n int, scale float64) []T {
	rng := rand.New(rand.NewSource(seed))
	out := make([]T, n)
	for i := range out {
		if IsFloat[T]() {
			out[i] = T((rng.Float64()*2 - 1) * scale)
		} else {
			out[i] = T(rng.Uint64())
		}
	}
	return out
}

// Small returns n reproducible integers in [-limit, limit] (or [0, limit]
// for unsigned T), small enough that sums and products stay in range.
func Small[T array.Element](seed int64, n int, limit int64) []T {
	rng := rand.New(rand.NewSource(seed))
	out := make([]T, n)
	for i := range out {
		v := rng.Int63n(2*limit+1) - limit
		if !IsSigned[T]() && v < 0 {
			v = -v
		}
		out[i] = T(v)
	}
	return out
}
