package kernels

import (
	"math"

	"golang.org/x/exp/constraints"
)

// maxLanes bounds the per-lane accumulator arrays (64-byte vectors of
// 1-byte elements).
const maxLanes = 64

func clampLanes(lanes int) int {
	if lanes > maxLanes {
		return maxLanes
	}
	return lanes
}

// SumSigned returns the sum of x wrapped to int64 and whether the exact sum
// falls outside the int64 range. The sum is accumulated exactly, so the
// overflow flag does not depend on the summation order.
func SumSigned[T constraints.Signed](p Path, x []T) (int64, bool) {
	var total acc128
	if !p.Vector() {
		for _, v := range x {
			total.addSigned(int64(v))
		}
		return int64(total.lo), !total.fitsInt64()
	}

	lanes := clampLanes(p.Lanes)
	var acc [maxLanes]acc128
	n := len(x) - len(x)%lanes
	for i := 0; i < n; i += lanes {
		blk := x[i : i+lanes : i+lanes]
		for j, v := range blk {
			acc[j].addSigned(int64(v))
		}
	}
	for _, v := range x[n:] {
		total.addSigned(int64(v))
	}
	for j := 0; j < lanes; j++ {
		total.add(acc[j])
	}
	return int64(total.lo), !total.fitsInt64()
}

// SumUnsigned returns the sum of x wrapped to uint64 and whether the exact
// sum exceeds the uint64 range.
func SumUnsigned[T constraints.Unsigned](p Path, x []T) (uint64, bool) {
	var total acc128
	if !p.Vector() {
		for _, v := range x {
			total.addUnsigned(uint64(v))
		}
		return total.lo, !total.fitsUint64()
	}

	lanes := clampLanes(p.Lanes)
	var acc [maxLanes]acc128
	n := len(x) - len(x)%lanes
	for i := 0; i < n; i += lanes {
		blk := x[i : i+lanes : i+lanes]
		for j, v := range blk {
			acc[j].addUnsigned(uint64(v))
		}
	}
	for _, v := range x[n:] {
		total.addUnsigned(uint64(v))
	}
	for j := 0; j < lanes; j++ {
		total.add(acc[j])
	}
	return total.lo, !total.fitsUint64()
}

// SumFloat returns the float64 sum of x. Both paths add in index order so
// the result is bit-identical. When checked, the first non-finite input
// faults at its index and a non-finite total faults with index -1.
func SumFloat[T constraints.Float](p Path, x []T, checked bool) (float64, *Fault) {
	total := 0.0
	if !p.Vector() {
		for i, v := range x {
			f := float64(v)
			if checked && isNonFinite(f) {
				return 0, faultAt(FaultNonFinite, i)
			}
			total += f
		}
	} else {
		lanes := p.Lanes
		n := len(x) - len(x)%lanes
		for i := 0; i < n; i += lanes {
			blk := x[i : i+lanes : i+lanes]
			if checked {
				if j := firstNonFinite(blk); j >= 0 {
					return 0, faultAt(FaultNonFinite, i+j)
				}
			}
			for _, v := range blk {
				total += float64(v)
			}
		}
		for i := n; i < len(x); i++ {
			f := float64(x[i])
			if checked && isNonFinite(f) {
				return 0, faultAt(FaultNonFinite, i)
			}
			total += f
		}
	}
	if checked && isNonFinite(total) {
		return 0, faultAt(FaultNonFinite, -1)
	}
	return total, nil
}

func isNonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

func firstNonFinite[T constraints.Float](blk []T) int {
	bad := false
	for _, v := range blk {
		f := float64(v)
		bad = bad || f-f != 0
	}
	if !bad {
		return -1
	}
	for j, v := range blk {
		if isNonFinite(float64(v)) {
			return j
		}
	}
	return -1
}

// MaxInteger returns the largest element of a non-empty x.
func MaxInteger[T constraints.Integer](p Path, x []T) T {
	m := x[0]
	if !p.Vector() || len(x) < p.Lanes {
		for _, v := range x[1:] {
			if v > m {
				m = v
			}
		}
		return m
	}

	lanes := clampLanes(p.Lanes)
	var acc [maxLanes]T
	copy(acc[:lanes], x[:lanes])
	n := len(x) - len(x)%lanes
	for i := lanes; i < n; i += lanes {
		blk := x[i : i+lanes : i+lanes]
		for j, v := range blk {
			if v > acc[j] {
				acc[j] = v
			}
		}
	}
	m = acc[0]
	for _, v := range acc[1:lanes] {
		if v > m {
			m = v
		}
	}
	for _, v := range x[n:] {
		if v > m {
			m = v
		}
	}
	return m
}

// MinInteger returns the smallest element of a non-empty x.
func MinInteger[T constraints.Integer](p Path, x []T) T {
	m := x[0]
	if !p.Vector() || len(x) < p.Lanes {
		for _, v := range x[1:] {
			if v < m {
				m = v
			}
		}
		return m
	}

	lanes := clampLanes(p.Lanes)
	var acc [maxLanes]T
	copy(acc[:lanes], x[:lanes])
	n := len(x) - len(x)%lanes
	for i := lanes; i < n; i += lanes {
		blk := x[i : i+lanes : i+lanes]
		for j, v := range blk {
			if v < acc[j] {
				acc[j] = v
			}
		}
	}
	m = acc[0]
	for _, v := range acc[1:lanes] {
		if v < m {
			m = v
		}
	}
	for _, v := range x[n:] {
		if v < m {
			m = v
		}
	}
	return m
}

// floatMax and floatMin fold one value into a running extreme. Equal zeros resolve by
// sign (+0 wins for max, -0 for min) so the result does not depend on the
// visiting order.
func floatMax[T constraints.Float](m, v T) T {
	if v > m || (v == 0 && m == 0 && !math.Signbit(float64(v))) {
		return v
	}
	return m
}

func floatMin[T constraints.Float](m, v T) T {
	if v < m || (v == 0 && m == 0 && math.Signbit(float64(v))) {
		return v
	}
	return m
}

// MaxFloat returns the largest element of a non-empty x. NaN elements fault
// when checked and otherwise make the result NaN.
func MaxFloat[T constraints.Float](p Path, x []T, checked bool) (T, *Fault) {
	return extremeFloat(p, x, checked, floatMax[T])
}

// MinFloat returns the smallest element of a non-empty x. NaN elements fault
// when checked and otherwise make the result NaN.
func MinFloat[T constraints.Float](p Path, x []T, checked bool) (T, *Fault) {
	return extremeFloat(p, x, checked, floatMin[T])
}

func extremeFloat[T constraints.Float](p Path, x []T, checked bool, fold func(m, v T) T) (T, *Fault) {
	nan := T(math.NaN())
	if x[0] != x[0] {
		if checked {
			return 0, faultAt(FaultNonFinite, 0)
		}
		return nan, nil
	}
	m := x[0]
	rest := x[1:]
	if !p.Vector() || len(rest) < p.Lanes {
		for i, v := range rest {
			if v != v {
				if checked {
					return 0, faultAt(FaultNonFinite, 1+i)
				}
				return nan, nil
			}
			m = fold(m, v)
		}
		return m, nil
	}

	lanes := clampLanes(p.Lanes)
	var acc [maxLanes]T
	for j := range acc[:lanes] {
		acc[j] = m
	}
	n := len(rest) - len(rest)%lanes
	for i := 0; i < n; i += lanes {
		blk := rest[i : i+lanes : i+lanes]
		hasNaN := false
		for j, v := range blk {
			hasNaN = hasNaN || v != v
			acc[j] = fold(acc[j], v)
		}
		if hasNaN {
			if !checked {
				return nan, nil
			}
			for j, v := range blk {
				if v != v {
					return 0, faultAt(FaultNonFinite, 1+i+j)
				}
			}
		}
	}
	for i := n; i < len(rest); i++ {
		v := rest[i]
		if v != v {
			if checked {
				return 0, faultAt(FaultNonFinite, 1+i)
			}
			return nan, nil
		}
		m = fold(m, v)
	}
	for _, v := range acc[:lanes] {
		m = fold(m, v)
	}
	return m, nil
}

// Count returns how many elements of x equal v.
func Count[T Number](p Path, x []T, v T) int {
	count := 0
	if !p.Vector() {
		for _, e := range x {
			if e == v {
				count++
			}
		}
		return count
	}

	lanes := clampLanes(p.Lanes)
	var acc [maxLanes]int
	n := len(x) - len(x)%lanes
	for i := 0; i < n; i += lanes {
		blk := x[i : i+lanes : i+lanes]
		for j, e := range blk {
			if e == v {
				acc[j]++
			}
		}
	}
	for _, e := range x[n:] {
		if e == v {
			count++
		}
	}
	for _, c := range acc[:lanes] {
		count += c
	}
	return count
}
