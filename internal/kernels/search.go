package kernels

// Cmp is a comparison operator applied as element <op> threshold.
type Cmp uint8

const (
	CmpEq Cmp = iota
	CmpNe
	CmpLt
	CmpLe
	CmpGt
	CmpGe
)

// Predicate returns the test element <c> v.
func Predicate[T Number](c Cmp, v T) func(T) bool {
	switch c {
	case CmpEq:
		return func(x T) bool { return x == v }
	case CmpNe:
		return func(x T) bool { return x != v }
	case CmpLt:
		return func(x T) bool { return x < v }
	case CmpLe:
		return func(x T) bool { return x <= v }
	case CmpGt:
		return func(x T) bool { return x > v }
	case CmpGe:
		return func(x T) bool { return x >= v }
	default:
		panic("kernels: unknown comparison operator")
	}
}

// Not negates a predicate.
func Not[T any](pred func(T) bool) func(T) bool {
	return func(x T) bool { return !pred(x) }
}

// FindIndex returns the index of the first element matching pred, or -1.
func FindIndex[T any](p Path, x []T, pred func(T) bool) int {
	if !p.Vector() {
		for i, v := range x {
			if pred(v) {
				return i
			}
		}
		return -1
	}

	lanes := p.Lanes
	n := len(x) - len(x)%lanes
	for i := 0; i < n; i += lanes {
		blk := x[i : i+lanes : i+lanes]
		hit := false
		for _, v := range blk {
			hit = hit || pred(v)
		}
		if hit {
			for j, v := range blk {
				if pred(v) {
					return i + j
				}
			}
		}
	}
	for i := n; i < len(x); i++ {
		if pred(x[i]) {
			return i
		}
	}
	return -1
}

// All reports whether every element matches pred. True for empty x.
func All[T any](p Path, x []T, pred func(T) bool) bool {
	return FindIndex(p, x, Not(pred)) < 0
}

// Any reports whether some element matches pred.
func Any[T any](p Path, x []T, pred func(T) bool) bool {
	return FindIndex(p, x, pred) >= 0
}

// blockMask evaluates pred over one block.
func blockMask[T any](blk []T, pred func(T) bool, mask *[maxLanes]bool) bool {
	hit := false
	for j, v := range blk {
		m := pred(v)
		mask[j] = m
		hit = hit || m
	}
	return hit
}

// FindIndices writes the indices of matching elements to out and returns
// how many were written. out must hold at least len(x) entries.
func FindIndices[T any](p Path, x []T, pred func(T) bool, out []int64) int {
	k := 0
	if !p.Vector() {
		for i, v := range x {
			if pred(v) {
				out[k] = int64(i)
				k++
			}
		}
		return k
	}

	lanes := clampLanes(p.Lanes)
	var mask [maxLanes]bool
	n := len(x) - len(x)%lanes
	for i := 0; i < n; i += lanes {
		if !blockMask(x[i:i+lanes:i+lanes], pred, &mask) {
			continue
		}
		for j := 0; j < lanes; j++ {
			if mask[j] {
				out[k] = int64(i + j)
				k++
			}
		}
	}
	for i := n; i < len(x); i++ {
		if pred(x[i]) {
			out[k] = int64(i)
			k++
		}
	}
	return k
}

// AppendIndices appends the indices of matching elements to dst as uint32.
// x must not exceed math.MaxUint32 elements.
func AppendIndices[T any](p Path, x []T, pred func(T) bool, dst []uint32) []uint32 {
	if !p.Vector() {
		for i, v := range x {
			if pred(v) {
				dst = append(dst, uint32(i))
			}
		}
		return dst
	}

	lanes := clampLanes(p.Lanes)
	var mask [maxLanes]bool
	n := len(x) - len(x)%lanes
	for i := 0; i < n; i += lanes {
		if !blockMask(x[i:i+lanes:i+lanes], pred, &mask) {
			continue
		}
		for j := 0; j < lanes; j++ {
			if mask[j] {
				dst = append(dst, uint32(i+j))
			}
		}
	}
	for i := n; i < len(x); i++ {
		if pred(x[i]) {
			dst = append(dst, uint32(i))
		}
	}
	return dst
}

// Filter copies the elements matching pred to out, preserving order, and
// returns how many were written. out must hold at least len(x) elements.
func Filter[T any](p Path, x []T, pred func(T) bool, out []T) int {
	k := 0
	if !p.Vector() {
		for _, v := range x {
			if pred(v) {
				out[k] = v
				k++
			}
		}
		return k
	}

	lanes := clampLanes(p.Lanes)
	var mask [maxLanes]bool
	n := len(x) - len(x)%lanes
	for i := 0; i < n; i += lanes {
		blk := x[i : i+lanes : i+lanes]
		if !blockMask(blk, pred, &mask) {
			continue
		}
		for j, v := range blk {
			if mask[j] {
				out[k] = v
				k++
			}
		}
	}
	for _, v := range x[n:] {
		if pred(v) {
			out[k] = v
			k++
		}
	}
	return k
}

// DropWhile skips the leading elements matching pred and copies the rest to
// out. It returns how many were written.
func DropWhile[T any](p Path, x []T, pred func(T) bool, out []T) int {
	start := FindIndex(p, x, Not(pred))
	if start < 0 {
		return 0
	}
	return copy(out, x[start:])
}

// TakeWhile copies the leading elements matching pred to out and returns how
// many were written.
func TakeWhile[T any](p Path, x []T, pred func(T) bool, out []T) int {
	end := FindIndex(p, x, Not(pred))
	if end < 0 {
		end = len(x)
	}
	return copy(out, x[:end])
}
