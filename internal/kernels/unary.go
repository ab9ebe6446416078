package kernels

// UnaryFunc computes one output element. A non-zero FaultKind rejects it.
type UnaryFunc[T any] func(x T) (T, FaultKind)

// Unary applies f to src and writes dst[i] for i < len(src). With probe set
// every element is computed first and the first fault is returned before
// anything is written. dst may alias src.
func Unary[T any](p Path, dst, src []T, f UnaryFunc[T], probe bool) *Fault {
	if probe {
		if fault := probeUnary(p, src, f); fault != nil {
			return fault
		}
	}
	if !p.Vector() {
		mapUnary(dst, src, f)
		return nil
	}

	lanes := p.Lanes
	n := len(src) - len(src)%lanes
	for i := 0; i < n; i += lanes {
		mapUnary(dst[i:i+lanes:i+lanes], src[i:i+lanes:i+lanes], f)
	}
	mapUnary(dst[n:len(src)], src[n:], f)
	return nil
}

func mapUnary[T any](dst, src []T, f UnaryFunc[T]) {
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i], _ = f(v)
	}
}

func probeUnary[T any](p Path, src []T, f UnaryFunc[T]) *Fault {
	if !p.Vector() {
		for i, v := range src {
			if _, k := f(v); k != FaultNone {
				return faultAt(k, i)
			}
		}
		return nil
	}

	lanes := p.Lanes
	n := len(src) - len(src)%lanes
	for i := 0; i < n; i += lanes {
		blk := src[i : i+lanes : i+lanes]
		bad := false
		for _, v := range blk {
			_, k := f(v)
			bad = bad || k != FaultNone
		}
		if bad {
			for j, v := range blk {
				if _, k := f(v); k != FaultNone {
					return faultAt(k, i+j)
				}
			}
		}
	}
	for i := n; i < len(src); i++ {
		if _, k := f(src[i]); k != FaultNone {
			return faultAt(k, i)
		}
	}
	return nil
}

// ScaleFloat64 writes dst[i] = src[i] * s. The vector path uses the
// registry's ScaleBlock kernel when present.
func ScaleFloat64(p Path, dst, src []float64, s float64) {
	dst = dst[:len(src)]
	if p.Vector() && p.Float64.ScaleBlock != nil {
		if len(src) > 0 {
			p.Float64.ScaleBlock(dst, src, s)
		}
		return
	}
	mul := func(x float64) (float64, FaultKind) { return x * s, FaultNone }
	_ = Unary(p, dst, src, mul, false)
}

// ProbeUnary returns the first element of src that f rejects, or nil.
func ProbeUnary[T any](p Path, src []T, f UnaryFunc[T]) *Fault {
	return probeUnary(p, src, f)
}
