package kernels

// BinaryFunc computes one output element from two inputs.
type BinaryFunc[T any] func(a, b T) (T, FaultKind)

// Operand is either a buffer or a scalar broadcast to every element.
type Operand[T any] struct {
	Vec      []T
	Scalar   T
	IsScalar bool
}

// Vec wraps a slice operand.
func Vec[T any](x []T) Operand[T] { return Operand[T]{Vec: x} }

// Broadcast wraps a scalar operand.
func Broadcast[T any](v T) Operand[T] { return Operand[T]{Scalar: v, IsScalar: true} }

func (o Operand[T]) slice(i, j int) Operand[T] {
	if o.IsScalar {
		return o
	}
	return Operand[T]{Vec: o.Vec[i:j:j]}
}

// Binary writes dst[i] = f(a[i], b[i]) for i < len(dst). Slice operands must
// hold at least len(dst) elements; at least one operand must be a slice.
// With probe set the first fault is returned before anything is written.
// dst may alias either operand.
func Binary[T any](p Path, dst []T, a, b Operand[T], f BinaryFunc[T], probe bool) *Fault {
	if probe {
		if fault := probeBinary(p, len(dst), a, b, f); fault != nil {
			return fault
		}
	}
	if !p.Vector() {
		mapBinary(dst, a, b, f)
		return nil
	}

	lanes := p.Lanes
	n := len(dst) - len(dst)%lanes
	for i := 0; i < n; i += lanes {
		mapBinary(dst[i:i+lanes:i+lanes], a.slice(i, i+lanes), b.slice(i, i+lanes), f)
	}
	mapBinary(dst[n:], a.slice(n, len(dst)), b.slice(n, len(dst)), f)
	return nil
}

func mapBinary[T any](dst []T, a, b Operand[T], f BinaryFunc[T]) {
	switch {
	case a.IsScalar:
		y := b.Vec[:len(dst)]
		for i := range dst {
			dst[i], _ = f(a.Scalar, y[i])
		}
	case b.IsScalar:
		x := a.Vec[:len(dst)]
		for i := range dst {
			dst[i], _ = f(x[i], b.Scalar)
		}
	default:
		x, y := a.Vec[:len(dst)], b.Vec[:len(dst)]
		for i := range dst {
			dst[i], _ = f(x[i], y[i])
		}
	}
}

// firstBinaryFault returns the index in [0, n) of the first faulting element.
func firstBinaryFault[T any](n int, a, b Operand[T], f BinaryFunc[T]) (int, FaultKind) {
	for i := 0; i < n; i++ {
		x, y := a.Scalar, b.Scalar
		if !a.IsScalar {
			x = a.Vec[i]
		}
		if !b.IsScalar {
			y = b.Vec[i]
		}
		if _, k := f(x, y); k != FaultNone {
			return i, k
		}
	}
	return -1, FaultNone
}

func probeBinary[T any](p Path, n int, a, b Operand[T], f BinaryFunc[T]) *Fault {
	if !p.Vector() {
		if i, k := firstBinaryFault(n, a, b, f); k != FaultNone {
			return faultAt(k, i)
		}
		return nil
	}

	lanes := p.Lanes
	blocks := n - n%lanes
	for i := 0; i < blocks; i += lanes {
		ba, bb := a.slice(i, i+lanes), b.slice(i, i+lanes)
		if j, k := firstBinaryFault(lanes, ba, bb, f); k != FaultNone {
			return faultAt(k, i+j)
		}
	}
	if j, k := firstBinaryFault(n-blocks, a.slice(blocks, n), b.slice(blocks, n), f); k != FaultNone {
		return faultAt(k, blocks+j)
	}
	return nil
}

// AddFloat64 writes dst[i] = a[i] + b[i] using the registry's
// AddBlockInPlace kernel on the vector path. Both operands are slices.
func AddFloat64(p Path, dst, a, b []float64) {
	n := len(dst)
	a, b = a[:n], b[:n]
	if !p.Vector() || p.Float64.AddBlockInPlace == nil || n == 0 {
		add := func(x, y float64) (float64, FaultKind) { return x + y, FaultNone }
		_ = Binary(p, dst, Vec(a), Vec(b), add, false)
		return
	}
	switch {
	case &dst[0] == &b[0]:
		// addition commutes, accumulate a into the b storage
		p.Float64.AddBlockInPlace(dst, a)
	default:
		if &dst[0] != &a[0] {
			copy(dst, a)
		}
		p.Float64.AddBlockInPlace(dst, b)
	}
}

// MulFloat64 writes dst[i] = a[i] * b[i] using the registry's MulBlock
// kernel on the vector path. Both operands are slices.
func MulFloat64(p Path, dst, a, b []float64) {
	n := len(dst)
	a, b = a[:n], b[:n]
	if !p.Vector() || p.Float64.MulBlock == nil || n == 0 {
		mul := func(x, y float64) (float64, FaultKind) { return x * y, FaultNone }
		_ = Binary(p, dst, Vec(a), Vec(b), mul, false)
		return
	}
	p.Float64.MulBlock(dst, a, b)
}

// ProbeBinary returns the first of n element pairs that f rejects, or nil.
func ProbeBinary[T any](p Path, n int, a, b Operand[T], f BinaryFunc[T]) *Fault {
	return probeBinary(p, n, a, b, f)
}
