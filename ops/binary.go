package ops

import (
	"math"

	"github.com/cwbudde/algo-arrayfunc/array"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels"
)

// BinaryOp is an elementwise operation of two operands.
type BinaryOp uint8

const (
	Add BinaryOp = iota
	Sub
	Mul
	TrueDiv
	FloorDiv
	Mod
	Pow
	And
	Or
	Xor
	LShift
	RShift
	Atan2
	Hypot
	CopySign
)

var binaryNames = [...]string{
	Add:      "add",
	Sub:      "sub",
	Mul:      "mul",
	TrueDiv:  "truediv",
	FloorDiv: "floordiv",
	Mod:      "mod",
	Pow:      "pow",
	And:      "and_",
	Or:       "or_",
	Xor:      "xor",
	LShift:   "lshift",
	RShift:   "rshift",
	Atan2:    "atan2",
	Hypot:    "hypot",
	CopySign: "copysign",
}

// BinaryOps lists every binary operation.
func BinaryOps() []BinaryOp {
	ops := make([]BinaryOp, len(binaryNames))
	for i := range ops {
		ops[i] = BinaryOp(i)
	}
	return ops
}

// String returns the operation name.
func (op BinaryOp) String() string {
	if int(op) < len(binaryNames) {
		return binaryNames[op]
	}
	return "unknown"
}

// ParseBinaryOp looks up a binary operation by name.
func ParseBinaryOp(name string) (BinaryOp, bool) {
	for i, n := range binaryNames {
		if n == name {
			return BinaryOp(i), true
		}
	}
	return 0, false
}

// domainFaults reports whether an integer op can fail with MathErrors set.
func (op BinaryOp) domainFaults() bool {
	switch op {
	case FloorDiv, Mod, Pow, LShift, RShift:
		return true
	default:
		return false
	}
}

// binaryArg is one resolved operand: a buffer or a scalar.
type binaryArg struct {
	buf    array.Buffer
	scalar array.Scalar
}

func resolveArg(op string, v any) (binaryArg, error) {
	if b, ok := array.Wrap(v); ok {
		return binaryArg{buf: b}, nil
	}
	s, err := array.ParseScalar(v)
	if err != nil {
		return binaryArg{}, newError(op, ErrType, "operand must be a buffer or a number, got %T", v)
	}
	return binaryArg{scalar: s}, nil
}

// Binary computes op(a, b) elementwise. Each operand is a buffer, a raw
// slice or a number; at least one must be a buffer and all buffers share
// one element type. Scalars are broadcast after conversion to that type.
// The result goes to out, or to the first buffer operand when out is nil.
func Binary(op BinaryOp, a, b any, out array.Buffer, o Options) error {
	name := op.String()
	if err := o.validate(name); err != nil {
		return err
	}
	if int(op) >= len(binaryNames) {
		return newError(name, ErrType, "unknown binary operation %d", op)
	}

	x, err := resolveArg(name, a)
	if err != nil {
		return err
	}
	y, err := resolveArg(name, b)
	if err != nil {
		return err
	}

	ref := x.buf
	switch {
	case ref == nil && y.buf == nil:
		return newError(name, ErrType, "at least one operand must be a buffer")
	case ref == nil:
		ref = y.buf
	case y.buf != nil && y.buf.Type() != ref.Type():
		return typedError(name, ref.Type(), ErrType, "mixed element types %s and %s", ref.Type(), y.buf.Type())
	}

	switch ref.(type) {
	case array.Array[int8]:
		return binaryTyped(op, x, y, out, o, signedBinary[int8])
	case array.Array[int16]:
		return binaryTyped(op, x, y, out, o, signedBinary[int16])
	case array.Array[int32]:
		return binaryTyped(op, x, y, out, o, signedBinary[int32])
	case array.Array[int64]:
		return binaryTyped(op, x, y, out, o, signedBinary[int64])
	case array.Array[uint8]:
		return binaryTyped(op, x, y, out, o, unsignedBinary[uint8])
	case array.Array[uint16]:
		return binaryTyped(op, x, y, out, o, unsignedBinary[uint16])
	case array.Array[uint32]:
		return binaryTyped(op, x, y, out, o, unsignedBinary[uint32])
	case array.Array[uint64]:
		return binaryTyped(op, x, y, out, o, unsignedBinary[uint64])
	case array.Array[float32]:
		return binaryTyped(op, x, y, out, o, floatBinary[float32])
	default:
		return binaryFloat64(op, x, y, out, o)
	}
}

type binaryBuilder[T array.Element] func(op BinaryOp) (kernels.BinaryFunc[T], bool)

// binaryCall is a validated binary operation over n elements.
type binaryCall[T array.Element] struct {
	op   BinaryOp
	dst  []T
	a, b kernels.Operand[T]
	path kernels.Path
}

func prepareBinary[T array.Element](op BinaryOp, x, y binaryArg, out array.Buffer, o Options) (binaryCall[T], error) {
	name := op.String()
	dt := array.TypeOf[T]()
	a, err := operandOf[T](name, x)
	if err != nil {
		return binaryCall[T]{}, err
	}
	b, err := operandOf[T](name, y)
	if err != nil {
		return binaryCall[T]{}, err
	}

	var lens []int
	var dst []T
	for _, v := range []kernels.Operand[T]{a, b} {
		if v.IsScalar {
			continue
		}
		lens = append(lens, len(v.Vec))
		if dst == nil {
			dst = v.Vec
		}
	}
	if out != nil {
		if dst, err = outputOf[T](name, out); err != nil {
			return binaryCall[T]{}, err
		}
	}

	n := o.length(lens...)
	if len(dst) < n {
		return binaryCall[T]{}, shortOutput(name, dt, len(dst), n)
	}
	return binaryCall[T]{op: op, dst: dst[:n], a: a, b: b, path: pathFor[T](o)}, nil
}

func operandOf[T array.Element](op string, arg binaryArg) (kernels.Operand[T], error) {
	if arg.buf != nil {
		return kernels.Vec([]T(arg.buf.(array.Array[T]))), nil
	}
	v, err := array.Convert[T](arg.scalar)
	if err != nil {
		return kernels.Operand[T]{}, translateError(op, array.TypeOf[T](), err)
	}
	return kernels.Broadcast(v), nil
}

func binaryTyped[T array.Element](op BinaryOp, x, y binaryArg, out array.Buffer, o Options, build binaryBuilder[T]) error {
	c, err := prepareBinary[T](op, x, y, out, o)
	if err != nil {
		return err
	}
	f, ok := build(op)
	if !ok {
		return unsupported(op.String(), array.TypeOf[T]())
	}
	return c.run(f, o)
}

func (c binaryCall[T]) run(f kernels.BinaryFunc[T], o Options) error {
	dt := array.TypeOf[T]()
	probe := o.checked() || (dt.IsInteger() && c.op.domainFaults())
	if !o.checked() {
		f = uncheckedBinary(f, dt.IsFloat())
	}
	return faultErr(c.op.String(), dt, kernels.Binary(c.path, c.dst, c.a, c.b, f, probe))
}

// binaryFloat64 sends buffer-by-buffer add and mul to the float64 block
// kernels after the checks have passed.
func binaryFloat64(op BinaryOp, x, y binaryArg, out array.Buffer, o Options) error {
	if (op != Add && op != Mul) || x.buf == nil || y.buf == nil {
		return binaryTyped(op, x, y, out, o, floatBinary[float64])
	}
	c, err := prepareBinary[float64](op, x, y, out, o)
	if err != nil {
		return err
	}

	f, _ := floatBinary[float64](op)
	if o.checked() {
		if fault := kernels.ProbeBinary(c.path, len(c.dst), c.a, c.b, f); fault != nil {
			return faultErr(op.String(), array.TypeFloat64, fault)
		}
	}
	if op == Add {
		kernels.AddFloat64(c.path, c.dst, c.a.Vec, c.b.Vec)
	} else {
		kernels.MulFloat64(c.path, c.dst, c.a.Vec, c.b.Vec)
	}
	return nil
}

func signedBinary[T array.Signed](op BinaryOp) (kernels.BinaryFunc[T], bool) {
	switch op {
	case Add:
		return overflowing2(kernels.AddSigned[T]), true
	case Sub:
		return overflowing2(kernels.SubSigned[T]), true
	case Mul:
		return overflowing2(kernels.MulSigned[T]), true
	case FloorDiv:
		return nonZeroDivisor(overflowing2(kernels.FloorDivSigned[T])), true
	case Mod:
		return nonZeroDivisor(exact(kernels.FloorModSigned[T])), true
	case Pow:
		pow := overflowing2(kernels.PowSigned[T])
		return func(a, e T) (T, kernels.FaultKind) {
			if e < 0 {
				return 0, kernels.FaultNegativeExponent
			}
			return pow(a, e)
		}, true
	case LShift:
		return nonNegativeShift(shiftLeft[T]), true
	case RShift:
		return nonNegativeShift(exact(func(a, s T) T { return a >> s })), true
	default:
		return integerBitwise[T](op)
	}
}

func unsignedBinary[T array.Unsigned](op BinaryOp) (kernels.BinaryFunc[T], bool) {
	switch op {
	case Add:
		return overflowing2(kernels.AddUnsigned[T]), true
	case Sub:
		return overflowing2(kernels.SubUnsigned[T]), true
	case Mul:
		return overflowing2(kernels.MulUnsigned[T]), true
	case FloorDiv:
		return nonZeroDivisor(exact(func(a, b T) T { return a / b })), true
	case Mod:
		return nonZeroDivisor(exact(func(a, b T) T { return a % b })), true
	case Pow:
		return overflowing2(kernels.PowUnsigned[T]), true
	case LShift:
		return shiftLeft[T], true
	case RShift:
		return exact(func(a, s T) T { return a >> s }), true
	default:
		return integerBitwise[T](op)
	}
}

func integerBitwise[T array.Integer](op BinaryOp) (kernels.BinaryFunc[T], bool) {
	switch op {
	case And:
		return exact(func(a, b T) T { return a & b }), true
	case Or:
		return exact(func(a, b T) T { return a | b }), true
	case Xor:
		return exact(func(a, b T) T { return a ^ b }), true
	default:
		return nil, false
	}
}

// shiftLeft faults when set bits are shifted out. The count must be
// non-negative.
func shiftLeft[T array.Integer](a, s T) (T, kernels.FaultKind) {
	r := a << s
	if r>>s != a {
		return r, kernels.FaultOverflow
	}
	return r, kernels.FaultNone
}

func floatBinary[T array.Float](op BinaryOp) (kernels.BinaryFunc[T], bool) {
	switch op {
	case Add:
		return finite2(func(a, b T) T { return a + b }), true
	case Sub:
		return finite2(func(a, b T) T { return a - b }), true
	case Mul:
		return finite2(func(a, b T) T { return a * b }), true
	case TrueDiv:
		return floatDivisor(finite2(func(a, b T) T { return a / b })), true
	case FloorDiv:
		return floatDivisor(finite2(func(a, b T) T {
			return T(math.Floor(float64(a) / float64(b)))
		})), true
	case Mod:
		return floatDivisor(finite2(func(a, b T) T {
			return T(floorMod(float64(a), float64(b)))
		})), true
	case Pow:
		return finite2(binaryFloat64Func[T](math.Pow)), true
	case Atan2:
		return finite2(binaryFloat64Func[T](math.Atan2)), true
	case Hypot:
		return finite2(binaryFloat64Func[T](math.Hypot)), true
	case CopySign:
		return finite2(binaryFloat64Func[T](math.Copysign)), true
	default:
		return nil, false
	}
}

// floorMod returns x mod y with the sign of y.
func floorMod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r == 0 {
		return math.Copysign(0, y)
	}
	if (r < 0) != (y < 0) {
		r += y
	}
	return r
}

func binaryFloat64Func[T array.Float](f func(a, b float64) float64) func(a, b T) T {
	return func(a, b T) T { return T(f(float64(a), float64(b))) }
}

func exact[T any](f func(a, b T) T) kernels.BinaryFunc[T] {
	return func(a, b T) (T, kernels.FaultKind) { return f(a, b), kernels.FaultNone }
}

func overflowing2[T any](f func(a, b T) (T, bool)) kernels.BinaryFunc[T] {
	return func(a, b T) (T, kernels.FaultKind) {
		v, overflow := f(a, b)
		if overflow {
			return v, kernels.FaultOverflow
		}
		return v, kernels.FaultNone
	}
}

func finite2[T array.Float](f func(a, b T) T) kernels.BinaryFunc[T] {
	return func(a, b T) (T, kernels.FaultKind) {
		v := f(a, b)
		if isNonFinite(v) {
			return v, kernels.FaultNonFinite
		}
		return v, kernels.FaultNone
	}
}

// nonZeroDivisor rejects an integer zero divisor before f runs.
func nonZeroDivisor[T array.Integer](f kernels.BinaryFunc[T]) kernels.BinaryFunc[T] {
	return func(a, b T) (T, kernels.FaultKind) {
		if b == 0 {
			return 0, kernels.FaultZeroDivision
		}
		return f(a, b)
	}
}

// floatDivisor reports a zero divisor but still yields the IEEE result.
func floatDivisor[T array.Float](f kernels.BinaryFunc[T]) kernels.BinaryFunc[T] {
	return func(a, b T) (T, kernels.FaultKind) {
		v, k := f(a, b)
		if b == 0 {
			return v, kernels.FaultZeroDivision
		}
		return v, k
	}
}

func nonNegativeShift[T array.Signed](f kernels.BinaryFunc[T]) kernels.BinaryFunc[T] {
	return func(a, s T) (T, kernels.FaultKind) {
		if s < 0 {
			return 0, kernels.FaultNegativeShift
		}
		return f(a, s)
	}
}

func uncheckedBinary[T any](f kernels.BinaryFunc[T], float bool) kernels.BinaryFunc[T] {
	return func(a, b T) (T, kernels.FaultKind) {
		v, k := f(a, b)
		if suppressible(k, float) {
			k = kernels.FaultNone
		}
		return v, k
	}
}
