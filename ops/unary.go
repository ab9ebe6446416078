package ops

import (
	"math"

	"github.com/cwbudde/algo-arrayfunc/array"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels"
)

// UnaryOp is an elementwise operation of one operand.
type UnaryOp uint8

const (
	Neg UnaryOp = iota
	Abs
	Invert
	Factorial
	Sqrt
	Exp
	Log
	Sin
	Cos
	Tan
	Degrees
	Radians
	Floor
	Ceil
	Trunc
)

var unaryNames = [...]string{
	Neg:       "neg",
	Abs:       "abs",
	Invert:    "invert",
	Factorial: "factorial",
	Sqrt:      "sqrt",
	Exp:       "exp",
	Log:       "log",
	Sin:       "sin",
	Cos:       "cos",
	Tan:       "tan",
	Degrees:   "degrees",
	Radians:   "radians",
	Floor:     "floor",
	Ceil:      "ceil",
	Trunc:     "trunc",
}

// UnaryOps lists every unary operation.
func UnaryOps() []UnaryOp {
	ops := make([]UnaryOp, len(unaryNames))
	for i := range ops {
		ops[i] = UnaryOp(i)
	}
	return ops
}

// String returns the operation name.
func (op UnaryOp) String() string {
	if int(op) < len(unaryNames) {
		return unaryNames[op]
	}
	return "unknown"
}

// ParseUnaryOp looks up a unary operation by name.
func ParseUnaryOp(name string) (UnaryOp, bool) {
	for i, n := range unaryNames {
		if n == name {
			return UnaryOp(i), true
		}
	}
	return 0, false
}

const (
	radToDeg = 180 / math.Pi
	degToRad = math.Pi / 180
)

// Unary applies op to in. With out nil the result replaces in; otherwise out
// must have in's element type and hold at least the processed length.
// Elements beyond the processed length are not touched, and nothing is
// written when an element fails.
func Unary(op UnaryOp, in, out array.Buffer, o Options) error {
	name := op.String()
	if err := o.validate(name); err != nil {
		return err
	}
	if int(op) >= len(unaryNames) {
		return newError(name, ErrType, "unknown unary operation %d", op)
	}

	switch x := in.(type) {
	case array.Array[int8]:
		return unaryTyped(op, x, out, o, signedUnary[int8])
	case array.Array[int16]:
		return unaryTyped(op, x, out, o, signedUnary[int16])
	case array.Array[int32]:
		return unaryTyped(op, x, out, o, signedUnary[int32])
	case array.Array[int64]:
		return unaryTyped(op, x, out, o, signedUnary[int64])
	case array.Array[uint8]:
		return unaryTyped(op, x, out, o, unsignedUnary[uint8])
	case array.Array[uint16]:
		return unaryTyped(op, x, out, o, unsignedUnary[uint16])
	case array.Array[uint32]:
		return unaryTyped(op, x, out, o, unsignedUnary[uint32])
	case array.Array[uint64]:
		return unaryTyped(op, x, out, o, unsignedUnary[uint64])
	case array.Array[float32]:
		return unaryTyped(op, x, out, o, floatUnary[float32])
	case array.Array[float64]:
		return unaryFloat64(op, x, out, o)
	default:
		return notBuffer(name, in)
	}
}

// unaryBuilder returns the element function for op, or false when op is
// not defined for the element type.
type unaryBuilder[T array.Element] func(op UnaryOp) (kernels.UnaryFunc[T], bool)

func unaryTyped[T array.Element](op UnaryOp, x array.Array[T], out array.Buffer, o Options, build unaryBuilder[T]) error {
	dst, src, err := unaryOperands(op, x, out, o)
	if err != nil {
		return err
	}
	f, ok := build(op)
	if !ok {
		return unsupported(op.String(), array.TypeOf[T]())
	}
	return runUnary(op, dst, src, f, o)
}

func unaryOperands[T array.Element](op UnaryOp, x array.Array[T], out array.Buffer, o Options) (dst, src []T, err error) {
	src = x[:o.length(len(x))]
	dst = x
	if out != nil {
		if dst, err = outputOf[T](op.String(), out); err != nil {
			return nil, nil, err
		}
	}
	if len(dst) < len(src) {
		return nil, nil, shortOutput(op.String(), array.TypeOf[T](), len(dst), len(src))
	}
	return dst[:len(src)], src, nil
}

func runUnary[T array.Element](op UnaryOp, dst, src []T, f kernels.UnaryFunc[T], o Options) error {
	dt := array.TypeOf[T]()
	probe := o.checked() || op == Factorial
	if !o.checked() {
		f = uncheckedUnary(f, dt.IsFloat())
	}
	return faultErr(op.String(), dt, kernels.Unary(pathFor[T](o), dst, src, f, probe))
}

// unaryFloat64 routes degrees and radians through the float64 scale kernel.
func unaryFloat64(op UnaryOp, x array.Array[float64], out array.Buffer, o Options) error {
	if op != Degrees && op != Radians {
		return unaryTyped(op, x, out, o, floatUnary[float64])
	}
	dst, src, err := unaryOperands(op, x, out, o)
	if err != nil {
		return err
	}

	scale := radToDeg
	if op == Radians {
		scale = degToRad
	}
	p := pathFor[float64](o)
	if o.checked() {
		f, _ := floatUnary[float64](op)
		if fault := kernels.ProbeUnary(p, src, f); fault != nil {
			return faultErr(op.String(), array.TypeFloat64, fault)
		}
	}
	kernels.ScaleFloat64(p, dst, src, scale)
	return nil
}

func signedUnary[T array.Signed](op UnaryOp) (kernels.UnaryFunc[T], bool) {
	switch op {
	case Neg:
		return overflowing(kernels.NegSigned[T]), true
	case Abs:
		return overflowing(kernels.AbsSigned[T]), true
	case Invert:
		return func(x T) (T, kernels.FaultKind) { return ^x, kernels.FaultNone }, true
	case Factorial:
		return kernels.Factorial[T], true
	default:
		return nil, false
	}
}

func unsignedUnary[T array.Unsigned](op UnaryOp) (kernels.UnaryFunc[T], bool) {
	switch op {
	case Abs:
		return func(x T) (T, kernels.FaultKind) { return x, kernels.FaultNone }, true
	case Invert:
		return func(x T) (T, kernels.FaultKind) { return ^x, kernels.FaultNone }, true
	case Factorial:
		return kernels.Factorial[T], true
	default:
		return nil, false
	}
}

func floatUnary[T array.Float](op UnaryOp) (kernels.UnaryFunc[T], bool) {
	switch op {
	case Neg:
		return finite(func(x T) T { return -x }), true
	case Abs:
		return finite(func(x T) T { return T(math.Abs(float64(x))) }), true
	case Sqrt:
		return finite(viaFloat64[T](math.Sqrt)), true
	case Exp:
		return finite(viaFloat64[T](math.Exp)), true
	case Log:
		return finite(viaFloat64[T](math.Log)), true
	case Sin:
		return finite(viaFloat64[T](math.Sin)), true
	case Cos:
		return finite(viaFloat64[T](math.Cos)), true
	case Tan:
		return finite(viaFloat64[T](math.Tan)), true
	case Degrees:
		return finite(func(x T) T { return x * T(radToDeg) }), true
	case Radians:
		return finite(func(x T) T { return x * T(degToRad) }), true
	case Floor:
		return finite(viaFloat64[T](math.Floor)), true
	case Ceil:
		return finite(viaFloat64[T](math.Ceil)), true
	case Trunc:
		return finite(viaFloat64[T](math.Trunc)), true
	default:
		return nil, false
	}
}

// overflowing adapts a checked integer helper.
func overflowing[T any](f func(T) (T, bool)) kernels.UnaryFunc[T] {
	return func(x T) (T, kernels.FaultKind) {
		v, overflow := f(x)
		if overflow {
			return v, kernels.FaultOverflow
		}
		return v, kernels.FaultNone
	}
}

// finite faults on a NaN or infinite result.
func finite[T array.Float](f func(T) T) kernels.UnaryFunc[T] {
	return func(x T) (T, kernels.FaultKind) {
		v := f(x)
		if isNonFinite(v) {
			return v, kernels.FaultNonFinite
		}
		return v, kernels.FaultNone
	}
}

func viaFloat64[T array.Float](f func(float64) float64) func(T) T {
	return func(x T) T { return T(f(float64(x))) }
}

func isNonFinite[T array.Float](v T) bool {
	f := float64(v)
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// suppressible reports whether MathErrors silences a fault. Domain faults
// (negative factorial, integer division by zero, negative exponents and
// shift counts) always surface.
func suppressible(k kernels.FaultKind, float bool) bool {
	switch k {
	case kernels.FaultOverflow, kernels.FaultNonFinite:
		return true
	case kernels.FaultZeroDivision:
		return float
	default:
		return false
	}
}

func uncheckedUnary[T any](f kernels.UnaryFunc[T], float bool) kernels.UnaryFunc[T] {
	return func(x T) (T, kernels.FaultKind) {
		v, k := f(x)
		if suppressible(k, float) {
			k = kernels.FaultNone
		}
		return v, k
	}
}

func unsupported(op string, dt array.DataType) error {
	return typedError(op, dt, ErrType, "not defined for %s elements", dt)
}
