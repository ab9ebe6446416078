package ops

import (
	"github.com/cwbudde/algo-arrayfunc/array"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels"
)

// ASum returns the sum of the elements of b. Signed integers sum to an
// Int64 scalar, unsigned integers to Uint64 and floats to Float64. The sum
// of an empty buffer is zero.
//
// Integer sums are exact and fail with ErrOverflow when they do not fit the
// 64-bit result; float sums fail with ErrArithmetic on a non-finite input or
// total. With MathErrors set the integer sum wraps and NaN/Inf propagate.
func ASum(b array.Buffer, o Options) (array.Scalar, error) {
	const op = "asum"
	if err := o.validate(op); err != nil {
		return array.Scalar{}, err
	}

	switch x := b.(type) {
	case array.Array[int8]:
		return sumSigned(op, x, o)
	case array.Array[int16]:
		return sumSigned(op, x, o)
	case array.Array[int32]:
		return sumSigned(op, x, o)
	case array.Array[int64]:
		return sumSigned(op, x, o)
	case array.Array[uint8]:
		return sumUnsigned(op, x, o)
	case array.Array[uint16]:
		return sumUnsigned(op, x, o)
	case array.Array[uint32]:
		return sumUnsigned(op, x, o)
	case array.Array[uint64]:
		return sumUnsigned(op, x, o)
	case array.Array[float32]:
		return sumFloat(op, x, o)
	case array.Array[float64]:
		return sumFloat(op, x, o)
	default:
		return array.Scalar{}, notBuffer(op, b)
	}
}

func sumSigned[T array.Signed](op string, x []T, o Options) (array.Scalar, error) {
	x = x[:o.length(len(x))]
	s, overflow := kernels.SumSigned(pathFor[T](o), x)
	if overflow && o.checked() {
		return array.Scalar{}, typedError(op, array.TypeOf[T](), ErrOverflow, "sum does not fit int64")
	}
	return array.ScalarOf(s), nil
}

func sumUnsigned[T array.Unsigned](op string, x []T, o Options) (array.Scalar, error) {
	x = x[:o.length(len(x))]
	s, overflow := kernels.SumUnsigned(pathFor[T](o), x)
	if overflow && o.checked() {
		return array.Scalar{}, typedError(op, array.TypeOf[T](), ErrOverflow, "sum does not fit uint64")
	}
	return array.ScalarOf(s), nil
}

func sumFloat[T array.Float](op string, x []T, o Options) (array.Scalar, error) {
	x = x[:o.length(len(x))]
	s, fault := kernels.SumFloat(pathFor[T](o), x, o.checked())
	if fault != nil {
		return array.Scalar{}, faultErr(op, array.TypeOf[T](), fault)
	}
	return array.ScalarOf(s), nil
}

// AMax returns the largest element of b as a scalar of b's element type.
// An empty buffer fails with ErrLength. A float buffer holding NaN fails
// with ErrArithmetic, or returns NaN with MathErrors set. When +0 and -0
// tie, +0 is the maximum.
func AMax(b array.Buffer, o Options) (array.Scalar, error) {
	return extreme("amax", b, o, true)
}

// AMin returns the smallest element of b. It mirrors AMax; -0 is the
// minimum of a zero tie.
func AMin(b array.Buffer, o Options) (array.Scalar, error) {
	return extreme("amin", b, o, false)
}

func extreme(op string, b array.Buffer, o Options, wantMax bool) (array.Scalar, error) {
	if err := o.validate(op); err != nil {
		return array.Scalar{}, err
	}

	switch x := b.(type) {
	case array.Array[int8]:
		return extremeInteger(op, x, o, wantMax)
	case array.Array[int16]:
		return extremeInteger(op, x, o, wantMax)
	case array.Array[int32]:
		return extremeInteger(op, x, o, wantMax)
	case array.Array[int64]:
		return extremeInteger(op, x, o, wantMax)
	case array.Array[uint8]:
		return extremeInteger(op, x, o, wantMax)
	case array.Array[uint16]:
		return extremeInteger(op, x, o, wantMax)
	case array.Array[uint32]:
		return extremeInteger(op, x, o, wantMax)
	case array.Array[uint64]:
		return extremeInteger(op, x, o, wantMax)
	case array.Array[float32]:
		return extremeFloat(op, x, o, wantMax)
	case array.Array[float64]:
		return extremeFloat(op, x, o, wantMax)
	default:
		return array.Scalar{}, notBuffer(op, b)
	}
}

func extremeInteger[T array.Integer](op string, x []T, o Options, wantMax bool) (array.Scalar, error) {
	x = x[:o.length(len(x))]
	if len(x) == 0 {
		return array.Scalar{}, typedError(op, array.TypeOf[T](), ErrLength, "empty input")
	}
	p := pathFor[T](o)
	if wantMax {
		return array.ScalarOf(kernels.MaxInteger(p, x)), nil
	}
	return array.ScalarOf(kernels.MinInteger(p, x)), nil
}

func extremeFloat[T array.Float](op string, x []T, o Options, wantMax bool) (array.Scalar, error) {
	x = x[:o.length(len(x))]
	if len(x) == 0 {
		return array.Scalar{}, typedError(op, array.TypeOf[T](), ErrLength, "empty input")
	}

	p := pathFor[T](o)
	var (
		v     T
		fault *kernels.Fault
	)
	if wantMax {
		v, fault = kernels.MaxFloat(p, x, o.checked())
	} else {
		v, fault = kernels.MinFloat(p, x, o.checked())
	}
	if fault != nil {
		return array.Scalar{}, faultErr(op, array.TypeOf[T](), fault)
	}
	return array.ScalarOf(v), nil
}

// Count returns how many elements of b equal value. value must be
// representable in b's element type.
func Count(b array.Buffer, value array.Scalar, o Options) (int, error) {
	const op = "count"
	if err := o.validate(op); err != nil {
		return 0, err
	}

	switch x := b.(type) {
	case array.Array[int8]:
		return count(op, x, value, o)
	case array.Array[int16]:
		return count(op, x, value, o)
	case array.Array[int32]:
		return count(op, x, value, o)
	case array.Array[int64]:
		return count(op, x, value, o)
	case array.Array[uint8]:
		return count(op, x, value, o)
	case array.Array[uint16]:
		return count(op, x, value, o)
	case array.Array[uint32]:
		return count(op, x, value, o)
	case array.Array[uint64]:
		return count(op, x, value, o)
	case array.Array[float32]:
		return count(op, x, value, o)
	case array.Array[float64]:
		return count(op, x, value, o)
	default:
		return 0, notBuffer(op, b)
	}
}

func count[T array.Element](op string, x []T, value array.Scalar, o Options) (int, error) {
	v, err := array.Convert[T](value)
	if err != nil {
		return 0, translateError(op, array.TypeOf[T](), err)
	}
	x = x[:o.length(len(x))]
	return kernels.Count(pathFor[T](o), x, v), nil
}

func notBuffer(op string, v any) error {
	return newError(op, ErrType, "expected a typed buffer, got %T", v)
}
