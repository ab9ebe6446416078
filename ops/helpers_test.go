package ops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-arrayfunc/array"
)

var (
	signedTypes   = []array.DataType{array.TypeInt8, array.TypeInt16, array.TypeInt32, array.TypeInt64}
	unsignedTypes = []array.DataType{array.TypeUint8, array.TypeUint16, array.TypeUint32, array.TypeUint64}
	floatTypes    = []array.DataType{array.TypeFloat32, array.TypeFloat64}
)

// makeBuffer builds a buffer of type dt holding vals converted with native
// Go conversion.
func makeBuffer(t testing.TB, dt array.DataType, vals ...float64) array.Buffer {
	t.Helper()
	b, err := array.New(dt, len(vals))
	require.NoError(t, err)
	switch x := b.(type) {
	case array.Array[int8]:
		fill(x, vals)
	case array.Array[int16]:
		fill(x, vals)
	case array.Array[int32]:
		fill(x, vals)
	case array.Array[int64]:
		fill(x, vals)
	case array.Array[uint8]:
		fill(x, vals)
	case array.Array[uint16]:
		fill(x, vals)
	case array.Array[uint32]:
		fill(x, vals)
	case array.Array[uint64]:
		fill(x, vals)
	case array.Array[float32]:
		fill(x, vals)
	case array.Array[float64]:
		fill(x, vals)
	}
	return b
}

func fill[T array.Element](dst []T, vals []float64) {
	for i, v := range vals {
		if v < 0 && array.TypeOf[T]().IsUnsigned() {
			dst[i] = T(uint64(int64(v)))
			continue
		}
		dst[i] = T(v)
	}
}

// bitsOf returns the representation of every element, so NaN and signed
// zeros compare exactly.
func bitsOf(b array.Buffer) []uint64 {
	switch x := b.(type) {
	case array.Array[int8]:
		return intBits(x)
	case array.Array[int16]:
		return intBits(x)
	case array.Array[int32]:
		return intBits(x)
	case array.Array[int64]:
		return intBits(x)
	case array.Array[uint8]:
		return intBits(x)
	case array.Array[uint16]:
		return intBits(x)
	case array.Array[uint32]:
		return intBits(x)
	case array.Array[uint64]:
		return intBits(x)
	case array.Array[float32]:
		out := make([]uint64, len(x))
		for i, v := range x {
			out[i] = uint64(math.Float32bits(v))
		}
		return out
	case array.Array[float64]:
		out := make([]uint64, len(x))
		for i, v := range x {
			out[i] = math.Float64bits(v)
		}
		return out
	default:
		return nil
	}
}

func intBits[T array.Integer](x []T) []uint64 {
	out := make([]uint64, len(x))
	for i, v := range x {
		out[i] = uint64(v)
	}
	return out
}

// requireSameError asserts that two calls failed identically or both
// succeeded.
func requireSameError(t testing.TB, want, got error) {
	t.Helper()
	if want == nil {
		require.NoError(t, got)
		return
	}
	require.Error(t, got)
	require.Equal(t, want.Error(), got.Error())
}

func requireKind(t testing.TB, err, kind error, index int) {
	t.Helper()
	require.ErrorIs(t, err, kind)
	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, index, e.Index, "error index")
}

func scalar(v any) array.Scalar {
	s, err := array.ParseScalar(v)
	if err != nil {
		panic(err)
	}
	return s
}

// oddDescending is the odd run 1..11 followed by 8, 5, ..., -85.
func oddDescending() []float64 {
	var out []float64
	for v := 1.0; v <= 11; v += 2 {
		out = append(out, v)
	}
	for v := 8.0; v >= -85; v -= 3 {
		out = append(out, v)
	}
	return out
}

// sizes straddles the lane counts of every vector width.
var sizes = []int{0, 1, 3, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 65, 130}

func ramp(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}
