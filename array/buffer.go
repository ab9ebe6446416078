package array

import "fmt"

// Element is the closed set of element types.
type Element interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Buffer is a fixed-type numeric buffer. It is implemented only by Array[T],
// so a type switch over the ten instantiations is exhaustive.
type Buffer interface {
	// Type returns the element type tag.
	Type() DataType
	// Len returns the number of elements.
	Len() int

	buffer()
}

// Array is a typed buffer backed by a Go slice. Operations write through to
// the backing array.
type Array[T Element] []T

// Type returns the element type tag.
func (Array[T]) Type() DataType { return TypeOf[T]() }

// Len returns the number of elements.
func (a Array[T]) Len() int { return len(a) }

func (Array[T]) buffer() {}

// TypeOf returns the tag of T.
func TypeOf[T Element]() DataType {
	var z T
	switch any(z).(type) {
	case int8:
		return TypeInt8
	case int16:
		return TypeInt16
	case int32:
		return TypeInt32
	case int64:
		return TypeInt64
	case uint8:
		return TypeUint8
	case uint16:
		return TypeUint16
	case uint32:
		return TypeUint32
	case uint64:
		return TypeUint64
	case float32:
		return TypeFloat32
	default:
		return TypeFloat64
	}
}

// Of builds an Array from values.
func Of[T Element](values ...T) Array[T] {
	return Array[T](values)
}

// New allocates a zeroed buffer of n elements of type dt.
func New(dt DataType, n int) (Buffer, error) {
	if n < 0 {
		return nil, fmt.Errorf("array: negative length %d", n)
	}
	switch dt {
	case TypeInt8:
		return make(Array[int8], n), nil
	case TypeInt16:
		return make(Array[int16], n), nil
	case TypeInt32:
		return make(Array[int32], n), nil
	case TypeInt64:
		return make(Array[int64], n), nil
	case TypeUint8:
		return make(Array[uint8], n), nil
	case TypeUint16:
		return make(Array[uint16], n), nil
	case TypeUint32:
		return make(Array[uint32], n), nil
	case TypeUint64:
		return make(Array[uint64], n), nil
	case TypeFloat32:
		return make(Array[float32], n), nil
	case TypeFloat64:
		return make(Array[float64], n), nil
	default:
		return nil, fmt.Errorf("array: unknown data type %v", dt)
	}
}

// Wrap converts v to a Buffer. It accepts any Array[T] and plain slices of
// the ten element types; the result shares v's storage. Anything else
// (including nil and scalars) reports false.
func Wrap(v any) (Buffer, bool) {
	switch x := v.(type) {
	case Buffer:
		return x, x != nil
	case []int8:
		return Array[int8](x), true
	case []int16:
		return Array[int16](x), true
	case []int32:
		return Array[int32](x), true
	case []int64:
		return Array[int64](x), true
	case []uint8:
		return Array[uint8](x), true
	case []uint16:
		return Array[uint16](x), true
	case []uint32:
		return Array[uint32](x), true
	case []uint64:
		return Array[uint64](x), true
	case []float32:
		return Array[float32](x), true
	case []float64:
		return Array[float64](x), true
	default:
		return nil, false
	}
}

// Values returns the backing slice of b when its element type is T.
func Values[T Element](b Buffer) ([]T, bool) {
	a, ok := b.(Array[T])
	return a, ok
}

// Clone returns a copy of b with its own storage.
func Clone(b Buffer) Buffer {
	switch x := b.(type) {
	case Array[int8]:
		return cloneArray(x)
	case Array[int16]:
		return cloneArray(x)
	case Array[int32]:
		return cloneArray(x)
	case Array[int64]:
		return cloneArray(x)
	case Array[uint8]:
		return cloneArray(x)
	case Array[uint16]:
		return cloneArray(x)
	case Array[uint32]:
		return cloneArray(x)
	case Array[uint64]:
		return cloneArray(x)
	case Array[float32]:
		return cloneArray(x)
	case Array[float64]:
		return cloneArray(x)
	default:
		return nil
	}
}

func cloneArray[T Element](a Array[T]) Array[T] {
	out := make(Array[T], len(a))
	copy(out, a)
	return out
}

// Signed is the set of signed integer element types.
type Signed interface {
	int8 | int16 | int32 | int64
}

// Unsigned is the set of unsigned integer element types.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// Integer is the set of integer element types.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating-point element types.
type Float interface {
	float32 | float64
}
