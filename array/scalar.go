package array

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrKind is returned when a scalar cannot represent the target kind
	// (a float converted to an integer element type, or a non-number).
	ErrKind = errors.New("array: incompatible scalar kind")

	// ErrRange is returned when an integer scalar lies outside the target
	// element type's range.
	ErrRange = errors.New("array: scalar out of range")
)

// Scalar is a typed numeric value. Integers are stored in two's complement,
// floats as float64 bits.
type Scalar struct {
	typ  DataType
	bits uint64
}

// ScalarOf returns v as a Scalar of its own type.
func ScalarOf[T Element](v T) Scalar {
	dt := TypeOf[T]()
	switch x := any(v).(type) {
	case float32:
		return Scalar{typ: dt, bits: math.Float64bits(float64(x))}
	case float64:
		return Scalar{typ: dt, bits: math.Float64bits(x)}
	case uint8, uint16, uint32, uint64:
		return Scalar{typ: dt, bits: uint64(v)}
	default:
		return Scalar{typ: dt, bits: uint64(int64(v))}
	}
}

// ParseScalar converts a Go number to a Scalar. int and uint map to Int64
// and Uint64.
func ParseScalar(v any) (Scalar, error) {
	switch x := v.(type) {
	case Scalar:
		return x, nil
	case int:
		return ScalarOf(int64(x)), nil
	case int8:
		return ScalarOf(x), nil
	case int16:
		return ScalarOf(x), nil
	case int32:
		return ScalarOf(x), nil
	case int64:
		return ScalarOf(x), nil
	case uint:
		return ScalarOf(uint64(x)), nil
	case uint8:
		return ScalarOf(x), nil
	case uint16:
		return ScalarOf(x), nil
	case uint32:
		return ScalarOf(x), nil
	case uint64:
		return ScalarOf(x), nil
	case float32:
		return ScalarOf(x), nil
	case float64:
		return ScalarOf(x), nil
	default:
		return Scalar{}, fmt.Errorf("%w: %T", ErrKind, v)
	}
}

// Type returns the scalar's type tag.
func (s Scalar) Type() DataType { return s.typ }

// Int64 returns the value of a signed scalar.
func (s Scalar) Int64() int64 { return int64(s.bits) }

// Uint64 returns the value of an unsigned scalar.
func (s Scalar) Uint64() uint64 { return s.bits }

// Float64 returns the value as float64 for any type.
func (s Scalar) Float64() float64 {
	switch {
	case s.typ.IsFloat():
		return math.Float64frombits(s.bits)
	case s.typ.IsUnsigned():
		return float64(s.bits)
	default:
		return float64(int64(s.bits))
	}
}

// Value returns the scalar as a Go value of its own type.
func (s Scalar) Value() any {
	switch s.typ {
	case TypeInt8:
		return int8(s.bits)
	case TypeInt16:
		return int16(s.bits)
	case TypeInt32:
		return int32(s.bits)
	case TypeInt64:
		return int64(s.bits)
	case TypeUint8:
		return uint8(s.bits)
	case TypeUint16:
		return uint16(s.bits)
	case TypeUint32:
		return uint32(s.bits)
	case TypeUint64:
		return s.bits
	case TypeFloat32:
		return float32(math.Float64frombits(s.bits))
	default:
		return math.Float64frombits(s.bits)
	}
}

// String formats the value.
func (s Scalar) String() string {
	return fmt.Sprint(s.Value())
}

// Convert returns s as a value of type T. Floats convert only to float
// types (ErrKind otherwise); integers convert to any type as long as the
// value fits (ErrRange otherwise).
func Convert[T Element](s Scalar) (T, error) {
	dst := TypeOf[T]()
	if s.typ.IsFloat() {
		if !dst.IsFloat() {
			return 0, fmt.Errorf("%w: %v value for %v element", ErrKind, s.typ, dst)
		}
		return T(math.Float64frombits(s.bits)), nil
	}
	if dst.IsFloat() {
		return T(s.Float64()), nil
	}

	if s.typ.IsUnsigned() {
		v := s.bits
		if v > maxOf(dst) {
			return 0, fmt.Errorf("%w: %d for %v", ErrRange, v, dst)
		}
		return T(v), nil
	}

	v := int64(s.bits)
	if v < minOf(dst) || (v > 0 && uint64(v) > maxOf(dst)) {
		return 0, fmt.Errorf("%w: %d for %v", ErrRange, v, dst)
	}
	return T(v), nil
}

// maxOf returns the largest value of an integer type.
func maxOf(dt DataType) uint64 {
	bits := uint(dt.Size() * 8)
	if dt.IsSigned() {
		return 1<<(bits-1) - 1
	}
	return 1<<bits - 1
}

// minOf returns the smallest value of an integer type.
func minOf(dt DataType) int64 {
	if dt.IsUnsigned() {
		return 0
	}
	return -1 << (dt.Size()*8 - 1)
}
