package main

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-arrayfunc/array"
)

// parseNumber reads s as a scalar suited to elements of type dt: floats for
// float types, otherwise signed or unsigned integers.
func parseNumber(dt array.DataType, s string) (array.Scalar, error) {
	s = strings.TrimSpace(s)
	switch {
	case dt.IsFloat():
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return array.Scalar{}, fmt.Errorf("invalid %v value %q", dt, s)
		}
		return array.ScalarOf(f), nil
	case dt.IsUnsigned():
		u, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return array.Scalar{}, fmt.Errorf("invalid %v value %q", dt, s)
		}
		return array.ScalarOf(u), nil
	default:
		i, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return array.Scalar{}, fmt.Errorf("invalid %v value %q", dt, s)
		}
		return array.ScalarOf(i), nil
	}
}

// parseBuffer builds a buffer of type dt from textual values.
func parseBuffer(dt array.DataType, values []string) (array.Buffer, error) {
	scalars := make([]array.Scalar, len(values))
	for i, v := range values {
		s, err := parseNumber(dt, v)
		if err != nil {
			return nil, err
		}
		scalars[i] = s
	}

	switch dt {
	case array.TypeInt8:
		return fromScalars[int8](scalars)
	case array.TypeInt16:
		return fromScalars[int16](scalars)
	case array.TypeInt32:
		return fromScalars[int32](scalars)
	case array.TypeInt64:
		return fromScalars[int64](scalars)
	case array.TypeUint8:
		return fromScalars[uint8](scalars)
	case array.TypeUint16:
		return fromScalars[uint16](scalars)
	case array.TypeUint32:
		return fromScalars[uint32](scalars)
	case array.TypeUint64:
		return fromScalars[uint64](scalars)
	case array.TypeFloat32:
		return fromScalars[float32](scalars)
	default:
		return fromScalars[float64](scalars)
	}
}

func fromScalars[T array.Element](scalars []array.Scalar) (array.Buffer, error) {
	out := make(array.Array[T], len(scalars))
	for i, s := range scalars {
		v, err := array.Convert[T](s)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// splitValues accepts both "1 2 3" as separate arguments and "1,2,3".
func splitValues(args []string) []string {
	var out []string
	for _, a := range args {
		for _, f := range strings.Split(a, ",") {
			if f = strings.TrimSpace(f); f != "" {
				out = append(out, f)
			}
		}
	}
	return out
}

// formatBuffer prints the first n elements of b.
func formatBuffer(b array.Buffer, n int) string {
	v := reflect.ValueOf(b)
	n = min(n, v.Len())
	return fmt.Sprint(v.Slice(0, n).Interface())
}
