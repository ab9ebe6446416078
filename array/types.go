// Package array defines the typed numeric buffers the array operations work
// on: the closed set of element types, a sealed Buffer interface over
// Array[T], and typed scalars.
package array

import (
	"fmt"
	"strings"
)

// DataType is the element type tag of a buffer or scalar.
type DataType uint8

const (
	TypeInt8 DataType = iota
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeFloat32
	TypeFloat64
)

// TypeInfo holds metadata about a data type.
type TypeInfo struct {
	Type DataType
	Name string
	Code byte // conventional array type code
	Size int  // bytes per element
}

var typeInfoList = []TypeInfo{
	{TypeInt8, "int8", 'b', 1},
	{TypeInt16, "int16", 'h', 2},
	{TypeInt32, "int32", 'i', 4},
	{TypeInt64, "int64", 'q', 8},
	{TypeUint8, "uint8", 'B', 1},
	{TypeUint16, "uint16", 'H', 2},
	{TypeUint32, "uint32", 'I', 4},
	{TypeUint64, "uint64", 'Q', 8},
	{TypeFloat32, "float32", 'f', 4},
	{TypeFloat64, "float64", 'd', 8},
}

// Types lists every data type in declaration order.
func Types() []DataType {
	out := make([]DataType, len(typeInfoList))
	for i, ti := range typeInfoList {
		out[i] = ti.Type
	}
	return out
}

// Info returns the metadata for dt. ok is false for unknown values.
func (dt DataType) Info() (TypeInfo, bool) {
	if int(dt) < len(typeInfoList) {
		return typeInfoList[dt], true
	}
	return TypeInfo{}, false
}

// String returns the Go name of the element type.
func (dt DataType) String() string {
	if ti, ok := dt.Info(); ok {
		return ti.Name
	}
	return fmt.Sprintf("DataType(%d)", uint8(dt))
}

// Size returns the element size in bytes, 0 for unknown values.
func (dt DataType) Size() int {
	ti, _ := dt.Info()
	return ti.Size
}

// Code returns the array type code ('b', 'H', 'd', ...).
func (dt DataType) Code() byte {
	ti, _ := dt.Info()
	return ti.Code
}

// IsSigned reports whether dt is a signed integer type.
func (dt DataType) IsSigned() bool {
	return dt <= TypeInt64
}

// IsUnsigned reports whether dt is an unsigned integer type.
func (dt DataType) IsUnsigned() bool {
	return dt >= TypeUint8 && dt <= TypeUint64
}

// IsInteger reports whether dt is an integer type.
func (dt DataType) IsInteger() bool {
	return dt <= TypeUint64
}

// IsFloat reports whether dt is a floating-point type.
func (dt DataType) IsFloat() bool {
	return dt == TypeFloat32 || dt == TypeFloat64
}

// ParseDataType resolves a type name ("int8", "float64", also "float" and
// "double") or a single-character type code. Names are case-insensitive,
// codes are not since 'b' and 'B' differ.
func ParseDataType(name string) (DataType, error) {
	s := strings.TrimSpace(name)
	if len(s) == 1 {
		for _, ti := range typeInfoList {
			if ti.Code == s[0] {
				return ti.Type, nil
			}
		}
	}
	switch n := strings.ToLower(s); n {
	case "float":
		return TypeFloat32, nil
	case "double":
		return TypeFloat64, nil
	default:
		for _, ti := range typeInfoList {
			if ti.Name == n {
				return ti.Type, nil
			}
		}
	}
	return 0, fmt.Errorf("array: unknown data type %q", name)
}
