package kernels

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types the kernels accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// BitSize returns the width of T in bits.
func BitSize[T Number]() uint {
	var z T
	return uint(unsafe.Sizeof(z)) * 8
}

// IsSigned reports whether T is a signed integer or float type.
func IsSigned[T Number]() bool {
	var z T
	return z-1 < 0
}

// MinSigned returns the most negative value of T.
func MinSigned[T constraints.Signed]() T {
	var one T = 1
	return one << (BitSize[T]() - 1)
}

// MaxSigned returns the largest value of T.
func MaxSigned[T constraints.Signed]() T {
	return ^MinSigned[T]()
}

// MaxUnsigned returns the largest value of T.
func MaxUnsigned[T constraints.Unsigned]() T {
	return ^T(0)
}

// The checked helpers return the wrapped result (what native Go arithmetic
// produces) together with an overflow flag.

// AddSigned returns a+b.
func AddSigned[T constraints.Signed](a, b T) (T, bool) {
	r := a + b
	return r, (a >= 0) == (b >= 0) && (r >= 0) != (a >= 0)
}

// SubSigned returns a-b.
func SubSigned[T constraints.Signed](a, b T) (T, bool) {
	r := a - b
	return r, (a >= 0) != (b >= 0) && (r >= 0) != (a >= 0)
}

// MulSigned returns a*b.
func MulSigned[T constraints.Signed](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	r := a * b
	lo := MinSigned[T]()
	if (a == -1 && b == lo) || (b == -1 && a == lo) {
		return r, true
	}
	return r, r/b != a
}

// NegSigned returns -a.
func NegSigned[T constraints.Signed](a T) (T, bool) {
	return -a, a == MinSigned[T]()
}

// AbsSigned returns |a|.
func AbsSigned[T constraints.Signed](a T) (T, bool) {
	if a >= 0 {
		return a, false
	}
	return -a, a == MinSigned[T]()
}

// AddUnsigned returns a+b.
func AddUnsigned[T constraints.Unsigned](a, b T) (T, bool) {
	r := a + b
	return r, r < a
}

// SubUnsigned returns a-b.
func SubUnsigned[T constraints.Unsigned](a, b T) (T, bool) {
	return a - b, b > a
}

// MulUnsigned returns a*b.
func MulUnsigned[T constraints.Unsigned](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	r := a * b
	return r, r/a != b
}

// FloorDivSigned returns floor(a/b). b must not be zero.
// MinSigned / -1 overflows and wraps to MinSigned.
func FloorDivSigned[T constraints.Signed](a, b T) (T, bool) {
	if b == -1 && a == MinSigned[T]() {
		return a, true
	}
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q, false
}

// FloorModSigned returns a mod b with the sign of b. b must not be zero.
func FloorModSigned[T constraints.Signed](a, b T) T {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

// PowSigned returns a**e for e >= 0 by square-and-multiply.
func PowSigned[T constraints.Signed](a, e T) (T, bool) {
	result, base := T(1), a
	overflow := false
	for e > 0 {
		var o bool
		if e&1 == 1 {
			result, o = MulSigned(result, base)
			overflow = overflow || o
		}
		e >>= 1
		if e > 0 {
			base, o = MulSigned(base, base)
			overflow = overflow || o
		}
	}
	return result, overflow
}

// PowUnsigned returns a**e by square-and-multiply.
func PowUnsigned[T constraints.Unsigned](a, e T) (T, bool) {
	result, base := T(1), a
	overflow := false
	for e > 0 {
		var o bool
		if e&1 == 1 {
			result, o = MulUnsigned(result, base)
			overflow = overflow || o
		}
		e >>= 1
		if e > 0 {
			base, o = MulUnsigned(base, base)
			overflow = overflow || o
		}
	}
	return result, overflow
}

// MaxFactorialArg returns the largest n whose factorial fits in T.
func MaxFactorialArg[T constraints.Integer]() uint64 {
	signed := IsSigned[T]()
	switch BitSize[T]() {
	case 8:
		return 5
	case 16:
		if signed {
			return 7
		}
		return 8
	case 32:
		return 12
	default:
		return 20
	}
}

// Factorial returns n! in T. Negative n always faults; results beyond
// MaxFactorialArg fault with FaultOverflow and otherwise carry the product
// wrapped modulo 2^bits.
func Factorial[T constraints.Integer](n T) (T, FaultKind) {
	if n < 0 {
		return 0, FaultNegativeFactorial
	}
	limit := uint64(n)
	p := T(1)
	for i := uint64(2); i <= limit; i++ {
		p *= T(i)
		if p == 0 {
			// enough factors of two accumulated, the product stays zero
			break
		}
	}
	if limit > MaxFactorialArg[T]() {
		return p, FaultOverflow
	}
	return p, FaultNone
}

// acc128 is an exact two's complement 128-bit accumulator.
type acc128 struct {
	hi uint64
	lo uint64
}

func (a *acc128) addSigned(x int64) {
	var c uint64
	a.lo, c = bits.Add64(a.lo, uint64(x), 0)
	a.hi += uint64(x>>63) + c
}

func (a *acc128) addUnsigned(x uint64) {
	var c uint64
	a.lo, c = bits.Add64(a.lo, x, 0)
	a.hi += c
}

func (a *acc128) add(b acc128) {
	var c uint64
	a.lo, c = bits.Add64(a.lo, b.lo, 0)
	a.hi += b.hi + c
}

// fitsInt64 reports whether the signed 128-bit value fits in int64.
func (a acc128) fitsInt64() bool {
	return a.hi == uint64(int64(a.lo)>>63)
}

// fitsUint64 reports whether the unsigned 128-bit value fits in uint64.
func (a acc128) fitsUint64() bool {
	return a.hi == 0
}
