package kernels

import "fmt"

// FaultKind classifies why an element could not be computed.
type FaultKind uint8

const (
	// FaultNone means the element computed cleanly.
	FaultNone FaultKind = iota

	// FaultOverflow is an integer result outside the element type's range.
	FaultOverflow

	// FaultNegativeFactorial is factorial of a negative value. Raised even
	// when checks are disabled.
	FaultNegativeFactorial

	// FaultZeroDivision is division or modulo by zero.
	FaultZeroDivision

	// FaultNonFinite is a NaN or infinite float input or result.
	FaultNonFinite

	// FaultNegativeExponent is an integer power with a negative exponent.
	FaultNegativeExponent

	// FaultNegativeShift is a shift by a negative count.
	FaultNegativeShift
)

// String returns a short description of the kind.
func (k FaultKind) String() string {
	switch k {
	case FaultNone:
		return "none"
	case FaultOverflow:
		return "overflow"
	case FaultNegativeFactorial:
		return "factorial of negative value"
	case FaultZeroDivision:
		return "division by zero"
	case FaultNonFinite:
		return "non-finite value"
	case FaultNegativeExponent:
		return "negative exponent"
	case FaultNegativeShift:
		return "negative shift count"
	default:
		return "unknown"
	}
}

// Fault is a failed element. Index is -1 when the fault is not tied to one
// element (a reduction total).
type Fault struct {
	Kind  FaultKind
	Index int
}

func (f *Fault) Error() string {
	if f.Index < 0 {
		return "kernels: " + f.Kind.String()
	}
	return fmt.Sprintf("kernels: %s at index %d", f.Kind, f.Index)
}

func faultAt(kind FaultKind, index int) *Fault {
	return &Fault{Kind: kind, Index: index}
}
