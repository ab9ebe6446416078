package ops

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-arrayfunc/array"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels"
)

var (
	// ErrArgumentCount is returned for a wrong number of arguments.
	ErrArgumentCount = errors.New("invalid argument count")

	// ErrType is returned for wrongly typed arguments or options, mixed
	// element types, and unrecognized options.
	ErrType = errors.New("type error")

	// ErrLength is returned when an output buffer is too short or a
	// reduction has no elements.
	ErrLength = errors.New("length error")

	// ErrArithmetic is the parent of all computation errors.
	ErrArithmetic = errors.New("arithmetic error")

	// ErrOverflow is returned when a result does not fit the element type,
	// and for factorial of a negative value.
	ErrOverflow = fmt.Errorf("%w: overflow", ErrArithmetic)

	// ErrZeroDivision is returned for division or modulo by zero.
	ErrZeroDivision = fmt.Errorf("%w: division by zero", ErrArithmetic)
)

// Error describes a failed operation.
type Error struct {
	// Op is the operation name.
	Op string

	// Type is the element type, empty when not yet resolved.
	Type string

	// Index is the offending element, -1 when not element-specific.
	Index int

	// Kind is one of the sentinel errors.
	Kind error

	// Msg adds detail.
	Msg string
}

func (e *Error) Error() string {
	s := e.Op + ": " + e.Kind.Error()
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Type != "" {
		s += " (" + e.Type
		if e.Index >= 0 {
			s += fmt.Sprintf(", index %d", e.Index)
		}
		s += ")"
	}
	return s
}

// Unwrap returns the sentinel kind.
func (e *Error) Unwrap() error { return e.Kind }

func newError(op string, kind error, format string, args ...any) *Error {
	return &Error{Op: op, Index: -1, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func typedError(op string, dt array.DataType, kind error, format string, args ...any) *Error {
	e := newError(op, kind, format, args...)
	e.Type = dt.String()
	return e
}

// translateError maps kernel faults and array conversion errors onto the
// public taxonomy.
func translateError(op string, dt array.DataType, err error) error {
	if err == nil {
		return nil
	}

	var fault *kernels.Fault
	if errors.As(err, &fault) {
		e := typedError(op, dt, faultKind(fault.Kind), "%s", fault.Kind)
		if fault.Kind == kernels.FaultOverflow || fault.Kind == kernels.FaultZeroDivision {
			// the sentinel already says it
			e.Msg = ""
		}
		e.Index = fault.Index
		return e
	}
	switch {
	case errors.Is(err, array.ErrKind):
		return typedError(op, dt, ErrType, "%v", err)
	case errors.Is(err, array.ErrRange):
		return typedError(op, dt, ErrOverflow, "%v", err)
	}
	return err
}

func faultKind(k kernels.FaultKind) error {
	switch k {
	case kernels.FaultOverflow, kernels.FaultNegativeFactorial:
		return ErrOverflow
	case kernels.FaultZeroDivision:
		return ErrZeroDivision
	default:
		return ErrArithmetic
	}
}

// faultErr converts a possibly nil fault without producing a typed nil.
func faultErr(op string, dt array.DataType, fault *kernels.Fault) error {
	if fault == nil {
		return nil
	}
	return translateError(op, dt, fault)
}

func fmtType(v any) string {
	return fmt.Sprintf("%T", v)
}
