package ops

import (
	"strings"

	"github.com/cwbudde/algo-arrayfunc/array"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels"
)

// Options is the per-call configuration.
type Options struct {
	// MathErrors disables arithmetic error checking (keywords matherrors and
	// disovfl). Integer results wrap and float NaN/Inf propagate.
	MathErrors bool

	// MaxLen limits processing to the first MaxLen elements. Zero means the
	// whole buffer; values beyond the shortest buffer are clamped.
	// Negative values are rejected.
	MaxLen int

	// NoSIMD forces the scalar kernels.
	NoSIMD bool
}

func (o Options) checked() bool { return !o.MathErrors }

func (o Options) validate(op string) error {
	if o.MaxLen < 0 {
		return newError(op, ErrType, "maxlen must be non-negative, got %d", o.MaxLen)
	}
	return nil
}

// length returns the number of elements to process: the shortest of lens,
// further limited by MaxLen.
func (o Options) length(lens ...int) int {
	n := -1
	for _, l := range lens {
		if n < 0 || l < n {
			n = l
		}
	}
	if n < 0 {
		n = 0
	}
	if o.MaxLen > 0 && o.MaxLen < n {
		n = o.MaxLen
	}
	return n
}

// pathFor selects the kernel path for element type T.
func pathFor[T array.Element](o Options) kernels.Path {
	return kernels.Select(array.TypeOf[T]().Size(), o.NoSIMD)
}

// Compare is a comparison operator used by the search and filter
// operations as element <op> threshold.
type Compare uint8

const (
	Eq Compare = Compare(kernels.CmpEq)
	Ne Compare = Compare(kernels.CmpNe)
	Lt Compare = Compare(kernels.CmpLt)
	Le Compare = Compare(kernels.CmpLe)
	Gt Compare = Compare(kernels.CmpGt)
	Ge Compare = Compare(kernels.CmpGe)
)

var compareNames = [...]struct{ sym, name string }{
	Eq: {"==", "eq"},
	Ne: {"!=", "ne"},
	Lt: {"<", "lt"},
	Le: {"<=", "le"},
	Gt: {">", "gt"},
	Ge: {">=", "ge"},
}

// String returns the operator symbol.
func (c Compare) String() string {
	if c.valid() {
		return compareNames[c].sym
	}
	return "invalid"
}

func (c Compare) valid() bool { return int(c) < len(compareNames) }

// ParseCompare accepts an operator symbol ("<=") or name ("le").
func ParseCompare(s string) (Compare, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range compareNames {
		if s == n.sym || s == n.name {
			return Compare(i), nil
		}
	}
	return 0, newError("compare", ErrType, "unknown comparison operator %q", s)
}
