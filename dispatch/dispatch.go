package dispatch

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/cwbudde/algo-arrayfunc/array"
	"github.com/cwbudde/algo-arrayfunc/ops"
)

// ErrUnknownOperation is returned by Call for a name with no descriptor.
var ErrUnknownOperation = errors.New("dispatch: unknown operation")

// callFunc runs an operation on arguments whose count has been checked.
type callFunc func(op string, args []any, o ops.Options) (any, error)

// Descriptor describes one named operation.
type Descriptor struct {
	Name  string
	Shape Shape
	call  callFunc
}

// Keywords returns the keyword names the operation accepts.
func (d Descriptor) Keywords() []string { return d.Shape.Keywords() }

var (
	descriptors []Descriptor
	byName      map[string]Descriptor
)

func init() {
	descriptors = []Descriptor{
		{Name: "asum", Shape: ShapeReduction, call: reduction(ops.ASum)},
		{Name: "amax", Shape: ShapeReduction, call: reduction(ops.AMax)},
		{Name: "amin", Shape: ShapeReduction, call: reduction(ops.AMin)},
		{Name: "count", Shape: ShapeCount, call: callCount},
		{Name: "afilter", Shape: ShapeFilter, call: filter(ops.AFilter)},
		{Name: "dropwhile", Shape: ShapeFilter, call: filter(ops.DropWhile)},
		{Name: "takewhile", Shape: ShapeFilter, call: filter(ops.TakeWhile)},
		{Name: "findindex", Shape: ShapeSearch, call: search(ops.FindIndex)},
		{Name: "aall", Shape: ShapeSearch, call: search(ops.AAll)},
		{Name: "aany", Shape: ShapeSearch, call: search(ops.AAny)},
		{Name: "findindexset", Shape: ShapeSearch, call: search(ops.FindIndexSet)},
		{Name: "findindices", Shape: ShapeIndex, call: callFindIndices},
	}
	for _, op := range ops.UnaryOps() {
		descriptors = append(descriptors, Descriptor{Name: op.String(), Shape: ShapeElementwise, call: unary(op)})
	}
	for _, op := range ops.BinaryOps() {
		descriptors = append(descriptors, Descriptor{Name: op.String(), Shape: ShapeBinary, call: binary(op)})
	}
	byName = lo.KeyBy(descriptors, func(d Descriptor) string { return d.Name })
}

// Lookup returns the descriptor for name.
func Lookup(name string) (Descriptor, bool) {
	d, ok := byName[name]
	return d, ok
}

// Names returns every operation name in sorted order.
func Names() []string {
	names := lo.Map(descriptors, func(d Descriptor, _ int) string { return d.Name })
	slices.Sort(names)
	return names
}

// Descriptors returns all descriptors of the given shapes, or every
// descriptor when no shape is named, in sorted name order.
func Descriptors(shapes ...Shape) []Descriptor {
	out := lo.Filter(descriptors, func(d Descriptor, _ int) bool {
		return len(shapes) == 0 || lo.Contains(shapes, d.Shape)
	})
	slices.SortFunc(out, func(a, b Descriptor) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})
	return out
}

// Call runs the named operation. Arity, keywords and argument types are
// validated before any buffer element is read or written.
//
// Buffers may be array.Buffer values or raw slices of the ten element
// types. Comparators are ops.Compare values or their names ("<", "ge").
// Thresholds and binary scalar operands are Go numbers or array.Scalar.
func Call(name string, args []any, kwargs map[string]any) (any, error) {
	d, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}

	minArgs, maxArgs := d.Shape.Arity()
	if len(args) < minArgs || len(args) > maxArgs {
		return nil, arityError(name, d.Shape, len(args))
	}
	o, err := parseOptions(name, d.Shape, kwargs)
	if err != nil {
		return nil, err
	}
	return d.call(name, args, o)
}

func reduction(f func(array.Buffer, ops.Options) (array.Scalar, error)) callFunc {
	return func(op string, args []any, o ops.Options) (any, error) {
		b, err := bufferArg(op, args[0])
		if err != nil {
			return nil, err
		}
		return result(f(b, o))
	}
}

func callCount(op string, args []any, o ops.Options) (any, error) {
	b, err := bufferArg(op, args[0])
	if err != nil {
		return nil, err
	}
	v, err := scalarArg(op, args[1])
	if err != nil {
		return nil, err
	}
	return result(ops.Count(b, v, o))
}

func filter(f func(ops.Compare, array.Buffer, array.Buffer, array.Scalar, ops.Options) (int, error)) callFunc {
	return func(op string, args []any, o ops.Options) (any, error) {
		c, err := compareArg(op, args[0])
		if err != nil {
			return nil, err
		}
		in, err := bufferArg(op, args[1])
		if err != nil {
			return nil, err
		}
		out, err := bufferArg(op, args[2])
		if err != nil {
			return nil, err
		}
		v, err := scalarArg(op, args[3])
		if err != nil {
			return nil, err
		}
		return result(f(c, in, out, v, o))
	}
}

func search[R any](f func(ops.Compare, array.Buffer, array.Scalar, ops.Options) (R, error)) callFunc {
	return func(op string, args []any, o ops.Options) (any, error) {
		c, err := compareArg(op, args[0])
		if err != nil {
			return nil, err
		}
		b, err := bufferArg(op, args[1])
		if err != nil {
			return nil, err
		}
		v, err := scalarArg(op, args[2])
		if err != nil {
			return nil, err
		}
		return result(f(c, b, v, o))
	}
}

func callFindIndices(op string, args []any, o ops.Options) (any, error) {
	c, err := compareArg(op, args[0])
	if err != nil {
		return nil, err
	}
	b, err := bufferArg(op, args[1])
	if err != nil {
		return nil, err
	}
	out, err := bufferArg(op, args[2])
	if err != nil {
		return nil, err
	}
	v, err := scalarArg(op, args[3])
	if err != nil {
		return nil, err
	}
	return result(ops.FindIndices(c, b, out, v, o))
}

func unary(u ops.UnaryOp) callFunc {
	return func(op string, args []any, o ops.Options) (any, error) {
		in, err := bufferArg(op, args[0])
		if err != nil {
			return nil, err
		}
		var out array.Buffer
		if len(args) == 2 {
			if out, err = bufferArg(op, args[1]); err != nil {
				return nil, err
			}
		}
		return nil, ops.Unary(u, in, out, o)
	}
}

func binary(b ops.BinaryOp) callFunc {
	return func(op string, args []any, o ops.Options) (any, error) {
		var out array.Buffer
		if len(args) == 3 {
			var err error
			if out, err = bufferArg(op, args[2]); err != nil {
				return nil, err
			}
		}
		return nil, ops.Binary(b, args[0], args[1], out, o)
	}
}

// result boxes r, or returns a nil result next to a failure.
func result[R any](r R, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return r, nil
}

func bufferArg(op string, v any) (array.Buffer, error) {
	b, ok := array.Wrap(v)
	if !ok {
		return nil, typeError(op, "expected a typed buffer, got %T", v)
	}
	return b, nil
}

func scalarArg(op string, v any) (array.Scalar, error) {
	s, err := array.ParseScalar(v)
	if err != nil {
		return array.Scalar{}, typeError(op, "expected a number, got %T", v)
	}
	return s, nil
}

func compareArg(op string, v any) (ops.Compare, error) {
	switch c := v.(type) {
	case ops.Compare:
		return c, nil
	case string:
		cmp, err := ops.ParseCompare(c)
		if err != nil {
			return 0, typeError(op, "unknown comparison operator %q", c)
		}
		return cmp, nil
	default:
		return 0, typeError(op, "expected a comparison operator, got %T", v)
	}
}

func typeError(op, format string, args ...any) error {
	return &ops.Error{Op: op, Index: -1, Kind: ops.ErrType, Msg: fmt.Sprintf(format, args...)}
}

func arityError(op string, shape Shape, got int) error {
	minArgs, maxArgs := shape.Arity()
	want := fmt.Sprint(minArgs)
	if maxArgs != minArgs {
		want = fmt.Sprintf("%d or %d", minArgs, maxArgs)
	}
	return &ops.Error{
		Op:    op,
		Index: -1,
		Kind:  ops.ErrArgumentCount,
		Msg:   fmt.Sprintf("takes %s positional arguments (%s), got %d", want, shape.Usage(), got),
	}
}
