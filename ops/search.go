package ops

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/cwbudde/algo-arrayfunc/array"
	"github.com/cwbudde/algo-arrayfunc/internal/kernels"
)

// predicate is the typed form of (comparator, threshold) for one call.
type predicate[T array.Element] struct {
	x    []T
	test func(T) bool
	path kernels.Path
}

func newPredicate[T array.Element](op string, c Compare, x []T, threshold array.Scalar, o Options) (predicate[T], error) {
	dt := array.TypeOf[T]()
	if !c.valid() {
		return predicate[T]{}, typedError(op, dt, ErrType, "invalid comparison operator %d", c)
	}
	v, err := array.Convert[T](threshold)
	if err != nil {
		return predicate[T]{}, translateError(op, dt, err)
	}
	return predicate[T]{
		x:    x[:o.length(len(x))],
		test: kernels.Predicate(kernels.Cmp(c), v),
		path: pathFor[T](o),
	}, nil
}

// searcher hides the element type from the search operations.
type searcher interface {
	findIndex() int
	all() bool
	appendIndices(dst []uint32) []uint32
	size() int
}

func (p predicate[T]) findIndex() int { return kernels.FindIndex(p.path, p.x, p.test) }
func (p predicate[T]) all() bool      { return kernels.All(p.path, p.x, p.test) }
func (p predicate[T]) size() int      { return len(p.x) }

func (p predicate[T]) appendIndices(dst []uint32) []uint32 {
	return kernels.AppendIndices(p.path, p.x, p.test, dst)
}

func resolveSearch(op string, c Compare, b array.Buffer, threshold array.Scalar, o Options) (searcher, error) {
	if err := o.validate(op); err != nil {
		return nil, err
	}

	switch x := b.(type) {
	case array.Array[int8]:
		return newPredicate(op, c, x, threshold, o)
	case array.Array[int16]:
		return newPredicate(op, c, x, threshold, o)
	case array.Array[int32]:
		return newPredicate(op, c, x, threshold, o)
	case array.Array[int64]:
		return newPredicate(op, c, x, threshold, o)
	case array.Array[uint8]:
		return newPredicate(op, c, x, threshold, o)
	case array.Array[uint16]:
		return newPredicate(op, c, x, threshold, o)
	case array.Array[uint32]:
		return newPredicate(op, c, x, threshold, o)
	case array.Array[uint64]:
		return newPredicate(op, c, x, threshold, o)
	case array.Array[float32]:
		return newPredicate(op, c, x, threshold, o)
	case array.Array[float64]:
		return newPredicate(op, c, x, threshold, o)
	default:
		return nil, notBuffer(op, b)
	}
}

// FindIndex returns the index of the first element e of b for which
// "e c threshold" holds, or -1.
func FindIndex(c Compare, b array.Buffer, threshold array.Scalar, o Options) (int, error) {
	s, err := resolveSearch("findindex", c, b, threshold, o)
	if err != nil {
		return 0, err
	}
	return s.findIndex(), nil
}

// AAll reports whether every element satisfies the comparison. It is true
// for an empty buffer.
func AAll(c Compare, b array.Buffer, threshold array.Scalar, o Options) (bool, error) {
	s, err := resolveSearch("aall", c, b, threshold, o)
	if err != nil {
		return false, err
	}
	return s.all(), nil
}

// AAny reports whether some element satisfies the comparison.
func AAny(c Compare, b array.Buffer, threshold array.Scalar, o Options) (bool, error) {
	s, err := resolveSearch("aany", c, b, threshold, o)
	if err != nil {
		return false, err
	}
	return s.findIndex() >= 0, nil
}

// FindIndexSet returns the indices of all matching elements as a bitmap.
// Buffers longer than math.MaxUint32 elements fail with ErrLength.
func FindIndexSet(c Compare, b array.Buffer, threshold array.Scalar, o Options) (*roaring.Bitmap, error) {
	const op = "findindexset"
	s, err := resolveSearch(op, c, b, threshold, o)
	if err != nil {
		return nil, err
	}
	if uint64(s.size()) > math.MaxUint32 {
		return nil, typedError(op, b.Type(), ErrLength, "%d elements exceed the index range", s.size())
	}

	set := roaring.New()
	set.AddMany(s.appendIndices(nil))
	return set, nil
}

// FindIndices writes the indices of matching elements to out, which must be
// an int64 buffer at least as long as the processed input, and returns how
// many were written. Entries of out past that count are left untouched.
func FindIndices(c Compare, b array.Buffer, out array.Buffer, threshold array.Scalar, o Options) (int, error) {
	const op = "findindices"
	if err := o.validate(op); err != nil {
		return 0, err
	}
	idx, ok := out.(array.Array[int64])
	if !ok {
		return 0, newError(op, ErrType, "index output must be an int64 buffer, got %s", describe(out))
	}

	switch x := b.(type) {
	case array.Array[int8]:
		return findIndices(op, c, x, idx, threshold, o)
	case array.Array[int16]:
		return findIndices(op, c, x, idx, threshold, o)
	case array.Array[int32]:
		return findIndices(op, c, x, idx, threshold, o)
	case array.Array[int64]:
		return findIndices(op, c, x, idx, threshold, o)
	case array.Array[uint8]:
		return findIndices(op, c, x, idx, threshold, o)
	case array.Array[uint16]:
		return findIndices(op, c, x, idx, threshold, o)
	case array.Array[uint32]:
		return findIndices(op, c, x, idx, threshold, o)
	case array.Array[uint64]:
		return findIndices(op, c, x, idx, threshold, o)
	case array.Array[float32]:
		return findIndices(op, c, x, idx, threshold, o)
	case array.Array[float64]:
		return findIndices(op, c, x, idx, threshold, o)
	default:
		return 0, notBuffer(op, b)
	}
}

func findIndices[T array.Element](op string, c Compare, x []T, out []int64, threshold array.Scalar, o Options) (int, error) {
	p, err := newPredicate(op, c, x, threshold, o)
	if err != nil {
		return 0, err
	}
	if len(out) < len(p.x) {
		return 0, shortOutput(op, array.TypeOf[T](), len(out), len(p.x))
	}
	return kernels.FindIndices(p.path, p.x, p.test, out), nil
}

// filterKind selects one of the copying predicate operations.
type filterKind uint8

const (
	filterAll filterKind = iota
	filterDrop
	filterTake
)

var filterNames = [...]string{
	filterAll:  "afilter",
	filterDrop: "dropwhile",
	filterTake: "takewhile",
}

// AFilter copies the elements of in satisfying the comparison to out,
// preserving order, and returns how many were written.
func AFilter(c Compare, in, out array.Buffer, threshold array.Scalar, o Options) (int, error) {
	return filter(filterAll, c, in, out, threshold, o)
}

// DropWhile skips the leading elements of in satisfying the comparison and
// copies the remainder to out. It returns how many were written.
func DropWhile(c Compare, in, out array.Buffer, threshold array.Scalar, o Options) (int, error) {
	return filter(filterDrop, c, in, out, threshold, o)
}

// TakeWhile copies the leading elements of in satisfying the comparison to
// out and returns how many were written.
func TakeWhile(c Compare, in, out array.Buffer, threshold array.Scalar, o Options) (int, error) {
	return filter(filterTake, c, in, out, threshold, o)
}

func filter(kind filterKind, c Compare, in, out array.Buffer, threshold array.Scalar, o Options) (int, error) {
	op := filterNames[kind]
	if err := o.validate(op); err != nil {
		return 0, err
	}

	switch x := in.(type) {
	case array.Array[int8]:
		return filterTyped(op, kind, c, x, out, threshold, o)
	case array.Array[int16]:
		return filterTyped(op, kind, c, x, out, threshold, o)
	case array.Array[int32]:
		return filterTyped(op, kind, c, x, out, threshold, o)
	case array.Array[int64]:
		return filterTyped(op, kind, c, x, out, threshold, o)
	case array.Array[uint8]:
		return filterTyped(op, kind, c, x, out, threshold, o)
	case array.Array[uint16]:
		return filterTyped(op, kind, c, x, out, threshold, o)
	case array.Array[uint32]:
		return filterTyped(op, kind, c, x, out, threshold, o)
	case array.Array[uint64]:
		return filterTyped(op, kind, c, x, out, threshold, o)
	case array.Array[float32]:
		return filterTyped(op, kind, c, x, out, threshold, o)
	case array.Array[float64]:
		return filterTyped(op, kind, c, x, out, threshold, o)
	default:
		return 0, notBuffer(op, in)
	}
}

func filterTyped[T array.Element](op string, kind filterKind, c Compare, x array.Array[T], out array.Buffer, threshold array.Scalar, o Options) (int, error) {
	dst, err := outputOf[T](op, out)
	if err != nil {
		return 0, err
	}
	p, err := newPredicate(op, c, []T(x), threshold, o)
	if err != nil {
		return 0, err
	}
	if len(dst) < len(p.x) {
		return 0, shortOutput(op, array.TypeOf[T](), len(dst), len(p.x))
	}

	switch kind {
	case filterDrop:
		return kernels.DropWhile(p.path, p.x, p.test, dst), nil
	case filterTake:
		return kernels.TakeWhile(p.path, p.x, p.test, dst), nil
	default:
		return kernels.Filter(p.path, p.x, p.test, dst), nil
	}
}

// outputOf checks that out is a buffer of element type T.
func outputOf[T array.Element](op string, out array.Buffer) ([]T, error) {
	dst, ok := out.(array.Array[T])
	if !ok {
		return nil, typedError(op, array.TypeOf[T](), ErrType, "output must be a %s buffer, got %s", array.TypeOf[T](), describe(out))
	}
	return dst, nil
}

func shortOutput(op string, dt array.DataType, have, want int) error {
	return typedError(op, dt, ErrLength, "output holds %d elements, need %d", have, want)
}

// describe names the element type of a buffer, or the Go type of anything
// else.
func describe(v any) string {
	if b, ok := v.(array.Buffer); ok && b != nil {
		return b.Type().String() + " buffer"
	}
	return fmtType(v)
}
