package dispatch

import "github.com/samber/lo"

// Shape is the call signature class of an operation. It fixes the
// positional arity and the legal keywords.
type Shape uint8

const (
	// ShapeReduction: buffer -> scalar.
	ShapeReduction Shape = iota
	// ShapeCount: buffer, value -> count.
	ShapeCount
	// ShapeElementwise: buffer [, output].
	ShapeElementwise
	// ShapeFilter: comparator, input, output, threshold -> written.
	ShapeFilter
	// ShapeSearch: comparator, buffer, threshold -> index, bool or set.
	ShapeSearch
	// ShapeIndex: comparator, buffer, int64 output, threshold -> written.
	ShapeIndex
	// ShapeBinary: a, b [, output].
	ShapeBinary
)

// Keyword names.
const (
	KeyMathErrors = "matherrors"
	KeyDisOvfl    = "disovfl"
	KeyMaxLen     = "maxlen"
	KeyNoSIMD     = "nosimd"
)

type shapeInfo struct {
	name     string
	min, max int
	keywords []string
	usage    string
}

var shapes = [...]shapeInfo{
	ShapeReduction: {
		name: "reduction", min: 1, max: 1,
		keywords: []string{KeyMaxLen, KeyNoSIMD, KeyMathErrors, KeyDisOvfl},
		usage:    "buffer",
	},
	ShapeCount: {
		name: "count", min: 2, max: 2,
		keywords: []string{KeyMaxLen},
		usage:    "buffer, value",
	},
	ShapeElementwise: {
		name: "elementwise", min: 1, max: 2,
		keywords: []string{KeyMathErrors, KeyMaxLen, KeyNoSIMD},
		usage:    "buffer [, output]",
	},
	ShapeFilter: {
		name: "filter", min: 4, max: 4,
		keywords: []string{KeyMaxLen},
		usage:    "comparator, input, output, threshold",
	},
	ShapeSearch: {
		name: "search", min: 3, max: 3,
		keywords: []string{KeyMaxLen},
		usage:    "comparator, buffer, threshold",
	},
	ShapeIndex: {
		name: "index", min: 4, max: 4,
		keywords: []string{KeyMaxLen},
		usage:    "comparator, buffer, output, threshold",
	},
	ShapeBinary: {
		name: "binary", min: 2, max: 3,
		keywords: []string{KeyMathErrors, KeyMaxLen},
		usage:    "a, b [, output]",
	},
}

// String returns the shape name.
func (s Shape) String() string {
	if int(s) < len(shapes) {
		return shapes[s].name
	}
	return "unknown"
}

// Arity returns the accepted number of positional arguments.
func (s Shape) Arity() (minArgs, maxArgs int) {
	return shapes[s].min, shapes[s].max
}

// Keywords returns the keyword names legal for the shape.
func (s Shape) Keywords() []string {
	return append([]string(nil), shapes[s].keywords...)
}

// Usage describes the positional arguments.
func (s Shape) Usage() string {
	return shapes[s].usage
}

func (s Shape) accepts(keyword string) bool {
	return lo.Contains(shapes[s].keywords, keyword)
}
