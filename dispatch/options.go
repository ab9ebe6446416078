package dispatch

import (
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/cwbudde/algo-arrayfunc/ops"
)

// parseOptions converts a keyword map into ops.Options. Keys are visited in
// sorted order so the reported error does not depend on map iteration.
func parseOptions(op string, shape Shape, kwargs map[string]any) (ops.Options, error) {
	var o ops.Options

	keys := lo.Keys(kwargs)
	slices.Sort(keys)
	for _, key := range keys {
		if !shape.accepts(key) {
			return ops.Options{}, typeError(op, "unexpected keyword argument %q", key)
		}

		v := kwargs[key]
		switch key {
		case KeyMathErrors, KeyDisOvfl, KeyNoSIMD:
			b, ok := v.(bool)
			if !ok {
				return ops.Options{}, typeError(op, "%s must be a bool, got %T", key, v)
			}
			if key == KeyNoSIMD {
				o.NoSIMD = b
			} else {
				o.MathErrors = o.MathErrors || b
			}
		case KeyMaxLen:
			n, ok := toInt(v)
			if !ok {
				return ops.Options{}, typeError(op, "maxlen must be an integer, got %T", v)
			}
			if n < 0 {
				return ops.Options{}, typeError(op, "maxlen must be non-negative, got %d", n)
			}
			o.MaxLen = n
		}
	}
	return o, nil
}

// toInt accepts every Go integer type. Values beyond the int range are
// saturated; they only ever mean "the whole buffer".
func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		return saturate(x), true
	case uint:
		return saturateUnsigned(uint64(x)), true
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		return saturateUnsigned(uint64(x)), true
	case uint64:
		return saturateUnsigned(x), true
	default:
		return 0, false
	}
}

func saturate(x int64) int {
	if x < math.MinInt {
		return -1
	}
	if x > math.MaxInt {
		return math.MaxInt
	}
	return int(x)
}

func saturateUnsigned(x uint64) int {
	if x > math.MaxInt {
		return math.MaxInt
	}
	return int(x)
}
