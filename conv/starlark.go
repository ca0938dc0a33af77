package conv

import (
	"fmt"
	"math"

	"go.starlark.net/starlark"

	"github.com/avdva/bigdec"
)

// ToStarlark returns v as a starlark number.
// Whole values with at most bigdec.DefaultMaxDigits digits become starlark.Int,
// other values become starlark.Float, and None becomes starlark.None.
// Negative zero is kept as a float.
func ToStarlark(v bigdec.Value) starlark.Value {
	switch {
	case v.IsNone():
		return starlark.None
	case v.IsNegZero():
		return starlark.Float(math.Copysign(0, -1))
	}
	if i, ok := v.Int64(); ok {
		return starlark.MakeInt64(i)
	}
	if b, ok := v.BigIntDefault(); ok {
		return starlark.MakeBigInt(b)
	}
	return starlark.Float(v.Float64())
}

// FromStarlark returns a value for a starlark number, a string holding a JSON number, or None.
// Floats are converted with bigdec.FromFloat64Shortest.
func FromStarlark(x starlark.Value) (bigdec.Value, error) {
	switch x := x.(type) {
	case nil:
		return bigdec.None, fmt.Errorf("nil value")
	case starlark.NoneType:
		return bigdec.None, nil
	case starlark.Int:
		if i, ok := x.Int64(); ok {
			return bigdec.FromInt64(i), nil
		}
		return bigdec.FromBigInt(x.BigInt()), nil
	case starlark.Float:
		return bigdec.FromFloat64Shortest(float64(x))
	case starlark.String:
		return bigdec.FromString(string(x))
	default:
		return bigdec.None, fmt.Errorf("unsupported starlark type %s", x.Type())
	}
}
