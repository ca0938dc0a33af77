// Package conv converts values between bigdec.Value and other numeric types:
// cockroachdb/apd decimals, govalues decimals, robaho fixed-point numbers and starlark numbers.
//
// Conversions never round. If the target type can't hold a value exactly, the conversion fails.
package conv

import (
	"fmt"
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"

	"github.com/avdva/bigdec"
)

var (
	minAPDScale = big.NewInt(-math.MaxInt32)
	maxAPDScale = big.NewInt(-math.MinInt32)
)

// ToAPD returns v as an apd decimal. Negative zero is preserved.
// Returns false for None, or if the exponent doesn't fit an int32.
func ToAPD(v bigdec.Value) (*apd.Decimal, bool) {
	if v.IsNone() {
		return nil, false
	}
	if s := v.Scale(); s.Cmp(minAPDScale) < 0 || s.Cmp(maxAPDScale) > 0 {
		return nil, false
	}
	d := new(apd.Decimal)
	if err := d.Compose(v.Decompose(nil)); err != nil {
		return nil, false
	}
	return d, true
}

// FromAPD returns a value for an apd decimal.
// Infinities and NaNs can't be converted.
func FromAPD(d *apd.Decimal) (bigdec.Value, error) {
	if d == nil {
		return bigdec.None, fmt.Errorf("nil decimal")
	}
	switch d.Form {
	case apd.Finite:
	case apd.Infinite:
		return bigdec.None, fmt.Errorf("infinite decimal %s", d)
	default:
		return bigdec.None, fmt.Errorf("not a number: %s", d)
	}
	var v bigdec.Value
	if err := v.Compose(d.Decompose(nil)); err != nil {
		return bigdec.None, err
	}
	return v, nil
}
