package conv

import (
	"encoding/binary"
	"math/big"

	"github.com/robaho/fixed"

	"github.com/avdva/bigdec"
	mu "github.com/avdva/bigdec/internal/mathutil"
)

const (
	// fixedPlaces is the number of decimal places of robaho fixed.Fixed.
	fixedPlaces = 7
	// fixedMaxRaw is the largest raw value fixed.Fixed formats correctly: 99999999999.9999999.
	fixedMaxRaw = 999999999999999999
)

// ToFixed returns v as a fixed-point number with 7 decimal places.
// Returns false, if v has more fractional digits, or is out of the fixed.Fixed range.
// Negative zero becomes 0.
func ToFixed(v bigdec.Value) (fixed.Fixed, bool) {
	switch {
	case v.IsNone():
		return fixed.NaN, false
	case v.IsZero():
		return fixed.NewI(0, 0), true
	}
	d, ok := v.Decimal()
	if !ok {
		return fixed.NaN, false
	}
	coef := d.Coefficient()
	if !coef.IsInt64() {
		return fixed.NaN, false
	}
	c := coef.Int64()
	raw, exact := mu.ScaleMant(mu.AbsInt64(c), d.Exponent(), -fixedPlaces)
	if !exact || raw > fixedMaxRaw {
		return fixed.NaN, false
	}
	signed := int64(raw)
	if c < 0 {
		signed = -signed
	}
	return fixed.NewI(signed, fixedPlaces), true
}

// FromFixed returns a value for a fixed-point number. Returns false for NaN.
func FromFixed(f fixed.Fixed) (bigdec.Value, bool) {
	if f.IsNaN() {
		return bigdec.None, false
	}
	data, err := f.MarshalBinary()
	if err != nil {
		return bigdec.None, false
	}
	raw, n := binary.Varint(data)
	if n <= 0 {
		return bigdec.None, false
	}
	return bigdec.FromBigIntExp(big.NewInt(raw), -fixedPlaces), true
}
