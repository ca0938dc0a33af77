package conv

import (
	"errors"
	"fmt"
	"math/big"

	gv "github.com/govalues/decimal"

	"github.com/avdva/bigdec"
	mu "github.com/avdva/bigdec/internal/mathutil"
)

var (
	errNone = errors.New("no value")

	maxGovaluesScale = big.NewInt(gv.MaxScale)
	minGovaluesScale = big.NewInt(-gv.MaxPrec)
)

// ToGovalues returns v as a govalues decimal.
// It fails, if v has more than gv.MaxScale fractional digits,
// or if the coefficient would need more than gv.MaxPrec digits.
// Negative zero becomes 0.
func ToGovalues(v bigdec.Value) (gv.Decimal, error) {
	switch {
	case v.IsNone():
		return gv.Decimal{}, errNone
	case v.IsZero():
		return gv.Decimal{}, nil
	}
	scale := v.Scale()
	if scale.Cmp(maxGovaluesScale) > 0 {
		return gv.Decimal{}, fmt.Errorf("%v: scale is out of range", v)
	}
	var shift int64
	if scale.Sign() < 0 {
		if scale.Cmp(minGovaluesScale) <= 0 {
			return gv.Decimal{}, fmt.Errorf("%v: coefficient overflow", v)
		}
		shift = -scale.Int64()
	}
	if digits := coefDigits(v.Unscaled()); int64(digits)+shift > gv.MaxPrec {
		return gv.Decimal{}, fmt.Errorf("%v: coefficient overflow", v)
	}
	d, err := gv.Parse(v.Text('f'))
	if err != nil {
		return gv.Decimal{}, fmt.Errorf("%v: %w", v, err)
	}
	return d, nil
}

func coefDigits(u *big.Int) int {
	if u.IsInt64() {
		return mu.DecimalDigits(mu.AbsInt64(u.Int64()))
	}
	return len(u.Abs(u).String())
}

// FromGovalues returns a value for a govalues decimal.
func FromGovalues(d gv.Decimal) bigdec.Value {
	coef := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		coef.Neg(coef)
	}
	return bigdec.FromBigIntExp(coef, -int32(d.Scale()))
}
