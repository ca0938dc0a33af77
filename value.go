// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bigdec implements a canonical decimal number, where both the unscaled value
// and the scale are arbitrary-precision integers.
// It is meant to hold JSON number literals of any size, like 1e2147483648,
// and to convert them into int64, float64, *big.Int or decimal.Decimal values
// without materializing more digits than the target type can hold.
// Unlike fixed-scale decimals, Value keeps the negative zero.
package bigdec

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"

	mu "github.com/avdva/bigdec/internal/mathutil"
)

const (
	// DefaultMaxDigits is the digit budget used by BigIntDefault.
	DefaultMaxDigits = 1 << 18

	int64Digits = 19
)

type form uint8

const (
	formFinite form = iota
	formNegZero
	formNone
)

var (
	// NegZero is the negative zero. It is not equal to Value{}, which is the positive zero.
	NegZero = Value{form: formNegZero}
	// None is a "no value" marker returned by ParseOrNone for malformed input.
	// All conversions of None fail.
	None = Value{form: formNone}

	zero Value

	bigZero = new(big.Int)

	errBadFloat = errors.New("bad float number")
)

// Value is an immutable decimal number equal to unscaled * 10^(-scale).
//
// Finite values are always canonical: the unscaled value has no trailing decimal zeros,
// and a zero unscaled value always has a zero scale, so two values are equal
// if and only if their fields are equal.
// The zero Value is 0.
type Value struct {
	form     form
	unscaled *big.Int // nil means 0
	scale    *big.Int // nil means 0
}

// newFinite returns a finite value. unscaled and scale must be canonical and must not be shared.
func newFinite(unscaled, scale *big.Int) Value {
	if unscaled.Sign() == 0 {
		return zero
	}
	if scale.Sign() == 0 {
		scale = nil
	}
	return Value{unscaled: unscaled, scale: scale}
}

func (v Value) unscaledOrZero() *big.Int {
	if v.unscaled == nil {
		return bigZero
	}
	return v.unscaled
}

func (v Value) scaleOrZero() *big.Int {
	if v.scale == nil {
		return bigZero
	}
	return v.scale
}

// exp32 returns -scale, if it fits an int32.
func (v Value) exp32() (int32, bool) {
	s := v.scaleOrZero()
	if !s.IsInt64() {
		return 0, false
	}
	e := -s.Int64()
	if e < math.MinInt32 || e > math.MaxInt32 {
		return 0, false
	}
	return int32(e), true
}

// FromBigInt returns a value for given integer.
// Trailing zeros are moved into the scale, so 1200 becomes 12e2.
func FromBigInt(i *big.Int) Value {
	if i == nil || i.Sign() == 0 {
		return zero
	}
	r, n := mu.TrimTrailingZeros(i)
	return newFinite(r, big.NewInt(-n))
}

// FromBigIntExp returns a value for coef * 10^exp.
func FromBigIntExp(coef *big.Int, exp int32) Value {
	if coef == nil || coef.Sign() == 0 {
		return zero
	}
	if coef.IsInt64() {
		c := coef.Int64()
		// the mantissa is trimmed until the exponent reaches the int32 limit.
		// if it still has a trailing zero, the scale needs more than 32 bits.
		if m, e := mu.TrimMantExp(mu.AbsInt64(c), exp, math.MaxInt32); m%10 != 0 {
			u := new(big.Int).SetUint64(m)
			if c < 0 {
				u.Neg(u)
			}
			return newFinite(u, big.NewInt(-int64(e)))
		}
	}
	r, n := mu.TrimTrailingZeros(coef)
	scale := big.NewInt(-int64(exp))
	return newFinite(r, scale.Sub(scale, big.NewInt(n)))
}

// FromDecimal returns a value for a fixed-scale decimal.
// The conversion is always exact.
func FromDecimal(d decimal.Decimal) Value {
	return FromBigIntExp(d.Coefficient(), d.Exponent())
}

// FromInt64 returns a value for given int64 number.
func FromInt64(v int64) Value {
	return FromDecimal(decimal.New(v, 0))
}

// FromFloat64 returns the exact decimal value of f.
// The negative zero is converted into NegZero.
// Returns an error for infinities and not-a-numbers.
func FromFloat64(f float64) (Value, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return zero, errBadFloat
	}
	if f == 0 {
		if math.Signbit(f) {
			return NegZero, nil
		}
		return zero, nil
	}
	const (
		mantBits = 52
		expMask  = 1<<11 - 1
		bias     = 1023 + mantBits
	)
	b := math.Float64bits(f)
	mant, e := b&(1<<mantBits-1), int((b>>mantBits)&expMask)
	if e == 0 { // subnormal
		e = 1
	} else {
		mant |= 1 << mantBits
	}
	e -= bias
	// f = mant * 2^e
	if e < 0 {
		tz := mu.BinaryTrailingZeros(mant)
		if tz > -e {
			tz = -e
		}
		mant >>= uint(tz)
		e += tz
	}
	m := new(big.Int).SetUint64(mant)
	if f < 0 {
		m.Neg(m)
	}
	if e >= 0 {
		return FromBigInt(m.Lsh(m, uint(e))), nil
	}
	// mant is odd here, so mant * 2^e = (mant * 5^-e) * 10^e has no trailing zeros.
	m.Mul(m, new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-e)), nil))
	return newFinite(m, big.NewInt(int64(-e))), nil
}

// MustFromFloat64 calls FromFloat64 and panics in case of an error.
func MustFromFloat64(f float64) Value {
	v, err := FromFloat64(f)
	if err != nil {
		panic(err)
	}
	return v
}

// FromFloat64Shortest returns the shortest decimal, which is converted back into f.
// That's the form used by JSON encoders, e.g. 0.1 instead of
// 0.1000000000000000055511151231257827021181583404541015625.
func FromFloat64Shortest(f float64) (Value, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return zero, errBadFloat
	}
	if f == 0 && math.Signbit(f) {
		return NegZero, nil
	}
	return FromDecimal(decimal.NewFromFloat(f)), nil
}

// Decimal returns v as a fixed-scale decimal.
// Returns false, if the scale doesn't fit decimal's 32-bit exponent, or v is None.
// Negative zero is converted into a zero decimal.
func (v Value) Decimal() (decimal.Decimal, bool) {
	switch v.form {
	case formNegZero:
		return decimal.Zero, true
	case formNone:
		return decimal.Decimal{}, false
	}
	e, ok := v.exp32()
	if !ok {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromBigInt(v.unscaledOrZero(), e), true
}

// BigInt returns v as an integer.
// Returns false, if v has a fractional part, or if the result has more than maxDigits digits.
// The number of digits is checked before the integer is built, so huge numbers like 1e100000000 are rejected cheaply.
func (v Value) BigInt(maxDigits int) (*big.Int, bool) {
	switch v.form {
	case formNegZero:
		return new(big.Int), true
	case formNone:
		return nil, false
	}
	u, s := v.unscaledOrZero(), v.scaleOrZero()
	if s.Sign() > 0 {
		return nil, false
	}
	if u.Sign() == 0 {
		return new(big.Int), true
	}
	limit := int64(maxDigits)
	if s.Cmp(big.NewInt(-limit)) < 0 {
		return nil, false
	}
	shift := -s.Int64()
	if bitLen := u.BitLen(); int64(mu.DecimalDigitsBound(bitLen))+shift > limit {
		if int64(mu.DecimalDigitsLowerBound(bitLen))+shift > limit {
			return nil, false
		}
		// the estimate is not precise enough, count the digits.
		if int64(len(new(big.Int).Abs(u).String()))+shift > limit {
			return nil, false
		}
	}
	return new(big.Int).Mul(u, mu.Pow10Big(shift)), true
}

// BigIntDefault calls BigInt with DefaultMaxDigits.
func (v Value) BigIntDefault() (*big.Int, bool) {
	return v.BigInt(DefaultMaxDigits)
}

// Int64 returns v as an int64 number.
// Returns false, if v has a fractional part, or it is out of the int64 range.
func (v Value) Int64() (int64, bool) {
	i, ok := v.BigInt(int64Digits)
	if !ok || !i.IsInt64() {
		return 0, false
	}
	return i.Int64(), true
}

// TruncInt64 returns the int64 number nearest to Float64(), rounding half away from zero.
// The result is approximate for numbers beyond 2^53.
// It saturates at math.MinInt64 and math.MaxInt64, and returns 0 for None.
func (v Value) TruncInt64() int64 {
	f := math.Round(v.Float64())
	switch {
	case math.IsNaN(f):
		return 0
	case f >= 1<<63:
		return math.MaxInt64
	case f <= -(1 << 63):
		return math.MinInt64
	}
	return int64(f)
}

// Float64 returns the float64 number nearest to v.
// If the scale is out of the int32 range, the result is a signed zero or infinity,
// because no float64 number can be any closer.
// None is converted into NaN.
func (v Value) Float64() float64 {
	switch v.form {
	case formNegZero:
		return math.Copysign(0, -1)
	case formNone:
		return math.NaN()
	}
	u := v.unscaledOrZero()
	if u.Sign() == 0 {
		return 0
	}
	if _, ok := v.exp32(); !ok {
		if v.scaleOrZero().Sign() > 0 {
			return math.Copysign(0, float64(u.Sign()))
		}
		return math.Inf(u.Sign())
	}
	// ParseFloat rounds correctly. On overflow it returns an infinity along with ErrRange.
	f, _ := strconv.ParseFloat(v.String(), 64)
	return f
}

// Sign returns -1 if v < 0, 0 if v is any zero or None, 1 if v > 0.
func (v Value) Sign() int {
	switch v.form {
	case formFinite:
		return v.unscaledOrZero().Sign()
	default:
		return 0
	}
}

// IsWhole returns true, if v has no fractional part.
func (v Value) IsWhole() bool {
	switch v.form {
	case formFinite:
		return v.scaleOrZero().Sign() <= 0
	case formNegZero:
		return true
	default:
		return false
	}
}

// IsNegZero returns true for NegZero only.
func (v Value) IsNegZero() bool {
	return v.form == formNegZero
}

// IsNone returns true for None.
func (v Value) IsNone() bool {
	return v.form == formNone
}

// IsZero returns true for both zeros.
func (v Value) IsZero() bool {
	switch v.form {
	case formFinite:
		return v.unscaledOrZero().Sign() == 0
	case formNegZero:
		return true
	default:
		return false
	}
}

// Unscaled returns a copy of the unscaled value. It returns nil for None.
func (v Value) Unscaled() *big.Int {
	if v.form == formNone {
		return nil
	}
	return new(big.Int).Set(v.unscaledOrZero())
}

// Scale returns a copy of the scale. It returns nil for None.
func (v Value) Scale() *big.Int {
	if v.form == formNone {
		return nil
	}
	return new(big.Int).Set(v.scaleOrZero())
}

// Eq returns true, if both values represent the same number.
// NegZero is only equal to itself, and so is None.
func (v Value) Eq(other Value) bool {
	if v.form != other.form {
		return false
	}
	switch v.form {
	case formFinite:
		return v.unscaledOrZero().Cmp(other.unscaledOrZero()) == 0 &&
			v.scaleOrZero().Cmp(other.scaleOrZero()) == 0
	default:
		return true
	}
}

// GoString returns debug string representation.
func (v Value) GoString() string {
	switch v.form {
	case formNone:
		return "None"
	case formNegZero:
		return "-0 {NegZero}"
	}
	return v.String() + fmt.Sprintf(" {%v, %v}", v.unscaledOrZero(), v.scaleOrZero())
}
