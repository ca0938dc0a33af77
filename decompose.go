package bigdec

import (
	"fmt"
	"math/big"
)

const (
	formDecompFinite   byte = 0
	formDecompInfinite byte = 1
	formDecompNaN      byte = 2
)

// decomposer composes or decomposes a decimal value to and from individual parts,
// as proposed for database/sql/driver.
// A value is "decimal = (neg) (form=finite) coefficient * 10 ^ exponent",
// where the coefficient is a big-endian base-2 integer.
type decomposer interface {
	Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32)
	Compose(form byte, negative bool, coefficient []byte, exponent int32) error
}

var _ decomposer = &Value{}

// Decompose returns the value in parts.
// If the provided buf has sufficient capacity, buf may be returned as the coefficient.
// NegZero is a finite negative value with an empty coefficient, None is a NaN.
// If the scale doesn't fit an int32, the result is the same approximation Float64 makes:
// an infinity, or a signed zero.
func (v Value) Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32) {
	switch v.form {
	case formNone:
		return formDecompNaN, false, nil, 0
	case formNegZero:
		return formDecompFinite, true, buf[:0], 0
	}
	u := v.unscaledOrZero()
	negative = u.Sign() < 0
	exponent, ok := v.exp32()
	if !ok {
		if v.scaleOrZero().Sign() < 0 {
			return formDecompInfinite, negative, nil, 0
		}
		return formDecompFinite, negative, buf[:0], 0
	}
	if n := (u.BitLen() + 7) / 8; n <= cap(buf) {
		coefficient = u.FillBytes(buf[:n])
	} else {
		coefficient = u.Bytes()
	}
	return formDecompFinite, negative, coefficient, exponent
}

// Compose sets the value from parts.
// Infinities and NaNs can't be represented, so an error is returned for them.
func (v *Value) Compose(form byte, negative bool, coefficient []byte, exponent int32) error {
	switch form {
	case formDecompFinite:
	case formDecompInfinite:
		return fmt.Errorf("infinity is not supported")
	case formDecompNaN:
		return fmt.Errorf("NaN is not supported")
	default:
		return fmt.Errorf("unknown form: %v", form)
	}
	coef := new(big.Int).SetBytes(coefficient)
	if coef.Sign() == 0 {
		if negative {
			*v = NegZero
		} else {
			*v = zero
		}
		return nil
	}
	if negative {
		coef.Neg(coef)
	}
	*v = FromBigIntExp(coef, exponent)
	return nil
}
