package mathutil

import (
	"math"
	"math/big"
	"math/bits"
	"unsafe"
)

// ChunkDigits is the largest power of ten that fits into a uint64.
const ChunkDigits = 19

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}

	bigTen   = big.NewInt(10)
	bigChunk = new(big.Int).SetUint64(decimalFactorTable[ChunkDigits])
)

// Pow10 returns 10^pow.
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

// Pow10Big returns 10^pow as a new big integer.
func Pow10Big(pow int64) *big.Int {
	if pow <= 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Exp(bigTen, big.NewInt(pow), nil)
}

func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

func BinaryTrailingZeros(value uint64) int {
	return bits.TrailingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}

	digits := digitsHelper[BinaryDigits(value)]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

// DecimalDigitsBound returns an upper bound for the number of decimal digits
// of an integer which is bitLen bits long.
func DecimalDigitsBound(bitLen int) int {
	if bitLen <= 0 {
		return 1
	}
	// 0.30102 < log10(2) < 0.30103
	return int(int64(bitLen)*30103/100000) + 1
}

// DecimalDigitsLowerBound returns a lower bound for the number of decimal digits
// of an integer which is bitLen bits long.
func DecimalDigitsLowerBound(bitLen int) int {
	if bitLen <= 1 {
		return 1
	}
	return int(int64(bitLen-1)*30102/100000) + 1
}

// ScaleMant returns such m, that m*10^targetExp == mant*10^exp.
// exact is false, if digits were lost, or the result overflows uint64.
func ScaleMant(mant uint64, exp, targetExp int32) (m uint64, exact bool) {
	if mant == 0 {
		return 0, true
	}
	diff := int64(exp) - int64(targetExp)
	if diff == 0 {
		return mant, true
	}
	if diff > math.MaxInt32 || diff < math.MinInt32 {
		if diff > 0 {
			return math.MaxUint64, false
		}
		return 0, false
	}
	p := Pow10(AbsInt(int(diff)))
	if p == 0 {
		if diff > 0 {
			return math.MaxUint64, false
		}
		return 0, false
	}
	if diff > 0 {
		if math.MaxUint64/mant < p {
			return math.MaxUint64, false
		}
		mant, exact = mant*p, true
	} else {
		mant, exact = mant/p, mant%p == 0
	}
	return mant, exact
}

func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}

// AbsInt64 returns |val| as a uint64, so that it's defined for math.MinInt64.
func AbsInt64(val int64) uint64 {
	if val < 0 {
		return uint64(-(val + 1)) + 1
	}
	return uint64(val)
}

// TrimMantExp removes trailing zeros from m, incrementing e for each removed digit.
// It stops when e reaches eMax, so the returned mantissa may still have trailing zeros.
func TrimMantExp(m uint64, e, eMax int32) (uint64, int32) {
	for e < eMax && m > 9 && m%10 == 0 {
		m /= 10
		e++
	}
	return m, e
}

// TrimTrailingZeros returns x without its trailing decimal zeros and the number of removed digits.
// x is never modified. Zero is returned as is.
// The number of decimal trailing zeros can't exceed the number of binary trailing zeros,
// which bounds the loop, so a number without trailing zeros costs a single bit scan.
func TrimTrailingZeros(x *big.Int) (*big.Int, int64) {
	r := new(big.Int).Set(x)
	if r.Sign() == 0 {
		return r, 0
	}
	var (
		n     int64
		limit = int64(r.TrailingZeroBits())
		q, m  big.Int
	)
	for limit-n >= ChunkDigits {
		q.QuoRem(r, bigChunk, &m)
		if m.Sign() != 0 {
			break
		}
		r.Set(&q)
		n += ChunkDigits
	}
	for n < limit {
		q.QuoRem(r, bigTen, &m)
		if m.Sign() != 0 {
			break
		}
		r.Set(&q)
		n++
	}
	return r, n
}
