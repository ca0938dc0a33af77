package mathutil

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimalDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v uint64
		d int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{999999, 6},
		{1000000, 7},
		{math.MaxUint64, 20},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.d, DecimalDigits(test.v))
		})
	}
}

func TestDecimalDigitsBound(t *testing.T) {
	a := assert.New(t)
	for _, s := range []string{"1", "9", "10", "99999999999999999999", "123456789012345678901234567890", strings.Repeat("9", 1000)} {
		b, ok := new(big.Int).SetString(s, 10)
		a.True(ok)
		bound := DecimalDigitsBound(b.BitLen())
		a.True(bound >= len(s), s)
		a.True(bound <= len(s)+1, s)
		lower := DecimalDigitsLowerBound(b.BitLen())
		a.True(lower <= len(s), s)
		a.True(lower >= len(s)-1, s)
	}
	a.Equal(1, DecimalDigitsBound(0))
	a.Equal(1, DecimalDigitsLowerBound(0))
	a.Equal(1, DecimalDigitsLowerBound(1))
}

func TestScaleMant(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		mant      uint64
		exp, tExp int32
		res       uint64
		exact     bool
	}{
		{0, 100, -7, 0, true},
		{12345, -3, -7, 123450000, true},
		{12345, -3, -3, 12345, true},
		{12345, -3, -1, 123, false},
		{12300, -3, -1, 123, true},
		{1, 0, -20, math.MaxUint64, false},
		{math.MaxUint64, 0, -1, math.MaxUint64, false},
		{1, math.MaxInt32, math.MinInt32, math.MaxUint64, false},
		{1, math.MinInt32, math.MaxInt32, 0, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, exact := ScaleMant(test.mant, test.exp, test.tExp)
			a.Equal(test.res, res)
			a.Equal(test.exact, exact)
		})
	}
}

func TestTrimMantExp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		m, mRes    uint64
		e, eMax, r int32
	}{
		{0, 0, 0, 10, 0},
		{1200, 12, 0, 10, 2},
		{1200, 120, 0, 1, 1},
		{1200, 1200, math.MaxInt32, math.MaxInt32, math.MaxInt32},
		{10, 1, -5, 10, -4},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			m, e := TrimMantExp(test.m, test.e, test.eMax)
			a.Equal(test.mRes, m)
			a.Equal(test.r, e)
		})
	}
}

func TestAbsInt64(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint64(0), AbsInt64(0))
	a.Equal(uint64(5), AbsInt64(-5))
	a.Equal(uint64(math.MaxInt64), AbsInt64(math.MaxInt64))
	a.Equal(uint64(1<<63), AbsInt64(math.MinInt64))
}

func TestTrimTrailingZeros(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		in, out string
		n       int64
	}{
		{"0", "0", 0},
		{"1", "1", 0},
		{"1200", "12", 2},
		{"-1200", "-12", 2},
		{"101", "101", 0},
		{"1" + strings.Repeat("0", 19), "1", 19},
		{"25" + strings.Repeat("0", 57), "25", 57},
		{"-7" + strings.Repeat("0", 38), "-7", 38},
		{"16", "16", 0}, // even, but not divisible by 10
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			in, _ := new(big.Int).SetString(test.in, 10)
			orig := new(big.Int).Set(in)
			out, n := TrimTrailingZeros(in)
			a.Equal(test.out, out.String())
			a.Equal(test.n, n)
			a.Equal(0, orig.Cmp(in), "input must not be modified")
		})
	}
}

func TestTrimTrailingZerosManyDigits(t *testing.T) {
	a := assert.New(t)
	in, _ := new(big.Int).SetString("3"+strings.Repeat("0", 100000), 10)
	out, n := TrimTrailingZeros(in)
	a.Equal("3", out.String())
	a.Equal(int64(100000), n)
}

func TestPow10Big(t *testing.T) {
	a := assert.New(t)
	a.Equal("1", Pow10Big(0).String())
	a.Equal("1", Pow10Big(-3).String())
	a.Equal("1"+strings.Repeat("0", 25), Pow10Big(25).String())
}

func BenchmarkTrimTrailingZeros(b *testing.B) {
	x, _ := new(big.Int).SetString("123456789"+strings.Repeat("0", 1000), 10)
	for i := 0; i < b.N; i++ {
		TrimTrailingZeros(x)
	}
}
