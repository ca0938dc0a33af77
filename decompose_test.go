package bigdec

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
)

func TestDecompose(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v     Value
		form  byte
		neg   bool
		coef  []byte
		exp   int32
		plain string
	}{
		{zero, formDecompFinite, false, []byte{}, 0, "0"},
		{NegZero, formDecompFinite, true, []byte{}, 0, "-0"},
		{None, formDecompNaN, false, nil, 0, "NaN"},
		{MustFromString("12e2"), formDecompFinite, false, []byte{12}, 2, "1200"},
		{MustFromString("-2.56"), formDecompFinite, true, []byte{1, 0}, -2, "-2.56"},
		{MustFromString("1e2147483648"), formDecompInfinite, false, nil, 0, "Infinity"},
		{MustFromString("-1e2147483648"), formDecompInfinite, true, nil, 0, "-Infinity"},
		{MustFromString("-1e-2147483649"), formDecompFinite, true, []byte{}, 0, "-0"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			form, neg, coef, exp := test.v.Decompose(make([]byte, 0, 16))
			a.Equal(test.form, form)
			a.Equal(test.neg, neg)
			a.Equal(len(test.coef), len(coef))
			if len(test.coef) > 0 {
				a.Equal(test.coef, coef)
			}
			a.Equal(test.exp, exp)

			var d apd.Decimal
			if a.NoError(d.Compose(form, neg, coef, exp)) {
				a.Equal(test.plain, d.Text('f'))
			}
		})
	}
}

func TestDecomposeBuffer(t *testing.T) {
	a := assert.New(t)
	v := MustFromString("-123456789012345678901234567890e-5")
	buf := make([]byte, 0, 64)
	_, _, coef, _ := v.Decompose(buf)
	a.True(&buf[:1][0] == &coef[0], "buf should be reused")
	_, _, coef, _ = v.Decompose(nil)
	var res Value
	if a.NoError(res.Compose(v.Decompose(nil))) {
		a.True(v.Eq(res))
	}
	a.Equal(12, len(coef))
}

func TestCompose(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		form byte
		neg  bool
		coef []byte
		exp  int32
		res  string
		err  string
	}{
		{0, false, nil, 0, "0", ""},
		{0, false, []byte{0, 0}, 10, "0", ""},
		{0, true, nil, 5, "-0", ""},
		{0, false, []byte{0x04, 0xb0}, -2, "12", ""},
		{0, true, []byte{0x04, 0xb0}, 3, "-12e5", ""},
		{1, false, nil, 0, "", "infinity is not supported"},
		{2, false, nil, 0, "", "NaN is not supported"},
		{3, false, nil, 0, "", "unknown form: 3"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var v Value
			err := v.Compose(test.form, test.neg, test.coef, test.exp)
			if len(test.err) > 0 {
				a.EqualError(err, test.err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.res, v.String())
			}
		})
	}
}

func TestComposeFromAPD(t *testing.T) {
	a := assert.New(t)
	for _, s := range []string{"0", "-0", "1.500", "-123456789012345678901234567890.1", "1e100", "-7e-300"} {
		d, _, err := apd.NewFromString(s)
		if !a.NoError(err) {
			continue
		}
		var v Value
		if a.NoError(v.Compose(d.Decompose(nil))) {
			a.True(MustFromString(s).Eq(v), s)
		}
	}
}
