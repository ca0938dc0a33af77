// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigdec

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	su "github.com/avdva/bigdec/internal/strutil"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeNumber
)

const (
	// JSONModeNumber produces values as numbers in the canonical form, like `12345e-2`.
	JSONModeNumber = iota
	// JSONModeString produces values as strings in the canonical form, like `"12345e-2"`.
	JSONModeString
	// JSONModePlain produces values as numbers without an exponent, like `123.45`.
	// Numbers, which would take more than DefaultMaxDigits symbols, are written in the canonical form.
	JSONModePlain
)

// String returns the canonical representation of the value:
// "<unscaled>e<-scale>", or "<unscaled>" for a zero scale, or "-0" for NegZero.
// None is represented by an empty string.
func (v Value) String() string {
	var builder strings.Builder
	v.format(&builder, 'e')
	return builder.String()
}

// Text returns the value formatted according to format:
// 'f' for the plain decimal notation, any other format for the canonical one.
func (v Value) Text(format byte) string {
	var builder strings.Builder
	v.format(&builder, rune(format))
	return builder.String()
}

// Format implements fmt.Formatter.
// %f writes the plain decimal notation, %#v writes GoString(), other verbs write the canonical form.
func (v Value) Format(fs fmt.State, c rune) {
	if c == 'v' && fs.Flag('#') {
		io.WriteString(fs, v.GoString())
		return
	}
	v.format(fs, c)
}

func (v Value) format(w io.Writer, c rune) {
	switch v.form {
	case formNone:
		return
	case formNegZero:
		io.WriteString(w, "-0")
		return
	}
	u := v.unscaledOrZero()
	digits := new(big.Int).Abs(u).String()
	if c == 'f' {
		if e, ok := v.exp32(); ok && su.PlainLen(len(digits), int64(e)) <= DefaultMaxDigits {
			su.FormatAsDecimal(w, u.Sign() < 0, digits, int(e))
			return
		}
	}
	var exp string
	if s := v.scaleOrZero(); s.Sign() != 0 {
		exp = new(big.Int).Neg(s).String()
	}
	su.FormatWithExponent(w, u.Sign() < 0, digits, exp)
}

// MarshalJSON marshals value according to current JSONMode.
// None is marshaled as null.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.toJSON(JSONMode), nil
}

func (v Value) toJSON(mode int) []byte {
	if v.form == formNone {
		return []byte("null")
	}
	switch mode {
	case JSONModeString:
		var builder strings.Builder
		builder.WriteRune('"')
		v.format(&builder, 'e')
		builder.WriteRune('"')
		return []byte(builder.String())
	case JSONModePlain:
		return []byte(v.Text('f'))
	default:
		return []byte(v.String())
	}
}

// UnmarshalJSON unmarshals a number, or a string containing a number.
// null leaves the value unchanged.
func (v *Value) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	value, err := FromString(s)
	if err != nil {
		return err
	}
	*v = value
	return nil
}

// MarshalText returns the canonical form of the value.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses a number from text.
func (v *Value) UnmarshalText(text []byte) error {
	value, err := FromString(string(text))
	if err != nil {
		return err
	}
	*v = value
	return nil
}
