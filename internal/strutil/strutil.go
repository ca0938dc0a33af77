package strutil

import (
	"bytes"
	"fmt"
	"io"
)

const (
	delim = '.'
)

var (
	manyZeros = bytes.Repeat([]byte{'0'}, 256)
)

// PosError is a parsing error with a position of the offending symbol.
type PosError struct {
	Pos int
	Err string
}

func NewPosError(err string, pos int) *PosError {
	return &PosError{Err: err, Pos: pos}
}

func (pe PosError) Error() string {
	return pe.Err + fmt.Sprintf(" at pos %d", pe.Pos)
}

// FormatWithExponent writes [-]digits[e<exp>]. The exponent is omitted, if it is "0" or empty.
func FormatWithExponent(w io.Writer, neg bool, digits, exp string) {
	if neg {
		w.Write([]byte{'-'})
	}
	io.WriteString(w, digits)
	if exp != "" && exp != "0" {
		io.WriteString(w, "e")
		io.WriteString(w, exp)
	}
}

// FormatAsDecimal writes digits*10^exp in plain decimal notation.
// digits must not have leading zeros, except for a single "0".
func FormatAsDecimal(w io.Writer, neg bool, digits string, exp int) {
	if digits == "0" || digits == "" {
		if neg {
			w.Write([]byte{'-'})
		}
		w.Write([]byte{'0'})
		return
	}
	if neg {
		w.Write([]byte{'-'})
	}
	switch {
	case exp >= 0:
		io.WriteString(w, digits)
		if exp > 0 {
			writeZeros(w, exp)
		}
	default:
		if diff := len(digits) + exp; diff <= 0 { // add leading zeros and a delimiter
			w.Write([]byte{'0', delim})
			writeZeros(w, -diff)
			io.WriteString(w, digits)
		} else { // insert a delimeter
			io.WriteString(w, digits[:diff])
			w.Write([]byte{delim})
			io.WriteString(w, digits[diff:])
		}
	}
}

// PlainLen returns the length of the FormatAsDecimal output for a non-zero number without a sign.
func PlainLen(digits int, exp int64) int64 {
	switch {
	case exp >= 0:
		return int64(digits) + exp
	case int64(digits)+exp <= 0:
		return 2 - exp
	default:
		return int64(digits) + 1
	}
}

func writeZeros(w io.Writer, count int) {
	for count > len(manyZeros) {
		w.Write(manyZeros)
		count -= len(manyZeros)
	}
	w.Write(manyZeros[:count])
}
