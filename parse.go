// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigdec

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	su "github.com/avdva/bigdec/internal/strutil"
)

const (
	// mantissas up to this length fit an int64.
	maxFastDigits = 18

	maxInt64Str = "9223372036854775807"
	minInt64Str = "-9223372036854775808"
)

var (
	errEmptyInput = errors.New("empty input")
)

type scanState uint8

const (
	stateStart scanState = iota
	stateAfterZero
	stateIntegral
	stateAfterDot
	stateFractional
	stateAfterE
	stateAfterExpSign
	stateExponent
	stateFailed
)

// accepting returns true, if the input may end in this state.
func (st scanState) accepting() bool {
	switch st {
	case stateAfterZero, stateIntegral, stateFractional, stateExponent:
		return true
	default:
		return false
	}
}

// numberScan holds positions found by scan.
type numberScan struct {
	s             string
	neg           bool
	pointPos      int // -1, if there is no decimal point
	expPos        int // -1, if there is no exponent
	trailingZeros int // trailing zeros of integral and fractional digits together
	failPos       int // position of the first bad symbol, or len(s)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func (ns *numberScan) mantissaDigit(c byte) {
	if c == '0' {
		ns.trailingZeros++
	} else {
		ns.trailingZeros = 0
	}
}

// scan checks that s is a JSON number:
//	-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
// It stops at the first symbol, which is not allowed in the current state.
func scan(s string) (ns numberScan, state scanState) {
	ns = numberScan{s: s, pointPos: -1, expPos: -1, failPos: len(s)}
	i := 0
	if len(s) > 0 && s[0] == '-' {
		ns.neg = true
		i++
	}
	for ; i < len(s); i++ {
		c := s[i]
		switch state {
		case stateStart:
			switch {
			case c == '0':
				state = stateAfterZero
			case isDigit(c):
				state = stateIntegral
			default:
				state = stateFailed
			}
			ns.mantissaDigit(c)
		case stateAfterZero:
			switch c {
			case '.':
				state, ns.pointPos = stateAfterDot, i
			case 'e', 'E':
				state, ns.expPos = stateAfterE, i
			default:
				state = stateFailed
			}
		case stateIntegral, stateFractional:
			switch {
			case isDigit(c):
				ns.mantissaDigit(c)
			case c == '.' && state == stateIntegral:
				state, ns.pointPos = stateAfterDot, i
			case c == 'e' || c == 'E':
				state, ns.expPos = stateAfterE, i
			default:
				state = stateFailed
			}
		case stateAfterDot:
			if isDigit(c) {
				state = stateFractional
				ns.mantissaDigit(c)
			} else {
				state = stateFailed
			}
		case stateAfterE:
			switch {
			case c == '+' || c == '-':
				state = stateAfterExpSign
			case isDigit(c):
				state = stateExponent
			default:
				state = stateFailed
			}
		case stateAfterExpSign, stateExponent:
			if isDigit(c) {
				state = stateExponent
			} else {
				state = stateFailed
			}
		}
		if state == stateFailed {
			ns.failPos = i
			break
		}
	}
	if !state.accepting() && state != stateFailed {
		state = stateFailed
	}
	return ns, state
}

// value builds a Value from a successful scan.
func (ns *numberScan) value() Value {
	s := ns.s
	start, end := 0, len(s)
	if ns.neg {
		start++
	}
	if ns.expPos >= 0 {
		end = ns.expPos
	}
	integral, fractional := s[start:end], ""
	if ns.pointPos >= 0 {
		integral, fractional = s[start:ns.pointPos], s[ns.pointPos+1:end]
	}
	rescale := len(fractional) - ns.trailingZeros
	if rescale >= 0 {
		fractional = fractional[:rescale]
	} else {
		integral, fractional = integral[:len(integral)+rescale], ""
	}
	unscaled := parseDigits(ns.neg, integral, fractional)
	if unscaled.Sign() == 0 {
		if ns.neg {
			return NegZero
		}
		return zero
	}
	scale := big.NewInt(int64(rescale))
	if ns.expPos >= 0 {
		scale.Sub(scale, parseDigits(false, s[ns.expPos+1:], ""))
	}
	return newFinite(unscaled, scale)
}

func (ns *numberScan) failure() error {
	if len(ns.s) == 0 {
		return errEmptyInput
	}
	if ns.failPos >= len(ns.s) {
		return fmt.Errorf("parsing failed: %w", su.NewPosError("unexpected end of input", len(ns.s)+1))
	}
	r, _ := utf8.DecodeRuneInString(ns.s[ns.failPos:])
	// +1 to start indices from 1.
	return fmt.Errorf("parsing failed: %w", su.NewPosError(fmt.Sprintf("unexpected symbol %q", r), ns.failPos+1))
}

// parseDigits returns the integer written by digits of hi followed by digits of lo.
// hi may start with a sign.
func parseDigits(neg bool, hi, lo string) *big.Int {
	if len(hi)+len(lo) <= maxFastDigits {
		var n int64
		for _, part := range [2]string{hi, lo} {
			for i := 0; i < len(part); i++ {
				switch c := part[i]; c {
				case '-':
					neg = !neg
				case '+':
				default:
					n = n*10 + int64(c-'0')
				}
			}
		}
		if neg {
			n = -n
		}
		return big.NewInt(n)
	}
	var b strings.Builder
	b.Grow(len(hi) + len(lo) + 1)
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(hi)
	b.WriteString(lo)
	result, ok := new(big.Int).SetString(b.String(), 10)
	if !ok {
		panic("bad digits: " + b.String()) // should not normally happen
	}
	return result
}

// Parse parses a JSON number literal.
// Returns false, if s is not a valid JSON number. It doesn't allocate in that case.
func Parse(s string) (Value, bool) {
	ns, state := scan(s)
	if state == stateFailed {
		return zero, false
	}
	return ns.value(), true
}

// ParseOrNone parses a JSON number literal.
// Returns None, if s is not a valid JSON number.
func ParseOrNone(s string) Value {
	v, ok := Parse(s)
	if !ok {
		return None
	}
	return v
}

// FromString parses a JSON number literal.
// The error contains the position of the first unexpected symbol, see strutil.PosError.
func FromString(s string) (Value, error) {
	ns, state := scan(s)
	if state == stateFailed {
		return zero, ns.failure()
	}
	return ns.value(), nil
}

// MustFromString calls FromString and panics in case of an error.
func MustFromString(s string) Value {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// IntegralIsValidInt64 returns true, if s fits an int64.
// s must be a valid JSON integer: an optional minus sign followed by digits without leading zeros.
// Only the length and the lexicographical order of s are checked, no parsing is done.
func IntegralIsValidInt64(s string) bool {
	bound := maxInt64Str
	if len(s) > 0 && s[0] == '-' {
		bound = minInt64Str
	}
	if len(s) != len(bound) {
		return len(s) < len(bound)
	}
	return s <= bound
}
