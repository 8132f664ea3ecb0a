package bigdecimal

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Decimal type is a representation of an arbitrary-precision decimal number.
// The zero value is the numeric value of 0.
// Decimal values are immutable and safe for concurrent use by multiple goroutines.
//
// A decimal is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Exponent: an integer indicating the power-of-ten weight of the
//     first digit of the coefficient.
//   - Coefficient: a sequence of decimal digits without leading or trailing
//     zeros.
//
// For example, a decimal with a coefficient of [1 2 3 4 5] and an exponent
// of 2 represents the value 123.45, and a decimal with the same coefficient
// and an exponent of -3 represents the value 0.0012345.
// Since trailing zeros are always removed, every numerical value has exactly
// one representation, except for zero, which can be positive or negative.
// Negative zero is equal to positive zero, but it can be distinguished
// with [Decimal.IsNegZero] and it survives [Decimal.Neg].
type Decimal struct {
	neg  bool        // indicates whether the decimal is negative
	exp  int         // the power-of-ten weight of the first digit
	coef coefficient // the digits of the decimal, most significant first
}

// maxParseExp is the largest magnitude of an exponent suffix accepted by Parse.
const maxParseExp = math.MaxInt32

// newZero returns a zero with the given sign.
func newZero(neg bool) Decimal {
	return Decimal{neg: neg, coef: zeroCoef}
}

// newDecimal returns a decimal with the coefficient coef stripped of
// leading and trailing zeros.
// Every stripped leading zero decreases the exponent by one.
// If coef has no nonzero digit, the result is the positive zero.
func newDecimal(neg bool, exp int, coef coefficient) Decimal {
	coef, lz := coef.trimLeading()
	coef = coef.trimTrailing()
	if len(coef) == 0 {
		return newZero(false)
	}
	return Decimal{neg: neg, exp: exp - lz, coef: coef}
}

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	0.000001234
//	.5
//	1.
//	1.83e5
//	0.22E-9
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '-'
//	digit          ::= '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
//	digits         ::= digit { digit }
//	significand    ::= digits '.' [digits] | '.' digits | digits
//	exponent       ::= ('e' | 'E') ['+' | '-'] digits
//	numeric-string ::= [sign] significand [exponent]
//
// Parse removes leading and trailing zeros, "-0" is parsed as negative zero.
//
// Parse returns [ErrInvalidNumber] if the string does not match the grammar
// or if the magnitude of the exponent is greater than 2^31-1.
func Parse(s string) (Decimal, error) {
	d, ok := parse(s)
	if !ok {
		return Decimal{}, errors.Wrapf(ErrInvalidNumber, "%q", s)
	}
	return d, nil
}

func parse(s string) (Decimal, bool) {
	var (
		pos    int
		width  int
		neg    bool
		digs   coefficient
		point  int
		hasdot bool
		eneg   bool
		exp    int
		hasexp bool
	)

	width = len(s)
	digs = make(coefficient, 0, width)

	// Sign
	if pos < width && s[pos] == '-' {
		neg = true
		pos++
	}

	// Integer
	for pos < width && isDigit(s[pos]) {
		digs = append(digs, s[pos]-'0')
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		hasdot = true
		point = len(digs)
		pos++
		for pos < width && isDigit(s[pos]) {
			digs = append(digs, s[pos]-'0')
			pos++
		}
	}
	if len(digs) == 0 {
		return Decimal{}, false
	}
	if !hasdot {
		point = len(digs)
	}

	// Exponential part
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		pos++
		// Sign
		switch {
		case pos == width:
			// skip
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}
		// Integer
		for pos < width && isDigit(s[pos]) {
			exp = exp*10 + int(s[pos]-'0')
			if exp > maxParseExp {
				return Decimal{}, false
			}
			hasexp = true
			pos++
		}
		if !hasexp {
			return Decimal{}, false
		}
	}

	if pos != width {
		return Decimal{}, false
	}

	if eneg {
		point -= exp
	} else {
		point += exp
	}

	// Zero keeps its sign
	coef, lz := digs.trimLeading()
	if len(coef) == 0 {
		return newZero(neg), true
	}

	return Decimal{neg: neg, exp: point - lz - 1, coef: coef.trimTrailing()}, true
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// digits returns the coefficient of d, treating the zero value as canonical zero.
func (d Decimal) digits() coefficient {
	if len(d.coef) == 0 {
		return zeroCoef
	}
	return d.coef
}

// unit returns -1 if d has a negative sign, including negative zero, and +1 otherwise.
func (d Decimal) unit() int {
	if d.neg {
		return -1
	}
	return 1
}

// Exp returns the power-of-ten weight of the first digit of the coefficient.
// For example, the exponent of 123.45 is 2 and the exponent of 0.01 is -2.
// The exponent of zero is 0.
func (d Decimal) Exp() int {
	if d.IsZero() {
		return 0
	}
	return d.exp
}

// Prec returns number of digits in the coefficient.
// The precision of zero is 1.
func (d Decimal) Prec() int {
	return len(d.digits())
}

// Digits returns a copy of the coefficient of d.
// Each element is a single digit from 0 to 9, most significant first.
func (d Decimal) Digits() []byte {
	return d.digits().clone()
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
//
// Sign returns 0 for both positive and negative zero, see [Decimal.Signbit].
func (d Decimal) Sign() int {
	if d.IsZero() {
		return 0
	}
	return d.unit()
}

// Signbit returns true if d is negative or negative zero.
func (d Decimal) Signbit() bool {
	return d.neg
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.digits().isZero()
}

// IsNegZero returns true if d is negative zero.
func (d Decimal) IsNegZero() bool {
	return d.neg && d.IsZero()
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.neg && !d.IsZero()
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return !d.neg && !d.IsZero()
}

// IsInt returns true if fractional part of d is zero.
func (d Decimal) IsInt() bool {
	return d.IsZero() || d.exp >= len(d.coef)-1
}

// Neg returns d with opposite sign.
// The negation of positive zero is negative zero and vice versa.
func (d Decimal) Neg() Decimal {
	return Decimal{neg: !d.neg, exp: d.Exp(), coef: d.digits().clone()}
}

// Abs returns absolute value of d.
func (d Decimal) Abs() Decimal {
	return Decimal{neg: false, exp: d.Exp(), coef: d.digits().clone()}
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// Negative zero is equal to positive zero.
func (d Decimal) Cmp(e Decimal) int {
	dzero, ezero := d.IsZero(), e.IsZero()

	// Special case: zeros
	switch {
	case dzero && ezero:
		return 0
	case dzero:
		return -e.unit()
	case ezero:
		return d.unit()
	}

	// Special case: different signs
	if d.neg != e.neg {
		return d.unit()
	}

	// General case
	return cmpAbs(d, e) * d.unit()
}

// CmpAbs compares absolute values of d and e and returns:
//
//	-1 if |d| < |e|
//	 0 if |d| == |e|
//	+1 if |d| > |e|
func (d Decimal) CmpAbs(e Decimal) int {
	dzero, ezero := d.IsZero(), e.IsZero()
	switch {
	case dzero && ezero:
		return 0
	case dzero:
		return -1
	case ezero:
		return 1
	}
	return cmpAbs(d, e)
}

// cmpAbs compares absolute values of nonzero decimals.
func cmpAbs(d, e Decimal) int {
	switch {
	case d.exp > e.exp:
		return 1
	case d.exp < e.exp:
		return -1
	}
	return d.coef.cmp(e.coef)
}

// Equal returns true if d == e.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// Greater returns true if d > e.
func (d Decimal) Greater(e Decimal) bool {
	return d.Cmp(e) > 0
}

// GreaterOrEqual returns true if d >= e.
func (d Decimal) GreaterOrEqual(e Decimal) bool {
	return d.Cmp(e) >= 0
}

// Less returns true if d < e.
func (d Decimal) Less(e Decimal) bool {
	return d.Cmp(e) < 0
}

// LessOrEqual returns true if d <= e.
func (d Decimal) LessOrEqual(e Decimal) bool {
	return d.Cmp(e) <= 0
}

// Max returns maximum of d and e.
// If d and e are equal, Max returns d.
func (d Decimal) Max(e Decimal) Decimal {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns minimum of d and e.
// If d and e are equal, Min returns d.
func (d Decimal) Min(e Decimal) Decimal {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}
