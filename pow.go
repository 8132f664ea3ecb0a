package bigdecimal

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	one  = Decimal{exp: 0, coef: coefficient{1}}
	half = Decimal{exp: -1, coef: coefficient{5}}
)

// Pow returns d raised to the integer power n.
// Positive powers are exact, negative powers are computed as 1 / d^-n
// and rounded like [Context.Quo].
// Pow returns 1 if n is zero, even if d is zero.
//
// Pow returns an error if:
//   - the absolute value of n is greater than c.MaxPower ([ErrInvalidExponent]);
//   - d is zero and n is negative ([ErrDivisionByZero]).
func (c Context) Pow(d Decimal, n int) (Decimal, error) {
	if n < -c.MaxPower || n > c.MaxPower {
		return Decimal{}, errors.Wrapf(ErrInvalidExponent, "Pow(%v, %v): out of range [%v, %v]", d, n, -c.MaxPower, c.MaxPower)
	}

	inv := n < 0
	if inv {
		n = -n
	}

	// Exponentiation by squaring
	z := one
	for {
		if n&1 == 1 {
			z = z.Mul(d)
		}
		n >>= 1
		if n == 0 {
			break
		}
		d = d.Mul(d)
	}

	if inv {
		q, err := c.Quo(one, z)
		if err != nil {
			return Decimal{}, errors.Wrapf(err, "Pow")
		}
		return q, nil
	}
	return z, nil
}

// Sqrt returns the square root of d rounded to c.DecimalPlaces digits after
// the decimal point using c.Rounding.
// The square root of a zero is the same zero, including its sign.
//
// Sqrt returns an error if:
//   - d is negative ([ErrInvalidOperation]);
//   - c.DecimalPlaces is outside of [0, c.MaxDecimalPlaces] ([ErrInvalidDecimalPlaces]).
func (c Context) Sqrt(d Decimal) (Decimal, error) {
	// Special case: zero
	if d.IsZero() {
		return newZero(d.neg), nil
	}

	if d.neg {
		return Decimal{}, errors.Wrapf(ErrInvalidOperation, "Sqrt(%v): square root of negative number", d)
	}
	if err := c.checkDecimalPlaces(); err != nil {
		return Decimal{}, errors.Wrapf(err, "Sqrt(%v)", d)
	}
	if err := c.checkRounding(); err != nil {
		return Decimal{}, errors.Wrapf(err, "Sqrt(%v)", d)
	}

	// Intermediate quotients carry 4 extra digits
	dp := c.DecimalPlaces + 4

	// Newton's method, until successive iterates agree on n digits.
	// If n is not positive, the root is beneath the working precision
	// and a single iteration is enough.
	z := sqrtEstimate(d)
	n := z.exp + dp
	for {
		t := z
		z = half.Mul(t.Add(quo(d, t, dp, c.Rounding)))
		if n <= 0 || t.coef.equalPrefix(z.coef, n) {
			break
		}
	}

	return round(z, c.DecimalPlaces+z.exp+1, c.Rounding, false), nil
}

// sqrtEstimate returns a positive initial approximation of the square root
// of a positive d.
// It relies on float64 and falls back to taking the root of the
// coefficient alone when d is out of the float64 range.
func sqrtEstimate(d Decimal) Decimal {
	f, _ := strconv.ParseFloat(d.expText(), 64)
	s := math.Sqrt(f)
	if s != 0 && !math.IsInf(s, 1) {
		z, _ := parse(strconv.FormatFloat(s, 'g', -1, 64))
		return z
	}

	// Underflow or overflow: take the root of the coefficient as an integer
	// with an even number of digits before the point, then fix the exponent.
	var b strings.Builder
	b.Write(d.coef.appendText(nil))
	if (len(d.coef)+d.exp)&1 == 0 {
		b.WriteByte('0')
	}
	f, _ = strconv.ParseFloat(b.String(), 64)
	s = math.Sqrt(f)

	exp := (d.exp + 1) / 2
	if d.exp < 0 {
		exp--
	} else {
		exp -= d.exp & 1
	}

	var mant string
	if math.IsInf(s, 1) {
		mant = "5e"
	} else {
		mant = strconv.FormatFloat(s, 'e', -1, 64)
		mant = mant[:strings.IndexByte(mant, 'e')+1]
	}
	z, _ := parse(mant + strconv.Itoa(exp))
	return z
}
