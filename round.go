package bigdecimal

import "github.com/pkg/errors"

// round returns d rounded to sd significant digits using the rounding mode.
// The more flag reports that d itself was already truncated and that
// nonzero digits exist beyond the end of its coefficient; it turns an
// apparent tie into a value above the midpoint.
// If sd is less than 1, the result is either zero with the sign of d or
// a single digit 1 whose weight is the place of the last retained digit.
func round(d Decimal, sd int, mode RoundingMode, more bool) Decimal {
	coef := d.digits()

	// Special case: no significant digit left
	if sd < 1 {
		up := false
		switch mode {
		case RoundAwayFromZero:
			up = more || !coef.isZero()
		case RoundHalfUp:
			up = sd == 0 && coef[0] >= 5
		case RoundHalfEven:
			up = sd == 0 && (coef[0] > 5 || coef[0] == 5 && (more || len(coef) > 1))
		}
		if up {
			// 1, 0.1, 0.01, 0.001 etc.
			return Decimal{neg: d.neg, exp: d.exp - sd + 1, coef: coefficient{1}}
		}
		return newZero(d.neg)
	}

	// Special case: nothing to discard
	if sd >= len(coef) {
		return d
	}

	// General case: coef[sd] is the first discarded digit
	up := false
	switch mode {
	case RoundAwayFromZero:
		up = true // discarded digits of a trimmed coefficient are never all zeros
	case RoundHalfUp:
		up = coef[sd] >= 5
	case RoundHalfEven:
		up = coef[sd] > 5 || coef[sd] == 5 && (more || len(coef) > sd+1 || coef[sd-1]%2 == 1)
	}

	z := coef[:sd].clone()
	exp := d.exp
	if up {
		i := sd - 1
		for i >= 0 && z[i] == 9 {
			z[i] = 0
			i--
		}
		if i >= 0 {
			z[i]++
		} else {
			// Carry out of the first digit: 999 -> 1000
			z = append(coefficient{1}, z...)
			exp++
		}
	}

	return Decimal{neg: d.neg, exp: exp, coef: z.trimTrailing()}
}

// Round returns d rounded to dp digits after the decimal point using
// c.Rounding.
// If dp is negative, d is rounded to an integer which is a multiple of 10^-dp.
// For example, 1234.5 rounded to -2 decimal places is 1200 in half-up mode.
//
// Round returns [ErrInvalidDecimalPlaces] if dp is outside of
// [-c.MaxDecimalPlaces, c.MaxDecimalPlaces].
func (c Context) Round(d Decimal, dp int) (Decimal, error) {
	if dp < -c.MaxDecimalPlaces || dp > c.MaxDecimalPlaces {
		return Decimal{}, errors.Wrapf(ErrInvalidDecimalPlaces, "Round(%v, %v): out of range [%v, %v]", d, dp, -c.MaxDecimalPlaces, c.MaxDecimalPlaces)
	}
	if err := c.checkRounding(); err != nil {
		return Decimal{}, err
	}
	return round(d, dp+d.Exp()+1, c.Rounding, false), nil
}

// Trunc returns the integer part of d, discarding the fractional digits.
func (d Decimal) Trunc() Decimal {
	return round(d, d.Exp()+1, RoundTowardZero, false)
}

// Prec returns d rounded to sd significant digits using c.Rounding.
//
// Prec returns [ErrInvalidPrecision] if sd is outside of
// [1, c.MaxDecimalPlaces].
func (c Context) Prec(d Decimal, sd int) (Decimal, error) {
	if sd < 1 || sd > c.MaxDecimalPlaces {
		return Decimal{}, errors.Wrapf(ErrInvalidPrecision, "Prec(%v, %v): out of range [1, %v]", d, sd, c.MaxDecimalPlaces)
	}
	if err := c.checkRounding(); err != nil {
		return Decimal{}, err
	}
	return round(d, sd, c.Rounding, false), nil
}
