package bigdecimal

import "github.com/pkg/errors"

// Quo returns the quotient of d and e rounded to c.DecimalPlaces digits after
// the decimal point using c.Rounding.
// The sign of the quotient is negative if exactly one of d and e is negative,
// including negative zeros.
//
// Quo returns an error if:
//   - c.DecimalPlaces is outside of [0, c.MaxDecimalPlaces] ([ErrInvalidDecimalPlaces]);
//   - e is zero ([ErrDivisionByZero]).
func (c Context) Quo(d, e Decimal) (Decimal, error) {
	if err := c.checkDecimalPlaces(); err != nil {
		return Decimal{}, errors.Wrapf(err, "Quo(%v, %v)", d, e)
	}
	if err := c.checkRounding(); err != nil {
		return Decimal{}, errors.Wrapf(err, "Quo(%v, %v)", d, e)
	}
	if e.IsZero() {
		return Decimal{}, errors.Wrapf(ErrDivisionByZero, "Quo(%v, %v)", d, e)
	}
	return quo(d, e, c.DecimalPlaces, c.Rounding), nil
}

// quo performs long division of d by a nonzero e in decimal digits and rounds
// the quotient to dp digits after the decimal point.
// The settings are not validated.
func quo(d, e Decimal, dp int, mode RoundingMode) Decimal {
	neg := d.neg != e.neg

	// Special case: zero dividend
	if d.IsZero() {
		return newZero(neg)
	}

	var (
		a   = d.coef // dividend
		b   = e.coef // divisor
		al  = len(a)
		bl  = len(b)
		bz  = append(coefficient{0}, b...) // divisor with a leading zero
		exp = d.exp - e.exp                // exponent of the first quotient digit
		p   = dp + exp + 1                 // significant digits of the result
		k   = max(p, 0)                    // remaining digits to produce
		ai  = bl                           // next dividend digit to bring down
	)

	// The remainder starts with the first bl digits of the dividend,
	// padded with zeros if the dividend is shorter than the divisor.
	r := make(coefficient, bl, max(al, bl)+2)
	copy(r, a)

	q := make(coefficient, 0, k+2)
	for {
		// n is how many times the divisor goes into the remainder
		var n, cmp int
		for n = 0; n < 10; n++ {
			cmp = cmpDigits(b, r)
			if cmp >= 0 {
				break
			}
			// The remainder is at most one digit longer than the divisor
			bt := b
			if len(r) != bl {
				bt = bz
			}
			subDigits(r, bt)
			r, _ = r.trimLeading()
		}
		if cmp == 0 {
			// The divisor goes exactly once more, leaving no remainder
			n++
		}
		q = append(q, byte(n))

		// Bring down the next digit
		var next byte
		if ai < al {
			next = a[ai]
		}
		switch {
		case cmp != 0 && len(r) > 0 && r[0] != 0:
			r = append(r, next)
		case ai < al:
			r = append(r[:0], next)
		default:
			r = r[:0]
		}

		more := ai < al || len(r) > 0
		ai++
		if !more || k == 0 {
			break
		}
		k--
	}

	// Leading zero, unless the result is simply zero.
	// There can't be more than one.
	qi := len(q)
	if q[0] == 0 && qi != 1 {
		q = q[1:]
		exp--
		p--
	}

	z := Decimal{neg: neg, exp: exp, coef: q}
	if qi > p {
		return round(z, p, mode, len(r) > 0)
	}
	return Decimal{neg: neg, exp: exp, coef: q.trimTrailing()}
}

// cmpDigits compares integers represented by the digits of x and y,
// neither of which has a leading zero unless it is a single zero:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func cmpDigits(x, y coefficient) int {
	switch {
	case len(x) > len(y):
		return 1
	case len(x) < len(y):
		return -1
	}
	for i := range x {
		switch {
		case x[i] > y[i]:
			return 1
		case x[i] < y[i]:
			return -1
		}
	}
	return 0
}

// subDigits calculates x -= y in place, where x and y have the same length
// and x >= y.
func subDigits(x, y coefficient) {
	borrow := byte(0)
	for i := len(x) - 1; i >= 0; i-- {
		s := y[i] + borrow
		if x[i] < s {
			x[i] += 10 - s
			borrow = 1
		} else {
			x[i] -= s
			borrow = 0
		}
	}
}

// Mod returns the remainder of the truncated division of d by e.
// The remainder has the sign of d, and its absolute value is less than
// the absolute value of e.
// If the absolute value of e is greater than the absolute value of d,
// the result is d.
// Mod ignores c.DecimalPlaces and c.Rounding: the quotient is always
// truncated to an integer.
//
// Mod returns [ErrDivisionByZero] if e is zero.
func (c Context) Mod(d, e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, errors.Wrapf(ErrDivisionByZero, "Mod(%v, %v)", d, e)
	}

	// Special case: divisor is greater
	if e.CmpAbs(d) > 0 {
		return d, nil
	}

	_, r, err := c.QuoRem(d, e)
	if err != nil {
		return Decimal{}, err
	}
	return r, nil
}

// QuoRem returns the quotient q truncated toward zero to an integer and
// the remainder r such that d = q * e + r.
// c.DecimalPlaces and c.Rounding are ignored.
//
// QuoRem returns [ErrDivisionByZero] if e is zero.
func (c Context) QuoRem(d, e Decimal) (q, r Decimal, err error) {
	// Truncated division on a local copy of the context
	t := c
	t.DecimalPlaces = 0
	t.Rounding = RoundTowardZero
	q, err = t.Quo(d, e)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	r = d.Sub(q.Mul(e))
	return q, r, nil
}
