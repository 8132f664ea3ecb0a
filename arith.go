package bigdecimal

// Add returns the exact sum of d and e.
//
// The sum of two zeros with the same sign keeps that sign,
// otherwise an exact cancellation produces positive zero.
func (d Decimal) Add(e Decimal) Decimal {
	// Special case: different signs
	if d.neg != e.neg {
		return d.Sub(e.Neg())
	}

	// Special case: zeros
	switch dzero, ezero := d.IsZero(), e.IsZero(); {
	case dzero && ezero:
		return newZero(d.neg)
	case ezero:
		return d
	case dzero:
		return e
	}

	// General case
	coef, exp := addAbs(d, e)
	return Decimal{neg: d.neg, exp: exp, coef: coef}
}

// addAbs calculates |d| + |e| for nonzero decimals.
func addAbs(d, e Decimal) (coef coefficient, exp int) {
	// Alignment: the operand with the smaller exponent is
	// prefixed with zeros so that both start at the same weight.
	exp = max(d.exp, e.exp)
	dpad, epad := exp-d.exp, exp-e.exp
	n := max(dpad+len(d.coef), epad+len(e.coef))

	// Addition with carry, z[0] is reserved for the final carry
	z := make(coefficient, n+1)
	carry := 0
	for i := n - 1; i >= 0; i-- {
		s := d.coef.at(i-dpad) + e.coef.at(i-epad) + carry
		z[i+1] = byte(s % 10)
		carry = s / 10
	}
	if carry > 0 {
		z[0] = byte(carry)
		exp++
	} else {
		z = z[1:]
	}

	return z.trimTrailing(), exp
}

// Sub returns the exact difference of d and e.
//
// An exact cancellation always produces positive zero,
// including the difference of two negative zeros.
func (d Decimal) Sub(e Decimal) Decimal {
	// Special case: different signs
	if d.neg != e.neg {
		return d.Add(e.Neg())
	}

	// Special case: zeros
	switch dzero, ezero := d.IsZero(), e.IsZero(); {
	case dzero && ezero:
		return newZero(false)
	case dzero:
		return e.Neg()
	case ezero:
		return d
	}

	// General case
	neg := d.neg
	switch cmpAbs(d, e) {
	case 0:
		return newZero(false)
	case -1:
		d, e = e, d
		neg = !neg
	}
	coef, exp := subAbs(d, e)
	return newDecimal(neg, exp, coef)
}

// subAbs calculates |d| - |e| for nonzero decimals with |d| > |e|.
// The result may contain leading and trailing zeros.
func subAbs(d, e Decimal) (coef coefficient, exp int) {
	// Alignment: since |d| > |e|, the exponent of d is not smaller.
	exp = d.exp
	epad := d.exp - e.exp
	n := max(len(d.coef), epad+len(e.coef))

	// Subtraction with borrow
	z := make(coefficient, n)
	borrow := 0
	for i := n - 1; i >= 0; i-- {
		s := d.coef.at(i) - e.coef.at(i-epad) - borrow
		borrow = 0
		if s < 0 {
			s += 10
			borrow = 1
		}
		z[i] = byte(s)
	}

	return z, exp
}

// Mul returns the exact product of d and e.
// The sign of the product is negative if exactly one of d and e is
// negative, including negative zeros.
func (d Decimal) Mul(e Decimal) Decimal {
	neg := d.neg != e.neg

	// Special case: zeros
	if d.IsZero() || e.IsZero() {
		return newZero(neg)
	}

	// General case
	dcoef, ecoef := d.coef, e.coef
	if len(dcoef) < len(ecoef) {
		dcoef, ecoef = ecoef, dcoef
	}

	// Schoolbook multiplication, z[0] receives the final carry
	z := make(coefficient, len(dcoef)+len(ecoef))
	for i := len(ecoef) - 1; i >= 0; i-- {
		carry := 0
		for j := len(dcoef) - 1; j >= 0; j-- {
			s := int(z[i+j+1]) + int(ecoef[i])*int(dcoef[j]) + carry
			z[i+j+1] = byte(s % 10)
			carry = s / 10
		}
		z[i] = byte(carry)
	}

	exp := d.exp + e.exp
	if z[0] != 0 {
		exp++
	} else {
		z = z[1:]
	}

	return Decimal{neg: neg, exp: exp, coef: z.trimTrailing()}
}
