package bigdecimal

// coefficient is a sequence of decimal digits, most significant first.
// Each element holds a single digit from 0 to 9.
// A coefficient that belongs to a returned [Decimal] is never modified,
// operations that need a scratch buffer work on a clone.
type coefficient []byte

// zeroCoef is the coefficient of the canonical zero.
var zeroCoef = coefficient{0}

// isZero returns true if c is empty or the canonical zero.
func (c coefficient) isZero() bool {
	return len(c) == 0 || c[0] == 0
}

// clone returns a copy of c that shares no memory with it.
func (c coefficient) clone() coefficient {
	z := make(coefficient, len(c))
	copy(z, c)
	return z
}

// padded returns a copy of c extended with trailing zeros to n digits.
func (c coefficient) padded(n int) coefficient {
	if n < len(c) {
		n = len(c)
	}
	z := make(coefficient, n)
	copy(z, c)
	return z
}

// at returns the i-th digit of c, or 0 if i is outside of c.
func (c coefficient) at(i int) int {
	if i < 0 || i >= len(c) {
		return 0
	}
	return int(c[i])
}

// trimTrailing removes trailing zeros.
// The result shares memory with c.
func (c coefficient) trimTrailing() coefficient {
	n := len(c)
	for n > 0 && c[n-1] == 0 {
		n--
	}
	return c[:n]
}

// trimLeading removes leading zeros and returns the number of removed digits.
// The result shares memory with c.
func (c coefficient) trimLeading() (coefficient, int) {
	i := 0
	for i < len(c) && c[i] == 0 {
		i++
	}
	return c[i:], i
}

// cmp compares c and d as digit strings aligned at their first digit:
//
//	-1 if c < d
//	 0 if c == d
//	+1 if c > d
func (c coefficient) cmp(d coefficient) int {
	n := min(len(c), len(d))
	for i := 0; i < n; i++ {
		switch {
		case c[i] > d[i]:
			return 1
		case c[i] < d[i]:
			return -1
		}
	}
	switch {
	case len(c) > len(d):
		return 1
	case len(c) < len(d):
		return -1
	}
	return 0
}

// equalPrefix returns true if the first n digits of c and d are the same.
// Digits beyond the end of the shorter coefficient are not assumed to be zero.
func (c coefficient) equalPrefix(d coefficient, n int) bool {
	c = c[:min(n, len(c))]
	d = d[:min(n, len(d))]
	return c.cmp(d) == 0
}

// appendText appends ASCII digits of c to buf.
func (c coefficient) appendText(buf []byte) []byte {
	for _, b := range c {
		buf = append(buf, b+'0')
	}
	return buf
}
