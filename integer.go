package bigdecimal

import (
	"math"
	"math/big"
)

// mulAdd calculates x * 10 + y and checks overflow against limit.
func mulAdd(x, y, limit uint64) (z uint64, ok bool) {
	if x > (limit-y)/10 {
		return 0, false
	}
	return x*10 + y, true
}

// Int64 returns the integer part of d as an int64, discarding the fractional
// digits.
// If the integer part does not fit into int64, the result is 0 and false.
func (d Decimal) Int64() (int64, bool) {
	t := d.Trunc()
	if t.IsZero() {
		return 0, true
	}

	limit := uint64(math.MaxInt64)
	if t.neg {
		limit++
	}

	// Integer digits are the coefficient followed by zeros
	var z uint64
	var ok bool
	for i := 0; i <= t.exp; i++ {
		z, ok = mulAdd(z, uint64(t.coef.at(i)), limit)
		if !ok {
			return 0, false
		}
	}

	if t.neg {
		return -int64(z-1) - 1, true
	}
	return int64(z), true
}

// BigInt returns the integer part of d as a *big.Int, discarding the
// fractional digits.
func (d Decimal) BigInt() *big.Int {
	t := d.Trunc()
	z := new(big.Int)
	if t.IsZero() {
		return z
	}
	buf := make([]byte, 0, t.exp+2)
	buf = appendDecimal(buf, t.neg, t.exp, t.coef, false, true)
	z.SetString(string(buf), 10)
	return z
}
