package bigdecimal

import "fmt"

// MustNew is like [Context.New] but panics if the argument cannot be converted.
func (c Context) MustNew(a Arg) Decimal {
	d, err := c.New(a)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v) failed: %v", a, err))
	}
	return d
}

// MustQuo is like [Context.Quo] but panics if computing error.
func (c Context) MustQuo(d, e Decimal) Decimal {
	f, err := c.Quo(d, e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v, %v) failed: %v", d, e, err))
	}
	return f
}

// MustMod is like [Context.Mod] but panics if computing error.
func (c Context) MustMod(d, e Decimal) Decimal {
	f, err := c.Mod(d, e)
	if err != nil {
		panic(fmt.Sprintf("MustMod(%v, %v) failed: %v", d, e, err))
	}
	return f
}

// MustPow is like [Context.Pow] but panics if computing error.
func (c Context) MustPow(d Decimal, n int) Decimal {
	f, err := c.Pow(d, n)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v, %v) failed: %v", d, n, err))
	}
	return f
}

// MustSqrt is like [Context.Sqrt] but panics if computing error.
func (c Context) MustSqrt(d Decimal) Decimal {
	f, err := c.Sqrt(d)
	if err != nil {
		panic(fmt.Sprintf("MustSqrt(%v) failed: %v", d, err))
	}
	return f
}

// MustRound is like [Context.Round] but panics if the number of decimal
// places is out of range.
func (c Context) MustRound(d Decimal, dp int) Decimal {
	f, err := c.Round(d, dp)
	if err != nil {
		panic(fmt.Sprintf("MustRound(%v, %v) failed: %v", d, dp, err))
	}
	return f
}
