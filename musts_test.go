package bigdecimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContext_Musts(t *testing.T) {
	c := DefaultContext()
	zero := MustParse("0")
	two := MustParse("2")

	t.Run("success", func(t *testing.T) {
		assert.Equal(t, "1", c.MustQuo(two, two).String())
		assert.Equal(t, "0", c.MustMod(two, two).String())
		assert.Equal(t, "4", c.MustPow(two, 2).String())
		assert.Equal(t, "1.4142", c.MustRound(c.MustSqrt(two), 4).String())
	})

	t.Run("panic", func(t *testing.T) {
		assert.PanicsWithValue(t,
			"MustQuo(2, 0) failed: Quo(2, 0): division by zero",
			func() { c.MustQuo(two, zero) },
		)
		assert.Panics(t, func() { c.MustMod(two, zero) })
		assert.Panics(t, func() { c.MustPow(zero, -1) })
		assert.Panics(t, func() { c.MustSqrt(MustParse("-2")) })
		assert.Panics(t, func() { c.MustRound(two, c.MaxDecimalPlaces+1) })
	})
}
