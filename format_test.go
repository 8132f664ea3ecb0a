package bigdecimal

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_String(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		tests := []struct {
			d, want string
		}{
			{"0", "0"},
			{"-0", "0"},
			{"1", "1"},
			{"-1.5", "-1.5"},
			{"0.000001", "0.000001"},
			{"0.0000001", "1e-7"},
			{"-0.00000012", "-1.2e-7"},
			{"123456789012345678901", "123456789012345678901"},
			{"1234567890123456789012", "1.234567890123456789012e+21"},
			{"100", "100"},
		}
		c := DefaultContext()
		for _, tt := range tests {
			assert.Equal(t, tt.want, c.String(MustParse(tt.d)), "String(%q)", tt.d)
		}
	})

	t.Run("thresholds", func(t *testing.T) {
		tests := []struct {
			d, want string
		}{
			{"0.01", "1e-2"},
			{"0.1", "0.1"},
			{"10", "10"},
			{"100", "1e+2"},
			{"123.45", "1.2345e+2"},
			{"0", "0"},
		}
		c, err := NewContext(WithExpThresholds(-2, 2))
		require.NoError(t, err)
		for _, tt := range tests {
			assert.Equal(t, tt.want, c.String(MustParse(tt.d)), "String(%q)", tt.d)
		}
	})

	t.Run("always exponential", func(t *testing.T) {
		c, err := NewContext(WithExpThresholds(0, 0))
		require.NoError(t, err)
		assert.Equal(t, "0e+0", c.String(MustParse("0")))
		assert.Equal(t, "1.5e+0", c.String(MustParse("1.5")))
	})
}

func TestContext_ValueOf(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, want string
		}{
			{"-0", "-0"},
			{"0", "0"},
			{"-1.5", "-1.5"},
			{"1e21", "1e+21"},
		}
		for _, tt := range tests {
			got, err := DefaultContext().ValueOf(MustParse(tt.d))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "ValueOf(%q)", tt.d)
		}
	})

	t.Run("error", func(t *testing.T) {
		c, err := NewContext(WithStrict(true))
		require.NoError(t, err)
		_, err = c.ValueOf(MustParse("1"))
		require.ErrorIs(t, err, ErrStrictViolation)
	})
}

func TestContext_Fixed(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d    string
			dp   int
			want string
		}{
			{"-0.1", 0, "-0"},
			{"-0", 1, "0.0"},
			{"-0.01", 1, "-0.0"},
			{"1.005", 2, "1.01"},
			{"0.5", 0, "1"},
			{"1.5", 3, "1.500"},
			{"0", 2, "0.00"},
			{"99.99", 1, "100.0"},
			{"0.000001234", 8, "0.00000123"},
			{"123.456", -1, "123.456"},
			{"1e21", -1, "1000000000000000000000"},
			{"1e-7", -1, "0.0000001"},
			{"-2.0685908346593874980567875e+25", -1, "-20685908346593874980567875"},
			{"1234.5678", 0, "1235"},
		}
		for _, tt := range tests {
			got, err := DefaultContext().Fixed(MustParse(tt.d), tt.dp)
			require.NoError(t, err, "Fixed(%q, %v)", tt.d, tt.dp)
			assert.Equal(t, tt.want, got, "Fixed(%q, %v)", tt.d, tt.dp)
		}
	})

	t.Run("negation", func(t *testing.T) {
		d := MustParse("-2.0685908346593874980567875e+25").Neg()
		got, err := DefaultContext().Fixed(d, -1)
		require.NoError(t, err)
		assert.Equal(t, "20685908346593874980567875", got)
	})

	t.Run("error", func(t *testing.T) {
		c := DefaultContext()
		c.MaxDecimalPlaces = 5
		_, err := c.Fixed(MustParse("1"), 6)
		require.ErrorIs(t, err, ErrInvalidDecimalPlaces)
		_, err = c.Fixed(MustParse("1"), -2)
		require.ErrorIs(t, err, ErrInvalidDecimalPlaces)
	})
}

func TestContext_Exponential(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d    string
			dp   int
			want string
		}{
			{"45.6", 0, "5e+1"},
			{"45.6", 3, "4.560e+1"},
			{"0", 2, "0.00e+0"},
			{"-0.000123", 1, "-1.2e-4"},
			{"123", -1, "1.23e+2"},
			{"9.99", 1, "1.0e+1"},
			{"-0", -1, "0e+0"},
		}
		for _, tt := range tests {
			got, err := DefaultContext().Exponential(MustParse(tt.d), tt.dp)
			require.NoError(t, err, "Exponential(%q, %v)", tt.d, tt.dp)
			assert.Equal(t, tt.want, got, "Exponential(%q, %v)", tt.d, tt.dp)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := DefaultContext().Exponential(MustParse("1"), -5)
		require.ErrorIs(t, err, ErrInvalidDecimalPlaces)
	})
}

func TestContext_Precision(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d    string
			sd   int
			want string
		}{
			{"45.6", 1, "5e+1"},
			{"45.6", 2, "46"},
			{"45.6", 5, "45.600"},
			{"0.00001", 2, "0.000010"},
			{"123456", 3, "1.23e+5"},
			{"-0", 3, "0.00"},
			{"1e-7", 1, "1e-7"},
			{"123.456", -1, "123.456"},
			{"1e21", -1, "1e+21"},
		}
		for _, tt := range tests {
			got, err := DefaultContext().Precision(MustParse(tt.d), tt.sd)
			require.NoError(t, err, "Precision(%q, %v)", tt.d, tt.sd)
			assert.Equal(t, tt.want, got, "Precision(%q, %v)", tt.d, tt.sd)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := DefaultContext().Precision(MustParse("1"), 0)
		require.ErrorIs(t, err, ErrInvalidPrecision)
	})
}

func TestContext_Float64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d    string
			want float64
		}{
			{"0", 0},
			{"0.1", 0.1},
			{"-1.5", -1.5},
			{"1e308", 1e308},
			{"1e400", math.Inf(1)},
			{"-1e400", math.Inf(-1)},
			{"1e-400", 0},
			{"1.000000000000000000001", 1},
		}
		for _, tt := range tests {
			got, err := DefaultContext().Float64(MustParse(tt.d))
			require.NoError(t, err, "Float64(%q)", tt.d)
			assert.Equal(t, tt.want, got, "Float64(%q)", tt.d)
		}

		got, err := DefaultContext().Float64(MustParse("-0"))
		require.NoError(t, err)
		assert.True(t, math.Signbit(got))
	})

	t.Run("strict", func(t *testing.T) {
		c, err := NewContext(WithStrict(true))
		require.NoError(t, err)

		for _, s := range []string{"0", "-0", "0.1", "-1.5", "123456789", "1e308"} {
			_, err := c.Float64(MustParse(s))
			require.NoError(t, err, "Float64(%q)", s)
		}
		for _, s := range []string{"1.000000000000000000001", "1e400", "1e-400", "0.1000000000000000000001"} {
			_, err := c.Float64(MustParse(s))
			require.ErrorIs(t, err, ErrImpreciseConversion, "Float64(%q)", s)
		}
	})
}

func TestDecimal_Format(t *testing.T) {
	tests := []struct {
		format, d, want string
	}{
		{"%v", "-123.456", "-123.456"},
		{"%s", "1e21", "1e+21"},
		{"%q", "-123.456", `"-123.456"`},
		{"%f", "-123.456", "-123.456"},
		{"%.2f", "-123.456", "-123.46"},
		{"%.5f", "1.5", "1.50000"},
		{"%e", "-123.456", "-1.23456e+2"},
		{"%.2e", "-123.456", "-1.23e+2"},
		{"%E", "-123.456", "-1.23456E+2"},
		{"%.4g", "-123.456", "-123.5"},
		{"%.2G", "123456", "1.2E+5"},
		{"%+v", "123", "+123"},
		{"% v", "123", " 123"},
		{"%+v", "-123", "-123"},
		{"%8v", "1.5", "     1.5"},
		{"%-8v|", "1.5", "1.5     |"},
		{"%08v", "-1.5", "-00001.5"},
		{"%+8.1f", "2.25", "    +2.3"},
		{"%10q", "1.5", `     "1.5"`},
		{"%x", "1.5", "%!x(bigdecimal.Decimal=1.5)"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, MustParse(tt.d))
		assert.Equal(t, tt.want, got, "Sprintf(%q, %q)", tt.format, tt.d)
	}
}

func TestDecimal_Text(t *testing.T) {
	d := MustParse("-1.50")
	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "-1.5", string(text))

	var e Decimal
	require.NoError(t, e.UnmarshalText([]byte("2.5e-10")))
	assert.Equal(t, "2.5e-10", e.String())
	require.ErrorIs(t, e.UnmarshalText([]byte("x")), ErrInvalidNumber)
}

func TestDecimal_JSON(t *testing.T) {
	type payment struct {
		Amount Decimal `json:"amount"`
	}

	t.Run("marshal", func(t *testing.T) {
		data, err := json.Marshal(payment{Amount: MustParse("-12.30")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"amount":"-12.3"}`, string(data))
	})

	t.Run("unmarshal", func(t *testing.T) {
		tests := []struct {
			data, want string
		}{
			{`{"amount":"1.5"}`, "1.5"},
			{`{"amount":1.5}`, "1.5"},
			{`{"amount":-2e25}`, "-2e+25"},
			{`{"amount":null}`, "0"},
			{`{}`, "0"},
		}
		for _, tt := range tests {
			var p payment
			require.NoError(t, json.Unmarshal([]byte(tt.data), &p), "Unmarshal(%s)", tt.data)
			assert.Equal(t, tt.want, p.Amount.String(), "Unmarshal(%s)", tt.data)
		}
	})

	t.Run("error", func(t *testing.T) {
		var p payment
		err := json.Unmarshal([]byte(`{"amount":"abc"}`), &p)
		require.ErrorIs(t, err, ErrInvalidNumber)
	})
}
