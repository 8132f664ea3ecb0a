package bigdecimal

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// appendDecimal appends the text of a decimal with sign neg, exponent exp
// and coefficient coef to buf.
// The coefficient may contain trailing zeros, they are rendered as is.
// The minus sign is written only if signed is true.
//
// Exponential notation:
//
//	d[.ddd]e+n
//	d[.ddd]e-n
//
// Normal notation never uses an exponent and writes a leading zero for
// values less than one.
func appendDecimal(buf []byte, neg bool, exp int, coef coefficient, exponential, signed bool) []byte {
	if neg && signed {
		buf = append(buf, '-')
	}
	n := len(coef)

	// Exponential notation
	if exponential {
		buf = append(buf, coef[0]+'0')
		if n > 1 {
			buf = append(buf, '.')
			buf = coef[1:].appendText(buf)
		}
		buf = append(buf, 'e')
		if exp >= 0 {
			buf = append(buf, '+')
		}
		return strconv.AppendInt(buf, int64(exp), 10)
	}

	// Normal notation
	switch {
	case exp < 0:
		buf = append(buf, '0', '.')
		for i := -1; i > exp; i-- {
			buf = append(buf, '0')
		}
		buf = coef.appendText(buf)
	case exp+1 >= n:
		// Integer, possibly with trailing zeros
		buf = coef.appendText(buf)
		for i := n; i <= exp; i++ {
			buf = append(buf, '0')
		}
	default:
		buf = coef[:exp+1].appendText(buf)
		buf = append(buf, '.')
		buf = coef[exp+1:].appendText(buf)
	}
	return buf
}

// expText returns d in exponential notation, always signed.
func (d Decimal) expText() string {
	return string(appendDecimal(nil, d.neg, d.Exp(), d.digits(), true, true))
}

// String returns d in normal notation, or in exponential notation if the
// exponent of d is less than or equal to c.NegExpThreshold or greater than
// or equal to c.PosExpThreshold.
// Negative zero is rendered as "0".
func (c Context) String(d Decimal) string {
	exp := d.Exp()
	return string(appendDecimal(nil, d.neg, exp, d.digits(), c.useExponential(exp), !d.IsZero()))
}

// ValueOf is like [Context.String], but it keeps the sign of negative zero.
//
// ValueOf returns [ErrStrictViolation] if c.Strict is set.
func (c Context) ValueOf(d Decimal) (string, error) {
	if c.Strict {
		return "", errors.Wrapf(ErrStrictViolation, "ValueOf(%v)", d)
	}
	exp := d.Exp()
	return string(appendDecimal(nil, d.neg, exp, d.digits(), c.useExponential(exp), true)), nil
}

// Fixed returns d in normal notation rounded to dp digits after the decimal
// point using c.Rounding and padded with trailing zeros.
// If dp is -1, d is rendered without rounding.
// The minus sign is kept when a nonzero negative value rounds to zero,
// for example -0.1 with 0 decimal places is "-0", but negative zero with
// 1 decimal place is "0.0".
//
// Fixed returns [ErrInvalidDecimalPlaces] if dp is not -1 and is outside of
// [0, c.MaxDecimalPlaces].
func (c Context) Fixed(d Decimal, dp int) (string, error) {
	signed := !d.IsZero()
	if dp == -1 {
		return string(appendDecimal(nil, d.neg, d.Exp(), d.digits(), false, signed)), nil
	}
	if dp < 0 || dp > c.MaxDecimalPlaces {
		return "", errors.Wrapf(ErrInvalidDecimalPlaces, "Fixed(%v, %v): out of range [0, %v]", d, dp, c.MaxDecimalPlaces)
	}
	if err := c.checkRounding(); err != nil {
		return "", errors.Wrapf(err, "Fixed(%v, %v)", d, dp)
	}
	z := round(d, dp+d.Exp()+1, c.Rounding, false)
	exp := z.Exp()
	coef := z.digits().padded(dp + exp + 1)
	return string(appendDecimal(nil, d.neg, exp, coef, false, signed)), nil
}

// Exponential returns d in exponential notation rounded to dp digits after
// the decimal point of the significand using c.Rounding and padded with
// trailing zeros.
// If dp is -1, d is rendered without rounding.
//
// Exponential returns [ErrInvalidDecimalPlaces] if dp is not -1 and is
// outside of [0, c.MaxDecimalPlaces].
func (c Context) Exponential(d Decimal, dp int) (string, error) {
	signed := !d.IsZero()
	if dp == -1 {
		return string(appendDecimal(nil, d.neg, d.Exp(), d.digits(), true, signed)), nil
	}
	if dp < 0 || dp > c.MaxDecimalPlaces {
		return "", errors.Wrapf(ErrInvalidDecimalPlaces, "Exponential(%v, %v): out of range [0, %v]", d, dp, c.MaxDecimalPlaces)
	}
	if err := c.checkRounding(); err != nil {
		return "", errors.Wrapf(err, "Exponential(%v, %v)", d, dp)
	}
	z := round(d, dp+1, c.Rounding, false)
	coef := z.digits().padded(dp + 1)
	return string(appendDecimal(nil, d.neg, z.Exp(), coef, true, signed)), nil
}

// Precision returns d rounded to sd significant digits using c.Rounding and
// padded with trailing zeros.
// Exponential notation is used if sd is less than or equal to the exponent
// of the rounded value, that is when the integer part does not fit into sd
// digits, or if c.String would use it.
// If sd is -1, d is rendered without rounding.
//
// Precision returns [ErrInvalidPrecision] if sd is not -1 and is outside of
// [1, c.MaxDecimalPlaces].
func (c Context) Precision(d Decimal, sd int) (string, error) {
	signed := !d.IsZero()
	if sd == -1 {
		exp := d.Exp()
		return string(appendDecimal(nil, d.neg, exp, d.digits(), c.useExponential(exp), signed)), nil
	}
	if sd < 1 || sd > c.MaxDecimalPlaces {
		return "", errors.Wrapf(ErrInvalidPrecision, "Precision(%v, %v): out of range [1, %v]", d, sd, c.MaxDecimalPlaces)
	}
	if err := c.checkRounding(); err != nil {
		return "", errors.Wrapf(err, "Precision(%v, %v)", d, sd)
	}
	z := round(d, sd, c.Rounding, false)
	exp := z.Exp()
	coef := z.digits().padded(sd)
	return string(appendDecimal(nil, d.neg, exp, coef, sd <= exp || c.useExponential(exp), signed)), nil
}

// Float64 returns the nearest binary floating-point number to d.
// Values beyond the range of float64 become infinities or zeros
// of the same sign.
//
// If c.Strict is set, Float64 returns [ErrImpreciseConversion] unless
// the float64 value converts back to a decimal equal to d.
func (c Context) Float64(d Decimal) (float64, error) {
	f, _ := strconv.ParseFloat(d.expText(), 64)
	if c.Strict {
		e, ok := parse(strconv.FormatFloat(f, 'g', -1, 64))
		if !ok || !e.Equal(d) {
			return 0, errors.Wrapf(ErrImpreciseConversion, "Float64(%v)", d)
		}
	}
	return f, nil
}

// String implements the [fmt.Stringer] interface and returns d formatted
// by [Context.String] with the thresholds of [DefaultContext].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	return DefaultContext().String(d)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalJSON implements [json.Unmarshaler] interface.
// Both JSON strings and JSON numbers are accepted, null leaves d unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if n := len(s); n >= 2 && s[0] == '"' && s[n-1] == '"' {
		s = s[1 : n-1]
	}
	var err error
	*d, err = Parse(s)
	return err
}

// MarshalJSON implements [json.Marshaler] interface.
// The decimal is written as a JSON string to preserve all its digits.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Decimal) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, len(d.coef)+8)
	buf = append(buf, '"')
	buf = append(buf, d.String()...)
	buf = append(buf, '"')
	return buf, nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -123.456     (Context.String)
//	%q:     "-123.456"
//	%f, %F: -123.456000  (Context.Fixed)
//	%e, %E: -1.23456e+2  (Context.Exponential)
//	%g, %G: -123.46      (Context.Precision)
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is supported for %f, %e and %g verbs.
// Without precision the value is rendered without rounding.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {
	c := DefaultContext()

	// Body
	var (
		body string
		err  error
	)
	prec, ok := state.Precision()
	if !ok {
		prec = -1
	}
	switch verb {
	case 's', 'S', 'v', 'V', 'q', 'Q':
		body = c.String(d)
	case 'f', 'F':
		body, err = c.Fixed(d, prec)
	case 'e', 'E':
		body, err = c.Exponential(d, prec)
	case 'g', 'G':
		if prec == 0 {
			prec = 1
		}
		body, err = c.Precision(d, prec)
	default:
		err = fmt.Errorf("unsupported verb %q", verb)
	}
	if err != nil {
		fmt.Fprintf(state, "%%!%c(bigdecimal.Decimal=%s)", verb, d.String())
		return
	}
	if verb == 'E' || verb == 'G' {
		for i := 0; i < len(body); i++ {
			if body[i] == 'e' {
				body = body[:i] + "E" + body[i+1:]
				break
			}
		}
	}

	// Arithmetic sign
	neg := len(body) > 0 && body[0] == '-'
	if neg {
		body = body[1:]
	}
	rsign := 0
	if neg || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + len(body) + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		switch {
		case neg:
			buf = append(buf, '-')
		case state.Flag(' '):
			buf = append(buf, ' ')
		default:
			buf = append(buf, '+')
		}
	}
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, body...)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	state.Write(buf)
}
