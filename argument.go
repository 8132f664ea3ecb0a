package bigdecimal

import (
	"math"
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

type argKind int8

const (
	argString argKind = iota
	argInt64
	argFloat64
	argBigInt
	argDecimal
)

// Arg is a number in one of the forms accepted by [Context.New]:
// a string, an int64, a float64, a *big.Int or a [Decimal].
// Use [StringArg], [Int64Arg], [Float64Arg], [BigIntArg] and [DecimalArg]
// to create one.
type Arg struct {
	kind argKind
	s    string
	i    int64
	f    float64
	b    *big.Int
	d    Decimal
}

// StringArg returns an argument holding the text s in the format accepted
// by [Parse].
func StringArg(s string) Arg {
	return Arg{kind: argString, s: s}
}

// Int64Arg returns an argument holding the integer i.
func Int64Arg(i int64) Arg {
	return Arg{kind: argInt64, i: i}
}

// Float64Arg returns an argument holding the binary floating-point number f.
func Float64Arg(f float64) Arg {
	return Arg{kind: argFloat64, f: f}
}

// BigIntArg returns an argument holding the integer b.
func BigIntArg(b *big.Int) Arg {
	return Arg{kind: argBigInt, b: b}
}

// DecimalArg returns an argument holding the decimal d.
func DecimalArg(d Decimal) Arg {
	return Arg{kind: argDecimal, d: d}
}

// String implements the [fmt.Stringer] interface.
func (a Arg) String() string {
	switch a.kind {
	case argInt64:
		return strconv.FormatInt(a.i, 10)
	case argFloat64:
		return strconv.FormatFloat(a.f, 'g', -1, 64)
	case argBigInt:
		if a.b == nil {
			return "<nil>"
		}
		return a.b.String()
	case argDecimal:
		return a.d.String()
	}
	return strconv.Quote(a.s)
}

// New converts an argument to a decimal.
//
//   - A string is parsed with [Parse].
//   - An int64 is converted exactly.
//   - A float64 is converted from its shortest decimal representation that
//     converts back to the same float64, so 0.1 becomes exactly 0.1.
//     Negative zero stays negative.
//   - A *big.Int is converted exactly.
//   - A decimal is copied.
//
// New returns an error if:
//   - the string is empty or does not match the grammar, the float64 is not
//     finite, or the *big.Int is nil ([ErrInvalidNumber]);
//   - c.Strict is set and the argument is an int64 or a float64
//     ([ErrStrictViolation]).
func (c Context) New(a Arg) (Decimal, error) {
	var s string
	switch a.kind {
	case argString:
		if a.s == "" {
			return Decimal{}, errors.Wrapf(ErrInvalidNumber, "New(%v): empty string", a)
		}
		s = a.s
	case argInt64:
		if c.Strict {
			return Decimal{}, errors.Wrapf(ErrStrictViolation, "New(%v): int64 value", a)
		}
		s = strconv.FormatInt(a.i, 10)
	case argFloat64:
		if c.Strict {
			return Decimal{}, errors.Wrapf(ErrStrictViolation, "New(%v): float64 value", a)
		}
		if math.IsNaN(a.f) || math.IsInf(a.f, 0) {
			return Decimal{}, errors.Wrapf(ErrInvalidNumber, "New(%v)", a)
		}
		if a.f == 0 && math.Signbit(a.f) {
			s = "-0"
		} else {
			s = strconv.FormatFloat(a.f, 'g', -1, 64)
		}
	case argBigInt:
		if a.b == nil {
			return Decimal{}, errors.Wrapf(ErrInvalidNumber, "New(%v)", a)
		}
		s = a.b.String()
	case argDecimal:
		d := a.d
		return Decimal{neg: d.neg, exp: d.Exp(), coef: d.digits().clone()}, nil
	}

	d, ok := parse(s)
	if !ok {
		return Decimal{}, errors.Wrapf(ErrInvalidNumber, "New(%v)", a)
	}
	return d, nil
}

// Parse is like [Context.New] with a [StringArg].
func (c Context) Parse(s string) (Decimal, error) {
	return c.New(StringArg(s))
}

// NewFromInt64 is like [Context.New] with an [Int64Arg].
func (c Context) NewFromInt64(i int64) (Decimal, error) {
	return c.New(Int64Arg(i))
}

// NewFromFloat64 is like [Context.New] with a [Float64Arg].
func (c Context) NewFromFloat64(f float64) (Decimal, error) {
	return c.New(Float64Arg(f))
}

// NewFromBigInt is like [Context.New] with a [BigIntArg].
func (c Context) NewFromBigInt(b *big.Int) (Decimal, error) {
	return c.New(BigIntArg(b))
}
