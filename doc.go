/*
Package bigdecimal implements immutable arbitrary-precision decimal numbers.
Addition, subtraction and multiplication are always exact, while division,
square root and negative powers are rounded to a configurable number of
decimal places.

# Representation

[Decimal] is a struct with three fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Coefficient: a sequence of decimal digits without leading or trailing zeros.
  - Exponent: the power-of-ten weight of the first digit of the coefficient.
    For example, a decimal with a coefficient of [1 2 3 4 5] and an exponent
    of 2 represents the value 123.45.

The numerical value of a decimal is calculated as:

  - -0.Coefficient * 10^(Exponent+1), if Sign is true.
  - 0.Coefficient * 10^(Exponent+1), if Sign is false.

Since trailing zeros are removed, 1, 1.0, and 1.00 have the same
representation.
The number of digits is limited only by memory.
Zero can be positive or negative, see [Decimal.IsNegZero].
Special values such as [NaN] or [Infinity] are not supported.

# Context

Operations that may produce an infinite number of digits, and the formatting
methods that round, belong to [Context]:

	| Field            | Default   | Description                                      |
	| ---------------- | --------- | ------------------------------------------------ |
	| DecimalPlaces    | 20        | digits after the point in Quo, Sqrt, Pow results |
	| Rounding         | half-up   | rounding mode                                    |
	| MaxDecimalPlaces | 1,000,000 | bound of decimal places and precision arguments  |
	| MaxPower         | 1,000,000 | bound of the exponent of Pow                     |
	| NegExpThreshold  | -7        | exponent at which String switches to e-notation  |
	| PosExpThreshold  | 21        | exponent at which String switches to e-notation  |
	| Strict           | false     | disallow lossy conversions                       |

A context is a plain value.
Use [DefaultContext] or [NewContext] to create one, and copy it to derive
another.
Methods never modify the context, so a single context can be shared between
goroutines.

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [Context.Parse], [Decimal.String], [Context.String],
    [Context.Fixed], [Context.Exponential], [Context.Precision],
    [Context.ValueOf], [Decimal.Format].
  - from/to float64:
    [Context.NewFromFloat64], [Context.Float64].
  - from/to int64:
    [Context.NewFromInt64], [Decimal.Int64].
  - from/to [big.Int]:
    [Context.NewFromBigInt], [Decimal.BigInt].

In strict mode, conversions from int64 and float64, [Context.ValueOf],
and inexact [Context.Float64] conversions return an error.

# Operations

  - exact:
    [Decimal.Add], [Decimal.Sub], [Decimal.Mul], [Decimal.Neg], [Decimal.Abs],
    [Context.Pow] with a non-negative exponent.
  - rounded to Context.DecimalPlaces:
    [Context.Quo], [Context.Sqrt], [Context.Pow] with a negative exponent.
  - truncated division:
    [Context.Mod], [Context.QuoRem].

# Rounding

The following rounding modes are supported:

	| Mode              | 2.5 | -2.5 | 3.5 | 2.51 | 2.49 |
	| ----------------- | --- | ---- | --- | ---- | ---- |
	| RoundTowardZero   | 2   | -2   | 3   | 2    | 2    |
	| RoundHalfUp       | 3   | -3   | 4   | 3    | 2    |
	| RoundHalfEven     | 2   | -2   | 4   | 3    | 2    |
	| RoundAwayFromZero | 3   | -3   | 4   | 3    | 3    |

Explicit rounding is provided by [Context.Round] for decimal places and
[Context.Prec] for significant digits.
[Decimal.Trunc] discards the fractional part.

# Errors

All methods except the Must helpers are panic-free and pure.
Returned errors wrap one of the exported Err values and can be tested
with [errors.Is]:

  - [ErrInvalidNumber]: the text or argument is not a number.
  - [ErrDivisionByZero]: the divisor is zero, including zero raised
    to a negative power.
  - [ErrInvalidDecimalPlaces], [ErrInvalidPrecision], [ErrInvalidExponent]:
    an argument or context field is out of range.
  - [ErrInvalidOperation]: square root of a negative number.
  - [ErrStrictViolation], [ErrImpreciseConversion]: strict mode.

[Infinity]: https://en.wikipedia.org/wiki/Infinity#Computing
[NaN]: https://en.wikipedia.org/wiki/NaN
[big.Int]: https://pkg.go.dev/math/big#Int
[errors.Is]: https://pkg.go.dev/errors#Is
*/
package bigdecimal
