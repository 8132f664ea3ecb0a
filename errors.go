package bigdecimal

import "github.com/pkg/errors"

// Errors returned by parsing, arithmetic, rounding and conversion.
// Returned errors wrap one of these values and can be tested with [errors.Is].
var (
	ErrInvalidNumber        = errors.New("invalid number")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrInvalidDecimalPlaces = errors.New("invalid decimal places")
	ErrInvalidExponent      = errors.New("invalid exponent")
	ErrInvalidPrecision     = errors.New("invalid precision")
	ErrInvalidOperation     = errors.New("invalid operation")
	ErrImpreciseConversion  = errors.New("imprecise conversion")
	ErrStrictViolation      = errors.New("strict mode violation")
	ErrInvalidRoundingMode  = errors.New("invalid rounding mode")
	ErrInvalidContext       = errors.New("invalid context")
)
