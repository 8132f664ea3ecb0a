package bigdecimal

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// RoundingMode determines how a value is rounded when digits are discarded.
type RoundingMode int8

const (
	RoundTowardZero   RoundingMode = iota // truncate, never round up
	RoundHalfUp                           // to nearest, ties away from zero
	RoundHalfEven                         // to nearest, ties to even
	RoundAwayFromZero                     // round up on any nonzero excess
)

// String implements the [fmt.Stringer] interface.
func (m RoundingMode) String() string {
	switch m {
	case RoundTowardZero:
		return "toward-zero"
	case RoundHalfUp:
		return "half-up"
	case RoundHalfEven:
		return "half-even"
	case RoundAwayFromZero:
		return "away-from-zero"
	}
	return "RoundingMode(" + strconv.Itoa(int(m)) + ")"
}

func (m RoundingMode) valid() bool {
	return RoundTowardZero <= m && m <= RoundAwayFromZero
}

// ParseRoundingMode converts a rounding mode name to a [RoundingMode].
// Names are case-insensitive.
// Besides the names returned by [RoundingMode.String], the following aliases
// are accepted: "down", "up", "round_down", "round_half_up", "round_half_even",
// and "round_up".
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toward-zero", "down", "round_down":
		return RoundTowardZero, nil
	case "half-up", "round_half_up":
		return RoundHalfUp, nil
	case "half-even", "round_half_even":
		return RoundHalfEven, nil
	case "away-from-zero", "up", "round_up":
		return RoundAwayFromZero, nil
	}
	return 0, errors.Wrapf(ErrInvalidRoundingMode, "%q", s)
}

// Limits of the [Context] fields.
const (
	MaxDecimalPlaces = 1_000_000 // upper bound of Context.MaxDecimalPlaces
	MaxPower         = 1_000_000 // upper bound of Context.MaxPower
	MaxExpThreshold  = 1_000_000 // bound of Context.NegExpThreshold and Context.PosExpThreshold
)

// Context carries the settings used by operations that may need rounding or
// that depend on notation thresholds.
// It is a plain value: copying a context clones it, and methods never modify
// the receiver, so a single context can be used by multiple goroutines.
type Context struct {
	// DecimalPlaces is the maximum number of digits after the decimal point
	// in results of Quo, Sqrt and Pow with a negative exponent.
	DecimalPlaces int
	// Rounding is the rounding mode used by Quo, Sqrt, Pow, Round, Prec
	// and the formatting methods.
	Rounding RoundingMode
	// MaxDecimalPlaces bounds DecimalPlaces and the decimal places or
	// significant digits arguments of Round, Prec and the formatting methods.
	MaxDecimalPlaces int
	// MaxPower bounds the magnitude of the exponent argument of Pow.
	MaxPower int
	// NegExpThreshold is the exponent at and beneath which String
	// returns exponential notation.
	NegExpThreshold int
	// PosExpThreshold is the exponent at and above which String
	// returns exponential notation.
	PosExpThreshold int
	// Strict disallows lossy operations: creating a value from int64 or
	// float64, ValueOf, and Float64 conversions that lose precision.
	Strict bool
}

// DefaultContext returns the default settings:
//
//	| Field            | Value     |
//	| ---------------- | --------- |
//	| DecimalPlaces    | 20        |
//	| Rounding         | half-up   |
//	| MaxDecimalPlaces | 1,000,000 |
//	| MaxPower         | 1,000,000 |
//	| NegExpThreshold  | -7        |
//	| PosExpThreshold  | 21        |
//	| Strict           | false     |
func DefaultContext() Context {
	return Context{
		DecimalPlaces:    20,
		Rounding:         RoundHalfUp,
		MaxDecimalPlaces: MaxDecimalPlaces,
		MaxPower:         MaxPower,
		NegExpThreshold:  -7,
		PosExpThreshold:  21,
		Strict:           false,
	}
}

// Option modifies a context created by [NewContext].
type Option func(c *Context)

// WithDecimalPlaces sets Context.DecimalPlaces.
func WithDecimalPlaces(dp int) Option {
	return func(c *Context) {
		c.DecimalPlaces = dp
	}
}

// WithRounding sets Context.Rounding.
func WithRounding(mode RoundingMode) Option {
	return func(c *Context) {
		c.Rounding = mode
	}
}

// WithMaxDecimalPlaces sets Context.MaxDecimalPlaces.
func WithMaxDecimalPlaces(n int) Option {
	return func(c *Context) {
		c.MaxDecimalPlaces = n
	}
}

// WithMaxPower sets Context.MaxPower.
func WithMaxPower(n int) Option {
	return func(c *Context) {
		c.MaxPower = n
	}
}

// WithExpThresholds sets Context.NegExpThreshold and Context.PosExpThreshold.
func WithExpThresholds(neg, pos int) Option {
	return func(c *Context) {
		c.NegExpThreshold = neg
		c.PosExpThreshold = pos
	}
}

// WithStrict sets Context.Strict.
func WithStrict(strict bool) Option {
	return func(c *Context) {
		c.Strict = strict
	}
}

// NewContext returns the default context modified by opts.
// NewContext returns an error if the resulting context is not valid,
// see [Context.Validate].
func NewContext(opts ...Option) (Context, error) {
	c := DefaultContext()
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if err := c.Validate(); err != nil {
		return Context{}, err
	}
	return c, nil
}

// Validate checks that all fields of c are within their limits.
func (c Context) Validate() error {
	switch {
	case c.MaxDecimalPlaces < 0 || c.MaxDecimalPlaces > MaxDecimalPlaces:
		return errors.Wrapf(ErrInvalidContext, "max decimal places %v out of range [0, %v]", c.MaxDecimalPlaces, MaxDecimalPlaces)
	case c.MaxPower < 0 || c.MaxPower > MaxPower:
		return errors.Wrapf(ErrInvalidContext, "max power %v out of range [0, %v]", c.MaxPower, MaxPower)
	case c.NegExpThreshold < -MaxExpThreshold || c.NegExpThreshold > 0:
		return errors.Wrapf(ErrInvalidContext, "negative exponent threshold %v out of range [%v, 0]", c.NegExpThreshold, -MaxExpThreshold)
	case c.PosExpThreshold < 0 || c.PosExpThreshold > MaxExpThreshold:
		return errors.Wrapf(ErrInvalidContext, "positive exponent threshold %v out of range [0, %v]", c.PosExpThreshold, MaxExpThreshold)
	case !c.Rounding.valid():
		return errors.Wrapf(ErrInvalidRoundingMode, "%v", c.Rounding)
	}
	return c.checkDecimalPlaces()
}

// checkDecimalPlaces validates the DecimalPlaces field.
func (c Context) checkDecimalPlaces() error {
	if c.DecimalPlaces < 0 || c.DecimalPlaces > c.MaxDecimalPlaces {
		return errors.Wrapf(ErrInvalidDecimalPlaces, "%v out of range [0, %v]", c.DecimalPlaces, c.MaxDecimalPlaces)
	}
	return nil
}

// checkRounding validates the Rounding field.
func (c Context) checkRounding() error {
	if !c.Rounding.valid() {
		return errors.Wrapf(ErrInvalidRoundingMode, "%v", c.Rounding)
	}
	return nil
}

// useExponential returns true if a value with exponent exp is rendered
// in exponential notation by String.
func (c Context) useExponential(exp int) bool {
	return exp <= c.NegExpThreshold || exp >= c.PosExpThreshold
}
