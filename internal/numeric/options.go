package numeric

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RoundingMode selects how a value is cut down to a fixed number of fractional digits.
type RoundingMode int

const (
	// RoundDown truncates toward zero. Amounts are never rounded up by default.
	RoundDown RoundingMode = iota
	// RoundUp rounds away from zero.
	RoundUp
	// RoundHalfUp rounds to nearest, ties away from zero.
	RoundHalfUp
	// RoundHalfEven rounds to nearest, ties to even (banker's rounding).
	RoundHalfEven
	// RoundFloor rounds toward negative infinity.
	RoundFloor
	// RoundCeiling rounds toward positive infinity.
	RoundCeiling
)

var roundingNames = map[RoundingMode]string{
	RoundDown:     "down",
	RoundUp:       "up",
	RoundHalfUp:   "half-up",
	RoundHalfEven: "half-even",
	RoundFloor:    "floor",
	RoundCeiling:  "ceiling",
}

func (m RoundingMode) String() string {
	if name, ok := roundingNames[m]; ok {
		return name
	}
	return fmt.Sprintf("RoundingMode(%d)", int(m))
}

// ParseRoundingMode maps a name such as "down" or "half-even" to a RoundingMode.
func ParseRoundingMode(name string) (RoundingMode, error) {
	for mode, n := range roundingNames {
		if n == name {
			return mode, nil
		}
	}
	return RoundDown, fmt.Errorf("unknown rounding mode %q", name)
}

func (m RoundingMode) apply(v decimal.Decimal, places int32) decimal.Decimal {
	switch m {
	case RoundUp:
		return v.RoundUp(places)
	case RoundHalfUp:
		return v.Round(places)
	case RoundHalfEven:
		return v.RoundBank(places)
	case RoundFloor:
		return v.RoundFloor(places)
	case RoundCeiling:
		return v.RoundCeil(places)
	default:
		return v.Truncate(places)
	}
}

// Option configures a formatting call.
type Option func(*options)

type options struct {
	rounding       RoundingMode
	grouping       bool
	unlimitedLabel string
	currency       string
	decimals       *int32
}

func newOptions(opts []Option) options {
	o := options{
		rounding:       RoundDown,
		unlimitedLabel: DefaultUnlimitedLabel,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithRounding sets the rounding mode (default RoundDown).
func WithRounding(mode RoundingMode) Option {
	return func(o *options) {
		o.rounding = mode
	}
}

// WithGrouping inserts comma thousands separators into the integer part.
func WithGrouping(enabled bool) Option {
	return func(o *options) {
		o.grouping = enabled
	}
}

// WithUnlimitedLabel sets the text shown for MaxAmount.
func WithUnlimitedLabel(label string) Option {
	return func(o *options) {
		o.unlimitedLabel = label
	}
}

// WithCurrency appends " <label>" to a formatted price.
func WithCurrency(label string) Option {
	return func(o *options) {
		o.currency = label
	}
}

// WithDecimals overrides the number of fractional digits of a formatted price.
func WithDecimals(n int32) Option {
	return func(o *options) {
		o.decimals = &n
	}
}
