package numeric

import (
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

const (
	// GuardDigits is the number of significant digits kept by price division.
	GuardDigits = 40

	// DefaultPriceDecimals is the number of fractional digits shown for a price.
	DefaultPriceDecimals int32 = 10

	// InfiniteLabel is shown for a price whose denominator is zero.
	InfiniteLabel = "∞"
)

var hundred = decimal.NewFromInt(100)

// Price is the exchange rate between two token amounts after decimal normalization.
// Infinite is set when a non-zero amount was divided by zero; Value is then zero.
type Price struct {
	Value    decimal.Decimal
	Infinite bool
}

// Equal reports whether two prices are the same number.
func (p Price) Equal(other Price) bool {
	if p.Infinite || other.Infinite {
		return p.Infinite == other.Infinite
	}
	return p.Value.Equal(other.Value)
}

func (p Price) String() string {
	if p.Infinite {
		return InfiniteLabel
	}
	return p.Value.String()
}

// CalculatePrice returns numerator/denominator with both sides brought to the same
// implied precision first.
//
// 0/0 is 1 (two empty sides trade at par); x/0 is Infinite.
func CalculatePrice(numerator, denominator *uint256.Int, decimalsNumerator, decimalsDenominator int32) Price {
	n, d := ToDecimal(numerator), ToDecimal(denominator)

	if d.IsZero() {
		if n.IsZero() {
			return Price{Value: decimal.NewFromInt(1)}
		}
		return Price{Infinite: true}
	}

	diff := decimalsNumerator - decimalsDenominator
	if diff < 0 {
		diff = -diff
	}

	if decimalsNumerator > decimalsDenominator {
		return Price{Value: divide(n, d).Shift(-diff)}
	}
	return Price{Value: divide(n, d.Shift(-diff))}
}

// FormatPrice renders a price with DefaultPriceDecimals fractional digits and an
// optional currency suffix.
func FormatPrice(p Price, opts ...Option) string {
	o := newOptions(opts)

	var s string
	if p.Infinite {
		s = InfiniteLabel
	} else {
		decimals := DefaultPriceDecimals
		if o.decimals != nil {
			decimals = *o.decimals
		}
		s = formatAmount(p.Value, decimals, o)
	}

	if o.currency != "" {
		return s + " " + o.currency
	}
	return s
}

// FormatPercentage renders value as a percentage of total with two fractional digits.
// An unlimited or zero total has no meaningful percentage and yields "".
func FormatPercentage(value, total *uint256.Int) string {
	if IsUnlimited(total) || total == nil || total.IsZero() {
		return ""
	}
	pct := divide(ToDecimal(value).Mul(hundred), ToDecimal(total))
	return FormatAmount(pct, 2) + "%"
}

// divide returns n/d rounded to GuardDigits significant digits. The precision is
// derived from the exact magnitude of the ratio, so n*k/d*k gives the same result.
// d must be non-zero.
func divide(n, d decimal.Decimal) decimal.Decimal {
	if n.IsZero() {
		return decimal.Zero
	}

	// n/d lies in [10^e, 10^(e+1)).
	e := magnitude(n) - magnitude(d)
	if n.Abs().Cmp(d.Abs().Shift(e)) < 0 {
		e--
	}

	precision := GuardDigits - 1 - e
	if precision < 0 {
		precision = 0
	}
	return n.DivRound(d, precision)
}

// magnitude is the power of ten of the leading digit of a non-zero decimal.
func magnitude(v decimal.Decimal) int32 {
	digits := len(v.Coefficient().String())
	if v.Sign() < 0 {
		digits--
	}
	return int32(digits) + v.Exponent() - 1
}
