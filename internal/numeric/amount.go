package numeric

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

const (
	// MaxAmountString is 2^128-1, the indexer's "no cap" value.
	MaxAmountString = "340282366920938463463374607431768211455"

	// OWLDecimals is the decimal scale of the settlement token.
	OWLDecimals int32 = 18

	// DefaultDecimals applies when a token does not report its decimals.
	DefaultDecimals int32 = 18

	// DefaultUnlimitedLabel is shown instead of MaxAmount.
	DefaultUnlimitedLabel = "Unlimited"
)

var maxAmount = uint256.MustFromDecimal(MaxAmountString)

// Parse errors for raw amounts.
var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("negative amount")
	ErrAmountOverflow = errors.New("amount exceeds 256 bits")
)

// MaxAmount returns a fresh copy of the unlimited sentinel.
func MaxAmount() *uint256.Int {
	return new(uint256.Int).Set(maxAmount)
}

// IsUnlimited reports whether raw is exactly the unlimited sentinel.
func IsUnlimited(raw *uint256.Int) bool {
	return raw != nil && raw.Eq(maxAmount)
}

// ParseAmount parses a base-10 integer string into a raw amount.
func ParseAmount(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if b.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNegativeAmount, s)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return nil, fmt.Errorf("%w: %q", ErrAmountOverflow, s)
	}
	return v, nil
}

// ParseDecimals parses a token's decimals field. Empty means DefaultDecimals.
func ParseDecimals(s string) (int32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultDecimals, nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse decimals %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("parse decimals %q: must be >= 0", s)
	}
	return int32(n), nil
}

// ToDecimal converts a raw amount to an integral decimal. nil is zero.
func ToDecimal(raw *uint256.Int) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(raw.ToBig(), 0)
}

// FormatAmount renders value with at most decimals fractional digits.
// Trailing fractional zeros and a dangling point are removed.
func FormatAmount(value decimal.Decimal, decimals int32, opts ...Option) string {
	return formatAmount(value, decimals, newOptions(opts))
}

func formatAmount(value decimal.Decimal, decimals int32, o options) string {
	if decimals < 0 {
		decimals = 0
	}
	rounded := o.rounding.apply(value, decimals)
	s := trimFraction(rounded.StringFixed(decimals))
	if o.grouping {
		s = groupThousands(s)
	}
	return s
}

// FormatAmountInWeis scales raw down by 10^decimals and formats it.
// The unlimited sentinel short-circuits to its label.
func FormatAmountInWeis(raw *uint256.Int, decimals int32, opts ...Option) string {
	o := newOptions(opts)
	if IsUnlimited(raw) {
		return o.unlimitedLabel
	}
	if decimals < 0 {
		decimals = 0
	}
	return formatAmount(ToDecimal(raw).Shift(-decimals), decimals, o)
}

// FormatInteger renders n with comma thousands separators.
func FormatInteger(n int64) string {
	return groupThousands(strconv.FormatInt(n, 10))
}

// FormatBigInteger renders a raw amount with comma thousands separators.
func FormatBigInteger(raw *uint256.Int) string {
	if raw == nil {
		return "0"
	}
	return groupThousands(raw.Dec())
}

func trimFraction(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return sign + s
	}

	var sb strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		sb.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}
	return sign + sb.String()
}
