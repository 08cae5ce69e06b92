package numeric

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePrice(t *testing.T) {
	tests := []struct {
		name         string
		numerator    string
		denominator  string
		decNum       int32
		decDen       int32
		want         string
		wantInfinite bool
	}{
		{"equal decimals plain ratio", "3000000", "1000000", 6, 6, "3", false},
		{"equal decimals fraction", "1", "4", 18, 18, "0.25", false},
		{"numerator has more decimals", "2000000000000000000", "1000000", 18, 6, "2", false},
		{"denominator has more decimals", "1000000", "500000000000000000", 6, 18, "2", false},
		{"zero numerator", "0", "12345", 18, 6, "0", false},
		{"empty both sides", "0", "0", 18, 6, "1", false},
		{"divide by zero", "5", "0", 18, 18, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePrice(mustAmount(t, tt.numerator), mustAmount(t, tt.denominator), tt.decNum, tt.decDen)
			if tt.wantInfinite {
				assert.True(t, got.Infinite)
				return
			}
			require.False(t, got.Infinite)
			assert.True(t, got.Value.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got.Value, tt.want)
		})
	}
}

// The equal-decimals case must divide by a factor of one, not skip normalization.
func TestCalculatePriceEqualDecimalsBranch(t *testing.T) {
	for d := int32(0); d <= 18; d++ {
		got := CalculatePrice(uint256.NewInt(3_000_000), uint256.NewInt(1_000_000), d, d)
		assert.True(t, got.Value.Equal(decimal.NewFromInt(3)), "decimals=%d got %s", d, got.Value)
	}
}

func TestCalculatePriceScaleInvariant(t *testing.T) {
	pairs := [][2]uint64{{1, 3}, {2, 7}, {10, 3}, {999, 1000}, {123456789, 987}, {1, 1}}
	scales := []uint64{2, 3, 7, 10, 1000, 123456789}
	decimals := [][2]int32{{18, 18}, {18, 6}, {6, 18}, {0, 8}}

	for _, p := range pairs {
		for _, k := range scales {
			for _, d := range decimals {
				base := CalculatePrice(uint256.NewInt(p[0]), uint256.NewInt(p[1]), d[0], d[1])
				scaled := CalculatePrice(
					new(uint256.Int).Mul(uint256.NewInt(p[0]), uint256.NewInt(k)),
					new(uint256.Int).Mul(uint256.NewInt(p[1]), uint256.NewInt(k)),
					d[0], d[1],
				)
				assert.True(t, base.Equal(scaled), "%d/%d k=%d dec=%v: %s != %s", p[0], p[1], k, d, base, scaled)
			}
		}
	}
}

func TestCalculatePriceKeepsGuardDigits(t *testing.T) {
	got := CalculatePrice(uint256.NewInt(1), uint256.NewInt(3), 18, 18)
	want := "0." + repeat('3', GuardDigits)
	assert.Equal(t, want, got.Value.String())

	// Tiny ratios keep their significant digits instead of collapsing to zero.
	tiny := CalculatePrice(uint256.NewInt(1), MaxAmount(), 0, 0)
	assert.False(t, tiny.Value.IsZero())
}

func TestCalculatePriceHugeAmounts(t *testing.T) {
	// Both sides above the float64 exact integer range.
	n := mustAmount(t, "340282366920938463463374607431768211454")
	d := mustAmount(t, "170141183460469231731687303715884105727")
	got := CalculatePrice(n, d, 18, 18)
	assert.True(t, got.Value.Equal(decimal.NewFromInt(2)), "got %s", got.Value)
}

func TestFormatPrice(t *testing.T) {
	third := CalculatePrice(uint256.NewInt(1), uint256.NewInt(3), 18, 18)
	two := CalculatePrice(uint256.NewInt(2), uint256.NewInt(1), 6, 6)

	assert.Equal(t, "0.3333333333", FormatPrice(third))
	assert.Equal(t, "0.3333333333 WETH", FormatPrice(third, WithCurrency("WETH")))
	assert.Equal(t, "0.34", FormatPrice(third, WithDecimals(2), WithRounding(RoundUp)))
	assert.Equal(t, "2 DAI", FormatPrice(two, WithCurrency("DAI")))
	assert.Equal(t, "∞ DAI", FormatPrice(Price{Infinite: true}, WithCurrency("DAI")))
	assert.Equal(t, "∞", FormatPrice(Price{Infinite: true}))
}

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		name  string
		value string
		total string
		want  string
	}{
		{"unlimited cap", "50", MaxAmountString, ""},
		{"zero total", "50", "0", ""},
		{"half", "50", "100", "50%"},
		{"truncated", "1", "3", "33.33%"},
		{"nothing sold", "0", "1000", "0%"},
		{"fully sold", "1000", "1000", "100%"},
		{"tiny share", "1", "1000000", "0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPercentage(mustAmount(t, tt.value), mustAmount(t, tt.total)))
		})
	}
}

func TestPriceString(t *testing.T) {
	assert.Equal(t, "∞", Price{Infinite: true}.String())
	assert.Equal(t, "1.5", Price{Value: decimal.RequireFromString("1.5")}.String())
	assert.False(t, Price{Infinite: true}.Equal(Price{Value: decimal.Zero}))
	assert.True(t, Price{Infinite: true}.Equal(Price{Infinite: true}))
}

func repeat(c byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = c
	}
	return string(b)
}
