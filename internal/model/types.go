package model

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/rickgao/dfusion-cli/internal/epoch"
)

// -----------------------------------------------------------------------------
// Tokens
// -----------------------------------------------------------------------------

// Token is the short token reference embedded in orders, trades and prices.
type Token struct {
	ID       int64          // Exchange token id
	Address  common.Address // ERC20 contract
	Name     string         // Optional
	Symbol   string         // Optional
	Decimals int32          // Implied fractional digits of raw amounts
}

// TokenInfo is a listed token with its registration details.
type TokenInfo struct {
	Token
	Registered epoch.Date  // Listing date
	TxHash     common.Hash // Listing transaction
}

// Label returns the symbol, falling back to the name. Empty when neither is set.
func (t Token) Label() string {
	if t.Symbol != "" {
		return t.Symbol
	}
	return t.Name
}

// LongLabel renders "SYMBOL (0x...)", or only the address for unnamed tokens.
func (t Token) LongLabel() string {
	label := t.Label()
	if label == "" {
		return t.Address.Hex()
	}
	return label + " (" + t.Address.Hex() + ")"
}

// ShortLabel renders the label, or the address for unnamed tokens.
func (t Token) ShortLabel() string {
	if label := t.Label(); label != "" {
		return label
	}
	return t.Address.Hex()
}

// -----------------------------------------------------------------------------
// Orders and trades
// -----------------------------------------------------------------------------

// Order is a standing limit order.
//
// The limit price is PriceNumerator buy-token units per PriceDenominator sell-token units.
type Order struct {
	Owner            common.Address
	OrderID          int64
	FromBatchID      int64 // First batch the order is valid in
	UntilBatchID     int64 // Last batch, MaxBatchID for "never expires"
	SellToken        Token
	BuyToken         Token
	PriceNumerator   *uint256.Int
	PriceDenominator *uint256.Int
	MaxSellAmount    *uint256.Int // MaxAmount means no cap
	SoldVolume       *uint256.Int
	BoughtVolume     *uint256.Int
	Created          epoch.Date
	Cancelled        epoch.Date
	Deleted          epoch.Date
	TxHash           common.Hash
}

// IsCancelled reports whether the order was cancelled or deleted.
func (o Order) IsCancelled() bool {
	return !o.Cancelled.IsAbsent() || !o.Deleted.IsAbsent()
}

// HasTraded reports whether any of the order was filled.
func (o Order) HasTraded() bool {
	return o.SoldVolume != nil && !o.SoldVolume.IsZero()
}

// Trade is a fill of an order in one batch.
type Trade struct {
	Owner        common.Address
	OrderID      int64
	TradeBatchID int64
	SellToken    Token
	BuyToken     Token
	SellVolume   *uint256.Int
	BuyVolume    *uint256.Int
	Traded       epoch.Date
	Reverted     epoch.Date // Set when the solution was replaced
	TxHash       common.Hash
}

// IsReverted reports whether the trade was undone.
func (t Trade) IsReverted() bool {
	return !t.Reverted.IsAbsent()
}

// -----------------------------------------------------------------------------
// Prices
// -----------------------------------------------------------------------------

// Price is the settlement price of a token in one batch.
type Price struct {
	Token      Token
	BatchID    int64
	PriceInOWL *uint256.Int // Raw, numeric.OWLDecimals fractional digits
	Volume     *uint256.Int // Raw, in Token units
	TxHash     common.Hash
}
