// Package render writes subgraph records as coloured text or CSV.
//
// The format is picked once with New; every Renderer writes the four reports.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/rickgao/dfusion-cli/internal/model"
	"github.com/rickgao/dfusion-cli/internal/numeric"
)

const (
	FormatPretty = "pretty"
	FormatCSV    = "csv"

	DefaultEtherscanURL = "https://etherscan.io"
)

// Formats lists the supported output formats.
var Formats = []string{FormatPretty, FormatCSV}

// Renderer writes one report per call.
type Renderer interface {
	// Header is written once before any report.
	Header(w io.Writer) error
	Tokens(w io.Writer, tokens []model.TokenInfo) error
	Orders(w io.Writer, orders []model.Order) error
	Trades(w io.Writer, trades []model.Trade) error
	Prices(w io.Writer, prices []model.Price) error
}

// Options control number and link rendering.
type Options struct {
	Color        bool
	Grouping     bool
	Rounding     numeric.RoundingMode
	EtherscanURL string
}

// New returns the renderer for format.
func New(format string, opts Options) (Renderer, error) {
	if opts.EtherscanURL == "" {
		opts.EtherscanURL = DefaultEtherscanURL
	}
	opts.EtherscanURL = strings.TrimRight(opts.EtherscanURL, "/")

	switch format {
	case FormatPretty:
		return newPretty(opts), nil
	case FormatCSV:
		return newCSV(opts), nil
	default:
		return nil, fmt.Errorf("format %q is not supported. Supported formats are: %s",
			format, strings.Join(Formats, ", "))
	}
}

// TransactionLink returns the block explorer page of hash, or "" for the zero hash.
func TransactionLink(baseURL string, hash common.Hash) string {
	if hash == (common.Hash{}) {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/tx/" + hash.Hex()
}

// pricePair is a limit or traded price in both directions.
type pricePair struct {
	sellPerBuy numeric.Price // buy token units per sell token
	buyPerSell numeric.Price // sell token units per buy token
}

// orderLimitPrice is priceNumerator buy units per priceDenominator sell units.
func orderLimitPrice(o model.Order) pricePair {
	return pricePair{
		sellPerBuy: numeric.CalculatePrice(o.PriceNumerator, o.PriceDenominator, o.BuyToken.Decimals, o.SellToken.Decimals),
		buyPerSell: numeric.CalculatePrice(o.PriceDenominator, o.PriceNumerator, o.SellToken.Decimals, o.BuyToken.Decimals),
	}
}

func tradedPrice(bought, sold *uint256.Int, buy, sell model.Token) pricePair {
	return pricePair{
		sellPerBuy: numeric.CalculatePrice(bought, sold, buy.Decimals, sell.Decimals),
		buyPerSell: numeric.CalculatePrice(sold, bought, sell.Decimals, buy.Decimals),
	}
}
