package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/holiman/uint256"

	"github.com/rickgao/dfusion-cli/internal/epoch"
	"github.com/rickgao/dfusion-cli/internal/model"
	"github.com/rickgao/dfusion-cli/internal/numeric"
)

var (
	tokensHeader = []string{"ID", "Address", "Symbol", "Name", "Decimals", "Registered", "Transaction"}
	ordersHeader = []string{
		"Order Id", "Trader", "Order Date", "Cancel Date", "Delete Date", "From Batch", "Until Batch",
		"Sell Token", "Sell Token Address", "Buy Token", "Buy Token Address",
		"Max Sell Amount", "Sold Volume", "Bought Volume", "Limit Price", "Avg Traded Price", "Transaction",
	}
	tradesHeader = []string{
		"Trade Date", "Revert Date", "Batch Id", "Trader", "Order Id",
		"Sell Token", "Sell Token Address", "Buy Token", "Buy Token Address",
		"Sell Volume", "Buy Volume", "Price", "Transaction",
	}
	pricesHeader = []string{"Batch Id", "Batch Date", "Token", "Token Address", "Price In OWL", "Volume", "Transaction"}
)

// csvRenderer writes machine-readable rows: ISO dates, ungrouped numbers, no colour.
// Prices are buy token units per sell token.
type csvRenderer struct {
	opts Options
}

func newCSV(opts Options) *csvRenderer {
	return &csvRenderer{opts: opts}
}

func (r *csvRenderer) amount(raw *uint256.Int, decimals int32) string {
	return numeric.FormatAmountInWeis(raw, decimals, numeric.WithRounding(r.opts.Rounding))
}

func (r *csvRenderer) price(p numeric.Price) string {
	return numeric.FormatPrice(p, numeric.WithRounding(r.opts.Rounding))
}

func (r *csvRenderer) write(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func (r *csvRenderer) Header(io.Writer) error { return nil }

func (r *csvRenderer) Tokens(w io.Writer, tokens []model.TokenInfo) error {
	rows := make([][]string, 0, len(tokens))
	for _, t := range tokens {
		rows = append(rows, []string{
			strconv.FormatInt(t.ID, 10),
			t.Address.Hex(),
			t.Symbol,
			t.Name,
			strconv.FormatInt(int64(t.Decimals), 10),
			epoch.FormatDateTimeISO8601(t.Registered),
			TransactionLink(r.opts.EtherscanURL, t.TxHash),
		})
	}
	return r.write(w, tokensHeader, rows)
}

func (r *csvRenderer) Orders(w io.Writer, orders []model.Order) error {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		avg := ""
		if o.HasTraded() {
			avg = r.price(tradedPrice(o.BoughtVolume, o.SoldVolume, o.BuyToken, o.SellToken).sellPerBuy)
		}
		rows = append(rows, []string{
			strconv.FormatInt(o.OrderID, 10),
			o.Owner.Hex(),
			epoch.FormatDateTimeISO8601(o.Created),
			epoch.FormatDateTimeISO8601(o.Cancelled),
			epoch.FormatDateTimeISO8601(o.Deleted),
			strconv.FormatInt(o.FromBatchID, 10),
			strconv.FormatInt(o.UntilBatchID, 10),
			o.SellToken.ShortLabel(),
			o.SellToken.Address.Hex(),
			o.BuyToken.ShortLabel(),
			o.BuyToken.Address.Hex(),
			r.amount(o.MaxSellAmount, o.SellToken.Decimals),
			r.amount(o.SoldVolume, o.SellToken.Decimals),
			r.amount(o.BoughtVolume, o.BuyToken.Decimals),
			r.price(orderLimitPrice(o).sellPerBuy),
			avg,
			TransactionLink(r.opts.EtherscanURL, o.TxHash),
		})
	}
	return r.write(w, ordersHeader, rows)
}

func (r *csvRenderer) Trades(w io.Writer, trades []model.Trade) error {
	rows := make([][]string, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, []string{
			epoch.FormatDateTimeISO8601(t.Traded),
			epoch.FormatDateTimeISO8601(t.Reverted),
			strconv.FormatInt(t.TradeBatchID, 10),
			t.Owner.Hex(),
			strconv.FormatInt(t.OrderID, 10),
			t.SellToken.ShortLabel(),
			t.SellToken.Address.Hex(),
			t.BuyToken.ShortLabel(),
			t.BuyToken.Address.Hex(),
			r.amount(t.SellVolume, t.SellToken.Decimals),
			r.amount(t.BuyVolume, t.BuyToken.Decimals),
			r.price(tradedPrice(t.BuyVolume, t.SellVolume, t.BuyToken, t.SellToken).sellPerBuy),
			TransactionLink(r.opts.EtherscanURL, t.TxHash),
		})
	}
	return r.write(w, tradesHeader, rows)
}

func (r *csvRenderer) Prices(w io.Writer, prices []model.Price) error {
	rows := make([][]string, 0, len(prices))
	for _, p := range prices {
		rows = append(rows, []string{
			strconv.FormatInt(p.BatchID, 10),
			epoch.FormatDateTimeISO8601(epoch.FromBatchID(p.BatchID)),
			p.Token.ShortLabel(),
			p.Token.Address.Hex(),
			r.amount(p.PriceInOWL, numeric.OWLDecimals),
			r.amount(p.Volume, p.Token.Decimals),
			TransactionLink(r.opts.EtherscanURL, p.TxHash),
		})
	}
	return r.write(w, pricesHeader, rows)
}
