package graphql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"

	"github.com/rickgao/dfusion-cli/internal/epoch"
	"github.com/rickgao/dfusion-cli/internal/model"
	"github.com/rickgao/dfusion-cli/internal/numeric"
)

// fieldParser converts wire scalars and keeps the first failure, tagged with the
// entity and field that caused it.
type fieldParser struct {
	entity string
	id     string
	err    error
}

func newFieldParser(entity string, id scalar) *fieldParser {
	return &fieldParser{entity: entity, id: string(id)}
}

func (p *fieldParser) fail(field string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("parse %s %s field %s: %w", p.entity, p.id, field, err)
	}
}

func (p *fieldParser) amount(field string, v scalar) *uint256.Int {
	a, err := numeric.ParseAmount(string(v))
	if err != nil {
		p.fail(field, err)
		return new(uint256.Int)
	}
	return a
}

func (p *fieldParser) int64(field string, v scalar) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(string(v)), 10, 64)
	if err != nil {
		p.fail(field, err)
		return 0
	}
	return n
}

func (p *fieldParser) decimals(field string, v scalar) int32 {
	d, err := numeric.ParseDecimals(string(v))
	if err != nil {
		p.fail(field, err)
	}
	return d
}

func (p *fieldParser) date(field string, v scalar) epoch.Date {
	d, err := epoch.ParseEpoch(string(v))
	if err != nil {
		p.fail(field, err)
	}
	return d
}

func (p *fieldParser) address(field, v string) common.Address {
	if !common.IsHexAddress(v) {
		p.fail(field, fmt.Errorf("invalid address %q", v))
		return common.Address{}
	}
	return common.HexToAddress(v)
}

// hash accepts an empty value as the zero hash.
func (p *fieldParser) hash(field, v string) common.Hash {
	if v == "" {
		return common.Hash{}
	}
	b, err := hexutil.Decode(v)
	if err != nil {
		p.fail(field, err)
		return common.Hash{}
	}
	if len(b) != common.HashLength {
		p.fail(field, fmt.Errorf("hash has %d bytes, want %d", len(b), common.HashLength))
		return common.Hash{}
	}
	return common.BytesToHash(b)
}

func (p *fieldParser) token(field string, w wireToken) model.Token {
	prefix := ""
	if field != "" {
		prefix = field + "."
	}
	return model.Token{
		ID:       p.int64(prefix+"id", w.ID),
		Address:  p.address(prefix+"address", w.Address),
		Name:     w.Name,
		Symbol:   w.Symbol,
		Decimals: p.decimals(prefix+"decimals", w.Decimals),
	}
}

// ToModel converts a listed token.
func (w wireTokenInfo) ToModel() (model.TokenInfo, error) {
	p := newFieldParser("token", w.ID)
	t := model.TokenInfo{
		Token:      p.token("", w.wireToken),
		Registered: p.date("createEpoch", w.CreateEpoch),
		TxHash:     p.hash("txHash", w.TxHash),
	}
	return t, p.err
}

// ToModel converts an order.
func (w wireOrder) ToModel() (model.Order, error) {
	p := newFieldParser("order", w.OrderID)
	o := model.Order{
		Owner:            p.address("owner", w.Owner.ID),
		OrderID:          p.int64("orderId", w.OrderID),
		FromBatchID:      p.int64("fromBatchId", w.FromBatchID),
		UntilBatchID:     p.int64("untilBatchId", w.UntilBatchID),
		SellToken:        p.token("sellToken", w.SellToken),
		BuyToken:         p.token("buyToken", w.BuyToken),
		PriceNumerator:   p.amount("priceNumerator", w.PriceNumerator),
		PriceDenominator: p.amount("priceDenominator", w.PriceDenominator),
		MaxSellAmount:    p.amount("maxSellAmount", w.MaxSellAmount),
		SoldVolume:       p.amount("soldVolume", w.SoldVolume),
		BoughtVolume:     p.amount("boughtVolume", w.BoughtVolume),
		Created:          p.date("createEpoch", w.CreateEpoch),
		Cancelled:        p.date("cancelEpoch", w.CancelEpoch),
		Deleted:          p.date("deleteEpoch", w.DeleteEpoch),
		TxHash:           p.hash("txHash", w.TxHash),
	}
	return o, p.err
}

// ToModel converts a trade.
func (w wireTrade) ToModel() (model.Trade, error) {
	p := newFieldParser("trade", scalar(w.TxHash))
	t := model.Trade{
		Owner:        p.address("owner", w.Owner.ID),
		OrderID:      p.int64("order.orderId", w.Order.OrderID),
		TradeBatchID: p.int64("tradeBatchId", w.TradeBatchID),
		SellToken:    p.token("sellToken", w.SellToken),
		BuyToken:     p.token("buyToken", w.BuyToken),
		SellVolume:   p.amount("sellVolume", w.SellVolume),
		BuyVolume:    p.amount("buyVolume", w.BuyVolume),
		Traded:       p.date("tradeEpoch", w.TradeEpoch),
		Reverted:     p.date("revertEpoch", w.RevertEpoch),
		TxHash:       p.hash("txHash", w.TxHash),
	}
	return t, p.err
}

// ToModel converts a batch price.
func (w wirePrice) ToModel() (model.Price, error) {
	p := newFieldParser("price", w.BatchID)
	pr := model.Price{
		Token:      p.token("token", w.Token),
		BatchID:    p.int64("batchId", w.BatchID),
		PriceInOWL: p.amount("priceInOwl", w.PriceInOWL),
		Volume:     p.amount("volume", w.Volume),
		TxHash:     p.hash("txHash", w.TxHash),
	}
	return pr, p.err
}

// convertAll applies fn to every record and stops at the first failure.
func convertAll[W any, M any](records []W, fn func(W) (M, error)) ([]M, error) {
	out := make([]M, 0, len(records))
	for _, r := range records {
		m, err := fn(r)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
