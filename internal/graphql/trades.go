package graphql

import (
	"context"
	"fmt"

	"github.com/rickgao/dfusion-cli/internal/model"
)

const tradesFields = `
    owner { id }
    order { orderId }
    tradeBatchId
    sellToken { ` + tokenFieldsBasic + ` }
    buyToken { ` + tokenFieldsBasic + ` }
    sellVolume
    buyVolume
    tradeEpoch
    revertEpoch
    txHash
  `

// TradeFilter narrows a trade listing. Empty fields are ignored.
type TradeFilter struct {
	Trader    string
	BatchID   string
	BuyToken  string
	SellToken string
	TxHash    string
}

func (f TradeFilter) conditions() (map[string]string, error) {
	owner, err := normalizeAddress("trader", f.Trader)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"owner":        owner,
		"tradeBatchId": f.BatchID,
		"buyToken":     f.BuyToken,
		"sellToken":    f.SellToken,
		"txHash":       f.TxHash,
	}, nil
}

// Trades fetches one page of trades.
func (c *Client) Trades(ctx context.Context, opts ListOptions, filter TradeFilter) ([]model.Trade, error) {
	conditions, err := filter.conditions()
	if err != nil {
		return nil, fmt.Errorf("get trades: %w", err)
	}
	query, err := ListQuery("trades", tradesFields, opts, conditions)
	if err != nil {
		return nil, err
	}

	var resp tradesResponse
	if err := c.Execute(ctx, query, &resp); err != nil {
		return nil, fmt.Errorf("get trades: %w", err)
	}
	return convertAll(resp.Trades, wireTrade.ToModel)
}
