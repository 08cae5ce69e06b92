package graphql

import (
	"context"
	"fmt"

	"github.com/rickgao/dfusion-cli/internal/model"
)

const ordersFields = `
    owner { id }
    orderId
    fromBatchId
    untilBatchId
    buyToken { ` + tokenFieldsBasic + ` }
    sellToken { ` + tokenFieldsBasic + ` }
    priceNumerator
    priceDenominator
    maxSellAmount
    soldVolume
    boughtVolume
    createEpoch
    cancelEpoch
    deleteEpoch
    txHash
  `

// OrderFilter narrows an order listing. Traded selects filled (true) or unfilled
// (false) orders; nil keeps both.
type OrderFilter struct {
	Trader    string
	OrderID   string
	BuyToken  string
	SellToken string
	TxHash    string
	Traded    *bool
}

func (f OrderFilter) conditions() (map[string]string, error) {
	owner, err := normalizeAddress("trader", f.Trader)
	if err != nil {
		return nil, err
	}
	c := map[string]string{
		"owner":     owner,
		"orderId":   f.OrderID,
		"buyToken":  f.BuyToken,
		"sellToken": f.SellToken,
		"txHash":    f.TxHash,
	}
	if f.Traded != nil {
		if *f.Traded {
			c["soldVolume_gt"] = "0"
		} else {
			c["soldVolume"] = "0"
		}
	}
	return c, nil
}

// Orders fetches one page of orders.
func (c *Client) Orders(ctx context.Context, opts ListOptions, filter OrderFilter) ([]model.Order, error) {
	conditions, err := filter.conditions()
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	query, err := ListQuery("orders", ordersFields, opts, conditions)
	if err != nil {
		return nil, err
	}

	var resp ordersResponse
	if err := c.Execute(ctx, query, &resp); err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	return convertAll(resp.Orders, wireOrder.ToModel)
}
