package graphql

import (
	"context"
	"fmt"

	"github.com/rickgao/dfusion-cli/internal/model"
)

const pricesFields = `
    token { ` + tokenFieldsBasic + ` }
    batchId
    priceInOwl
    volume
    txHash
  `

// PriceFilter narrows a price listing. Empty fields are ignored.
type PriceFilter struct {
	BatchID string
	Token   string
	TxHash  string
}

func (f PriceFilter) conditions() map[string]string {
	return map[string]string{
		"batchId": f.BatchID,
		"token":   f.Token,
		"txHash":  f.TxHash,
	}
}

// Prices fetches one page of batch prices.
func (c *Client) Prices(ctx context.Context, opts ListOptions, filter PriceFilter) ([]model.Price, error) {
	query, err := ListQuery("prices", pricesFields, opts, filter.conditions())
	if err != nil {
		return nil, err
	}

	var resp pricesResponse
	if err := c.Execute(ctx, query, &resp); err != nil {
		return nil, fmt.Errorf("get prices: %w", err)
	}
	return convertAll(resp.Prices, wirePrice.ToModel)
}
