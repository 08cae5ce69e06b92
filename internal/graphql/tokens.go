package graphql

import (
	"context"
	"fmt"

	"github.com/rickgao/dfusion-cli/internal/model"
)

const tokensFields = `
    id
    address
    decimals
    name
    symbol
    createEpoch
    txHash
  `

// TokenFilter narrows a token listing. Empty fields are ignored.
type TokenFilter struct {
	ID      string
	Symbol  string
	Address string
}

func (f TokenFilter) conditions() (map[string]string, error) {
	addr, err := normalizeAddress("address", f.Address)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"id":      f.ID,
		"symbol":  f.Symbol,
		"address": addr,
	}, nil
}

// Tokens fetches one page of listed tokens.
func (c *Client) Tokens(ctx context.Context, opts ListOptions, filter TokenFilter) ([]model.TokenInfo, error) {
	conditions, err := filter.conditions()
	if err != nil {
		return nil, fmt.Errorf("get tokens: %w", err)
	}
	query, err := ListQuery("tokens", tokensFields, opts, conditions)
	if err != nil {
		return nil, err
	}

	var resp tokensResponse
	if err := c.Execute(ctx, query, &resp); err != nil {
		return nil, fmt.Errorf("get tokens: %w", err)
	}
	return convertAll(resp.Tokens, wireTokenInfo.ToModel)
}
