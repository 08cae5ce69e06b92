package graphql

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// scalar holds a subgraph scalar that may arrive as a JSON string, number or null.
// BigInt and BigDecimal are strings, Int is a number.
type scalar string

func (s *scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = scalar(v)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("scalar: %w", err)
		}
		*s = scalar(n.String())
	}
	return nil
}

const tokenFieldsBasic = "id, name, symbol, address, decimals"

// wireToken is the basic token shape embedded in other entities.
type wireToken struct {
	ID       scalar `json:"id"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Address  string `json:"address"`
	Decimals scalar `json:"decimals"`
}

type wireTokenInfo struct {
	wireToken
	CreateEpoch scalar `json:"createEpoch"`
	TxHash      string `json:"txHash"`
}

type wireOwner struct {
	ID string `json:"id"`
}

type wireOrderRef struct {
	OrderID scalar `json:"orderId"`
}

type wireOrder struct {
	Owner            wireOwner `json:"owner"`
	OrderID          scalar    `json:"orderId"`
	FromBatchID      scalar    `json:"fromBatchId"`
	UntilBatchID     scalar    `json:"untilBatchId"`
	BuyToken         wireToken `json:"buyToken"`
	SellToken        wireToken `json:"sellToken"`
	PriceNumerator   scalar    `json:"priceNumerator"`
	PriceDenominator scalar    `json:"priceDenominator"`
	MaxSellAmount    scalar    `json:"maxSellAmount"`
	SoldVolume       scalar    `json:"soldVolume"`
	BoughtVolume     scalar    `json:"boughtVolume"`
	CreateEpoch      scalar    `json:"createEpoch"`
	CancelEpoch      scalar    `json:"cancelEpoch"`
	DeleteEpoch      scalar    `json:"deleteEpoch"`
	TxHash           string    `json:"txHash"`
}

type wireTrade struct {
	Owner        wireOwner    `json:"owner"`
	Order        wireOrderRef `json:"order"`
	TradeBatchID scalar       `json:"tradeBatchId"`
	SellToken    wireToken    `json:"sellToken"`
	BuyToken     wireToken    `json:"buyToken"`
	SellVolume   scalar       `json:"sellVolume"`
	BuyVolume    scalar       `json:"buyVolume"`
	TradeEpoch   scalar       `json:"tradeEpoch"`
	RevertEpoch  scalar       `json:"revertEpoch"`
	TxHash       string       `json:"txHash"`
}

type wirePrice struct {
	Token      wireToken `json:"token"`
	BatchID    scalar    `json:"batchId"`
	PriceInOWL scalar    `json:"priceInOwl"`
	Volume     scalar    `json:"volume"`
	TxHash     string    `json:"txHash"`
}

type tokensResponse struct {
	Tokens []wireTokenInfo `json:"tokens"`
}

type ordersResponse struct {
	Orders []wireOrder `json:"orders"`
}

type tradesResponse struct {
	Trades []wireTrade `json:"trades"`
}

type pricesResponse struct {
	Prices []wirePrice `json:"prices"`
}
