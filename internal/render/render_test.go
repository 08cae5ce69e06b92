package render

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickgao/dfusion-cli/internal/epoch"
	"github.com/rickgao/dfusion-cli/internal/model"
	"github.com/rickgao/dfusion-cli/internal/numeric"
)

var (
	dai = model.Token{
		ID:       1,
		Address:  common.HexToAddress("0x6b175474e89094c44da98b954eedeac495271d0f"),
		Name:     "Dai Stablecoin",
		Symbol:   "DAI",
		Decimals: 18,
	}
	usdc = model.Token{
		ID:       2,
		Address:  common.HexToAddress("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"),
		Name:     "USD Coin",
		Symbol:   "USDC",
		Decimals: 6,
	}
	txHash = common.HexToHash("0x5e7bd4a2a4c1d4d6c9b4a3f2e1d0c9b8a7f6e5d4c3b2a1f0e9d8c7b6a5f4e3d2")
	trader = common.HexToAddress("0x1111111111111111111111111111111111111111")
)

func amount(t *testing.T, s string) *uint256.Int {
	t.Helper()
	v, err := numeric.ParseAmount(s)
	require.NoError(t, err)
	return v
}

func sampleOrder(t *testing.T) model.Order {
	return model.Order{
		Owner:            trader,
		OrderID:          3,
		FromBatchID:      5276104,
		UntilBatchID:     epoch.MaxBatchID,
		SellToken:        usdc,
		BuyToken:         dai,
		PriceNumerator:   amount(t, "1000000000000000000"),
		PriceDenominator: amount(t, "1000000"),
		MaxSellAmount:    amount(t, "1000000"),
		SoldVolume:       amount(t, "500000"),
		BoughtVolume:     amount(t, "500000000000000000"),
		Created:          epoch.FromEpoch(1582831200),
		TxHash:           txHash,
	}
}

func newRenderer(t *testing.T, format string, opts Options) Renderer {
	t.Helper()
	r, err := New(format, opts)
	require.NoError(t, err)
	return r
}

func TestNew(t *testing.T) {
	for _, f := range Formats {
		_, err := New(f, Options{})
		assert.NoError(t, err, f)
	}

	_, err := New("xml", Options{})
	require.Error(t, err)
	assert.Equal(t, `format "xml" is not supported. Supported formats are: pretty, csv`, err.Error())

	_, err = New("", Options{})
	assert.Error(t, err)
}

func TestTransactionLink(t *testing.T) {
	assert.Equal(t, "https://etherscan.io/tx/"+txHash.Hex(), TransactionLink("https://etherscan.io/", txHash))
	assert.Equal(t, "", TransactionLink("https://etherscan.io", common.Hash{}))
}

func TestPrettyOrders(t *testing.T) {
	var buf bytes.Buffer
	r := newRenderer(t, FormatPretty, Options{Grouping: true})
	require.NoError(t, r.Orders(&buf, []model.Order{sampleOrder(t)}))

	out := buf.String()
	for _, want := range []string{
		"  Order date: 27/02/20 19:20:00\n",
		"  Trader: " + trader.Hex() + "\n",
		"  Order Id: 3\n",
		"  From batch: 5,276,104 (27/02/20 19:20:00)\n",
		"  To batch: Never expires\n",
		"  Sell Token: USDC (" + usdc.Address.Hex() + ")\n",
		"  Sold volume: 0.5 of 1 USDC (50%)\n",
		"  Bought volume: 0.5 DAI\n",
		"  Limit Price USDC/DAI: 1 DAI\n",
		"  Limit Price DAI/USDC: 1 USDC\n",
		"  Avg. Traded Price USDC/DAI: 1 DAI\n",
		"  Avg. Traded Price DAI/USDC: 1 USDC\n",
		"  Transaction: https://etherscan.io/tx/" + txHash.Hex() + "\n",
	} {
		assert.Contains(t, out, want)
	}
	assert.True(t, strings.HasPrefix(out, separator+"\n"))
	assert.True(t, strings.HasSuffix(out, separator+"\n"))
	assert.NotContains(t, out, "Cancel date")
	assert.NotContains(t, out, "\x1b[")
}

func TestPrettyOrderUnlimitedAndUntraded(t *testing.T) {
	o := sampleOrder(t)
	o.MaxSellAmount = numeric.MaxAmount()
	o.SoldVolume = amount(t, "0")
	o.Cancelled = epoch.FromEpoch(1582831500)

	var buf bytes.Buffer
	r := newRenderer(t, FormatPretty, Options{})
	require.NoError(t, r.Orders(&buf, []model.Order{o}))

	out := buf.String()
	assert.Contains(t, out, "  Sold volume: 0 of Unlimited USDC\n")
	assert.Contains(t, out, "  Cancel date: 27/02/20 19:25:00\n")
	assert.NotContains(t, out, "Bought volume")
	assert.NotContains(t, out, "Avg. Traded Price")
	assert.NotContains(t, out, "%")
}

func TestPrettyColor(t *testing.T) {
	o := sampleOrder(t)

	var plain, colored bytes.Buffer
	require.NoError(t, newRenderer(t, FormatPretty, Options{Color: false}).Orders(&plain, []model.Order{o}))
	require.NoError(t, newRenderer(t, FormatPretty, Options{Color: true}).Orders(&colored, []model.Order{o}))

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, colored.String(), "\x1b[32m  Order date")

	o.Deleted = epoch.FromEpoch(1582831500)
	colored.Reset()
	require.NoError(t, newRenderer(t, FormatPretty, Options{Color: true}).Orders(&colored, []model.Order{o}))
	assert.Contains(t, colored.String(), "\x1b[31m  Order date")
}

func TestPrettyTrades(t *testing.T) {
	tr := model.Trade{
		Owner:        trader,
		OrderID:      3,
		TradeBatchID: 5276104,
		SellToken:    usdc,
		BuyToken:     dai,
		SellVolume:   amount(t, "2000000"),
		BuyVolume:    amount(t, "1000000000000000000"),
		Traded:       epoch.FromEpoch(1582831200),
		Reverted:     epoch.FromEpoch(1582831500),
		TxHash:       txHash,
	}

	var buf bytes.Buffer
	require.NoError(t, newRenderer(t, FormatPretty, Options{Grouping: true}).Trades(&buf, []model.Trade{tr}))

	out := buf.String()
	assert.Contains(t, out, "  Trade date: 27/02/20 19:20:00\n")
	assert.Contains(t, out, "  Reverted date: 27/02/20 19:25:00\n")
	assert.Contains(t, out, "  Batch Id: 5,276,104\n")
	assert.Contains(t, out, "  Price USDC/DAI: 0.5 DAI\n")
	assert.Contains(t, out, "  Price DAI/USDC: 2 USDC\n")
	assert.Contains(t, out, "  Sell volume: 2 USDC\n")
	assert.Contains(t, out, "  Buy volume: 1 DAI\n")
}

func TestPrettyTokensAndPrices(t *testing.T) {
	var buf bytes.Buffer
	r := newRenderer(t, FormatPretty, Options{Grouping: true, EtherscanURL: "https://rinkeby.etherscan.io"})

	require.NoError(t, r.Tokens(&buf, []model.TokenInfo{{Token: dai, Registered: epoch.FromEpoch(1582831200), TxHash: txHash}}))
	out := buf.String()
	assert.Contains(t, out, "  Id: 1\n")
	assert.Contains(t, out, "  Symbol: DAI\n")
	assert.Contains(t, out, "  Decimals: 18\n")
	assert.Contains(t, out, "  Registered: 27/02/20 19:20:00\n")
	assert.Contains(t, out, "  Transaction: https://rinkeby.etherscan.io/tx/")

	buf.Reset()
	p := model.Price{
		Token:      dai,
		BatchID:    5276104,
		PriceInOWL: amount(t, "1500000000000000000"),
		Volume:     amount(t, "1234000000000000000000"),
		TxHash:     txHash,
	}
	require.NoError(t, r.Prices(&buf, []model.Price{p}))
	out = buf.String()
	assert.Contains(t, out, "  Token: DAI ("+dai.Address.Hex()+")\n")
	assert.Contains(t, out, "  Batch Id: 5,276,104 (27/02/20 19:20:00)\n")
	assert.Contains(t, out, "  Price in OWL: 1.5\n")
	assert.Contains(t, out, "  Volume: 1,234 DAI\n")
}

func TestPrettyHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t, FormatPretty, Options{}).Header(&buf))
	assert.Contains(t, buf.String(), `\__,_\_|  \__,_|___/_|\___/|_| |_|`)

	buf.Reset()
	require.NoError(t, newRenderer(t, FormatCSV, Options{}).Header(&buf))
	assert.Empty(t, buf.String())
}

func readCSV(t *testing.T, s string) [][]string {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(s)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestCSVTokens(t *testing.T) {
	var buf bytes.Buffer
	r := newRenderer(t, FormatCSV, Options{Grouping: true})
	tokens := []model.TokenInfo{
		{Token: dai, Registered: epoch.FromEpoch(1582831200), TxHash: txHash},
		{Token: model.Token{ID: 7, Address: trader, Name: "Comma, Inc", Decimals: 0}},
	}
	require.NoError(t, r.Tokens(&buf, tokens))

	records := readCSV(t, buf.String())
	require.Len(t, records, 3)
	assert.Equal(t, tokensHeader, records[0])
	assert.Equal(t, []string{"1", dai.Address.Hex(), "DAI", "Dai Stablecoin", "18", "2020-02-27T19:20:00Z", "https://etherscan.io/tx/" + txHash.Hex()}, records[1])
	assert.Equal(t, "Comma, Inc", records[2][3])
	assert.Equal(t, "", records[2][5])
	assert.Equal(t, "", records[2][6])
}

func TestCSVOrders(t *testing.T) {
	o := sampleOrder(t)
	o.MaxSellAmount = numeric.MaxAmount()
	o.SoldVolume = amount(t, "1234567000000")

	var buf bytes.Buffer
	require.NoError(t, newRenderer(t, FormatCSV, Options{Grouping: true}).Orders(&buf, []model.Order{o}))

	records := readCSV(t, buf.String())
	require.Len(t, records, 2)
	require.Len(t, records[1], len(ordersHeader))

	row := map[string]string{}
	for i, h := range ordersHeader {
		row[h] = records[1][i]
	}
	assert.Equal(t, "3", row["Order Id"])
	assert.Equal(t, "2020-02-27T19:20:00Z", row["Order Date"])
	assert.Equal(t, "", row["Cancel Date"])
	assert.Equal(t, "844674335", row["Until Batch"])
	assert.Equal(t, "Unlimited", row["Max Sell Amount"])
	assert.Equal(t, "1234567", row["Sold Volume"])
	assert.Equal(t, "1", row["Limit Price"])
	assert.NotEmpty(t, row["Avg Traded Price"])
}

func TestCSVTradesAndPrices(t *testing.T) {
	tr := model.Trade{
		Owner:        trader,
		OrderID:      3,
		TradeBatchID: 5276104,
		SellToken:    usdc,
		BuyToken:     dai,
		SellVolume:   amount(t, "2000000"),
		BuyVolume:    amount(t, "0"),
		Traded:       epoch.FromEpoch(1582831200),
		TxHash:       txHash,
	}

	var buf bytes.Buffer
	r := newRenderer(t, FormatCSV, Options{})
	require.NoError(t, r.Trades(&buf, []model.Trade{tr}))
	records := readCSV(t, buf.String())
	require.Len(t, records, 2)
	assert.Equal(t, tradesHeader, records[0])
	assert.Equal(t, "2", records[1][9])
	assert.Equal(t, "0", records[1][10])
	assert.Equal(t, "0", records[1][11])

	buf.Reset()
	p := model.Price{Token: dai, BatchID: 5276104, PriceInOWL: amount(t, "1500000000000000000"), Volume: amount(t, "0"), TxHash: txHash}
	require.NoError(t, r.Prices(&buf, []model.Price{p}))
	records = readCSV(t, buf.String())
	require.Len(t, records, 2)
	assert.Equal(t, []string{"5276104", "2020-02-27T19:20:00Z", "DAI", dai.Address.Hex(), "1.5", "0", "https://etherscan.io/tx/" + txHash.Hex()}, records[1])
}

func TestEmptyReports(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t, FormatPretty, Options{}).Orders(&buf, nil))
	assert.Equal(t, separator+"\n", buf.String())

	buf.Reset()
	require.NoError(t, newRenderer(t, FormatCSV, Options{}).Prices(&buf, nil))
	assert.Equal(t, strings.Join(pricesHeader, ",")+"\n", buf.String())
}
