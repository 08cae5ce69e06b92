package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/holiman/uint256"

	"github.com/rickgao/dfusion-cli/internal/epoch"
	"github.com/rickgao/dfusion-cli/internal/model"
	"github.com/rickgao/dfusion-cli/internal/numeric"
)

const separator = "----------------------------"

const banner = `     _______         _             
    | |  ___|       (_)            
  __| | |_ _   _ ___ _  ___  _ __  
 / _` + "`" + ` |  _| | | / __| |/ _ \| '_ \ 
| (_| | | | |_| \__ \ | (_) | | | |
 \__,_\_|  \__,_|___/_|\___/|_| |_|`

type palette struct {
	label     *color.Color
	deleted   *color.Color
	highlight *color.Color
	separator *color.Color
	secondary *color.Color
	banner    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		label:     color.New(color.FgGreen),
		deleted:   color.New(color.FgRed),
		highlight: color.New(color.BgRed),
		separator: color.New(color.FgBlue),
		secondary: color.New(color.FgCyan),
		banner:    color.New(color.FgYellow, color.Bold),
	}
	for _, c := range []*color.Color{p.label, p.deleted, p.highlight, p.separator, p.secondary, p.banner} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

type prettyRenderer struct {
	opts   Options
	colors palette
}

func newPretty(opts Options) *prettyRenderer {
	return &prettyRenderer{opts: opts, colors: newPalette(opts.Color)}
}

// block accumulates the lines of one record.
type block struct {
	sb    strings.Builder
	label *color.Color
}

func (b *block) field(name, value string) {
	b.sb.WriteString(b.label.Sprint("  " + name))
	b.sb.WriteString(": ")
	b.sb.WriteString(value)
	b.sb.WriteByte('\n')
}

func (b *block) blank() {
	b.sb.WriteByte('\n')
}

func (r *prettyRenderer) newBlock(deleted bool) *block {
	if deleted {
		return &block{label: r.colors.deleted}
	}
	return &block{label: r.colors.label}
}

func (r *prettyRenderer) write(w io.Writer, blocks []*block) error {
	line := r.colors.separator.Sprint(separator) + "\n"
	if _, err := io.WriteString(w, line); err != nil {
		return err
	}
	for _, b := range blocks {
		if _, err := io.WriteString(w, b.sb.String()+line); err != nil {
			return err
		}
	}
	return nil
}

func (r *prettyRenderer) amount(raw *uint256.Int, decimals int32) string {
	opts := []numeric.Option{numeric.WithRounding(r.opts.Rounding), numeric.WithGrouping(r.opts.Grouping)}
	return numeric.FormatAmountInWeis(raw, decimals, opts...)
}

func (r *prettyRenderer) price(p numeric.Price, currency string) string {
	return numeric.FormatPrice(p,
		numeric.WithRounding(r.opts.Rounding),
		numeric.WithGrouping(r.opts.Grouping),
		numeric.WithCurrency(currency),
	)
}

func (r *prettyRenderer) integer(n int64) string {
	if r.opts.Grouping {
		return numeric.FormatInteger(n)
	}
	return strconv.FormatInt(n, 10)
}

func (r *prettyRenderer) batch(id int64) string {
	return epoch.FormatBatchIDWithDate(id, epoch.WithGrouping(r.opts.Grouping))
}

// Header prints the banner.
func (r *prettyRenderer) Header(w io.Writer) error {
	_, err := io.WriteString(w, "\n"+r.colors.banner.Sprint(banner)+"\n\n")
	return err
}

func (r *prettyRenderer) Tokens(w io.Writer, tokens []model.TokenInfo) error {
	blocks := make([]*block, 0, len(tokens))
	for _, t := range tokens {
		b := r.newBlock(false)
		b.field("Id", strconv.FormatInt(t.ID, 10))
		b.field("Address", t.Address.Hex())
		b.blank()
		b.field("Symbol", t.Symbol)
		b.field("Name", t.Name)
		b.field("Decimals", strconv.FormatInt(int64(t.Decimals), 10))
		b.blank()
		b.field("Registered", epoch.FormatDateTime(t.Registered))
		b.field("Transaction", TransactionLink(r.opts.EtherscanURL, t.TxHash))
		blocks = append(blocks, b)
	}
	return r.write(w, blocks)
}

func (r *prettyRenderer) Orders(w io.Writer, orders []model.Order) error {
	blocks := make([]*block, 0, len(orders))
	for _, o := range orders {
		sellLabel, buyLabel := o.SellToken.ShortLabel(), o.BuyToken.ShortLabel()

		b := r.newBlock(o.IsCancelled())
		b.field("Order date", epoch.FormatDateTime(o.Created))
		if !o.Cancelled.IsAbsent() {
			b.field("Cancel date", r.colors.highlight.Sprint(epoch.FormatDateTime(o.Cancelled)))
		}
		if !o.Deleted.IsAbsent() {
			b.field("Deleted date", r.colors.highlight.Sprint(epoch.FormatDateTime(o.Deleted)))
		}
		b.blank()

		b.field("Trader", o.Owner.Hex())
		b.field("Order Id", r.integer(o.OrderID))
		b.field("From batch", r.batch(o.FromBatchID))
		b.field("To batch", r.batch(o.UntilBatchID))
		b.blank()

		b.field("Sell Token", o.SellToken.LongLabel())
		b.field("Buy Token", o.BuyToken.LongLabel())

		sold := r.amount(o.SoldVolume, o.SellToken.Decimals) + " of " +
			r.amount(o.MaxSellAmount, o.SellToken.Decimals) + " " + sellLabel
		if pct := numeric.FormatPercentage(o.SoldVolume, o.MaxSellAmount); pct != "" {
			sold += r.colors.secondary.Sprint(" (" + pct + ")")
		}
		b.field("Sold volume", sold)
		if o.HasTraded() {
			b.field("Bought volume", r.amount(o.BoughtVolume, o.BuyToken.Decimals)+" "+buyLabel)
		}
		b.blank()

		limit := orderLimitPrice(o)
		b.field("Limit Price "+sellLabel+"/"+buyLabel, r.price(limit.sellPerBuy, buyLabel))
		b.field("Limit Price "+buyLabel+"/"+sellLabel, r.price(limit.buyPerSell, sellLabel))
		if o.HasTraded() {
			avg := tradedPrice(o.BoughtVolume, o.SoldVolume, o.BuyToken, o.SellToken)
			b.field("Avg. Traded Price "+sellLabel+"/"+buyLabel, r.price(avg.sellPerBuy, buyLabel))
			b.field("Avg. Traded Price "+buyLabel+"/"+sellLabel, r.price(avg.buyPerSell, sellLabel))
		}
		b.blank()

		b.field("Transaction", TransactionLink(r.opts.EtherscanURL, o.TxHash))
		blocks = append(blocks, b)
	}
	return r.write(w, blocks)
}

func (r *prettyRenderer) Trades(w io.Writer, trades []model.Trade) error {
	blocks := make([]*block, 0, len(trades))
	for _, t := range trades {
		sellLabel, buyLabel := t.SellToken.ShortLabel(), t.BuyToken.ShortLabel()

		b := r.newBlock(t.IsReverted())
		b.field("Trade date", epoch.FormatDateTime(t.Traded))
		if t.IsReverted() {
			b.field("Reverted date", r.colors.highlight.Sprint(epoch.FormatDateTime(t.Reverted)))
		}
		b.blank()

		b.field("Batch Id", r.integer(t.TradeBatchID))
		b.field("Trader", t.Owner.Hex())
		b.field("Order Id", r.integer(t.OrderID))
		b.blank()

		b.field("Sell Token", t.SellToken.LongLabel())
		b.field("Buy Token", t.BuyToken.LongLabel())

		p := tradedPrice(t.BuyVolume, t.SellVolume, t.BuyToken, t.SellToken)
		b.field("Price "+sellLabel+"/"+buyLabel, r.price(p.sellPerBuy, buyLabel))
		b.field("Price "+buyLabel+"/"+sellLabel, r.price(p.buyPerSell, sellLabel))
		b.field("Sell volume", r.amount(t.SellVolume, t.SellToken.Decimals)+" "+sellLabel)
		b.field("Buy volume", r.amount(t.BuyVolume, t.BuyToken.Decimals)+" "+buyLabel)
		b.blank()

		b.field("Transaction", TransactionLink(r.opts.EtherscanURL, t.TxHash))
		blocks = append(blocks, b)
	}
	return r.write(w, blocks)
}

func (r *prettyRenderer) Prices(w io.Writer, prices []model.Price) error {
	blocks := make([]*block, 0, len(prices))
	for _, p := range prices {
		b := r.newBlock(false)
		b.field("Token", p.Token.LongLabel())
		b.field("Batch Id", r.batch(p.BatchID))
		b.field("Price in OWL", r.amount(p.PriceInOWL, numeric.OWLDecimals))
		b.field("Volume", r.amount(p.Volume, p.Token.Decimals)+" "+p.Token.ShortLabel())
		b.field("Transaction", TransactionLink(r.opts.EtherscanURL, p.TxHash))
		blocks = append(blocks, b)
	}
	return r.write(w, blocks)
}
