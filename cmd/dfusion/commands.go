package main

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/rickgao/dfusion-cli/internal/graphql"
)

// listFlags are the pagination flags shared by every report, with per-report defaults.
func listFlags(noun string, count int, sort string, ascending bool) []cli.Flag {
	direction := "desc"
	if ascending {
		direction = "asc"
	}
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "count",
			Value: count,
			Usage: "Number of " + noun + " to return, used for pagination",
		},
		&cli.IntFlag{
			Name:  "skip",
			Value: 0,
			Usage: "Number of " + noun + " to skip, used for pagination",
		},
		&cli.StringFlag{
			Name:  "sort",
			Value: sort,
			Usage: "Sort result by a field",
		},
		&cli.BoolFlag{
			Name:  "asc",
			Usage: "Sort ascending (default " + direction + ")",
		},
		&cli.BoolFlag{
			Name:  "desc",
			Usage: "Sort descending",
		},
	}
}

func listOptions(c *cli.Context, defaultAscending bool) (graphql.ListOptions, error) {
	if c.Bool("asc") && c.Bool("desc") {
		return graphql.ListOptions{}, errors.New("--asc and --desc are mutually exclusive")
	}
	ascending := defaultAscending
	switch {
	case c.Bool("asc"):
		ascending = true
	case c.Bool("desc"):
		ascending = false
	}
	return graphql.ListOptions{
		Count:     c.Int("count"),
		Skip:      c.Int("skip"),
		Sort:      c.String("sort"),
		Ascending: ascending,
	}, nil
}

func flags(groups ...[]cli.Flag) []cli.Flag {
	var out []cli.Flag
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func tokensCommand() *cli.Command {
	return &cli.Command{
		Name:  "tokens",
		Usage: "Get tokens listed in dFusion",
		Flags: flags(
			listFlags("tokens", 100, "symbol", true),
			outputFlags(),
			[]cli.Flag{
				&cli.StringFlag{Name: "id", Usage: "Token id"},
				&cli.StringFlag{Name: "symbol", Usage: "Token symbol"},
				&cli.StringFlag{Name: "address", Usage: "Token address"},
			},
		),
		Action: func(c *cli.Context) error {
			opts, err := listOptions(c, true)
			if err != nil {
				return err
			}
			rt, err := newRuntime(c)
			if err != nil {
				return err
			}

			tokens, err := rt.client.Tokens(c.Context, opts, graphql.TokenFilter{
				ID:      c.String("id"),
				Symbol:  c.String("symbol"),
				Address: c.String("address"),
			})
			if err != nil {
				return err
			}
			rt.logger.Debug("fetched tokens", "count", len(tokens))

			if err := rt.renderer.Header(rt.out); err != nil {
				return err
			}
			return rt.renderer.Tokens(rt.out, tokens)
		},
	}
}

func ordersCommand() *cli.Command {
	return &cli.Command{
		Name:  "orders",
		Usage: "Get orders",
		Flags: flags(
			listFlags("orders", 10, "createEpoch", false),
			outputFlags(),
			[]cli.Flag{
				&cli.StringFlag{Name: "trader", Usage: "Ethereum address of the trader"},
				&cli.StringFlag{Name: "id", Usage: "Order id"},
				&cli.StringFlag{Name: "buy", Usage: "Buy token id"},
				&cli.StringFlag{Name: "sell", Usage: "Sell token id"},
				&cli.BoolFlag{Name: "traded", Usage: "Only orders executed, totally or partially"},
				&cli.BoolFlag{Name: "not-traded", Usage: "Only orders never executed"},
				&cli.StringFlag{Name: "tx", Usage: "Transaction hash of the order placement"},
			},
		),
		Action: func(c *cli.Context) error {
			opts, err := listOptions(c, false)
			if err != nil {
				return err
			}
			filter := graphql.OrderFilter{
				Trader:    c.String("trader"),
				OrderID:   c.String("id"),
				BuyToken:  c.String("buy"),
				SellToken: c.String("sell"),
				TxHash:    c.String("tx"),
			}
			switch {
			case c.Bool("traded") && c.Bool("not-traded"):
				return errors.New("--traded and --not-traded are mutually exclusive")
			case c.Bool("traded"):
				traded := true
				filter.Traded = &traded
			case c.Bool("not-traded"):
				traded := false
				filter.Traded = &traded
			}

			rt, err := newRuntime(c)
			if err != nil {
				return err
			}
			orders, err := rt.client.Orders(c.Context, opts, filter)
			if err != nil {
				return err
			}
			rt.logger.Debug("fetched orders", "count", len(orders))

			if err := rt.renderer.Header(rt.out); err != nil {
				return err
			}
			return rt.renderer.Orders(rt.out, orders)
		},
	}
}

func tradesCommand() *cli.Command {
	return &cli.Command{
		Name:  "trades",
		Usage: "Get trades",
		Flags: flags(
			listFlags("trades", 10, "tradeBatchId", false),
			outputFlags(),
			[]cli.Flag{
				&cli.StringFlag{Name: "trader", Usage: "Ethereum address of the trader"},
				&cli.StringFlag{Name: "batch", Usage: "Batch id"},
				&cli.StringFlag{Name: "buy", Usage: "Buy token id"},
				&cli.StringFlag{Name: "sell", Usage: "Sell token id"},
				&cli.StringFlag{Name: "tx", Usage: "Transaction hash of the solution submission"},
			},
		),
		Action: func(c *cli.Context) error {
			opts, err := listOptions(c, false)
			if err != nil {
				return err
			}
			rt, err := newRuntime(c)
			if err != nil {
				return err
			}

			trades, err := rt.client.Trades(c.Context, opts, graphql.TradeFilter{
				Trader:    c.String("trader"),
				BatchID:   c.String("batch"),
				BuyToken:  c.String("buy"),
				SellToken: c.String("sell"),
				TxHash:    c.String("tx"),
			})
			if err != nil {
				return err
			}
			rt.logger.Debug("fetched trades", "count", len(trades))

			if err := rt.renderer.Header(rt.out); err != nil {
				return err
			}
			return rt.renderer.Trades(rt.out, trades)
		},
	}
}

func pricesCommand() *cli.Command {
	return &cli.Command{
		Name:  "prices",
		Usage: "Get historic prices",
		Flags: flags(
			listFlags("prices", 100, "batchId", false),
			outputFlags(),
			[]cli.Flag{
				&cli.StringFlag{Name: "batch", Usage: "Batch id"},
				&cli.StringFlag{Name: "token", Usage: "Token id"},
				&cli.StringFlag{Name: "tx", Usage: "Transaction hash of the solution submission"},
			},
		),
		Action: func(c *cli.Context) error {
			opts, err := listOptions(c, false)
			if err != nil {
				return err
			}
			rt, err := newRuntime(c)
			if err != nil {
				return err
			}

			prices, err := rt.client.Prices(c.Context, opts, graphql.PriceFilter{
				BatchID: c.String("batch"),
				Token:   c.String("token"),
				TxHash:  c.String("tx"),
			})
			if err != nil {
				return err
			}
			rt.logger.Debug("fetched prices", "count", len(prices))

			if err := rt.renderer.Header(rt.out); err != nil {
				return err
			}
			return rt.renderer.Prices(rt.out, prices)
		},
	}
}
