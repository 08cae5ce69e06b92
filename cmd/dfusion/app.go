package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/rickgao/dfusion-cli/internal/config"
	"github.com/rickgao/dfusion-cli/internal/graphql"
	"github.com/rickgao/dfusion-cli/internal/numeric"
	"github.com/rickgao/dfusion-cli/internal/render"
	"github.com/rickgao/dfusion-cli/internal/version"
)

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:                   "dfusion",
		Usage:                  "Query tokens, orders, trades and prices of the dFusion exchange",
		Version:                version.String(),
		Writer:                 stdout,
		ErrWriter:              stderr,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: config.DefaultPath,
				Usage: "Path to the YAML config file",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "Environment file loaded before the config",
			},
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "Subgraph API URL (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable coloured output",
			},
		},
		Before: func(c *cli.Context) error {
			return config.LoadDotEnv(c.String("env-file"))
		},
		Commands: []*cli.Command{
			tokensCommand(),
			ordersCommand(),
			tradesCommand(),
			pricesCommand(),
			versionCommand(),
		},
	}
}

// runtime is what a subcommand needs to fetch and print one report.
type runtime struct {
	cfg      *config.Config
	client   *graphql.Client
	renderer render.Renderer
	out      io.Writer
	logger   *slog.Logger
}

// outputFlags are accepted by every report command.
func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Usage: "Format type i.e. pretty, csv",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Print the GraphQL query and debug logs",
			Count:   new(int),
		},
	}
}

func newRuntime(c *cli.Context) (*runtime, error) {
	path := config.ResolvePath(c.String("config"), c.IsSet("config"))
	cfg, err := config.LoadWithDefaults(path)
	if err != nil {
		return nil, err
	}

	if v := c.String("endpoint"); v != "" {
		cfg.API.URL = v
	}
	if v := c.String("format"); v != "" {
		cfg.Output.Format = v
	}
	if c.Bool("no-color") || !isTerminal(c.App.Writer) {
		off := false
		cfg.Output.Color = &off
	}
	verbose := c.Count("verbose")
	if verbose > 0 {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	rounding, err := numeric.ParseRoundingMode(cfg.Output.Rounding)
	if err != nil {
		return nil, err
	}
	renderer, err := render.New(cfg.Output.Format, render.Options{
		Color:        cfg.Output.ColorEnabled(),
		Grouping:     cfg.Output.GroupingEnabled(),
		Rounding:     rounding,
		EtherscanURL: cfg.Output.EtherscanURL,
	})
	if err != nil {
		return nil, err
	}

	opts := []graphql.ClientOption{
		graphql.WithTimeout(cfg.API.Timeout),
		graphql.WithRetries(cfg.API.Retries(), cfg.API.RetryBackoff),
		graphql.WithLogger(logger),
		graphql.WithUserAgent(version.UserAgent()),
	}
	if verbose > 0 {
		opts = append(opts, graphql.WithQueryHook(queryPrinter(c.App.ErrWriter, cfg)))
	}

	logger.Debug("configuration loaded",
		"config", path,
		"api_url", cfg.API.URL,
		"format", cfg.Output.Format,
	)

	return &runtime{
		cfg:      cfg,
		client:   graphql.NewClient(cfg.API.URL, opts...),
		renderer: renderer,
		out:      c.App.Writer,
		logger:   logger,
	}, nil
}

// queryPrinter shows the query and where it is sent. It writes to stderr so CSV on
// stdout stays parseable.
func queryPrinter(w io.Writer, cfg *config.Config) func(string) {
	label := color.New(color.FgGreen, color.Underline)
	secondary := color.New(color.FgCyan)
	if !cfg.Output.ColorEnabled() {
		label.DisableColor()
		secondary.DisableColor()
	}

	return func(query string) {
		fmt.Fprintf(w, "%s\n  API: %s\n  Subgraph: %s\n\n%s\n",
			label.Sprint("GraphQl query:"),
			secondary.Sprint(cfg.API.URL),
			secondary.Sprint(cfg.API.ExplorerURL),
			query,
		)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprintln(c.App.Writer, version.String())
			return err
		},
	}
}
