package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultAPIURL       = "https://api.thegraph.com/subgraphs/name/gnosis/dfusion-staging"
	DefaultExplorerURL  = "https://thegraph.com/explorer/subgraph/gnosis/dfusion-staging"
	DefaultAPITimeout   = 30 * time.Second
	DefaultMaxRetries   = 3
	DefaultRetryBackoff = 1 * time.Second
	DefaultFormat       = "pretty"
	DefaultRounding     = "down"
	DefaultEtherscanURL = "https://etherscan.io"
	DefaultLogLevel     = "warn"
)

func (c *Config) applyDefaults() {
	// API defaults
	if c.API.URL == "" {
		c.API.URL = DefaultAPIURL
	}
	if c.API.ExplorerURL == "" {
		c.API.ExplorerURL = DefaultExplorerURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxRetries == nil {
		c.API.MaxRetries = intPtr(DefaultMaxRetries)
	}
	if c.API.RetryBackoff == 0 {
		c.API.RetryBackoff = DefaultRetryBackoff
	}

	// Output defaults
	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}
	if c.Output.Color == nil {
		c.Output.Color = boolPtr(true)
	}
	if c.Output.Grouping == nil {
		c.Output.Grouping = boolPtr(true)
	}
	if c.Output.Rounding == "" {
		c.Output.Rounding = DefaultRounding
	}
	if c.Output.EtherscanURL == "" {
		c.Output.EtherscanURL = DefaultEtherscanURL
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(n int) *int {
	return &n
}
