package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/rickgao/dfusion-cli/internal/numeric"
)

var formats = []string{"pretty", "csv"}

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.API.URL == "" {
		return errors.New("api.url is required")
	}
	if err := validateHTTPURL("api.url", c.API.URL); err != nil {
		return err
	}
	if c.API.Timeout <= 0 {
		return errors.New("api.timeout must be > 0")
	}
	if c.API.Retries() < 0 {
		return errors.New("api.max_retries must be >= 0")
	}
	if c.API.RetryBackoff < 0 {
		return errors.New("api.retry_backoff must be >= 0")
	}

	if !slices.Contains(formats, c.Output.Format) {
		return fmt.Errorf("output.format %q is not supported. Supported formats are: %s",
			c.Output.Format, strings.Join(formats, ", "))
	}
	if _, err := numeric.ParseRoundingMode(c.Output.Rounding); err != nil {
		return fmt.Errorf("output.rounding: %w", err)
	}
	if c.Output.EtherscanURL != "" {
		if err := validateHTTPURL("output.etherscan_url", c.Output.EtherscanURL); err != nil {
			return err
		}
	}

	if _, ok := logLevels[strings.ToLower(c.Log.Level)]; !ok {
		return fmt.Errorf("log.level %q must be one of debug, info, warn, error", c.Log.Level)
	}

	return nil
}

func validateHTTPURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an http(s) URL, got %q", field, raw)
	}
	return nil
}
