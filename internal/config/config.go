package config

import (
	"log/slog"
	"strings"
	"time"
)

// Config is the root configuration.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// APIConfig holds subgraph settings. MaxRetries is a pointer so an explicit 0
// turns retries off.
type APIConfig struct {
	URL          string        `yaml:"url"`
	ExplorerURL  string        `yaml:"explorer_url"` // Shown in verbose output only
	Timeout      time.Duration `yaml:"timeout"`
	MaxRetries   *int          `yaml:"max_retries"`
	RetryBackoff time.Duration `yaml:"retry_backoff"`
}

// Retries returns the configured retry count, DefaultMaxRetries when unset.
func (a APIConfig) Retries() int {
	if a.MaxRetries == nil {
		return DefaultMaxRetries
	}
	return *a.MaxRetries
}

// OutputConfig controls rendering. Color and Grouping are pointers so an explicit
// false survives defaulting.
type OutputConfig struct {
	Format       string `yaml:"format"`
	Color        *bool  `yaml:"color"`
	Grouping     *bool  `yaml:"grouping"`
	Rounding     string `yaml:"rounding"`
	EtherscanURL string `yaml:"etherscan_url"`
}

// ColorEnabled reports whether coloured output is allowed.
func (o OutputConfig) ColorEnabled() bool {
	return o.Color == nil || *o.Color
}

// GroupingEnabled reports whether thousands separators are used.
func (o OutputConfig) GroupingEnabled() bool {
	return o.Grouping == nil || *o.Grouping
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel maps Level to a slog level. Unknown levels map to warn.
func (l LogConfig) SlogLevel() slog.Level {
	if lvl, ok := logLevels[strings.ToLower(l.Level)]; ok {
		return lvl
	}
	return slog.LevelWarn
}
