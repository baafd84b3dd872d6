package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	ctshttp "github.com/jrh3k5/slp-utils/internal/http"
	ctsio "github.com/jrh3k5/slp-utils/internal/io"
	"github.com/jrh3k5/slp-utils/internal/slp"
	"github.com/jrh3k5/slp-utils/internal/slp/client"
	"github.com/jrh3k5/slp-utils/internal/token"
	"github.com/jrh3k5/slp-utils/internal/watchlist"
	"go.yaml.in/yaml/v3"
)

// DefaultTimeout is the default timeout of a single HTTP request.
const DefaultTimeout = 30 * time.Second

// Config holds the settings of the CLI.
type Config struct {
	Network       string            `yaml:"network"`
	RESTURLs      map[string]string `yaml:"rest_urls"`
	Timeout       time.Duration     `yaml:"timeout"`
	MaxRetries    uint64            `yaml:"max_retries"`
	RetryDelay    time.Duration     `yaml:"retry_delay"`
	MaxRetryDelay time.Duration     `yaml:"max_retry_delay"`
	CacheSize     int               `yaml:"cache_size"`
	Concurrency   int               `yaml:"concurrency"`
	LogLevel      string            `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Network: string(slp.Mainnet),
		RESTURLs: map[string]string{
			string(slp.Mainnet): client.MainnetRESTURL,
			string(slp.Testnet): client.TestnetRESTURL,
		},
		Timeout:       DefaultTimeout,
		MaxRetries:    ctshttp.DefaultMaxRetries,
		RetryDelay:    ctshttp.DefaultRetryDelay,
		MaxRetryDelay: ctshttp.DefaultMaxDelay,
		CacheSize:     token.DefaultCacheSize,
		Concurrency:   watchlist.DefaultConcurrency,
		LogLevel:      "info",
	}
}

// FromYAML reads a configuration from a YAML representation.
// Settings absent from the document keep their default values.
func FromYAML(reader io.Reader) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(ctsio.StripUTF8BOM(reader))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode configuration from YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	network, err := slp.ParseNetwork(c.Network)
	if err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}

	if _, hasURL := c.RESTURLs[string(network)]; !hasURL {
		return fmt.Errorf("no REST URL configured for network '%s'", network)
	}

	for networkName := range c.RESTURLs {
		if _, err := slp.ParseNetwork(networkName); err != nil {
			return fmt.Errorf("invalid REST URL entry: %w", err)
		}
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative: %s", c.Timeout)
	}

	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative: %d", c.Concurrency)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// SLPNetwork returns the configured default network.
func (c *Config) SLPNetwork() slp.Network {
	// validated configurations always parse
	network, _ := slp.ParseNetwork(c.Network)

	return network
}

// Level resolves the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level '%s': %w", c.LogLevel, err)
	}

	return level, nil
}

// ClientOptions translates the configuration into options for an SLP client.
func (c *Config) ClientOptions() []client.Option {
	opts := []client.Option{client.WithNetwork(c.SLPNetwork())}
	for networkName, restURL := range c.RESTURLs {
		opts = append(opts, client.WithRESTURL(slp.Network(strings.ToLower(networkName)), restURL))
	}

	return opts
}

// RetryOptions translates the configuration into options for a retrying HTTP doer.
func (c *Config) RetryOptions() []ctshttp.RetryOption {
	return []ctshttp.RetryOption{
		ctshttp.WithMaxRetries(c.MaxRetries),
		ctshttp.WithRetryDelay(c.RetryDelay),
		ctshttp.WithMaxDelay(c.MaxRetryDelay),
	}
}
