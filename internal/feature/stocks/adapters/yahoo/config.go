// Package yahoo adapts the Yahoo Finance quote and chart endpoints to the stocks domain.
package yahoo

import (
	"os"
	"time"

	infrahttp "stocks_api/internal/platform/http"
)

const (
	defaultQuoteURL  = "https://query1.finance.yahoo.com/v7/finance/quote"
	defaultChartURL  = "https://query1.finance.yahoo.com/v8/finance/chart"
	defaultUserAgent = "Mozilla/5.0 (compatible; stocks-api/1.0)"
)

// Config holds configuration for the Yahoo Finance adapter.
type Config struct {
	QuoteURL  string        // Quote endpoint (accepts comma-joined "symbols")
	ChartURL  string        // Chart endpoint base; the symbol is appended as a path segment
	Timeout   time.Duration // HTTP request timeout
	UserAgent string        // Sent on every outbound request
}

// LoadConfig loads Yahoo Finance configuration from environment variables.
func LoadConfig() Config {
	return Config{
		QuoteURL:  getEnv("YAHOO_QUOTE_URL", defaultQuoteURL),
		ChartURL:  getEnv("YAHOO_CHART_URL", defaultChartURL),
		Timeout:   getEnvDuration("UPSTREAM_TIMEOUT", infrahttp.DefaultTimeout),
		UserAgent: getEnv("UPSTREAM_USER_AGENT", defaultUserAgent),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
