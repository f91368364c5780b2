// Package di provides dependency injection factories for creating application components.
package di

import (
	"stocks_api/internal/feature/stocks/adapters/yahoo"
	infrahttp "stocks_api/internal/platform/http"
	"stocks_api/internal/platform/upstream"
)

// NewMarket creates a fully configured YahooMarket backed by the upstream JSON client.
func NewMarket(cfg yahoo.Config) *yahoo.YahooMarket {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout, cfg.UserAgent)
	return yahoo.NewYahooMarket(cfg, upstream.NewClient(httpClient))
}
