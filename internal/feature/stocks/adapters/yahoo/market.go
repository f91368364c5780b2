package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"stocks_api/internal/feature/stocks/domain/entity"
	"stocks_api/internal/feature/stocks/usecase"
)

// JSONGetter は単発GETでJSONドキュメントを取得する上流クライアントです。
type JSONGetter interface {
	GetJSON(ctx context.Context, rawURL string, params url.Values) (any, error)
}

// YahooMarket はYahoo Financeから相場データを取得するMarketRepository実装です。
type YahooMarket struct {
	cfg    Config
	client JSONGetter
}

// YahooMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket は指定された設定と上流クライアントでYahooMarketを生成します。
func NewYahooMarket(cfg Config, client JSONGetter) *YahooMarket {
	return &YahooMarket{cfg: cfg, client: client}
}

// GetQuote は quote エンドポイントを1回呼び出し、正規化した相場を返します。
func (m *YahooMarket) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	q := url.Values{}
	q.Set("symbols", symbol)

	doc, err := m.client.GetJSON(ctx, m.cfg.QuoteURL, q)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("yahoo quote %q: %w", symbol, err)
	}
	return NormalizeQuote(doc, symbol)
}

// GetIntraday は chart エンドポイントを1回呼び出し、当日の時系列を返します。
// プレ・ポストマーケットを含みます。
func (m *YahooMarket) GetIntraday(ctx context.Context, symbol string, interval entity.Interval) (entity.IntradaySeries, error) {
	q := url.Values{}
	q.Set("range", "1d")
	q.Set("interval", interval.String())
	q.Set("includePrePost", "true")

	u := strings.TrimRight(m.cfg.ChartURL, "/") + "/" + url.PathEscape(symbol)
	doc, err := m.client.GetJSON(ctx, u, q)
	if err != nil {
		return entity.IntradaySeries{}, fmt.Errorf("yahoo chart %q: %w", symbol, err)
	}
	return NormalizeIntraday(doc, symbol, interval)
}
