// Package adapters はsymbollistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"stocks_api/internal/feature/symbollist/domain/entity"
	"stocks_api/internal/feature/symbollist/usecase"
)

// popularCodes は表示順の人気銘柄一覧です。プロセス起動時から不変です。
var popularCodes = [...]string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "META", "TSLA", "NFLX", "AMD", "INTC",
	"BRK-B", "V", "JPM", "UNH", "PG", "XOM", "KO", "PEP", "ADBE", "CRM",
}

// staticSymbols はSymbolRepositoryインターフェースの静的テーブル実装です。
type staticSymbols struct{}

var _ usecase.SymbolRepository = staticSymbols{}

// NewPopularSymbolRepository は人気銘柄の静的リポジトリを生成します。
func NewPopularSymbolRepository() staticSymbols {
	return staticSymbols{}
}

// ListPopular は表示順の銘柄を返します。呼び出し側が変更しても内部テーブルには影響しません。
func (staticSymbols) ListPopular(ctx context.Context) ([]entity.Symbol, error) {
	out := make([]entity.Symbol, 0, len(popularCodes))
	for i, code := range popularCodes {
		out = append(out, entity.Symbol{Code: code, SortKey: i + 1})
	}
	return out, nil
}
