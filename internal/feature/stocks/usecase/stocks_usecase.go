// Package usecase は相場データ取得のビジネスロジックを実装します。
package usecase

import (
	"context"

	"stocks_api/internal/feature/stocks/domain/entity"
)

// MarketRepository は上流の相場データ取得を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// GetQuote は正規化済みシンボルの相場を取得します。
	GetQuote(ctx context.Context, symbol string) (entity.Quote, error)
	// GetIntraday は正規化済みシンボルの当日時系列を取得します。
	GetIntraday(ctx context.Context, symbol string, interval entity.Interval) (entity.IntradaySeries, error)
}

// stocksUsecase は相場・時系列取得のユースケースです。
type stocksUsecase struct {
	market MarketRepository
}

// NewStocksUsecase はstocksUsecaseの新しいインスタンスを生成します。
func NewStocksUsecase(market MarketRepository) *stocksUsecase {
	return &stocksUsecase{market: market}
}

// GetQuote はシンボルを正規化してから相場を取得します。
func (su *stocksUsecase) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	return su.market.GetQuote(ctx, entity.CanonicalSymbol(symbol))
}

// GetIntraday はintervalを検証し、シンボルを正規化してから時系列を取得します。
// intervalが不正な場合は上流を呼び出さずにdomain.ErrInvalidIntervalを返します。
func (su *stocksUsecase) GetIntraday(ctx context.Context, symbol, interval string) (entity.IntradaySeries, error) {
	iv, err := entity.ParseInterval(interval)
	if err != nil {
		return entity.IntradaySeries{}, err
	}
	return su.market.GetIntraday(ctx, entity.CanonicalSymbol(symbol), iv)
}
