package yahoo

import (
	"fmt"

	"stocks_api/internal/feature/stocks/domain"
	"stocks_api/internal/feature/stocks/domain/entity"
)

// NormalizeQuote は上流の quote ドキュメントを entity.Quote に変換します。
//
// quoteResponse.result が欠損または空の場合は domain.ErrNotFound を返します。
// 複数件ある場合は先頭のみを採用します。
// 各フィールドは独立して任意であり、欠損は他のフィールドに影響しません。
func NormalizeQuote(doc any, symbol string) (entity.Quote, error) {
	root, err := object(doc, "document")
	if err != nil {
		return entity.Quote{}, err
	}
	resp, err := object(root["quoteResponse"], "quoteResponse")
	if err != nil {
		return entity.Quote{}, err
	}
	results, err := array(resp["result"], "quoteResponse.result")
	if err != nil {
		return entity.Quote{}, err
	}
	if len(results) == 0 {
		return entity.Quote{}, fmt.Errorf("quote %q: %w", symbol, domain.ErrNotFound)
	}
	q, err := object(results[0], "quoteResponse.result[0]")
	if err != nil {
		return entity.Quote{}, err
	}
	if q == nil {
		q = map[string]any{}
	}

	out := entity.Quote{
		Symbol:        symbol,
		Price:         optNumber(q, "regularMarketPrice"),
		Change:        optNumber(q, "regularMarketChange"),
		ChangePercent: optNumber(q, "regularMarketChangePercent"),
		Open:          optNumber(q, "regularMarketOpen"),
		DayHigh:       optNumber(q, "regularMarketDayHigh"),
		DayLow:        optNumber(q, "regularMarketDayLow"),
		Currency:      optText(q, "currency"),
		Exchange:      firstText(q, "fullExchangeName", "exchange"),
		Name:          symbol,
	}
	if name := firstText(q, "shortName", "longName"); name != nil {
		out.Name = *name
	}
	// 0はエポック値として無効扱い
	if ts, ok := number(q["regularMarketTime"]); ok && ts != 0 {
		asOf := fromEpoch(ts)
		out.AsOf = &asOf
	}
	return out, nil
}

// firstText は keys の順に最初の空でない文字列を返します。
func firstText(m map[string]any, keys ...string) *string {
	for _, k := range keys {
		if s := optText(m, k); s != nil {
			return s
		}
	}
	return nil
}
