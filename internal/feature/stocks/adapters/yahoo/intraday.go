package yahoo

import (
	"fmt"

	"stocks_api/internal/feature/stocks/domain"
	"stocks_api/internal/feature/stocks/domain/entity"
)

// ohlcv is the parallel-array bundle found at indicators.quote[0].
type ohlcv struct {
	open, high, low, close, volume []any
}

// NormalizeIntraday は上流の chart ドキュメントを entity.IntradaySeries に変換します。
//
// chart.result が欠損または空の場合のみ domain.ErrNotFound を返します。
// 0件のバーは有効な（空の）系列です。
func NormalizeIntraday(doc any, symbol string, interval entity.Interval) (entity.IntradaySeries, error) {
	root, err := object(doc, "document")
	if err != nil {
		return entity.IntradaySeries{}, err
	}
	chart, err := object(root["chart"], "chart")
	if err != nil {
		return entity.IntradaySeries{}, err
	}
	results, err := array(chart["result"], "chart.result")
	if err != nil {
		return entity.IntradaySeries{}, err
	}
	if len(results) == 0 {
		return entity.IntradaySeries{}, fmt.Errorf("intraday %q: %w", symbol, domain.ErrNotFound)
	}
	series, err := object(results[0], "chart.result[0]")
	if err != nil {
		return entity.IntradaySeries{}, err
	}

	timestamps, err := array(series["timestamp"], "chart.result[0].timestamp")
	if err != nil {
		return entity.IntradaySeries{}, err
	}
	bundle, err := quoteBundle(series["indicators"])
	if err != nil {
		return entity.IntradaySeries{}, err
	}

	return entity.IntradaySeries{
		Symbol:   symbol,
		Interval: interval,
		Bars:     zipBars(timestamps, bundle),
	}, nil
}

// quoteBundle extracts indicators.quote[0]; a missing bundle yields empty arrays.
func quoteBundle(v any) (ohlcv, error) {
	indicators, err := object(v, "indicators")
	if err != nil {
		return ohlcv{}, err
	}
	quotes, err := array(indicators["quote"], "indicators.quote")
	if err != nil || len(quotes) == 0 {
		return ohlcv{}, err
	}
	q, err := object(quotes[0], "indicators.quote[0]")
	if err != nil {
		return ohlcv{}, err
	}

	var b ohlcv
	for _, f := range []struct {
		key string
		dst *[]any
	}{
		{"open", &b.open},
		{"high", &b.high},
		{"low", &b.low},
		{"close", &b.close},
		{"volume", &b.volume},
	} {
		arr, err := array(q[f.key], "indicators.quote[0]."+f.key)
		if err != nil {
			return ohlcv{}, err
		}
		*f.dst = arr
	}
	return b, nil
}

// zipBars はタイムスタンプ配列をインデックス順に走査し、OHLCが揃った点だけをバーにします。
//
// スキップ規則（エラーにはしない）:
//   - タイムスタンプが数値でない
//   - open/high/low/close のいずれかが範囲外・null・数値以外
//   - volume が範囲内にあり、nullでも数値でもない
//
// volume が範囲外またはnullの場合は0とします。並び替え・重複排除は行いません。
func zipBars(timestamps []any, b ohlcv) []entity.Bar {
	bars := make([]entity.Bar, 0, len(timestamps))
	for i, raw := range timestamps {
		bar, ok := barAt(i, raw, b)
		if !ok {
			continue
		}
		bars = append(bars, bar)
	}
	return bars
}

func barAt(i int, rawTS any, b ohlcv) (entity.Bar, bool) {
	ts, ok := number(rawTS)
	if !ok {
		return entity.Bar{}, false
	}
	o, ok1 := indexNumber(b.open, i)
	h, ok2 := indexNumber(b.high, i)
	l, ok3 := indexNumber(b.low, i)
	c, ok4 := indexNumber(b.close, i)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return entity.Bar{}, false
	}

	var v float64
	if i < len(b.volume) && b.volume[i] != nil {
		if v, ok = number(b.volume[i]); !ok {
			return entity.Bar{}, false
		}
	}

	return entity.Bar{
		Time:   fromEpoch(ts),
		Open:   o,
		High:   h,
		Low:    l,
		Close:  c,
		Volume: v,
	}, true
}
