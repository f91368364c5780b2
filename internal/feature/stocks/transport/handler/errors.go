package handler

import (
	"errors"
	"net/http"

	"stocks_api/internal/feature/stocks/domain"
	"stocks_api/internal/platform/upstream"
)

// maxDetailLen は想定外エラーのメッセージをクライアントに返す際の最大文字数です。
const maxDetailLen = 200

// errorMessages はパイプラインごとの固定メッセージです。
type errorMessages struct {
	notFound  string
	badStatus string
}

var (
	quoteMessages = errorMessages{
		notFound:  "Symbol not found",
		badStatus: "Upstream quote service error",
	}
	intradayMessages = errorMessages{
		notFound:  "No intraday data found",
		badStatus: "Upstream chart service error",
	}
)

// classify はエラーを外部ステータスとメッセージに変換します。
//
//   - domain.ErrInvalidInterval        → 400
//   - domain.ErrNotFound               → 404
//   - upstream.KindBadStatus           → 502
//   - それ以外（到達不能・不正JSON等） → 500（メッセージは200文字まで）
func classify(err error, msgs errorMessages) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInterval):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, msgs.notFound
	case upstream.IsKind(err, upstream.KindBadStatus):
		return http.StatusBadGateway, msgs.badStatus
	default:
		return http.StatusInternalServerError, truncate(err.Error(), maxDetailLen)
	}
}

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
