// Package dto defines the JSON response bodies of the stocks endpoints.
package dto

import (
	"time"

	"stocks_api/internal/feature/stocks/domain/entity"
)

// QuoteResponse は相場のレスポンスDTOです。値が無い項目はnullになります。
type QuoteResponse struct {
	Symbol        string   `json:"symbol"`
	Price         *float64 `json:"price"`
	Change        *float64 `json:"change"`
	ChangePercent *float64 `json:"change_percent"`
	Open          *float64 `json:"open"`
	High          *float64 `json:"high"`
	Low           *float64 `json:"low"`
	AsOf          *string  `json:"as_of"` // ISO-8601 (UTC)
	Currency      *string  `json:"currency"`
	Exchange      *string  `json:"exchange"`
	Name          string   `json:"name"`
}

// PointResponse はバー1本分のレスポンスDTOです。
type PointResponse struct {
	Time   string  `json:"t"` // ISO-8601 (UTC)
	Open   float64 `json:"o"`
	High   float64 `json:"h"`
	Low    float64 `json:"l"`
	Close  float64 `json:"c"`
	Volume float64 `json:"v"`
}

// IntradayResponse は当日時系列のレスポンスDTOです。
type IntradayResponse struct {
	Symbol   string          `json:"symbol"`
	Interval string          `json:"interval"`
	Points   []PointResponse `json:"points"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// NewQuoteResponse converts a domain quote to its wire form.
func NewQuoteResponse(q entity.Quote) QuoteResponse {
	out := QuoteResponse{
		Symbol:        q.Symbol,
		Price:         q.Price,
		Change:        q.Change,
		ChangePercent: q.ChangePercent,
		Open:          q.Open,
		High:          q.DayHigh,
		Low:           q.DayLow,
		Currency:      q.Currency,
		Exchange:      q.Exchange,
		Name:          q.Name,
	}
	if q.AsOf != nil {
		s := formatTime(*q.AsOf)
		out.AsOf = &s
	}
	return out
}

// NewIntradayResponse converts a domain series to its wire form.
// An empty series is encoded as "points": [].
func NewIntradayResponse(s entity.IntradaySeries) IntradayResponse {
	points := make([]PointResponse, 0, len(s.Bars))
	for _, b := range s.Bars {
		points = append(points, PointResponse{
			Time:   formatTime(b.Time),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}
	return IntradayResponse{
		Symbol:   s.Symbol,
		Interval: s.Interval.String(),
		Points:   points,
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
