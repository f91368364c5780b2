package entity

import "time"

// Bar represents one OHLCV observation within an intraday series.
type Bar struct {
	Time   time.Time // Bar timestamp (UTC)
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64 // 0 when the upstream volume is absent
}

// IntradaySeries is an ordered sequence of bars for a symbol at a given interval.
// Bars keep the upstream order; no sorting or de-duplication is applied.
type IntradaySeries struct {
	Symbol   string
	Interval Interval
	Bars     []Bar
}
