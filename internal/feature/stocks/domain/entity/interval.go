package entity

import (
	"fmt"

	"stocks_api/internal/feature/stocks/domain"
)

// Interval is the sampling granularity of an intraday series.
type Interval string

const (
	Interval1m  Interval = "1m"
	Interval2m  Interval = "2m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval30m Interval = "30m"
	Interval60m Interval = "60m"
	Interval90m Interval = "90m"

	// DefaultInterval はintervalが指定されなかった場合に使用します。
	DefaultInterval = Interval5m
)

var supportedIntervals = map[Interval]struct{}{
	Interval1m:  {},
	Interval2m:  {},
	Interval5m:  {},
	Interval15m: {},
	Interval30m: {},
	Interval60m: {},
	Interval90m: {},
}

// ParseInterval は文字列をIntervalに変換します。
// 対応外の値（空文字列を含む）はdomain.ErrInvalidIntervalを返します。
func ParseInterval(s string) (Interval, error) {
	iv := Interval(s)
	if _, ok := supportedIntervals[iv]; !ok {
		return "", fmt.Errorf("%w: %q (allowed: 1m, 2m, 5m, 15m, 30m, 60m, 90m)", domain.ErrInvalidInterval, s)
	}
	return iv, nil
}

func (i Interval) String() string { return string(i) }
