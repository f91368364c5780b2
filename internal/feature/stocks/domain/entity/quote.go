package entity

import "time"

// Quote is a normalized snapshot of a single symbol's market quote.
// Every field except Symbol and Name is optional; nil means the upstream did not supply it.
type Quote struct {
	Symbol        string     // Canonical ticker symbol
	Price         *float64   // Regular market price
	Change        *float64   // Absolute change from previous close
	ChangePercent *float64   // Percent change from previous close
	Open          *float64   // Regular market open
	DayHigh       *float64   // Regular market day high
	DayLow        *float64   // Regular market day low
	AsOf          *time.Time // Regular market time (UTC)
	Currency      *string
	Exchange      *string
	Name          string // Display name; never empty (falls back to Symbol)
}
