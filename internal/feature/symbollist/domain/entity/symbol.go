// Package entity defines the domain models for the symbollist feature.
package entity

// Symbol is a ticker shown in the popular list, in display order.
type Symbol struct {
	Code    string
	SortKey int
}
