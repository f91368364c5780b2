// Package domain defines domain-level errors for the stocks feature.
package domain

import "errors"

var (
	// ErrNotFound indicates that the upstream returned no matching result set.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInterval indicates that the requested intraday interval is not supported.
	// It is always returned before any upstream call is made.
	ErrInvalidInterval = errors.New("invalid interval")
)
