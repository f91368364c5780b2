// Package entity defines the domain models for the stocks feature.
package entity

import "strings"

// CanonicalSymbol は銘柄コードを前後の空白を除去し大文字化した正規形に変換します。
// 空文字列もそのまま通します（上流側でNotFoundになる）。
func CanonicalSymbol(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
